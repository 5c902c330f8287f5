package sapling

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// appRunning guards against two Apps running their loops at once.
var appRunning atomic.Bool

// Option configures an App at construction.
type Option func(*App)

// WithLogger makes the App log through l instead of building its own.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithEventSource replaces Ebitengine input polling, typically with a fake in
// tests.
func WithEventSource(src EventSource) Option {
	return func(a *App) { a.source = src }
}

// SceneFactory builds a scene for an App. See App.SetSceneFrom.
type SceneFactory func(app *App) *Scene

// App owns the main loop. It implements ebiten.Game: each tick it polls input,
// routes events to the current scene, the global nodes and OnEvent, then
// processes the global nodes and the scene. Each frame it clears the screen
// and draws the scene, then the global nodes.
type App struct {
	// OnUpdate runs every tick before any node is processed.
	OnUpdate func(dt float64)
	// OnEvent receives every event after the scene and the global nodes.
	OnEvent func(Event)

	session uuid.UUID
	cfg     Config
	log     *zap.Logger
	source  EventSource

	scene       *Scene
	global      nodeList
	controllers []*Controller

	events          []Event
	injectQueue     []Event
	script          *ScriptRunner
	screenshotQueue []string
	stats           debugStats
	quit            bool
	running         bool
}

// NewApp validates cfg and creates an App. The window is not opened until Run.
func NewApp(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, session: uuid.New()}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l, err := NewLogger(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		a.log = l
	}
	a.log = a.log.With(zap.String("session", a.session.String()))
	if a.source == nil {
		a.source = newEbitenSource()
	}
	if cfg.ShowFPS {
		a.AddGlobalNode(NewFPSWidget())
	}
	return a, nil
}

// Config returns the App's configuration.
func (a *App) Config() Config {
	return a.cfg
}

// Session returns the id tagged on every log entry of this App.
func (a *App) Session() uuid.UUID {
	return a.session
}

// Logger returns the App's logger.
func (a *App) Logger() *zap.Logger {
	return a.log
}

// Width returns the logical screen width.
func (a *App) Width() int {
	return a.cfg.Width
}

// Height returns the logical screen height.
func (a *App) Height() int {
	return a.cfg.Height
}

// Run opens the window and blocks until the loop ends. It returns
// ErrAppRunning if another App is already running, and nil after a Quit or
// the window closing.
func (a *App) Run() error {
	if !appRunning.CompareAndSwap(false, true) {
		return ErrAppRunning
	}
	defer appRunning.Store(false)
	a.running = true
	defer func() { a.running = false }()

	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetTPS(a.cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	a.quit = false
	a.log.Info("app starting",
		zap.String("title", a.cfg.Title),
		zap.Int("width", a.cfg.Width),
		zap.Int("height", a.cfg.Height),
		zap.Int("tps", a.cfg.TPS),
	)
	err := ebiten.RunGame(a)
	if err != nil {
		a.log.Error("app stopped", zap.Error(err))
	} else {
		a.log.Info("app stopped")
	}
	_ = a.log.Sync()
	return err
}

// Running reports whether an App loop is currently running.
func Running() bool {
	return appRunning.Load()
}

// Running reports whether this App's loop is running. It stays false for an
// App whose Run was refused with ErrAppRunning.
func (a *App) Running() bool {
	return a.running
}

// Quit ends the loop after the current tick.
func (a *App) Quit() {
	a.quit = true
}

// --- Scenes ---

// SetScene replaces the current scene. The old scene's OnReset runs, then the
// new scene's OnInit with params.
func (a *App) SetScene(s *Scene, params map[string]any) {
	if s == nil {
		panic("sapling: cannot set nil scene")
	}
	prev := a.scene
	if prev != nil && prev.OnReset != nil {
		prev.OnReset()
	}
	s.app = a
	if s.OnInit != nil {
		s.OnInit(a, params)
	}
	a.scene = s

	fields := []zap.Field{zap.String("scene", s.Name)}
	if prev != nil {
		fields = append(fields, zap.String("previous", prev.Name))
	}
	a.log.Info("scene changed", fields...)
}

// SetSceneFrom builds a scene with factory and makes it current.
func (a *App) SetSceneFrom(factory SceneFactory, params map[string]any) *Scene {
	s := factory(a)
	a.SetScene(s, params)
	return s
}

// Scene returns the current scene, or nil.
func (a *App) Scene() *Scene {
	return a.scene
}

// AddNode adds n to the current scene. It returns ErrNoScene when no scene
// has been set.
func (a *App) AddNode(n *Node) error {
	if a.scene == nil {
		return ErrNoScene
	}
	a.scene.AddNode(n)
	return nil
}

// --- Global nodes ---

// AddGlobalNode adds a node that runs regardless of the current scene.
// Panics if n is nil or disposed.
func (a *App) AddGlobalNode(n *Node) {
	a.global.add(n)
	if a.cfg.Debug {
		debugCheckNodeCount(a, "global", len(a.global.all))
	}
}

// AddGlobalNodes adds each node in order.
func (a *App) AddGlobalNodes(nodes ...*Node) {
	for _, n := range nodes {
		a.AddGlobalNode(n)
	}
}

// RemoveNode removes a global node, with the same rules as Scene.RemoveNode.
func (a *App) RemoveNode(n *Node) error {
	_, err := a.global.remove(n)
	return err
}

// GlobalNodes returns the global node list. The returned slice MUST NOT be
// mutated.
func (a *App) GlobalNodes() []*Node {
	return a.global.all
}

// --- ebiten.Game ---

// Update implements ebiten.Game.
func (a *App) Update() error {
	return a.step(1 / float64(a.cfg.TPS))
}

// step runs one tick with the given delta in seconds.
func (a *App) step(dt float64) error {
	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}

	if a.script != nil {
		a.script.step(a)
	}

	a.events = a.source.Poll(a.events[:0])
	a.events = append(a.events, a.injectQueue...)
	a.injectQueue = a.injectQueue[:0]
	for _, e := range a.events {
		a.handleEvent(e)
	}

	if a.cfg.Debug {
		a.stats.eventTime = time.Since(t0)
		a.stats.eventCount = len(a.events)
		t0 = time.Now()
	}

	if a.OnUpdate != nil {
		a.OnUpdate(dt)
	}
	a.global.process(dt, a.scene)
	if a.scene != nil {
		a.scene.Process(dt)
	}

	if a.cfg.Debug {
		a.stats.processTime = time.Since(t0)
	}

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

func (a *App) handleEvent(e Event) {
	switch e.Type {
	case EventQuit:
		a.quit = true
	case EventGamepadConnected, EventGamepadDisconnected:
		a.syncControllers(e)
	}
	if a.scene != nil {
		a.scene.dispatch(e)
	}
	a.global.dispatch(e)
	if a.OnEvent != nil {
		a.OnEvent(e)
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}

	screen.Fill(a.cfg.ClearColor.RGBA())
	if a.scene != nil {
		a.scene.Draw(screen)
	}
	for _, n := range a.global.all {
		n.Draw(screen, Vec2{})
	}
	a.flushScreenshots(screen)

	if a.cfg.Debug {
		a.stats.drawTime = time.Since(t0)
		a.debugLog(a.stats)
	}
}

// Layout implements ebiten.Game. The logical screen keeps the configured size
// whatever the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
