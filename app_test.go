package sapling

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSource replays one slice of events per Poll.
type fakeSource struct {
	frames [][]Event
	polls  int
}

func (f *fakeSource) Poll(dst []Event) []Event {
	if f.polls < len(f.frames) {
		dst = append(dst, f.frames[f.polls]...)
	}
	f.polls++
	return dst
}

func newTestApp(t *testing.T, frames ...[]Event) (*App, *fakeSource) {
	t.Helper()
	src := &fakeSource{frames: frames}
	app, err := NewApp(DefaultConfig(), WithLogger(zap.NewNop()), WithEventSource(src))
	require.NoError(t, err)
	return app, src
}

func TestNewAppInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 0
	_, err := NewApp(cfg, WithLogger(zap.NewNop()), WithEventSource(&fakeSource{}))
	assert.Error(t, err)
}

func TestAppSize(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, 640, app.Width())
	assert.Equal(t, 480, app.Height())
	w, h := app.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestAppSetScene(t *testing.T) {
	app, _ := newTestApp(t)
	var order []string

	first := NewScene("first")
	first.OnReset = func() { order = append(order, "first reset") }
	first.OnInit = func(a *App, params map[string]any) {
		assert.Same(t, app, a)
		order = append(order, "first init")
	}
	app.SetScene(first, nil)
	assert.Same(t, first, app.Scene())
	assert.Same(t, app, first.App())

	second := NewScene("second")
	second.OnInit = func(_ *App, params map[string]any) {
		order = append(order, "second init "+params["level"].(string))
	}
	app.SetScene(second, map[string]any{"level": "2"})

	assert.Equal(t, []string{"first init", "first reset", "second init 2"}, order)
	assert.Same(t, second, app.Scene())
	assert.Panics(t, func() { app.SetScene(nil, nil) })
}

func TestAppSetSceneFrom(t *testing.T) {
	app, _ := newTestApp(t)
	s := app.SetSceneFrom(func(a *App) *Scene {
		return NewScene("built")
	}, nil)
	assert.Equal(t, "built", s.Name)
	assert.Same(t, s, app.Scene())
}

func TestAppEventRouting(t *testing.T) {
	app, _ := newTestApp(t, []Event{{Type: EventKeyDown, Key: ebiten.KeyA}})
	var order []string

	scene := NewScene("s")
	sn := NewNode("scene node")
	sn.Listening = true
	sn.OnEvent = func(Event) { order = append(order, "scene node") }
	scene.AddNode(sn)
	scene.OnEvent = func(Event) { order = append(order, "scene") }
	app.SetScene(scene, nil)

	gn := NewNode("global node")
	gn.Listening = true
	gn.OnEvent = func(Event) { order = append(order, "global node") }
	app.AddGlobalNode(gn)
	app.OnEvent = func(e Event) {
		assert.Equal(t, ebiten.KeyA, e.Key)
		order = append(order, "app")
	}

	require.NoError(t, app.Update())
	assert.Equal(t, []string{"scene node", "scene", "global node", "app"}, order)
}

func TestAppProcessOrder(t *testing.T) {
	app, _ := newTestApp(t)
	var order []string

	scene := NewScene("s")
	scene.OnUpdate = func(float64) { order = append(order, "scene") }
	sn := NewNode("sn")
	sn.OnProcess = func(float64, *Scene) { order = append(order, "scene node") }
	scene.AddNode(sn)
	app.SetScene(scene, nil)

	gn := NewNode("gn")
	gn.OnProcess = func(_ float64, s *Scene) {
		assert.Same(t, scene, s)
		order = append(order, "global node")
	}
	app.AddGlobalNode(gn)
	app.OnUpdate = func(dt float64) {
		assert.InDelta(t, 1.0/60, dt, 1e-12)
		order = append(order, "app")
	}

	require.NoError(t, app.Update())
	assert.Equal(t, []string{"app", "global node", "scene", "scene node"}, order)
}

func TestAppWithoutScene(t *testing.T) {
	app, _ := newTestApp(t, []Event{{Type: EventKeyDown}})
	processed := 0
	n := NewNode("n")
	n.OnProcess = func(_ float64, s *Scene) {
		assert.Nil(t, s)
		processed++
	}
	app.AddGlobalNode(n)
	require.NoError(t, app.Update())
	assert.Equal(t, 1, processed)
}

func TestAppQuitEvent(t *testing.T) {
	app, _ := newTestApp(t, nil, []Event{{Type: EventQuit}})
	require.NoError(t, app.Update())
	err := app.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(t)
	app.Quit()
	assert.ErrorIs(t, app.Update(), ebiten.Termination)
}

func TestAppRunWhileRunning(t *testing.T) {
	appRunning.Store(true)
	defer appRunning.Store(false)

	app, _ := newTestApp(t)
	assert.True(t, Running())
	assert.ErrorIs(t, app.Run(), ErrAppRunning)
	assert.False(t, app.Running())
}

func TestAppRemoveNode(t *testing.T) {
	app, _ := newTestApp(t)
	n := NewNode("n")
	n.Listening = true
	app.AddGlobalNodes(n)
	require.NoError(t, app.RemoveNode(n))
	assert.Empty(t, app.GlobalNodes())
	assert.ErrorIs(t, app.RemoveNode(n), ErrNodeNotFound)
}

func TestAppInjectedEventsFollowPolled(t *testing.T) {
	app, _ := newTestApp(t, []Event{{Type: EventMouseMotion, X: 1}})
	var got []EventType
	app.OnEvent = func(e Event) { got = append(got, e.Type) }

	app.InjectKey(ebiten.KeySpace)
	app.InjectText("hi")
	require.NoError(t, app.Update())
	assert.Equal(t, []EventType{EventMouseMotion, EventKeyDown, EventKeyUp, EventTextInput}, got)

	got = nil
	require.NoError(t, app.Update())
	assert.Empty(t, got, "injected events are delivered once")
}

func TestAppInjectClick(t *testing.T) {
	app, _ := newTestApp(t)
	var got []Event
	app.OnEvent = func(e Event) { got = append(got, e) }
	app.InjectClick(12, 34)
	require.NoError(t, app.Update())
	require.Len(t, got, 2)
	assert.Equal(t, EventMouseButtonDown, got[0].Type)
	assert.Equal(t, EventMouseButtonUp, got[1].Type)
	assert.Equal(t, 12.0, got[1].X)
	assert.Equal(t, MouseButtonLeft, got[1].Button)
}

func TestAppEmptyTextNotInjected(t *testing.T) {
	app, _ := newTestApp(t)
	app.InjectText("")
	assert.Empty(t, app.injectQueue)
}

func TestAppAddNodeNeedsScene(t *testing.T) {
	app, _ := newTestApp(t)
	n := NewNode("n")
	assert.ErrorIs(t, app.AddNode(n), ErrNoScene)

	s := NewScene("s")
	app.SetScene(s, nil)
	require.NoError(t, app.AddNode(n))
	assert.Equal(t, []*Node{n}, s.Nodes())
}

func TestAppSession(t *testing.T) {
	a, _ := newTestApp(t)
	b, _ := newTestApp(t)
	assert.NotEqual(t, uuid.Nil, a.Session())
	assert.NotEqual(t, a.Session(), b.Session())
}
