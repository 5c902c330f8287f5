// Package sapling is a small scene framework for [Ebitengine]: an App that
// owns the loop, Scenes holding flat lists of Nodes, signals for wiring
// callbacks, and input devices that turn polled state into events.
//
// Geometry (vectors, rectangles and polygon collision) lives in the geom
// subpackage and is used by scenes for hit testing and highlighting.
//
// # Quick start
//
//	cfg := sapling.DefaultConfig()
//	app, err := sapling.NewApp(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	scene := sapling.NewScene("title")
//	scene.AddNode(sapling.NewText("hello", sapling.Vec2{X: 320, Y: 240}, "Hello",
//		sapling.TextOptions{Color: &sapling.ColorWhite, Center: true}))
//	app.SetScene(scene, nil)
//
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Nodes
//
// Every element is a [Node]. Constructors such as [NewSprite], [NewText],
// [NewTimer], [NewLogPanel], [NewKeyboard] and [NewPlaystation4Controller]
// return ready-made nodes; logic-only nodes come from [NewNode] with
// OnProcess, OnEvent or OnDraw set. Nodes with Listening set receive events
// from the Scene or App they are added to.
//
// # Signals
//
// [Signal] is a synchronous broadcaster and [Ref] a value that notifies its
// watchers on every Set:
//
//	score := sapling.NewRef(0)
//	score.Watch(func(v int) { label.TextBlock.Content = strconv.Itoa(v) })
//	score.Update(func(v int) int { return v + 1 })
//
// # Configuration and logging
//
// [Config] can be loaded from YAML with [LoadConfig]. Logging goes through
// [zap]; [NewLogger] can tee entries into a [LogPanel] drawn on screen.
//
// # Scripted input
//
// [LoadScript] reads a YAML list of steps (keys, text, clicks, gamepad
// events, waits, screenshots) that an App replays one per tick.
//
// [Ebitengine]: https://ebitengine.org
// [zap]: https://pkg.go.dev/go.uber.org/zap
package sapling
