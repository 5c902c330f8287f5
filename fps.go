package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS widget redraws its label.
const fpsRefresh = 0.5

// NewFPSWidget creates a sprite node showing the current FPS and TPS in the
// top-left corner. The label is refreshed every half second.
func NewFPSWidget() *Node {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	n := NewSprite("fps", img, 0, 0)

	elapsed := fpsRefresh
	n.OnProcess = func(dt float64, _ *Scene) {
		elapsed += dt
		if elapsed < fpsRefresh {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return n
}
