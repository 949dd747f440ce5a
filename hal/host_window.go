//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"clipbox/internal/buildinfo"
)

// RunWindow opens a desktop window showing the panel. R presses the
// record button, P (or Space) the play button. It blocks until the
// window closes.
//
// The tick rate matches the appliance's 10 ms poll cadence; recording
// from a real microphone blocks the window for the clip length, just
// as the device blocks its main loop.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := NewWithConfig(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("clipbox (" + buildinfo.Short() + ")")
	w, ht := h.disp.Size()
	ebiten.SetWindowSize(int(w)*4, int(ht)*4)
	ebiten.SetTPS(100)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.h.buttons.Inject(ButtonRecord)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.h.buttons.Inject(ButtonPlay)
	}
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w16, h16 := g.h.disp.Size()
	w, h := int(w16), int(h16)

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v uint8
			if g.h.disp.Pixel(int16(x), int16(y)) {
				v = 0xff
			}
			j := (y*w + x) * 4
			g.img.Pix[j+0] = v
			g.img.Pix[j+1] = v
			g.img.Pix[j+2] = v
			g.img.Pix[j+3] = 0xff
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.h.disp.Size()
	return int(w), int(h)
}
