// This file is part of atari800core.
//
// atari800core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800core.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/atari800core/emu/hardware/television"
)

// atariPalette is the 256-entry NTSC-ish palette ANTIC/GTIA colour codes
// index into. A real front end would calibrate this per television; this
// one is a fixed, reasonable approximation.
var atariPalette = buildPalette()

func buildPalette() [256]sdl.Color {
	var p [256]sdl.Color
	for i := range p {
		hue := i >> 4
		lum := i & 0x0f
		v := uint8(lum * 17)
		switch hue {
		case 0:
			p[i] = sdl.Color{R: v, G: v, B: v, A: 255}
		default:
			angle := 2 * math.Pi * float64(hue) / 15.0
			p[i] = sdl.Color{
				R: uint8(float64(v) * (0.5 + 0.5*math.Cos(angle))),
				G: v,
				B: uint8(float64(v) * (0.5 + 0.5*math.Sin(angle))),
				A: 255,
			}
		}
	}
	return p
}

// sdlDisplay implements television.PixelRenderer over an SDL window.
type sdlDisplay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newSDLDisplay(scale int) (*sdlDisplay, error) {
	w := int32(television.FrameWidth * scale)
	h := int32(television.FrameHeight * scale)

	window, err := sdl.CreateWindow("atari800core", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING, television.FrameWidth, television.FrameHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &sdlDisplay{window: window, renderer: renderer, texture: texture}, nil
}

func (d *sdlDisplay) close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
}

// PresentBitmap satisfies television.PixelRenderer. pixels is one
// palette-indexed byte per pixel, FrameWidth*FrameHeight in size.
func (d *sdlDisplay) PresentBitmap(pixels []uint8) error {
	rgba := make([]byte, len(pixels)*4)
	for i, idx := range pixels {
		c := atariPalette[idx]
		rgba[i*4+0] = c.R
		rgba[i*4+1] = c.G
		rgba[i*4+2] = c.B
		rgba[i*4+3] = c.A
	}

	if err := d.texture.Update(nil, rgba, television.FrameWidth*4); err != nil {
		return err
	}
	d.renderer.Clear()
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return err
	}
	d.renderer.Present()
	return nil
}

// PresentBorder satisfies television.PixelRenderer. The streaming texture
// above always covers the whole window, so there is no separate border
// region to paint here.
func (d *sdlDisplay) PresentBorder(paletteIndex uint8) error {
	return nil
}
