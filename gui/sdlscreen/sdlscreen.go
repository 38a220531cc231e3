// This file is part of Gopher3DS.
//
// Gopher3DS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3DS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3DS.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlscreen is an SDL implementation of the gpu.Renderer interface.
// On every buffer swap it reads the active top framebuffer through the
// address resolver and presents it in an SDL window.
//
// SDL requires event handling to happen on the main thread. The Service()
// function must be called regularly as part of the main loop.
package sdlscreen

import (
	"github.com/jetsetilly/gopher3ds/hardware/gpu"
	"github.com/jetsetilly/gopher3ds/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// IdealScale is the suggested scaling for the screen.
const IdealScale = 2.0

// Screen is the SDL implementation of a simple display for the console's top
// screen.
type Screen struct {
	gpu *gpu.GPU
	mem gpu.AddressResolver

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	// only log an unrenderable framebuffer format once per change
	badFormat bool
}

// NewScreen initialises a new instance of an SDL display, sized for the
// GPU's top framebuffer.
func NewScreen(g *gpu.GPU, mem gpu.AddressResolver, scale float32) (*Screen, error) {
	scr := &Screen{
		gpu: g,
		mem: mem,
	}

	if scale <= 0 {
		scale = IdealScale
	}

	fb := g.Framebuffer(gpu.DisplayTop)
	scr.width = int32(fb.Width)
	scr.height = int32(fb.Height)

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, err
	}

	scr.window, err = sdl.CreateWindow("Gopher3DS",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(scr.width)*scale), int32(float32(scr.height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_BGR24,
		sdl.TEXTUREACCESS_STREAMING, scr.width, scr.height)
	if err != nil {
		return nil, err
	}

	return scr, nil
}

// SwapBuffers implements the gpu.Renderer interface.
func (scr *Screen) SwapBuffers() {
	fb := scr.gpu.Framebuffer(gpu.DisplayTop)

	if fb.Format != gpu.RGB8 {
		if !scr.badFormat {
			logger.Logf("sdlscreen", "cannot render framebuffer format %s", fb.Format)
			scr.badFormat = true
		}
		return
	}
	scr.badFormat = false

	// the left eye buffer of the selected buffering slot. stereo rendering
	// is not attempted
	address := fb.AddressLeft1
	if fb.ActiveBuffer == 1 {
		address = fb.AddressLeft2
	}

	buf, err := scr.mem.Resolve(address)
	if err != nil {
		logger.Logf("sdlscreen", "%v", err)
		return
	}

	pitch := int(fb.Width) * 3
	length := pitch * int(fb.Height)
	if length > len(buf) {
		length = len(buf) - len(buf)%pitch
	}

	err = scr.texture.Update(nil, buf[:length], pitch)
	if err != nil {
		logger.Logf("sdlscreen", "%v", err)
		return
	}

	scr.renderer.Clear()
	scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
}

// Service all pending SDL events. Returns false when the user has asked for
// the window to close.
func (scr *Screen) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Destroy the resources used by the screen. The Screen should be considered
// unusable after Destroy() has been called.
func (scr *Screen) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
