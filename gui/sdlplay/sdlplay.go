// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"unsafe"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/notifications"
	"github.com/jetsetilly/gophersms/television"
	"github.com/jetsetilly/gophersms/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL is the error pattern for errors returned by the SDL library.
const SDL = "sdl: %v"

// SdlPlay is the window and audio device for the emulation.
type SdlPlay struct {
	fb   *television.FrameBuffer
	ring *television.AudioRing

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the height of the texture. the VDP never outputs more than MaxHeight
	// lines and the unused lines are left black
	height int32

	// pixels is copied from the frame buffer and then to the texture
	pixels []uint8

	aud *audio

	// the state of the input devices, updated by keyboard events
	input *keyboard

	notices chan notifications.Notice
	status  status
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The scale value is the size of each pixel in the window.
func NewSdlPlay(fb *television.FrameBuffer, ring *television.AudioRing, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		fb:     fb,
		ring:   ring,
		height: vdp.MaxHeight,
		pixels: make([]uint8, television.Pitch*vdp.MaxHeight),
		input:  newKeyboard(),

		notices: make(chan notifications.Notice, noticeQueueLength),
		status:  status{base: version.ApplicationName},
	}

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow(scr.status.title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(vdp.Width*scale), scr.height*int32(scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// the renderer stretches the texture to fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		vdp.Width, scr.height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// a missing audio device is not fatal
	scr.aud, err = newAudio()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		scr.aud = nil
	}

	logger.Logf(logger.Allow, "sdlplay", "window opened at scale %d", scale)

	return scr, nil
}

// Input returns the current state of the input devices. It is safe to call
// from the emulation goroutine and is suitable for playmode.Options.
func (scr *SdlPlay) Input() ports.Input {
	return scr.input.state()
}

// Destroy closes the window and audio device.
func (scr *SdlPlay) Destroy() {
	if scr.aud != nil {
		scr.aud.close()
	}
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// present the most recent frame from the frame buffer.
func (scr *SdlPlay) present() error {
	scr.fb.Copy(scr.pixels)

	err := scr.texture.Update(nil, unsafe.Pointer(&scr.pixels[0]), television.Pitch)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	return nil
}
