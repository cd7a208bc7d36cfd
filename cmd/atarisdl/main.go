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

// Command atarisdl is a thin reference host: it wires an SDL window/renderer
// as the PixelRenderer, an SDL audio device as the AudioMixer, and SDL
// keyboard/joystick events as the Input producer, then runs the machine to
// completion. Everything it does beyond that wiring -- disk UIs, debugger
// windows, save states -- is out of scope; a real front end would be built
// the same way, just with more of it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/atari800core/emu/hardware"
	"github.com/atari800core/emu/prefs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "atarisdl:", err)
		os.Exit(1)
	}
}

// loadDisplayPrefs loads the persisted tv/scale preferences from
// atarisdl.prefs in the user's config directory, falling back to AUTO/2 the
// first time the host runs.
func loadDisplayPrefs() (disk *prefs.Disk, tvSpec *prefs.String, scale *prefs.Int, err error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	disk, err = prefs.NewDisk(filepath.Join(dir, "atarisdl.prefs"))
	if err != nil {
		return nil, nil, nil, err
	}

	tvSpec = &prefs.String{}
	if err := tvSpec.Set("AUTO"); err != nil {
		return nil, nil, nil, err
	}
	if err := disk.Add("tv.spec", tvSpec); err != nil {
		return nil, nil, nil, err
	}

	scale = &prefs.Int{}
	if err := scale.Set(2); err != nil {
		return nil, nil, nil, err
	}
	if err := disk.Add("display.scale", scale); err != nil {
		return nil, nil, nil, err
	}

	if err := disk.Load(); err != nil {
		return nil, nil, nil, err
	}

	return disk, tvSpec, scale, nil
}

func run() error {
	disk, prefTVSpec, prefScale, err := loadDisplayPrefs()
	if err != nil {
		return err
	}

	osROMPath := flag.String("os", "", "path to the 16KiB OS ROM image")
	basicROMPath := flag.String("basic", "", "path to the 8KiB BASIC ROM image")
	xexPath := flag.String("xex", "", "path to an XEX executable to load and run")
	diskPath := flag.String("disk", "", "path to an ATR disk image to mount (boot sector 1 is copied into RAM and run)")
	tvSpec := flag.String("tv", prefTVSpec.String(), "television spec: PAL, NTSC or AUTO")
	scale := flag.Int("scale", prefScale.Get(), "integer pixel scale of the display window")
	flag.Parse()

	if *osROMPath == "" || *basicROMPath == "" {
		return fmt.Errorf("both -os and -basic ROM paths are required")
	}

	if err := prefTVSpec.Set(*tvSpec); err != nil {
		return err
	}
	if err := prefScale.Set(*scale); err != nil {
		return err
	}
	if err := disk.Save(); err != nil {
		return err
	}

	osROM, err := os.ReadFile(*osROMPath)
	if err != nil {
		return err
	}
	basicROM, err := os.ReadFile(*basicROMPath)
	if err != nil {
		return err
	}

	at, err := hardware.NewAtari(osROM, basicROM, *tvSpec)
	if err != nil {
		return err
	}

	if *xexPath != "" {
		data, err := os.ReadFile(*xexPath)
		if err != nil {
			return err
		}
		if err := at.LoadXEX(data); err != nil {
			return err
		}
	} else if *diskPath != "" {
		data, err := os.ReadFile(*diskPath)
		if err != nil {
			return err
		}
		disk, err := at.MountDisk(data)
		if err != nil {
			return err
		}
		// the OS boot loader copies sector 1 to $0700 and jumps there; we do
		// the same, skipping the DOS-loaded-sector-count/SIO-retry dance a
		// real boot performs since this host has no SIO controller.
		boot, err := disk.ReadSector(1)
		if err != nil {
			return err
		}
		at.LoadBinary(boot, 0x0700)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK); err != nil {
		return err
	}
	defer sdl.Quit()

	display, err := newSDLDisplay(*scale)
	if err != nil {
		return err
	}
	defer display.close()
	at.TV.SetPixelRenderer(display)

	audioSink, err := newSDLAudio()
	if err != nil {
		return err
	}
	defer audioSink.close()
	at.TV.SetAudioMixer(audioSink)

	for {
		if quit := pumpEvents(at); quit {
			return nil
		}
		at.RunFrame()
		if at.Stop {
			return nil
		}
	}
}
