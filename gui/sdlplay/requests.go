// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package sdlplay

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8080/gui"
)

// SetFeature implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sdlplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetScale:
		scr.scale = args[0].(float32)
		scr.window.SetSize(scr.width(), scr.height())
		scr.resize()

	case gui.ReqOverlay:
		scr.rnd.setOverlay(args[0].(bool))

	case gui.ReqMonitorSync:
		if args[0].(bool) {
			err = sdl.GLSetSwapInterval(1)
		} else {
			err = sdl.GLSetSwapInterval(0)
		}

	default:
		err = fmt.Errorf("sdlplay: %w: %v", gui.UnsupportedGuiFeature, request)
	}

	return err
}
