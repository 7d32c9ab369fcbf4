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

// Package gui defines the interface used by the emulation to talk to the GUI
// drivers. The drivers are in the sub-packages: sdlplay, ebitenplay and
// termplay.
//
// A driver is created by the main package and then given the emulation with
// the Run() function. Run() must be called from the main thread and returns
// when the window is closed or when the emulation ends with an error.
package gui

import (
	"context"
	"errors"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Run the display loop. Must only be called from the main thread.
	Run(ctx context.Context, emu *Emulation) error

	// Release all resources held by the GUI.
	Destroy()
}

// UnsupportedGuiFeature is returned by SetFeature() if the GUI does not
// support the request.
var UnsupportedGuiFeature = errors.New("unsupported gui feature")
