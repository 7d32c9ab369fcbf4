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

package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopher8080/hardware/romset"
)

// Options for the Check() function.
type Options struct {
	Duration time.Duration
	Profile  Profile

	// filenames for the optional outputs. an empty string means the output
	// is not created
	Plot   string
	Memviz string
}

// Check the performance of the emulator using the supplied ROM set.
func Check(output io.Writer, set *romset.ROMSet, opts Options) error {
	var res *Results
	var snapshot machineState

	err := RunProfiler(opts.Profile, "performance", func() error {
		r, inv, err := Measure(set.Image, opts.Duration)
		if err != nil {
			return err
		}
		res = r
		snapshot = newMachineState(inv)
		return nil
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(res.Frames, res.Elapsed.Seconds())
	mhz, mhzAccuracy := CalcMHz(res.States, res.Elapsed.Seconds())

	fmt.Fprintf(output, "%.2f MHz (%d states in %.2f seconds) %.1f%%\n", mhz, res.States, res.Elapsed.Seconds(), mhzAccuracy)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, res.Frames, res.Elapsed.Seconds(), accuracy)
	fmt.Fprintf(output, "framebuffer digest %016x\n", res.Digest)

	if opts.Plot != "" {
		if err := Plot(opts.Plot, res.StatesPerInterrupt); err != nil {
			return err
		}
		fmt.Fprintf(output, "plot written to %s\n", opts.Plot)
	}

	if opts.Memviz != "" {
		f, err := os.Create(opts.Memviz)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		snapshot.Map(f)
		if err := f.Close(); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		fmt.Fprintf(output, "machine graph written to %s\n", opts.Memviz)
	}

	return nil
}
