// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences keys.
const (
	PrefFrequency = "vm.frequency"
	PrefTrace     = "vm.trace"
)

// InvalidFrequency is the error pattern for a frequency that is not a
// positive number of instructions per second.
const InvalidFrequency = "vm: invalid frequency: %v"

// DefaultFrequency is the number of instructions executed per second by
// the Run() function unless specified otherwise.
const DefaultFrequency = 500

// Preferences defines and collates all the preference values used by the VM.
type Preferences struct {
	reg *prefs.Registry

	// the number of instructions executed per second by the Run() function
	Frequency prefs.Int

	// log every executed instruction
	Trace prefs.Bool
}

func (p *Preferences) String() string {
	return p.reg.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		reg: prefs.NewRegistry(),
	}

	p.Frequency.SetHookPre(func(v prefs.Value) error {
		if f, ok := v.(int); !ok || f <= 0 {
			return curated.Errorf(InvalidFrequency, v)
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	if err := p.reg.Add(PrefFrequency, &p.Frequency); err != nil {
		return nil, err
	}
	if err := p.reg.Add(PrefTrace, &p.Trace); err != nil {
		return nil, err
	}

	// values on the command line stack override the defaults
	err = p.reg.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Frequency.Set(DefaultFrequency); err != nil {
		return err
	}
	return p.Trace.Set(false)
}

// Set the value of a preference by key name.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.reg.Set(key, v)
}
