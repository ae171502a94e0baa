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

package prefs

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
)

// Registry is a collection of preference values, each identified by a key.
type Registry struct {
	crit    sync.Mutex
	entries map[string]pref
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the registry under the key name. Keys must be
// unique.
func (reg *Registry) Add(key string, p pref) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	key = strings.TrimSpace(key)
	if key == "" {
		return curated.Errorf("prefs: empty key")
	}
	if _, ok := reg.entries[key]; ok {
		return curated.Errorf("prefs: %s: already registered", key)
	}
	reg.entries[key] = p

	return nil
}

// Set the value of the preference with the key name.
func (reg *Registry) Set(key string, v Value) error {
	reg.crit.Lock()
	p, ok := reg.entries[key]
	reg.crit.Unlock()

	if !ok {
		return curated.Errorf("prefs: %s: unknown key", key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %s: %v", key, err)
	}
	return nil
}

// ApplyCommandLine sets registered preferences from the top of the command
// line stack. Values that are used are removed from the stack. Command line
// values for keys that are not in the registry are left on the stack.
func (reg *Registry) ApplyCommandLine() error {
	for _, key := range reg.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := reg.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (reg *Registry) keys() []string {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	keys := make([]string, 0, len(reg.entries))
	for k := range reg.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// String returns every registered preference, one per line, sorted by key.
func (reg *Registry) String() string {
	s := strings.Builder{}
	for _, k := range reg.keys() {
		reg.crit.Lock()
		p := reg.entries[k]
		reg.crit.Unlock()
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, p.String()))
	}
	return s.String()
}
