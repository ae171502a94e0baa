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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns.
const (
	LoadError      = "romloader: %v"
	EmptyROM       = "romloader: %s: file is empty"
	UnexpectedHash = "romloader: %s: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are commonly used for
// CHIP-8 programs.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program to attach to the VM.
type Loader struct {
	// filename of the program to load. can be a http or https URL
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or the extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// HasExtension returns true if the filename has one of the file extensions
// in the FileExtensions list. The comparison is case insensitive.
func (ld Loader) HasExtension() bool {
	ext := strings.ToUpper(path.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load the program data. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []uint8
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file":
		data, err = os.ReadFile(ld.Filename)
	default:
		err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM, ld.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, ld.ShortName(), hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func fetch(url string) ([]uint8, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
