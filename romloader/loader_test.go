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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestShortName(t *testing.T) {
	ld := romloader.NewLoader("roms/PONG.ch8")
	test.ExpectEquality(t, ld.ShortName(), "PONG")
	test.ExpectSuccess(t, ld.HasExtension())

	ld = romloader.NewLoader("roms/notes.txt")
	test.ExpectFailure(t, ld.HasExtension())
}

func TestLoad(t *testing.T) {
	fn := writeROM(t, "loop.ch8", []uint8{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 2)
	test.ExpectEquality(t, ld.Data[0], uint8(0x12))
	test.ExpectEquality(t, len(ld.Hash), 40)

	// loading with the correct hash succeeds
	again := romloader.NewLoader(fn)
	again.Hash = ld.Hash
	test.ExpectSuccess(t, again.Load())
}

func TestUnexpectedHash(t *testing.T) {
	fn := writeROM(t, "loop.ch8", []uint8{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestEmpty(t *testing.T) {
	fn := writeROM(t, "empty.ch8", []uint8{})
	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.EmptyROM))
}

func TestMissing(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/PONG.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loop.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write([]uint8{0x12, 0x00})
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/loop.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)
	test.ExpectEquality(t, ld.ShortName(), "loop")

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectFailure(t, ld.Load())
}
