// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package roster remembers the names of players seen in past gatherings
// so they can be offered again the next time a session is set up.
package roster

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"
)

const FilePermissions = 0755

var (
	Directory = filepath.Join(xdg.Home, "shuttle")

	// DefaultFile holds the remembered player names between sessions.
	DefaultFile = filepath.Join(Directory, "players.yaml")
)

// History is the cross-session memory of player names, persisted as a
// YAML file. Mutations are written back to disk immediately.
type History struct {
	Path string `yaml:"-"`

	Names []string `yaml:"names"`
}

// Load reads the history stored at the given path. A missing or
// unreadable file yields an empty history; it will be created on the
// first Dump.
func Load(path string) *History {
	history := &History{Path: path}

	if file, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(file, history)
	}

	return history
}

// Contains reports whether the given name has been seen before.
func (h *History) Contains(name string) bool {
	for _, known := range h.Names {
		if known == name {
			return true
		}
	}

	return false
}

// Add records any of the given names that aren't already remembered and
// writes the history back to disk.
func (h *History) Add(names ...string) {
	added := false
	for _, name := range names {
		if name != "" && !h.Contains(name) {
			h.Names = append(h.Names, name)
			added = true
		}
	}

	if added {
		h.Dump()
	}
}

// Clear forgets every remembered name.
func (h *History) Clear() {
	h.Names = nil
	h.Dump()
}

// Sorted returns the remembered names in natural order, leaving the
// stored first-seen order untouched.
func (h *History) Sorted() []string {
	sorted := make([]string, len(h.Names))
	copy(sorted, h.Names)
	sortNatural(sorted)
	return sorted
}

// Dump writes the history to its file, creating the directory if needed.
func (h *History) Dump() {
	TryMkdir(filepath.Dir(h.Path))

	file, _ := yaml.Marshal(h)
	_ = os.WriteFile(h.Path, file, FilePermissions)
}

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}
