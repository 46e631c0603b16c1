/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package manifest describes a blob as a list of loose song files
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/log"
)

// ErrNoFile returned when a manifest entry does not name a file
type ErrNoFile struct {
	Index int
}

func (e ErrNoFile) Error() string {
	return fmt.Sprintf("Manifest entry %d has no file", e.Index)
}

// Entry is one song of the manifest, in slot order
type Entry struct {
	// File is the payload file, relative paths are resolved against the manifest directory
	File     string `json:"file"`
	Name     string `json:"name,omitempty"`
	Filename string `json:"filename,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type Manifest struct {
	Songs []*Entry `json:"songs"`
	dir   string
}

// Parse decodes a manifest. Relative files are resolved against dir.
func Parse(data []byte, dir string) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	m.dir = dir
	return m, nil
}

// Load reads the manifest file at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Dir(path))
}

// Save writes the manifest to path
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (m *Manifest) resolve(file string) string {
	if filepath.IsAbs(file) || m.dir == "" {
		return file
	}
	return filepath.Join(m.dir, file)
}

// Build reads every entry's file and returns the blob
func (m *Manifest) Build() (*blob.Blob, error) {
	if len(m.Songs) > blob.MaxSongs {
		log.Warning("Manifest has %d songs, only the first %d fit in a blob", len(m.Songs), blob.MaxSongs)
	}
	b := blob.NewBlob()
	for i, entry := range m.Songs {
		if entry == nil || entry.File == "" {
			return nil, ErrNoFile{Index: i}
		}
		data, err := os.ReadFile(m.resolve(entry.File))
		if err != nil {
			return nil, err
		}
		song := b.AddSong(data)
		song.SetName(entry.Name)
		song.SetFilename(entry.Filename)
		song.SetNotes(entry.Notes)
	}
	return b, nil
}

// FromBlob describes b with one entry per song, file names are chosen by fileFor
func FromBlob(b *blob.Blob, fileFor func(index int, song *blob.Song) string) *Manifest {
	m := &Manifest{}
	for i, song := range b.Songs() {
		m.Songs = append(m.Songs, &Entry{
			File:     fileFor(i, song),
			Name:     song.Name(),
			Filename: song.Filename(),
			Notes:    song.Notes(),
		})
	}
	return m
}
