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

// Package handle hands out opaque integer handles to blobs and songs for callers
// that cannot hold Go pointers, such as C code using the shared library.
package handle

import (
	"fmt"
	"sync"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/log"
)

// Handle identifies a blob or a song inside a Registry. Zero is never valid.
type Handle uint64

// ErrInvalidHandle returned when a handle is unknown, released, or of the wrong kind
type ErrInvalidHandle struct {
	Handle
}

func (e ErrInvalidHandle) Error() string {
	return fmt.Sprintf("Invalid handle: %d", uint64(e.Handle))
}

type songEntry struct {
	owner Handle
	song  *blob.Song
}

// Registry maps handles to blobs and songs. It is safe for concurrent use,
// but a blob and its songs must not be used from several goroutines at once.
type Registry struct {
	mu    sync.Mutex
	next  Handle
	blobs map[Handle]*blob.Blob
	songs map[Handle]songEntry
}

func NewRegistry() *Registry {
	return &Registry{
		blobs: make(map[Handle]*blob.Blob),
		songs: make(map[Handle]songEntry),
	}
}

func (r *Registry) nextHandle() Handle {
	r.next++
	return r.next
}

// NewBlob registers an empty blob
func (r *Registry) NewBlob() Handle {
	return r.Register(blob.NewBlob())
}

// Register takes ownership of b and returns its handle
func (r *Registry) Register(b *blob.Blob) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.nextHandle()
	r.blobs[h] = b
	log.Debug("Registered blob handle %d", h)
	return h
}

// Blob returns the blob behind a handle
func (r *Registry) Blob(h Handle) (*blob.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[h]
	if !ok {
		return nil, ErrInvalidHandle{Handle: h}
	}
	return b, nil
}

// Destroy releases a blob handle and every song handle obtained from it
func (r *Registry) Destroy(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blobs[h]; !ok {
		return false
	}
	delete(r.blobs, h)
	for sh, entry := range r.songs {
		if entry.owner == h {
			delete(r.songs, sh)
		}
	}
	log.Debug("Destroyed blob handle %d", h)
	return true
}

// Len returns the number of songs of a blob, 0 for an invalid handle
func (r *Registry) Len(h Handle) int {
	b, err := r.Blob(h)
	if err != nil {
		return 0
	}
	return b.Len()
}

// songHandle returns the existing handle for a song or creates one. Must be called with mu held.
func (r *Registry) songHandle(owner Handle, song *blob.Song) Handle {
	for sh, entry := range r.songs {
		if entry.song == song {
			return sh
		}
	}
	sh := r.nextHandle()
	r.songs[sh] = songEntry{owner: owner, song: song}
	return sh
}

// AddSong appends a song with a copy of data to the blob and returns the song's handle
func (r *Registry) AddSong(h Handle, data []byte) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[h]
	if !ok {
		return 0, ErrInvalidHandle{Handle: h}
	}
	return r.songHandle(h, b.AddSong(data)), nil
}

// Song returns a handle to the song at index. The same song always gets the same handle.
func (r *Registry) Song(h Handle, index int) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[h]
	if !ok {
		return 0, ErrInvalidHandle{Handle: h}
	}
	song, err := b.Song(index)
	if err != nil {
		return 0, err
	}
	return r.songHandle(h, song), nil
}

// RemoveSong removes the song at index from the blob, its handle becomes invalid
func (r *Registry) RemoveSong(h Handle, index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[h]
	if !ok {
		return false
	}
	song, err := b.Song(index)
	if err != nil {
		return false
	}
	for sh, entry := range r.songs {
		if entry.song == song {
			delete(r.songs, sh)
		}
	}
	return b.RemoveSong(index)
}

func (r *Registry) song(sh Handle) (*blob.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.songs[sh]
	if !ok {
		return nil, ErrInvalidHandle{Handle: sh}
	}
	return entry.song, nil
}

// SongData returns a copy of the song payload
func (r *Registry) SongData(sh Handle) ([]byte, error) {
	song, err := r.song(sh)
	if err != nil {
		return nil, err
	}
	return song.Data(), nil
}

// SetSongData replaces the song payload with a copy of data
func (r *Registry) SetSongData(sh Handle, data []byte) error {
	song, err := r.song(sh)
	if err != nil {
		return err
	}
	song.SetData(data)
	return nil
}

// SongSize returns the payload size of a song, 0 for an invalid handle
func (r *Registry) SongSize(sh Handle) int {
	song, err := r.song(sh)
	if err != nil {
		return 0
	}
	return song.Size()
}
