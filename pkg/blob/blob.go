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

// Package blob reads and writes VVVVVV music blobs: a table of MaxSongs song
// headers followed by the song payloads in slot order.
package blob

import (
	"github.com/vvvflip/go-vvvflip/pkg/layers"
)

const (
	// MaxSongs is the number of songs a blob can hold on disk
	MaxSongs = layers.MaxSongs
	// HeaderTableSize is the size of the header table in front of the payloads
	HeaderTableSize = layers.HeaderTableSize
)

// Blob is an ordered list of songs. The index of a song is its slot at encode time.
// A Blob is not safe for concurrent use.
type Blob struct {
	songs []*Song
}

func NewBlob() *Blob {
	return &Blob{}
}

// Len returns the number of songs
func (b *Blob) Len() int {
	return len(b.songs)
}

// Empty reports whether the blob has no songs
func (b *Blob) Empty() bool {
	return len(b.songs) == 0
}

// AddSong appends a song holding a copy of data and returns it
func (b *Blob) AddSong(data []byte) *Song {
	song := NewSong(data)
	b.songs = append(b.songs, song)
	return song
}

// Append adds an existing song to the end of the blob, the blob takes ownership of it
func (b *Blob) Append(song *Song) {
	b.songs = append(b.songs, song)
}

// RemoveSong removes the song at index and shifts the following songs down by one.
// It returns false and leaves the blob untouched when index is out of range.
func (b *Blob) RemoveSong(index int) bool {
	if index < 0 || index >= len(b.songs) {
		return false
	}
	copy(b.songs[index:], b.songs[index+1:])
	b.songs[len(b.songs)-1] = nil
	b.songs = b.songs[:len(b.songs)-1]
	return true
}

// Song returns the song at index
func (b *Blob) Song(index int) (*Song, error) {
	if index < 0 || index >= len(b.songs) {
		return nil, ErrOutOfRange{Index: index, Count: len(b.songs)}
	}
	return b.songs[index], nil
}

// Songs returns the songs in slot order. The slice is a snapshot, the songs are not copied.
func (b *Blob) Songs() []*Song {
	return append([]*Song{}, b.songs...)
}
