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

package layers

import (
	"bytes"
	"encoding/binary"

	"github.com/vvvflip/go-vvvflip/pkg/tracks"
)

const (
	// MaxSongs is the number of usable song slots in a blob
	MaxSongs = 127
	// MaxPathSize is the width of the path field of a song header
	MaxPathSize = 48
	// SongHeaderSize is the size of one header record
	// path 48 bytes, start 4 bytes, size 4 bytes, valid 1 byte, 3 bytes of padding
	SongHeaderSize = 60
	// HeaderTableSize is MaxSongs song records plus one trailing metadata record
	HeaderTableSize = SongHeaderSize * (MaxSongs + 1)

	startOffset = MaxPathSize
	sizeOffset  = startOffset + 4
	validOffset = sizeOffset + 4
)

const (
	InvalidSong uint8 = 0x00
	ValidSong   uint8 = 0x01
)

// SongHeader is one record of the header table
type SongHeader struct {
	// Path is the relative path of the song inside the game data, at most MaxPathSize bytes
	Path string
	// Start shares its field with the metadata size of the trailing record.
	// It is decoded but not used to locate payloads.
	Start uint32
	// Size is the payload size in bytes
	Size  uint32
	Valid bool
}

// SlotOffset returns the offset of the header record of a slot inside the header table
func SlotOffset(slot int) int {
	return slot * SongHeaderSize
}

// NewSongHeader returns the header of an occupied slot.
// The path comes from the known track table, slots without a known track get an empty path.
func NewSongHeader(slot int, size uint32) *SongHeader {
	return &SongHeader{
		Path:  tracks.Path(slot),
		Size:  size,
		Valid: true,
	}
}

// Serialize writes the record into the first SongHeaderSize bytes of buf.
// Paths longer than MaxPathSize are truncated.
func (h *SongHeader) Serialize(buf []byte) {
	record := buf[:SongHeaderSize]
	for i := range record {
		record[i] = 0
	}
	copy(record[:MaxPathSize], h.Path)
	binary.LittleEndian.PutUint32(record[startOffset:startOffset+4], h.Start)
	binary.LittleEndian.PutUint32(record[sizeOffset:sizeOffset+4], h.Size)
	if h.Valid {
		record[validOffset] = ValidSong
	} else {
		record[validOffset] = InvalidSong
	}
}

// DecodeSongHeader decodes one header record from the beginning of buf
func DecodeSongHeader(buf []byte) (*SongHeader, error) {
	if len(buf) < SongHeaderSize {
		return nil, ErrTruncatedHeader{Length: len(buf), Need: SongHeaderSize}
	}
	path := buf[:MaxPathSize]
	if end := bytes.IndexByte(path, 0); end >= 0 {
		path = path[:end]
	}
	return &SongHeader{
		Path:  string(path),
		Start: binary.LittleEndian.Uint32(buf[startOffset : startOffset+4]),
		Size:  binary.LittleEndian.Uint32(buf[sizeOffset : sizeOffset+4]),
		Valid: buf[validOffset] != InvalidSong,
	}, nil
}
