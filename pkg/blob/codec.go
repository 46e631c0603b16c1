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

package blob

import (
	"math"

	"github.com/google/gopacket"

	"github.com/vvvflip/go-vvvflip/pkg/layers"
	"github.com/vvvflip/go-vvvflip/pkg/log"
	"github.com/vvvflip/go-vvvflip/pkg/tracks"
)

// Decode parses a blob. Decoding is all or nothing: on a truncated header table or
// payload no blob is returned. A well formed buffer without valid songs yields an
// empty blob together with ErrEmptyBlob.
func Decode(data []byte) (*Blob, error) {
	table := &layers.HeaderTableLayer{}
	if err := table.DecodeFromBytes(data, gopacket.NilDecodeFeedback); err != nil {
		return nil, err
	}

	b := NewBlob()
	end := uint64(len(data))
	cursor := uint64(HeaderTableSize)
	for slot, header := range table.Headers {
		size := uint64(header.Size)
		if header.Valid {
			var remaining uint64
			if cursor < end {
				remaining = end - cursor
			}
			if size > remaining {
				return nil, ErrTruncatedPayload{Slot: slot, Size: header.Size, Remaining: remaining}
			}
			song := NewSong(data[cursor : cursor+size])
			if index, ok := tracks.Lookup(header.Path); ok {
				song.SetName(tracks.Name(index))
				song.SetFilename(tracks.Filename(index))
			}
			b.songs = append(b.songs, song)
		}
		// invalid slots may still declare a size, their bytes are skipped
		cursor += size
	}

	log.Debug("Decode: %d bytes, %d songs", len(data), b.Len())
	if b.Empty() {
		return b, ErrEmptyBlob
	}
	return b, nil
}

// Encode serializes the first MaxSongs songs. Songs past MaxSongs are dropped.
//
// Header paths always come from the known track table by slot index, the song's
// own name and filename are ignored. Tools reading the blob by path therefore see
// the canonical track of the slot, whatever was put there.
func (b *Blob) Encode() ([]byte, error) {
	count := len(b.songs)
	if count > MaxSongs {
		log.Warning("Encode: blob has %d songs, only the first %d are written", count, MaxSongs)
		count = MaxSongs
	}

	table := &layers.HeaderTableLayer{Headers: make([]*layers.SongHeader, count)}
	total := 0
	for slot, song := range b.songs[:count] {
		if uint64(song.Size()) > math.MaxUint32 {
			return nil, ErrPayloadTooLarge{Slot: slot, Size: song.Size()}
		}
		table.Headers[slot] = layers.NewSongHeader(slot, uint32(song.Size()))
		total += song.Size()
	}

	buf := gopacket.NewSerializeBufferExpectedSize(HeaderTableSize, total)
	if err := table.SerializeTo(buf, gopacket.SerializeOptions{}); err != nil {
		return nil, err
	}
	for _, song := range b.songs[:count] {
		payload, err := buf.AppendBytes(song.Size())
		if err != nil {
			return nil, err
		}
		copy(payload, song.data)
	}

	log.Debug("Encode: %d songs, %d bytes", count, len(buf.Bytes()))
	return buf.Bytes(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (b *Blob) MarshalBinary() ([]byte, error) {
	return b.Encode()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// On ErrEmptyBlob the blob is left empty, on other errors it is left untouched.
func (b *Blob) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if decoded != nil {
		b.songs = decoded.songs
	}
	return err
}
