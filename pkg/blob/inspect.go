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
	_ "crypto/sha256"

	"github.com/google/gopacket"
	digest "github.com/opencontainers/go-digest"

	"github.com/vvvflip/go-vvvflip/pkg/layers"
	"github.com/vvvflip/go-vvvflip/pkg/tracks"
)

// SlotInfo describes one header table slot of an encoded blob
type SlotInfo struct {
	Slot   int           `json:"slot"`
	Path   string        `json:"path,omitempty"`
	Name   string        `json:"name,omitempty"`
	Offset uint64        `json:"offset"`
	Size   uint32        `json:"size"`
	Valid  bool          `json:"valid"`
	Digest digest.Digest `json:"digest,omitempty"`
}

// Inspect lists the slots of an encoded blob without building songs.
// Only valid slots are listed unless all is set. Valid slots get the digest of their payload.
func Inspect(data []byte, all bool) ([]*SlotInfo, error) {
	table := &layers.HeaderTableLayer{}
	if err := table.DecodeFromBytes(data, gopacket.NilDecodeFeedback); err != nil {
		return nil, err
	}
	end := uint64(len(data))
	var result []*SlotInfo
	for slot, offset := range table.PayloadOffsets() {
		header := table.Headers[slot]
		if !header.Valid && !all {
			continue
		}
		info := &SlotInfo{
			Slot:   slot,
			Path:   header.Path,
			Offset: offset,
			Size:   header.Size,
			Valid:  header.Valid,
		}
		if index, ok := tracks.Lookup(header.Path); ok {
			info.Name = tracks.Name(index)
		}
		if header.Valid {
			var remaining uint64
			if offset < end {
				remaining = end - offset
			}
			if uint64(header.Size) > remaining {
				return nil, ErrTruncatedPayload{Slot: slot, Size: header.Size, Remaining: remaining}
			}
			info.Digest = digest.FromBytes(data[offset : offset+uint64(header.Size)])
		}
		result = append(result, info)
	}
	return result, nil
}
