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
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/vvvflip/go-vvvflip/pkg/log"
)

const (
	// HeaderTableLayerNum identifies the layer
	HeaderTableLayerNum = 1990
)

// HeaderTableLayer is the fixed size table in front of the song payloads.
// Its payload is the concatenation of all song payloads.
type HeaderTableLayer struct {
	layers.BaseLayer
	// Headers holds one record per song slot. On serialization missing and nil
	// entries are written as empty slots.
	Headers []*SongHeader
	// Metadata is the raw trailing record. Its layout is unknown, it is kept as is
	// after decoding and always written as zeros.
	Metadata []byte
}

var HeaderTableLayerType = gopacket.RegisterLayerType(HeaderTableLayerNum,
	gopacket.LayerTypeMetadata{Name: "HeaderTableLayerType", Decoder: gopacket.DecodeFunc(DecodeHeaderTableLayer)})

// LayerType returns the type of the header table layer in the layer catalog
func (t *HeaderTableLayer) LayerType() gopacket.LayerType {
	return HeaderTableLayerType
}

func (t *HeaderTableLayer) CanDecode() gopacket.LayerClass {
	return HeaderTableLayerType
}

func (t *HeaderTableLayer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// SerializeTo prepends the whole header table to the SerializeBuffer
func (t *HeaderTableLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if len(t.Headers) > MaxSongs {
		return ErrTooManyHeaders{Number: len(t.Headers)}
	}
	buf, err := b.PrependBytes(HeaderTableSize)
	if err != nil {
		return err
	}
	empty := &SongHeader{}
	for slot := 0; slot < MaxSongs; slot++ {
		header := empty
		if slot < len(t.Headers) && t.Headers[slot] != nil {
			header = t.Headers[slot]
		}
		header.Serialize(buf[SlotOffset(slot):])
	}
	// metadata record is never populated
	metadata := buf[SlotOffset(MaxSongs):HeaderTableSize]
	for i := range metadata {
		metadata[i] = 0
	}
	return nil
}

// DecodeFromBytes decodes all MaxSongs records and keeps the trailing metadata record raw.
// Contents and Metadata share memory with data.
func (t *HeaderTableLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < HeaderTableSize {
		df.SetTruncated()
		return ErrTruncatedHeader{Length: len(data), Need: HeaderTableSize}
	}

	t.BaseLayer = layers.BaseLayer{
		Contents: data[:HeaderTableSize],
		Payload:  data[HeaderTableSize:],
	}

	t.Headers = make([]*SongHeader, MaxSongs)
	for slot := 0; slot < MaxSongs; slot++ {
		header, err := DecodeSongHeader(data[SlotOffset(slot):])
		if err != nil {
			return err
		}
		log.Debug("DecodeFromBytes: slot: %d path: %q size: %d valid: %t", slot, header.Path, header.Size, header.Valid)
		t.Headers[slot] = header
	}
	t.Metadata = data[SlotOffset(MaxSongs):HeaderTableSize]

	return nil
}

// ValidCount returns the number of slots marked valid
func (t *HeaderTableLayer) ValidCount() int {
	count := 0
	for _, header := range t.Headers {
		if header != nil && header.Valid {
			count++
		}
	}
	return count
}

// PayloadOffsets returns the offset of every slot's payload from the start of the blob.
// Payloads follow each other in slot order, invalid slots still take their declared size.
func (t *HeaderTableLayer) PayloadOffsets() []uint64 {
	offsets := make([]uint64, len(t.Headers))
	cursor := uint64(HeaderTableSize)
	for slot, header := range t.Headers {
		offsets[slot] = cursor
		if header != nil {
			cursor += uint64(header.Size)
		}
	}
	return offsets
}

func DecodeHeaderTableLayer(data []byte, p gopacket.PacketBuilder) error {
	table := &HeaderTableLayer{}
	err := table.DecodeFromBytes(data, p)
	if err != nil {
		log.Error("Error while decoding header table layer: %s", err)
		return err
	}
	p.AddLayer(table)
	return p.NextDecoder(table.NextLayerType())
}
