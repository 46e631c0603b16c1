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

package main

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvvflip/go-vvvflip/pkg/handle"
)

func TestBytesAt(t *testing.T) {
	data := []byte("payload")
	got := bytesAt(unsafe.Pointer(&data[0]), uint64(len(data)))
	require.Len(t, got, len(data))
	assert.Equal(t, data, got)

	// the view shares memory with the caller
	got[0] = 'P'
	assert.Equal(t, byte('P'), data[0])

	assert.Nil(t, bytesAt(nil, 4))
	assert.Nil(t, bytesAt(unsafe.Pointer(&data[0]), 0))
}

func TestBoolFlag(t *testing.T) {
	assert.Equal(t, int32(1), boolFlag(true))
	assert.Equal(t, int32(0), boolFlag(false))
}

func TestEmptyPayloadHasZeroSize(t *testing.T) {
	blob := registry.NewBlob()
	defer registry.Destroy(blob)

	song, err := registry.AddSong(blob, nil)
	require.NoError(t, err)
	data, err := registry.SongData(song)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Zero(t, registry.SongSize(song))

	_, err = registry.SongData(handle.Handle(0))
	var invalid handle.ErrInvalidHandle
	assert.ErrorAs(t, err, &invalid)
}
