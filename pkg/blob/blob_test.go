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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSongOutOfRange(t *testing.T) {
	for _, count := range []int{0, 1, 5} {
		b := NewBlob()
		for i := 0; i < count; i++ {
			b.AddSong([]byte{byte(i)})
		}
		for _, index := range []int{-1, count, count + 1, 1000} {
			song, err := b.Song(index)
			var outOfRange ErrOutOfRange
			require.ErrorAs(t, err, &outOfRange, "count %d index %d", count, index)
			assert.Equal(t, index, outOfRange.Index)
			assert.Equal(t, count, outOfRange.Count)
			assert.Nil(t, song)
		}
	}
}

func TestRemoveSong(t *testing.T) {
	b := NewBlob()
	for i := 0; i < 4; i++ {
		b.AddSong([]byte{byte(i)})
	}

	assert.True(t, b.RemoveSong(1))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, [][]byte{{0}, {2}, {3}}, payloadsOf(b))

	assert.True(t, b.RemoveSong(2))
	assert.Equal(t, [][]byte{{0}, {2}}, payloadsOf(b))

	for _, index := range []int{-1, 2, 10} {
		assert.False(t, b.RemoveSong(index), "index %d", index)
		assert.Equal(t, 2, b.Len())
	}

	assert.True(t, b.RemoveSong(0))
	assert.True(t, b.RemoveSong(0))
	assert.True(t, b.Empty())
	assert.False(t, b.RemoveSong(0))
}

func TestAddSongReturnsOwnedSong(t *testing.T) {
	b := NewBlob()
	payload := []byte{1, 2, 3}
	song := b.AddSong(payload)
	payload[0] = 9

	got, err := b.Song(0)
	require.NoError(t, err)
	assert.Same(t, song, got)
	assert.Equal(t, []byte{1, 2, 3}, got.Data())

	song.SetData([]byte{4, 5})
	got, err = b.Song(0)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Size())
}

func TestSongAccessors(t *testing.T) {
	song := NewSong(nil)
	assert.Zero(t, song.Size())
	assert.Empty(t, song.Data())

	song.SetName("Pushing Onwards")
	song.SetFilename("1pushingonwards")
	song.SetNotes("level theme")
	assert.Equal(t, "Pushing Onwards", song.Name())
	assert.Equal(t, "1pushingonwards", song.Filename())
	assert.Equal(t, "level theme", song.Notes())

	song.SetData([]byte{1, 2})
	data := song.Data()
	data[0] = 7
	assert.Equal(t, []byte{1, 2}, song.Data(), "Data returns a copy")

	clone := song.Clone()
	clone.SetData([]byte{3})
	clone.SetNotes("changed")
	assert.Equal(t, []byte{1, 2}, song.Data())
	assert.Equal(t, "level theme", song.Notes())
}

func TestSongsSnapshot(t *testing.T) {
	b := NewBlob()
	b.AddSong([]byte{1})
	songs := b.Songs()
	b.AddSong([]byte{2})
	assert.Len(t, songs, 1)

	b.Append(NewSong([]byte{3}))
	assert.Equal(t, [][]byte{{1}, {2}, {3}}, payloadsOf(b))
}
