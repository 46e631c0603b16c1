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

package tracks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownTracks(t *testing.T) {
	assert.Equal(t, "Level Complete", Name(0))
	assert.Equal(t, "0levelcomplete", Filename(0))
	assert.Equal(t, "data/music/0levelcomplete.ogg", Path(0))

	assert.Equal(t, "Predestined Fate Remix", Name(15))
	assert.Equal(t, "predestinedfatefinallevel", Filename(15))
	assert.Equal(t, "data/music/predestinedfatefinallevel.ogg", Path(15))
}

func TestUnknownSlots(t *testing.T) {
	for _, index := range []int{-1, Count, Count + 1, 126} {
		assert.Empty(t, Name(index), "index %d", index)
		assert.Empty(t, Filename(index), "index %d", index)
		assert.Empty(t, Path(index), "index %d", index)
		_, ok := Get(index)
		assert.False(t, ok, "index %d", index)
	}
}

func TestLookup(t *testing.T) {
	for i := 0; i < Count; i++ {
		index, ok := Lookup(Path(i))
		require.True(t, ok, "path %s", Path(i))
		assert.Equal(t, i, index)
	}

	for _, path := range []string{
		"",
		"0levelcomplete",
		"data/music/0levelcomplete.wav",
		"data/music/unknown.ogg",
		"music/0levelcomplete.ogg",
	} {
		_, ok := Lookup(path)
		assert.False(t, ok, "path %q", path)
	}
}

func TestAllPathsFitHeader(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	for i, track := range all {
		assert.Equal(t, i, track.Index)
		assert.LessOrEqual(t, len(track.Path), 48, "track %s", track.Name)
	}
}
