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

package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ogg"), []byte("first"), 0644))
	absolute := filepath.Join(t.TempDir(), "b.ogg")
	require.NoError(t, os.WriteFile(absolute, []byte("second"), 0644))

	manifestPath := filepath.Join(dir, "blob.yaml")
	content := fmt.Sprintf(`songs:
- file: a.ogg
  name: Level Complete
  notes: jingle
- file: %s
  filename: custom
`, absolute)
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0644))

	m, err := Load(manifestPath)
	require.NoError(t, err)
	require.Len(t, m.Songs, 2)

	b, err := m.Build()
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())

	first, err := b.Song(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), first.Data())
	assert.Equal(t, "Level Complete", first.Name())
	assert.Equal(t, "jingle", first.Notes())

	second, err := b.Song(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), second.Data())
	assert.Equal(t, "custom", second.Filename())
}

func TestBuildErrors(t *testing.T) {
	m, err := Parse([]byte("songs:\n- name: nothing\n"), t.TempDir())
	require.NoError(t, err)
	_, err = m.Build()
	var noFile ErrNoFile
	require.ErrorAs(t, err, &noFile)
	assert.Equal(t, 0, noFile.Index)

	m, err = Parse([]byte("songs:\n- file: missing.ogg\n"), t.TempDir())
	require.NoError(t, err)
	_, err = m.Build()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse([]byte("songs: {"), "")
	assert.Error(t, err)
}

func TestFromBlobSaveLoad(t *testing.T) {
	dir := t.TempDir()
	b := blob.NewBlob()
	song := b.AddSong([]byte("payload"))
	song.SetName("Pause")
	song.SetNotes("menu")

	m := FromBlob(b, func(index int, _ *blob.Song) string {
		return fmt.Sprintf("%d.ogg", index)
	})
	require.Len(t, m.Songs, 1)
	assert.Equal(t, "0.ogg", m.Songs[0].File)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.ogg"), []byte("payload"), 0644))
	path := filepath.Join(dir, "blob.yaml")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	rebuilt, err := loaded.Build()
	require.NoError(t, err)
	got, err := rebuilt.Song(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got.Data())
	assert.Equal(t, "Pause", got.Name())
	assert.Equal(t, "menu", got.Notes())
}
