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

package dump

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
)

func decodedBlob(t *testing.T, payloads ...[]byte) *blob.Blob {
	t.Helper()
	b := blob.NewBlob()
	for _, payload := range payloads {
		b.AddSong(payload)
	}
	data, err := b.Encode()
	require.NoError(t, err)
	decoded, err := blob.Decode(data)
	require.NoError(t, err)
	return decoded
}

func TestFileNames(t *testing.T) {
	b := decodedBlob(t, []byte{1}, []byte{2})
	b.AddSong([]byte{3})
	clash := b.AddSong([]byte{4})
	clash.SetFilename("0levelcomplete")
	sneaky := b.AddSong([]byte{5})
	sneaky.SetFilename("../../etc/passwd")

	assert.Equal(t, []string{"0.ogg", "1.ogg", "2.ogg", "3.ogg", "4.ogg"}, FileNames(b, false))
	assert.Equal(t, []string{
		"0levelcomplete.ogg",
		"1pushingonwards.ogg",
		"2.ogg",
		"3.ogg",
		"passwd.ogg",
	}, FileNames(b, true))
}

func TestFileNamesSlotNumberTaken(t *testing.T) {
	b := blob.NewBlob()
	b.AddSong([]byte("first")).SetFilename("1")
	b.AddSong([]byte("second"))
	b.AddSong([]byte("third")).SetFilename("1_1")
	b.AddSong([]byte("fourth"))

	names := FileNames(b, true)
	assert.Equal(t, []string{"1.ogg", "1_1.ogg", "2.ogg", "3.ogg"}, names)

	dir := t.TempDir()
	result, err := Dump(context.Background(), b, Options{Dir: dir, Names: true})
	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	data, err := os.ReadFile(filepath.Join(dir, "1.ogg"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
	data, err = os.ReadFile(filepath.Join(dir, "1_1.ogg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	b := decodedBlob(t, []byte("one"), []byte("two"), nil)

	result, err := Dump(context.Background(), b, Options{Dir: dir, Names: true, Workers: 2})
	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	require.Len(t, result.Files, 3)

	data, err := os.ReadFile(filepath.Join(dir, "0levelcomplete.ogg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
	data, err = os.ReadFile(result.Files[1])
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
	info, err := os.Stat(filepath.Join(dir, "2positiveforce.ogg"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestDumpPartialFailure(t *testing.T) {
	dir := t.TempDir()
	b := decodedBlob(t, []byte("one"), []byte("two"))
	// a directory in the way of the second file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1.ogg"), 0755))

	result, err := Dump(context.Background(), b, Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, result.Failed)
	assert.Equal(t, filepath.Join(dir, "0.ogg"), result.Files[0])
	assert.Empty(t, result.Files[1])
}

func TestDumpCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Dump(ctx, decodedBlob(t, []byte("one")), Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}
