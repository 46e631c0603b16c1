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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultDumpDir, cfg.DumpConfig.Dir)
	assert.Equal(t, DefaultDumpWorkers, cfg.Workers)
	assert.True(t, cfg.Compress)
	assert.Equal(t, LibraryFile, filepath.Base(cfg.DBPath))
	assert.Equal(t, ConfigFile, filepath.Base(cfg.Path()))
}

func TestPersistAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFile)

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	cfg.LogLevel = "debug"
	cfg.Workers = 9
	cfg.Names = true
	cfg.DBPath = "/tmp/songs.db"
	cfg.Compress = false
	require.NoError(t, cfg.Persist(false))

	loaded := NewDefaultConfig()
	loaded.SetPath(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, 9, loaded.Workers)
	assert.True(t, loaded.Names)
	assert.Equal(t, "/tmp/songs.db", loaded.DBPath)
	assert.False(t, loaded.Compress)
}

func TestPersistRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("logLevel: error\n"), 0644))

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	err := cfg.Persist(false)
	var exists ErrConfigFileExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, path, exists.Path)

	require.NoError(t, cfg.Persist(true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logLevel: info")
}

func TestLoadMissingKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, cfg.Load())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("dump:\n  dir: out\n"), 0644))

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	require.NoError(t, cfg.Load())
	assert.Equal(t, "out", cfg.DumpConfig.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLibraryCompress, cfg.Compress)
}

func TestLoadNullSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("logLevel:\ndump: null\nlibrary: null\n"), 0644))

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	require.NoError(t, cfg.Load())
	require.NotNil(t, cfg.DumpConfig)
	require.NotNil(t, cfg.LibraryConfig)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultDumpDir, cfg.DumpConfig.Dir)
	assert.Equal(t, DefaultDumpWorkers, cfg.Workers)
	assert.Equal(t, LibraryFile, filepath.Base(cfg.DBPath))
	assert.Equal(t, DefaultLibraryCompress, cfg.Compress)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("dump: [unterminated\n"), 0644))

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	assert.Error(t, cfg.Load())
}

func TestString(t *testing.T) {
	out := NewDefaultConfig().String()
	assert.Contains(t, out, "---\n")
	assert.Contains(t, out, "workers: 4")
}
