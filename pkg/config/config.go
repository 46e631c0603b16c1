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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type DumpConfig struct {
	// Dir is where dumped songs are written
	Dir string `yaml:"dir"`
	// Names selects known track filenames instead of slot numbers for dumped files
	Names   bool `yaml:"names"`
	Workers int  `yaml:"workers"`
}

type LibraryConfig struct {
	DBPath string `yaml:"dbPath"`
	// Compress stores newly imported payloads with zstd
	Compress bool `yaml:"compress"`
}

type Config struct {
	LogLevel       string `yaml:"logLevel"`
	*DumpConfig    `yaml:"dump,omitempty"`
	*LibraryConfig `yaml:"library,omitempty"`
	filepath       string
}

func (c *Config) Path() string {
	return c.filepath
}

func (c *Config) SetPath(path string) {
	c.filepath = path
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(c.filepath, data, 0644)
}

// Load reads the config file over the current values.
// A missing file is not an error, the current values are kept.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.fillDefaults()
	return nil
}

// fillDefaults restores sections the file set to null
func (c *Config) fillDefaults() {
	defaults := NewDefaultConfig()
	if c.DumpConfig == nil {
		c.DumpConfig = defaults.DumpConfig
	}
	if c.LibraryConfig == nil {
		c.LibraryConfig = defaults.LibraryConfig
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("---\n%s", string(data))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return home
}

func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ConfigDir, ConfigFile)
}

func DefaultLibraryPath() string {
	return filepath.Join(homeDir(), ConfigDir, LibraryFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		DumpConfig: &DumpConfig{
			Dir:     DefaultDumpDir,
			Workers: DefaultDumpWorkers,
		},
		LibraryConfig: &LibraryConfig{
			DBPath:   DefaultLibraryPath(),
			Compress: DefaultLibraryCompress,
		},
		filepath: DefaultConfigPath(),
	}
}
