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

// Package dump extracts every song of a blob into its own file
package dump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/log"
	"github.com/vvvflip/go-vvvflip/pkg/tracks"
)

const (
	FileExtension = tracks.PathSuffix
)

type Options struct {
	Dir string
	// Names uses the song filename stem instead of the slot number when there is one
	Names   bool
	Workers int
}

// Result lists the dumped files by slot. Files of failed songs are empty.
type Result struct {
	Files  []string
	Failed []int
}

// FileNames returns the file name for every song of b.
// Songs without a usable filename stem, or whose stem is already taken, use their
// slot number. A slot number taken by an earlier stem gets a _<n> suffix.
func FileNames(b *blob.Blob, names bool) []string {
	used := make(map[string]bool)
	result := make([]string, b.Len())
	for i, song := range b.Songs() {
		name := ""
		if names {
			stem := filepath.Base(song.Filename())
			if stem != "." && stem != string(filepath.Separator) && song.Filename() != "" {
				if candidate := stem + FileExtension; !used[candidate] {
					name = candidate
				}
			}
		}
		if name == "" {
			name = fmt.Sprintf("%d%s", i, FileExtension)
			for n := 1; used[name]; n++ {
				name = fmt.Sprintf("%d_%d%s", i, n, FileExtension)
			}
		}
		used[name] = true
		result[i] = name
	}
	return result
}

func writeSong(path string, song *blob.Song) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(song.Data()); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Dump writes every song of b into opts.Dir. A song that cannot be written is
// reported in Result.Failed and does not stop the others.
func Dump(ctx context.Context, b *blob.Blob, opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, err
	}

	names := FileNames(b, opts.Names)
	result := &Result{Files: make([]string, len(names))}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, song := range b.Songs() {
		i, song := i, song
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, names[i])
			if err := writeSong(path, song); err != nil {
				log.Warning("Could not dump song n. %d: %s", i, err)
				mu.Lock()
				result.Failed = append(result.Failed, i)
				mu.Unlock()
				return nil
			}
			log.Debug("Dumped song %d to %s", i, path)
			mu.Lock()
			result.Files[i] = path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Ints(result.Failed)
	return result, nil
}
