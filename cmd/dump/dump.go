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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/config"
	pkgdump "github.com/vvvflip/go-vvvflip/pkg/dump"
	"github.com/vvvflip/go-vvvflip/pkg/manifest"
)

const (
	DirOptionName      = "dir"
	NamesOptionName    = "names"
	WorkersOptionName  = "workers"
	ManifestOptionName = "manifest"
	ManifestFile       = "manifest.yaml"
)

// ErrIncompleteDump is returned instead of writing a manifest that would miss songs
type ErrIncompleteDump struct {
	Failed []int
}

func (e ErrIncompleteDump) Error() string {
	return fmt.Sprintf("Songs %v were not dumped, %s not written", e.Failed, ManifestFile)
}

// NewCommand creates the command that extracts all songs of a blob
func NewCommand(cfg *config.Config) *cobra.Command {
	var dir string
	var names, withManifest bool
	var workers int
	cmd := &cobra.Command{
		Use:   "dump BLOB",
		Short: "Write every song of a blob to its own file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pkgdump.Options{
				Dir:     cfg.DumpConfig.Dir,
				Names:   cfg.Names,
				Workers: cfg.Workers,
			}
			if cmd.Flags().Changed(DirOptionName) {
				opts.Dir = dir
			}
			if cmd.Flags().Changed(NamesOptionName) {
				opts.Names = names
			}
			if cmd.Flags().Changed(WorkersOptionName) {
				opts.Workers = workers
			}

			b, err := blob.FromPath(args[0])
			if err != nil {
				return fmt.Errorf("Could not open binary file %s: %w", args[0], err)
			}
			result, err := pkgdump.Dump(context.Background(), b, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dumped %d of %d songs to %s\n", b.Len()-len(result.Failed), b.Len(), opts.Dir)

			if withManifest {
				if len(result.Failed) > 0 {
					return ErrIncompleteDump{Failed: result.Failed}
				}
				m := manifest.FromBlob(b, func(index int, _ *blob.Song) string {
					return filepath.Base(result.Files[index])
				})
				return m.Save(filepath.Join(opts.Dir, ManifestFile))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, DirOptionName, config.DefaultDumpDir, "Directory to write songs to")
	cmd.Flags().BoolVar(&names, NamesOptionName, false, "Name files after known tracks instead of slot numbers")
	cmd.Flags().IntVar(&workers, WorkersOptionName, config.DefaultDumpWorkers, "Number of files written in parallel")
	cmd.Flags().BoolVar(&withManifest, ManifestOptionName, false, fmt.Sprintf("Also write %s for the pack command", ManifestFile))
	return cmd
}
