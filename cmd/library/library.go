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

package library

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
	"github.com/vvvflip/go-vvvflip/pkg/config"
	pkglibrary "github.com/vvvflip/go-vvvflip/pkg/library"
)

// NewCommand creates the library command group
func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Archive blobs in the local library",
	}
	cmd.AddCommand(NewImportCommand(cfg))
	cmd.AddCommand(NewExportCommand(cfg))
	cmd.AddCommand(NewListCommand(cfg))
	cmd.AddCommand(NewNotesCommand(cfg))
	cmd.AddCommand(NewDeleteCommand(cfg))
	return cmd
}

func withLibrary(cfg *config.Config, f func(*pkglibrary.Library) error) error {
	lib, err := pkglibrary.Open(cfg.DBPath, cfg.Compress)
	if err != nil {
		return err
	}
	defer lib.Close()
	return f(lib)
}

func NewImportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import NAME BLOB",
		Short: "Archive a blob file under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := blob.FromPath(args[1])
			if err != nil {
				return err
			}
			return withLibrary(cfg, func(lib *pkglibrary.Library) error {
				if err := lib.Import(args[0], b); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d songs as %s\n", b.Len(), args[0])
				return nil
			})
		},
	}
	return cmd
}

func NewExportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export NAME BLOB",
		Short: "Write an archived blob to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cfg, func(lib *pkglibrary.Library) error {
				b, err := lib.Export(args[0])
				if err != nil {
					return err
				}
				return b.ToPath(args[1])
			})
		},
	}
	return cmd
}

func NewListCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [NAME]",
		Short: "List archived blobs, or the songs of one blob",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cfg, func(lib *pkglibrary.Library) error {
				var out interface{}
				var err error
				if len(args) == 0 {
					out, err = lib.Names()
				} else {
					out, err = lib.Songs(args[0])
				}
				if err != nil {
					return err
				}
				result, err := yaml.Marshal(out)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "---\n%s", string(result))
				return nil
			})
		},
	}
	return cmd
}

func NewNotesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes NAME INDEX NOTES",
		Short: "Set the notes of an archived song",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("Wrong song index %q: %w", args[1], err)
			}
			return withLibrary(cfg, func(lib *pkglibrary.Library) error {
				return lib.SetNotes(args[0], index, args[2])
			})
		},
	}
	return cmd
}

func NewDeleteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove an archived blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cfg, func(lib *pkglibrary.Library) error {
				return lib.Delete(args[0])
			})
		},
	}
	return cmd
}
