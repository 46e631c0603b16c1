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

package edit

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
)

const (
	OutputOptionName = "output"
)

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("Wrong song index %q: %w", s, err)
	}
	return index, nil
}

func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return input
}

func NewReplaceCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "replace BLOB INDEX FILE",
		Short: "Replace the payload of one song",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			b, err := blob.FromPath(args[0])
			if err != nil {
				return err
			}
			song, err := b.Song(index)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}
			song.SetData(data)
			path := outputPath(output, args[0])
			if err := b.ToPath(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replaced song %d (%d bytes) in %s\n", index, song.Size(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, OutputOptionName, "o", "", "Write the result here instead of overwriting BLOB")
	return cmd
}

func NewRemoveCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "remove BLOB INDEX",
		Short: "Remove one song, later songs move down one slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			b, err := blob.FromPath(args[0])
			if err != nil {
				return err
			}
			if !b.RemoveSong(index) {
				return blob.ErrOutOfRange{Index: index, Count: b.Len()}
			}
			path := outputPath(output, args[0])
			if err := b.ToPath(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed song %d, %d songs left in %s\n", index, b.Len(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, OutputOptionName, "o", "", "Write the result here instead of overwriting BLOB")
	return cmd
}
