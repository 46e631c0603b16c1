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

package pack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvvflip/go-vvvflip/pkg/manifest"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack MANIFEST BLOB",
		Short: "Build a blob from the song files listed in a manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			b, err := m.Build()
			if err != nil {
				return err
			}
			if err := b.ToPath(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Packed %d songs into %s\n", b.Len(), args[1])
			return nil
		},
	}
	return cmd
}
