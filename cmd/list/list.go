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

package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/vvvflip/go-vvvflip/pkg/blob"
)

const (
	AllOptionName = "all"
)

func NewCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list BLOB",
		Short: "List the song slots of a blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			slots, err := blob.Inspect(data, all)
			if err != nil {
				return err
			}
			result, err := yaml.Marshal(slots)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "---\n%s", string(result))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, AllOptionName, false, "Also list invalid slots")
	return cmd
}
