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

package completion

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	completionExample = `
Keep bash completion for vvvflip in a file and load it from .bashrc
# vvvflip completion > $HOME/.vvvflip_completions
# echo 'source $HOME/.vvvflip_completions' >> $HOME/.bashrc

Complete blob paths and commands in the current zsh session
# source <(vvvflip completion zsh)

Fish picks completions up from its completions directory
# vvvflip completion fish > $HOME/.config/fish/completions/vvvflip.fish
`
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// ErrUnknownShell returned when no completion generator exists for the shell
type ErrUnknownShell struct {
	Shell string
}

func (e ErrUnknownShell) Error() string {
	return fmt.Sprintf("No completion for shell %q, use one of %v", e.Shell, shells)
}

// NewCommand creates a cobra command object for generating shell completion scripts
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate the vvvflip completion script, bash by default",
		Example:   completionExample,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(out)
			}
			return ErrUnknownShell{Shell: shell}
		},
	}
	return cmd
}
