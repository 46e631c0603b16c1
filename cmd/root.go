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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvvflip/go-vvvflip/cmd/completion"
	"github.com/vvvflip/go-vvvflip/cmd/config"
	"github.com/vvvflip/go-vvvflip/cmd/dump"
	"github.com/vvvflip/go-vvvflip/cmd/edit"
	"github.com/vvvflip/go-vvvflip/cmd/library"
	"github.com/vvvflip/go-vvvflip/cmd/list"
	"github.com/vvvflip/go-vvvflip/cmd/pack"
	pkgconfig "github.com/vvvflip/go-vvvflip/pkg/config"
	"github.com/vvvflip/go-vvvflip/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
	ConfigOptionName   = "config"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel, configPath string
	cfg := pkgconfig.NewDefaultConfig()
	cmd := &cobra.Command{
		Use:          "vvvflip",
		Short:        "Tool to work with VVVVVV music blobs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg.SetPath(configPath)
			}
			if err := cfg.Load(); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand(cfg))
	cmd.AddCommand(dump.NewCommand(cfg))
	cmd.AddCommand(list.NewCommand())
	cmd.AddCommand(pack.NewCommand())
	cmd.AddCommand(edit.NewReplaceCommand())
	cmd.AddCommand(edit.NewRemoveCommand())
	cmd.AddCommand(library.NewCommand(cfg))
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	cmd.PersistentFlags().StringVar(&configPath, ConfigOptionName, "", fmt.Sprintf("Config file path. Default %s", pkgconfig.DefaultConfigPath()))
	return cmd
}
