package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/odamex/odacfg/lib/client"
	"github.com/odamex/odacfg/lib/config"
	"github.com/odamex/odacfg/lib/console"
	"github.com/odamex/odacfg/lib/freename"
	"github.com/odamex/odacfg/lib/tokens"
	"github.com/odamex/odacfg/lib/version"
	"github.com/samber/oops"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fs is the filesystem every command works on.
var fs = afero.NewOsFs()

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "odacfg",
		Short:        "Manage Odamex client settings and artifact filenames",
		Version:      version.DotVersion + " (g" + version.GitShortHash + ")",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.InitConfig()
		},
	}
	root.PersistentFlags().StringVar(&config.CfgFile, "settings", "", "tool settings file (default $HOME/.odamex/odacfg.yaml)")
	root.PersistentFlags().String("config", "", "client config file to load and save instead of odamex.cfg")
	if err := viper.BindPFlag("config", root.PersistentFlags().Lookup("config")); err != nil {
		log.WithError(err).Warn("Failed to bind --config")
	}

	root.AddCommand(
		newSavecfgCommand(),
		newConsoleCommand(),
		newExpandCommand(),
		newFreenameCommand(),
	)
	return root
}

func newClient(out io.Writer) *client.Client {
	return client.New(fs, out, config.NewPathResolver(config.CurrentSettings()))
}

func newSavecfgCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "savecfg [filename]",
		Short: "Load the client config and write it back out",
		Long: "Loads the client config the way the client does at startup, then saves it\n" +
			"to filename (.cfg is appended when missing) or to the config path.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(cmd.OutOrStdout())
			c.Persister.Load()

			line := "savecfg"
			if len(args) == 1 {
				line += " " + console.QuoteString(args[0])
			}
			return c.Console.Run(line)
		},
	}
}

// loadSnapshot reads the game state used for expansion. Without a state file
// expansion runs against an empty single player snapshot of this build.
func loadSnapshot(path string) (*tokens.Snapshot, error) {
	s := &tokens.Snapshot{}
	if path != "" {
		var err error
		if s, err = tokens.LoadSnapshot(fs, path); err != nil {
			return nil, err
		}
	}
	if s.BuildHash == "" {
		s.BuildHash = version.GitShortHash
	}
	return s, nil
}

func newExpandCommand() *cobra.Command {
	var statePath string
	cmd := &cobra.Command{
		Use:   "expand <template>",
		Short: "Expand %-tokens in a filename template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("state") {
				statePath = config.CurrentSettings().Naming.StateFile
			}
			s, err := loadSnapshot(statePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tokens.Expand(args[0], s))
			return nil
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "YAML game state snapshot")
	return cmd
}

func newFreenameCommand() *cobra.Command {
	var statePath, dir, ext string
	cmd := &cobra.Command{
		Use:   "freename [template]",
		Short: "Print a free filename for a new screenshot or demo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			naming := config.CurrentSettings().Naming
			template := naming.Template
			if len(args) == 1 {
				template = args[0]
			}
			if !cmd.Flags().Changed("state") {
				statePath = naming.StateFile
			}
			if !cmd.Flags().Changed("dir") {
				dir = naming.Dir
			}
			if !cmd.Flags().Changed("ext") {
				ext = naming.Extension
			}

			s, err := loadSnapshot(statePath)
			if err != nil {
				return err
			}
			base := filepath.Join(dir, tokens.Expand(template, s))
			name, err := freename.NewFinder(fs).Reserve(base, ext)
			if err != nil {
				return oops.Wrapf(err, "no free name for %s.%s", base, ext)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "YAML game state snapshot")
	cmd.Flags().StringVar(&dir, "dir", "", "directory the artifact is written to")
	cmd.Flags().StringVar(&ext, "ext", "", "artifact extension without the dot")
	return cmd
}
