// Package cli wires the moviebrowser commands.
package cli

import (
	"io"
	"os"

	intconfig "moviebrowser/internal/config"
	"moviebrowser/internal/logging"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moviebrowser",
		Short:         "Browse a movie catalog one page at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newServeCmd(), newBrowseCmd(), newSchemaCmd())
	return cmd
}

// loadConfig reads --config and applies --debug.
func loadConfig(cmd *cobra.Command) (intconfig.Env, error) {
	path, _ := cmd.Flags().GetString("config")
	env, err := intconfig.Load(path)
	if err != nil {
		return env, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		env.LogLevel = "debug"
	}
	return env, nil
}

func setupLogging(env intconfig.Env, out io.Writer) {
	cfg := logging.DefaultConfig()
	if env.LogLevel != "" {
		cfg.Level = env.LogLevel
	}
	cfg.Pretty = env.LogPretty
	if out != nil {
		cfg.Output = out
	}
	logging.Setup(cfg)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
