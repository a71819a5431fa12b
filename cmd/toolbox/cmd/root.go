package cmd

import (
	"fmt"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/pkg/core/config"
	"github.com/msto63/toolbox/pkg/core/logging"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the configuration they load
type rootOptions struct {
	cfgFile string
	verbose bool
	config  *config.Config
}

// NewRootCmd builds the toolbox command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "toolbox",
		Short: "toolbox - identifier case conversion",
		Long: `toolbox converts identifiers between naming conventions.

Cases:
  kebab         the-quick-brown-fox
  snake         the_quick_brown_fox
  boa           THE_QUICK_BROWN_FOX
  camel         theQuickBrownFox
  pascal        TheQuickBrownFox
  upper, lower, capitalize, uncapitalize

Commands:
  case     convert arguments or stdin lines
  serve    run the gRPC and HTTP services
  preview  interactive live preview`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $TOOLBOX_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCaseCmd(opts),
		newServeCmd(opts),
		newPreviewCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the configuration. Without --config a missing file is not
// an error and the defaults apply
func (o *rootOptions) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)

	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
		if tberror.HasCode(err, tberror.CodeConfigNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.General.LogLevel
	if o.verbose {
		level = "debug"
	}
	logging.SetDefaults(level, cfg.General.LogFormat)

	o.config = cfg
	return nil
}
