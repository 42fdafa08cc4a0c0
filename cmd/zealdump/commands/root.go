package commands

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/zealdump/internal/logging"
)

var (
	configPath string
	verbose    bool

	opts options
)

func Execute() error {
	root := &cobra.Command{
		Use:          "zealdump",
		Short:        "Dump Game Boy save cartridges from a Zeal 8-bit Computer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts = defaultOptions()
			if configPath != "" {
				if err := applyFileConfig(configPath, &opts); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("verbose") {
				opts.Verbose = verbose
			}
			logging.ConfigureRuntime("zealdump", opts.Verbose)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(dumpCmd())
	return root.Execute()
}
