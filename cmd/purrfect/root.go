package cmd

import (
	"os"

	"github.com/kerbaras/purrfect/pkg/app"
	"github.com/kerbaras/purrfect/pkg/config"
	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/kerbaras/purrfect/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	modeFlag   string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "purrfect",
	Short: "Purrfect Cat Gallery",
	Long:  "Browse cat pictures from TheCatAPI in grid, column or infinite view",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("mode") {
			if _, err := data.ParseViewMode(modeFlag); err != nil {
				return err
			}
			c.DefaultMode = modeFlag
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		if err := logging.Initialize(c.LogLevel, c.LogFile); err != nil {
			return err
		}
		cfg = c
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		return app.NewApp(cfg).Run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/purrfect/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (logging is off by default)")
	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "grid", "initial view: grid, column or infinite")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
