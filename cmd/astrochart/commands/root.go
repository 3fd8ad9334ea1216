// Package commands implements the astrochart CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/ilbagatto/go-astrologer/internal/config"
	"github.com/ilbagatto/go-astrologer/internal/logging"
)

var (
	// Global flags
	configFile string
	logLevel   string

	cfg Config
	log = logging.New("info", "console")
)

// Config is the loaded application configuration, aliased for brevity.
type Config = config.Config

var rootCmd = &cobra.Command{
	Use:   "astrochart",
	Short: "Astrological chart calculator",
	Long: `astrochart computes chart data for a moment and place:
sensitive points (Ascendant, Midheaven, Vertex, East Point), house cusps
under nine systems, the aspect table under three orb methods, and
stellium groups.

Body positions come from a TOML positions file; astrochart does not
compute ephemerides itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log = logging.New(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

// Execute runs the root command. Errors are logged before returning so
// main can exit nonzero without double-printing.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
