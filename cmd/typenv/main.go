package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sagarc03/typenv"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "typenv",
	Short:   "Typed lookups of environment variables",
	Long: `Typenv reads the process environment, optionally merged with a
.env file, and converts a variable to one of the supported kinds.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", ".env file merged over the process environment (env: TYPENV_ENV_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: TYPENV_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("output", "", "output format: text, json (env: TYPENV_OUTPUT_FORMAT)")

	_ = viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes the failure kinds for shell callers: 2 means the
// variable is absent, 3 means it is present but malformed.
func exitCode(err error) int {
	var missing *typenv.MissingError
	if errors.As(err, &missing) {
		return 2
	}
	var parse *typenv.ParseError
	if errors.As(err, &parse) {
		return 3
	}
	return 1
}
