package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("env_file", "")

	viper.SetDefault("output.format", "text")

	viper.SetDefault("log.level", "warn")
}

func readConfig(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	viper.SetEnvPrefix("TYPENV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
