package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/typenv"
)

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Look up a variable and convert it to a kind",
	Long: `Look up NAME in the process environment (merged with --env-file
when given) and convert it to the requested kind. The converted value is
printed to stdout.

Exit codes: 2 when the variable is absent, 3 when conversion fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().String("kind", "string", "target kind (see 'typenv kinds')")
	getCmd.Flags().String("default", "", "value printed verbatim when the variable is absent")
	getCmd.Flags().String("date-format", typenv.DefaultDateLayout, "date layout in Go reference-time form")
	getCmd.Flags().String("separator", ",", "item separator for kind list")
	getCmd.Flags().String("pair-separator", ",", "pair separator for kind map")
	getCmd.Flags().String("kv-separator", ":", "key-value separator for kind map")
	getCmd.Flags().Bool("allow-relative", false, "accept URLs without scheme or host")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	name := args[0]
	flags := cmd.Flags()

	kind, err := typenv.ParseKind(mustString(flags, "kind"))
	if err != nil {
		return err
	}

	envOpts := []typenv.EnvOption{typenv.FromEnviron()}
	if envFile := viper.GetString("env_file"); envFile != "" {
		envOpts = append(envOpts, typenv.FromFile(envFile))
	}
	env, err := typenv.New(envOpts...)
	if err != nil {
		return err
	}
	slog.Debug("environment loaded", "variables", len(env.Names()))

	// An absent name with --default short-circuits conversion: the default
	// is printed verbatim, matching the library's Default option.
	if !env.Has(name) && flags.Changed("default") {
		return printValue(cmd, name, kind, mustString(flags, "default"))
	}

	opts := []typenv.Option{
		typenv.DateFormat(mustString(flags, "date-format")),
		typenv.Separator(mustString(flags, "separator")),
		typenv.PairSeparator(mustString(flags, "pair-separator")),
		typenv.KVSeparator(mustString(flags, "kv-separator")),
	}
	if allow, _ := flags.GetBool("allow-relative"); allow {
		opts = append(opts, typenv.AllowRelative())
	}

	value, err := env.Get(name, kind, opts...)
	if err != nil {
		return err
	}

	return printValue(cmd, name, kind, value)
}

func mustString(flags *pflag.FlagSet, name string) string {
	s, _ := flags.GetString(name)
	return s
}

// render flattens types without a useful JSON or print representation
// into strings.
func render(value any) any {
	switch v := value.(type) {
	case *url.URL:
		return v.String()
	case uuid.UUID:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case []byte:
		return string(v)
	default:
		return value
	}
}

func printValue(cmd *cobra.Command, name string, kind typenv.Kind, value any) error {
	rendered := render(value)

	// cobra's Println goes to stderr; values belong on stdout.
	stdout := cmd.OutOrStdout()

	if viper.GetString("output.format") == "json" {
		out, err := json.Marshal(map[string]any{
			"name":  name,
			"kind":  kind,
			"value": rendered,
		})
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		fmt.Fprintln(stdout, string(out))
		return nil
	}

	if s, ok := rendered.(string); ok {
		fmt.Fprintln(stdout, s)
		return nil
	}
	out, err := json.Marshal(rendered)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(stdout, string(out))
	return nil
}
