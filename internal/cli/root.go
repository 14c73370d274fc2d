package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/geocell"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended, with an underscore, to environment variables
// holding flag values.
const envPrefix = "GEOCELL"

// globals holds the persistent flags shared by all commands.
type globals struct {
	logLevel string
	workers  int
	stderr   io.Writer
}

func (g *globals) logger() (*geocell.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
	}
	return geocell.NewTextLogger(g.stderr, level), nil
}

// NewRootCommand returns the geocell command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stderr: stderr}
	rc := &cobra.Command{
		Use:   "geocell",
		Short: "Inspect and convert hierarchical sphere cell ids.",
		Long: `Inspect and convert hierarchical sphere cell ids.

Cells are accepted as tokens ("89c25") or debug strings ("4/0123").
Every flag can also be set through a GEOCELL_ environment variable
or a TOML configuration file given with --config.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setAllConfig(viper.New(), cmd.Flags())
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Minimum log level (debug, info, warn, error).")
	rc.PersistentFlags().IntVar(&g.workers, "workers", 0, "Parallel workers for bulk conversion (0 = GOMAXPROCS).")

	rc.AddCommand(newInspectCommand(stdin, stdout, g))
	rc.AddCommand(newConvertCommand(stdin, stdout, g))
	rc.AddCommand(newNeighborsCommand(stdin, stdout, g))
	rc.AddCommand(newPackCommand(stdin, stdout, g))
	rc.AddCommand(newUnpackCommand(stdin, stdout, g))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// setAllConfig applies configuration to flags in priority order: command
// line, environment, then the config file named by the "config" flag.
// Environment variables are the upper-cased flag names with dashes replaced
// by underscores, prefixed with envPrefix and an underscore.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}
		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		value := v.GetString(f.Name)
		if value == f.DefValue {
			return
		}
		if err := f.Value.Set(value); err != nil {
			flagErr = fmt.Errorf("invalid value %q for %s: %w", value, f.Name, err)
		}
	})
	return flagErr
}
