// Command robolang compiles, runs and inspects Robolang programs.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errReported signals a failure whose details were already printed.
var errReported = errors.New("errors reported")

func main() {
	cmd := newRootCmd(viper.New())
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fatal(err)
		}
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "robolang",
		Short:         "Compile, run and inspect Robolang programs",
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v); err != nil {
				return err
			}
			processGlobalFlags(v)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.robolang.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("locale", "en", "language of error messages (en, pt)")
	flags.String("actions", defaultActions, "supported actions, as letters or a comma separated list")
	flags.StringSlice("sensors", nil, "supported sensors with initial values, e.g. wall=true,hole=false")
	flags.String("challenge", "", "use the capability set of a configured challenge")
	for _, name := range []string{"config", "no-color", "log-level", "locale", "actions", "sensors", "challenge"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix("ROBOLANG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newRunCmd(v),
		newStepCmd(v),
		newTokensCmd(v),
		newAstCmd(v),
		newCheckCmd(v),
		newChallengesCmd(v),
	)
	return root
}

// loadConfig reads the config file named by --config, or .robolang.yaml
// from the home or current directory if present.
func loadConfig(v *viper.Viper) error {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".robolang")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}
