package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	robolang "github.com/gpoesia/loopye-sub000"
	"github.com/fatih/color"
	"github.com/gpoesia/loopye-sub000/challenge"
	rerrors "github.com/gpoesia/loopye-sub000/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultActions = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// addInputFlags registers the flags selecting where source code comes from.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "code to use instead of a file")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
}

// source is a program read from the command line.
type source struct {
	code     string
	filename string
}

func getSource(cmd *cobra.Command, args []string, stdin io.Reader) (source, error) {
	// Determine what code is to be used. There are three possibilities:
	// 1. --code <code>
	// 2. --stdin (read code from stdin)
	// 3. path as args[0]
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return source{}, errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return source{}, errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return source{}, err
		}
		return source{code: string(data), filename: "<stdin>"}, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return source{}, err
		}
		return source{code: string(data), filename: args[0]}, nil
	case codeFlagSet:
		code, _ := cmd.Flags().GetString("code")
		return source{code: code, filename: "<code>"}, nil
	}
	return source{}, errors.New("no code given: pass a file, --code or --stdin")
}

// capabilities is the capability set programs are compiled against, plus the
// initial sensor values.
type capabilities struct {
	actions []string
	sensors []string
	values  map[string]any
}

func getCapabilities(v *viper.Viper) (capabilities, error) {
	caps := capabilities{values: map[string]any{}}
	sensorFlags, err := parseSensors(v.GetStringSlice("sensors"))
	if err != nil {
		return caps, err
	}
	if id := v.GetString("challenge"); id != "" {
		c, err := getChallenge(v, id)
		if err != nil {
			return caps, err
		}
		caps.actions = c.Actions
		caps.sensors = c.Sensors
		for _, name := range c.Sensors {
			caps.values[name] = false
		}
	} else {
		caps.actions = parseActions(v.GetString("actions"))
	}
	for _, s := range sensorFlags {
		if !slices.Contains(caps.sensors, s.name) {
			caps.sensors = append(caps.sensors, s.name)
		}
		caps.values[s.name] = s.value
	}
	return caps, nil
}

// parseActions accepts "FLR", "F,L,R" or "F L R".
func parseActions(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	var actions []string
	for _, f := range fields {
		if strings.ToUpper(f) == f && len(f) > 1 {
			actions = append(actions, strings.Split(f, "")...)
		} else {
			actions = append(actions, f)
		}
	}
	return actions
}

type sensorFlag struct {
	name  string
	value any
}

// parseSensors parses name[=value] entries. A bare name starts out false.
func parseSensors(entries []string) ([]sensorFlag, error) {
	var sensors []sensorFlag
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, raw, hasValue := strings.Cut(entry, "=")
		if name == "" {
			return nil, fmt.Errorf("invalid sensor %q", entry)
		}
		var value any = false
		if hasValue {
			value = parseValue(raw)
		}
		sensors = append(sensors, sensorFlag{name: name, value: value})
	}
	return sensors, nil
}

func parseValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	return raw
}

func getRegistry(v *viper.Viper) (*challenge.Registry, error) {
	r, err := challenge.NewRegistry()
	if err != nil {
		return nil, err
	}
	if err := r.LoadConfig(v); err != nil {
		return nil, err
	}
	return r, nil
}

func getChallenge(v *viper.Viper, id string) (*challenge.Challenge, error) {
	r, err := getRegistry(v)
	if err != nil {
		return nil, err
	}
	c, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown challenge %q", id)
	}
	return c, nil
}

func getLocale(v *viper.Viper) rerrors.Locale {
	return rerrors.ParseLocale(v.GetString("locale"))
}

func getRobolangOptions(v *viper.Viper) []robolang.Option {
	return []robolang.Option{robolang.WithLocale(getLocale(v))}
}

func getFormatter(v *viper.Viper, filename string) *rerrors.Formatter {
	f := rerrors.NewFormatter(!color.NoColor)
	f.Filename = filename
	f.Locale = getLocale(v)
	return f
}

// printErrors renders compile or runtime errors and returns errReported, or
// err itself if it holds no Robolang errors.
func printErrors(w io.Writer, f *rerrors.Formatter, err error) error {
	errs := rerrors.All(err)
	if len(errs) == 0 {
		return err
	}
	formatted := make([]*rerrors.FormattedError, len(errs))
	for i, e := range errs {
		formatted[i] = e.ToFormatted()
	}
	if len(formatted) == 1 {
		fmt.Fprintln(w, f.Format(formatted[0]))
	} else {
		fmt.Fprintln(w, f.FormatMultiple(formatted))
	}
	return errReported
}

func withSource(err error, code string) error {
	var e *rerrors.Error
	if errors.As(err, &e) {
		e.WithSource(code)
	}
	return err
}
