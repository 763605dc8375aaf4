package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags(v *viper.Viper) {
	if v.GetBool("no-color") || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
}

var outputFormatsCompletion = []string{"json", "text"}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if strings.EqualFold(format, f) {
			return nil
		}
	}
	return fmt.Errorf("unknown output format: %s", format)
}

func writeJSON(w io.Writer, value any) error {
	var (
		output []byte
		err    error
	)
	if color.NoColor {
		output, err = json.MarshalIndent(value, "", "  ")
	} else {
		output, err = prettyjson.Marshal(value)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
