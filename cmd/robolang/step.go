package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	robolang "github.com/gpoesia/loopye-sub000"
	rerrors "github.com/gpoesia/loopye-sub000/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	historyFile = ".robolang_history"
	stepPrompt  = "step> "
)

const stepHelp = `Commands:
  next [n]         run until the next action (an empty line also works)
  run              run to the end of the program
  set NAME VALUE   set a sensor value (true, false, a number or text)
  scope            show sensor values
  where            show the location of the last action
  reset            restart the program
  quit             exit
`

func newStepCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step [file]",
		Short: "Step through a program interactively, changing sensors between actions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := getSource(cmd, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			caps, err := getCapabilities(v)
			if err != nil {
				return err
			}
			s := newStepper(robolang.New(getRobolangOptions(v)...), src.code, cmd.OutOrStdout(), getFormatter(v, src.filename))
			for name, value := range caps.values {
				s.r.GlobalScope().Set(name, value)
			}
			if err := s.r.Parse(src.code, caps.actions, caps.sensors); err != nil {
				return printErrors(cmd.ErrOrStderr(), s.formatter, err)
			}
			return stepLoop(s)
		},
	}
	addInputFlags(cmd)
	return cmd
}

func stepLoop(s *stepper) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := homedir.Dir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprint(s.out, stepHelp)
	for {
		line, err := ln.Prompt(stepPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if quit := s.exec(line); quit {
			return nil
		}
	}
}

// stepper executes the commands of an interactive stepping session.
type stepper struct {
	r         *robolang.Robolang
	source    string
	out       io.Writer
	formatter *rerrors.Formatter
}

func newStepper(r *robolang.Robolang, source string, out io.Writer, formatter *rerrors.Formatter) *stepper {
	return &stepper{r: r, source: source, out: out, formatter: formatter}
}

// exec runs one command line and reports whether the session should end.
func (s *stepper) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		fields = []string{"next"}
	}
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "next", "n":
		count := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintf(s.out, "invalid count %q\n", args[0])
				return false
			}
			count = n
		}
		for i := 0; i < count; i++ {
			if !s.next() {
				break
			}
		}
	case "run":
		for s.next() {
		}
	case "set":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: set NAME VALUE")
			return false
		}
		s.r.GlobalScope().Set(args[0], parseValue(args[1]))
	case "scope":
		sc := s.r.GlobalScope()
		names := sc.Names()
		if len(names) == 0 {
			fmt.Fprintln(s.out, "no sensors set")
		}
		for _, name := range names {
			value, _ := sc.Lookup(name)
			fmt.Fprintf(s.out, "%s = %v\n", name, value)
		}
	case "where":
		s.where()
	case "reset":
		s.r.Reset()
		fmt.Fprintln(s.out, "program restarted")
	case "help", "h", "?":
		fmt.Fprint(s.out, stepHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help for a list\n", cmd)
	}
	return false
}

// next runs until the next action and reports whether another step may
// follow.
func (s *stepper) next() bool {
	if s.r.Done() {
		fmt.Fprintln(s.out, "program finished")
		return false
	}
	action, err := s.r.RunUntilNextAction()
	if err != nil {
		if printErrors(s.out, s.formatter, err) != errReported {
			fmt.Fprintln(s.out, err)
		}
		return false
	}
	if action == "" {
		fmt.Fprintln(s.out, "program finished")
		return false
	}
	loc, _ := s.r.CurrentLocation()
	fmt.Fprintf(s.out, "%s  (%s)\n", action, loc.Begin)
	return true
}

func (s *stepper) where() {
	loc, ok := s.r.CurrentLocation()
	if !ok {
		fmt.Fprintln(s.out, "no action has run yet")
		return
	}
	text := rerrors.LineText(s.source, loc.Begin.Line)
	width := loc.End.Column - loc.Begin.Column
	if width < 1 || loc.End.Line != loc.Begin.Line {
		width = 1
	}
	fmt.Fprintf(s.out, "%s\n%s\n%s%s\n", loc.Begin, text,
		strings.Repeat(" ", loc.Begin.Column), strings.Repeat("^", width))
}
