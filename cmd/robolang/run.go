package main

import (
	"fmt"
	"strings"

	robolang "github.com/gpoesia/loopye-sub000"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program to completion and print its actions",
		Long: `Run a program to completion and print its actions.

Sensor values are fixed for the whole run; use "step" to change them while
the program executes.`,
		Example: `  robolang run -c "2{ 3{R R} LLRL}"
  robolang run maze.rl --sensors wall=true,gem=false --trace`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, v, args)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("trace", false, "log every interpreter transition to stderr")
	cmd.Flags().Int("max-actions", 0, "stop after this many actions (0 for the default limit)")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func runProgram(cmd *cobra.Command, v *viper.Viper, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := checkFormat(format, "text", "json"); err != nil {
		return err
	}
	src, err := getSource(cmd, args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	caps, err := getCapabilities(v)
	if err != nil {
		return err
	}

	level := v.GetString("log-level")
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		level = "trace"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	opts := append(getRobolangOptions(v), robolang.WithLogger(logger))
	if n, _ := cmd.Flags().GetInt("max-actions"); n > 0 {
		opts = append(opts, robolang.WithMaxActions(n))
	}

	r := robolang.New(opts...)
	for name, value := range caps.values {
		r.GlobalScope().Set(name, value)
	}
	formatter := getFormatter(v, src.filename)
	if err := r.Parse(src.code, caps.actions, caps.sensors); err != nil {
		return printErrors(cmd.ErrOrStderr(), formatter, err)
	}
	actions, runErr := r.Run()

	out := cmd.OutOrStdout()
	if strings.EqualFold(format, "json") {
		if actions == nil {
			actions = []string{}
		}
		if err := writeJSON(out, actions); err != nil {
			return err
		}
	} else {
		for _, action := range actions {
			fmt.Fprintln(out, action)
		}
	}
	if runErr != nil {
		return printErrors(cmd.ErrOrStderr(), formatter, runErr)
	}
	return nil
}
