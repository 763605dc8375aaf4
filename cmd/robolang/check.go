package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	robolang "github.com/gpoesia/loopye-sub000"
	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/challenge"
	"github.com/gpoesia/loopye-sub000/lsp"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Compile a program and report errors and construct counts",
		Long: `Compile a program against the capability set and report any errors.

With --challenge, the program must also use the constructs the challenge
requires. With -o lsp, errors are printed as Language Server Protocol
diagnostics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkProgram(cmd, v, args)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "output format (text, json, lsp)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions([]string{"json", "lsp", "text"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// CheckResult is the JSON form of a successful check.
type CheckResult struct {
	Fingerprint      string         `json:"fingerprint"`
	Canonical        string         `json:"canonical"`
	NodeCounts       map[string]int `json:"node_counts"`
	MaxLoopTripCount int            `json:"max_loop_trip_count"`
	Unmet            []string       `json:"unmet_requirements,omitempty"`
}

func checkProgram(cmd *cobra.Command, v *viper.Viper, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	format = strings.ToLower(format)
	if err := checkFormat(format, "text", "json", "lsp"); err != nil {
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
	out := cmd.OutOrStdout()

	program, compileErr := robolang.Compile(src.code, caps.actions, caps.sensors, getRobolangOptions(v)...)
	if format == "lsp" {
		if err := writeJSON(out, lsp.Publish(documentURI(src.filename), compileErr)); err != nil {
			return err
		}
		if compileErr != nil {
			return errReported
		}
		return nil
	}
	if compileErr != nil {
		return printErrors(cmd.ErrOrStderr(), getFormatter(v, src.filename), compileErr)
	}

	var unmet []challenge.Requirement
	if id := v.GetString("challenge"); id != "" {
		c, err := getChallenge(v, id)
		if err != nil {
			return err
		}
		unmet = c.Check(program)
	}

	result := newCheckResult(program, unmet)
	if format == "json" {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		printCheckResult(out, result)
	}
	if len(unmet) > 0 {
		return errReported
	}
	return nil
}

func newCheckResult(program *robolang.Program, unmet []challenge.Requirement) CheckResult {
	result := CheckResult{
		Fingerprint:      program.Fingerprint(),
		Canonical:        program.String(),
		NodeCounts:       map[string]int{},
		MaxLoopTripCount: program.MaxLoopTripCount(),
	}
	for typ, n := range program.NodeCounts() {
		result.NodeCounts[typ.String()] = n
	}
	for _, req := range unmet {
		result.Unmet = append(result.Unmet, req.String())
	}
	return result
}

func printCheckResult(w io.Writer, result CheckResult) {
	if len(result.Unmet) == 0 {
		fmt.Fprintln(w, "ok")
	}
	for _, typ := range ast.NodeTypes() {
		if n := result.NodeCounts[typ.String()]; n > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", typ, n)
		}
	}
	fmt.Fprintf(w, "  %-16s %d\n", "max trip count", result.MaxLoopTripCount)
	for _, req := range result.Unmet {
		fmt.Fprintf(w, "%s %s\n", red("unmet:"), req)
	}
}

func documentURI(filename string) protocol.DocumentURI {
	if strings.HasPrefix(filename, "<") {
		return protocol.DocumentURI(filename)
	}
	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}
	return protocol.DocumentURI("file://" + filepath.ToSlash(filename))
}
