package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAstCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree of a program",
		Long: `Display the syntax tree of a program.

Every action and sensor is accepted; use "check" to validate a program
against a capability set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format, "text", "json"); err != nil {
				return err
			}
			src, err := getSource(cmd, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			program, err := parser.Parse(src.code, parser.Permissive(), parser.WithLocale(getLocale(v)))
			if err != nil {
				return printErrors(cmd.ErrOrStderr(), getFormatter(v, src.filename), err)
			}
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), nodeToJSON(program))
			}
			printAST(cmd.OutOrStdout(), program)
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Range    string     `json:"range"`
	Children []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	result := &ASTNode{
		Type:  node.Type().String(),
		Value: nodeValue(node),
		Range: node.Location().String(),
	}
	for _, child := range node.Children() {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

func nodeValue(node ast.Node) any {
	switch n := node.(type) {
	case *ast.Loop:
		return n.TripCount
	case *ast.Conditional:
		return n.Variable
	case *ast.ConditionalLoop:
		return n.Variable
	case *ast.Action:
		return n.Name
	}
	return nil
}

func printAST(w io.Writer, node ast.Node) {
	printNode(w, node, 0, "")
}

func printNode(w io.Writer, node ast.Node, depth int, role string) {
	label := node.Type().String()
	switch value := nodeValue(node).(type) {
	case int:
		label += " " + strconv.Itoa(value)
	case string:
		label += " " + value
	}
	if role != "" {
		label = role + ": " + label
	}
	fmt.Fprintf(w, "%s%s  %s\n", strings.Repeat("  ", depth), label, node.Location())
	if cond, ok := node.(*ast.Conditional); ok {
		printNode(w, cond.Then, depth+1, "then")
		if cond.Else != nil {
			printNode(w, cond.Else, depth+1, "else")
		}
		return
	}
	for _, child := range node.Children() {
		printNode(w, child, depth+1, "")
	}
}
