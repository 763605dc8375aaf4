package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gpoesia/loopye-sub000/internal/lexer"
	"github.com/gpoesia/loopye-sub000/internal/token"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTokensCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format, "text", "json"); err != nil {
				return err
			}
			src, err := getSource(cmd, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			stream, err := lexer.Tokenize(src.code, lexer.WithLocale(getLocale(v)))
			if err != nil {
				return printErrors(cmd.ErrOrStderr(), getFormatter(v, src.filename), withSource(err, src.code))
			}
			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), tokensToJSON(stream.Tokens()))
			}
			printTokens(cmd.OutOrStdout(), stream.Tokens())
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}

// TokenJSON is the JSON form of a token.
type TokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Value   *int   `json:"value,omitempty"`
	Range   string `json:"range"`
}

func tokensToJSON(tokens []token.Token) []TokenJSON {
	out := make([]TokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenJSON{Type: string(tok.Type), Literal: tok.Literal, Range: tok.Range.String()}
		if tok.Type == token.INT {
			value := tok.Value
			out[i].Value = &value
		}
	}
	return out
}

func printTokens(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-11s %-8s %s\n", tok.Range, tok.Type, tok.Literal)
	}
}
