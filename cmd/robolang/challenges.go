package main

import (
	"fmt"
	"strings"

	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newChallengesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List the challenges defined in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format, "text", "json"); err != nil {
				return err
			}
			r, err := getRegistry(v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if strings.EqualFold(format, "json") {
				var list []ChallengeJSON
				for _, id := range r.IDs() {
					c, _ := r.Get(id)
					entry := ChallengeJSON{ID: c.ID, Title: c.Title, Actions: c.Actions, Sensors: c.Sensors}
					for _, typ := range ast.NodeTypes() {
						if n, ok := c.Require[typ]; ok {
							if entry.Require == nil {
								entry.Require = map[string]int{}
							}
							entry.Require[typ.String()] = n
						}
					}
					list = append(list, entry)
				}
				if list == nil {
					list = []ChallengeJSON{}
				}
				return writeJSON(out, list)
			}
			if r.Len() == 0 {
				fmt.Fprintln(out, "no challenges configured")
				return nil
			}
			for _, id := range r.IDs() {
				c, _ := r.Get(id)
				fmt.Fprintf(out, "%s\t%s\n", c.ID, c.Title)
				fmt.Fprintf(out, "  actions: %s\n", strings.Join(c.Actions, " "))
				if len(c.Sensors) > 0 {
					fmt.Fprintf(out, "  sensors: %s\n", strings.Join(c.Sensors, " "))
				}
				for _, typ := range ast.NodeTypes() {
					if n, ok := c.Require[typ]; ok {
						fmt.Fprintf(out, "  requires: at least %d %s\n", n, typ)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}

// ChallengeJSON is the JSON form of a challenge.
type ChallengeJSON struct {
	ID      string         `json:"id"`
	Title   string         `json:"title,omitempty"`
	Actions []string       `json:"actions"`
	Sensors []string       `json:"sensors,omitempty"`
	Require map[string]int `json:"require,omitempty"`
}
