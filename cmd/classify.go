package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
)

var classifyJSON bool

// classifyCmd shows where a text would land without storing it.
var classifyCmd = &cobra.Command{
	Use:   "classify <text…>",
	Short: "Show the category a text would get, without saving it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("rien à classer")
		}
		c := engine.Classify(text, "")
		out := cmd.OutOrStdout()
		if classifyJSON {
			return json.NewEncoder(out).Encode(map[string]string{
				"text":     text,
				"category": string(c),
				"label":    c.Label(),
			})
		}
		_, err := fmt.Fprintf(out, "%s %s\n", c.Icon(), c.Label())
		return err
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
}
