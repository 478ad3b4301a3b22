package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

var (
	searchMode     string
	searchCategory string
	searchFormat   string
	searchLimit    int
)

// searchCmd filters items by a case-insensitive substring of their text.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find items whose text contains the query",
	Long: `Examples:
	mindclean search plombier
	mindclean search "je me sens" -m confide
	mindclean search rapport --format quiet`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := listQuery(searchMode, searchCategory)
		if err != nil {
			return err
		}
		format, err := utils.ParseOutputFormat(searchFormat)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		needle := strings.ToLower(strings.Join(args, " "))
		hits := make([]engine.Item, 0)
		for _, it := range a.session.Query(q) {
			if strings.Contains(strings.ToLower(it.Text), needle) {
				hits = append(hits, it)
			}
		}
		return renderItems(cmd, hits, listing{format: format, limit: searchLimit, page: "1"}, q)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "Filter by mode: dump|confide")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Filter by category")
	searchCmd.Flags().StringVar(&searchFormat, "format", "default", "Output format: default, table, json, csv, compact, quiet")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "Max results (0 shows everything)")
}
