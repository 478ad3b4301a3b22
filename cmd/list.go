package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

var (
	listMode     string
	listCategory string
	listFormat   string
	listLimit    int
	listPage     string
	listNoColor  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items, newest first",
	Long: `Examples:
	mindclean list                              # every item
	mindclean list -m confide                   # one mode
	mindclean list -c todo --format table       # one category as a table
	mindclean list --format json --limit 20 --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := listQuery(listMode, listCategory)
		if err != nil {
			return err
		}
		format, err := utils.ParseOutputFormat(listFormat)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		items := a.session.Query(q)
		return renderItems(cmd, items, listing{format: format, limit: listLimit, page: listPage, noColor: listNoColor}, q)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listMode, "mode", "m", "", "Filter by mode: dump|confide")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category: todo|delegate|introspect|forget")
	listCmd.Flags().StringVar(&listFormat, "format", "default", "Output format: default, table, json, csv, compact, quiet")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Items per page (0 shows everything)")
	listCmd.Flags().StringVar(&listPage, "page", "1", "Page number, first or last")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}

func listQuery(mode, category string) (engine.Query, error) {
	m, err := modeFlag(mode, "")
	if err != nil {
		return engine.Query{}, err
	}
	c, err := categoryFlag(category)
	if err != nil {
		return engine.Query{}, err
	}
	return engine.Query{Mode: m, Category: c}, nil
}

// listing holds the output flags shared by list and search.
type listing struct {
	format  utils.OutputFormat
	limit   int
	page    string
	noColor bool
}

// renderItems pages items and writes them in the requested format.
func renderItems(cmd *cobra.Command, items []engine.Item, opts listing, q engine.Query) error {
	perPage := max(opts.limit, 0)
	first := utils.NewPagination(len(items), perPage, 1)
	page, err := utils.ParsePage(opts.page, first.TotalPages)
	if err != nil {
		return err
	}
	p := utils.NewPagination(len(items), perPage, page)
	lo, hi := p.Window()

	rc := utils.DefaultRenderConfig()
	rc.Format = opts.format
	rc.Location = cfg.Location()
	if opts.noColor {
		rc.Color = false
	}

	list := &utils.ItemList{
		Items:      items[lo:hi],
		Total:      p.Total,
		Page:       p.Current,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
		Filters:    map[string]string{},
	}
	if q.Mode != "" {
		list.Filters["mode"] = q.Mode.Label()
	}
	if q.Category != "" {
		list.Filters["category"] = q.Category.Label()
	}

	out, err := utils.NewRenderer(rc).RenderItemList(list)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
