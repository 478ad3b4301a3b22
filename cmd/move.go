package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <category>",
	Short: "Move an item to another category",
	Long: `The id may be shortened to any unique prefix (list shows 8 characters).

Examples:
	mindclean move 0f3c2a9e delegate
	mindclean move 0f3c "À oublier"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := engine.ParseCategory(args[1])
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		it, ok, err := resolveID(a.session, args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "aucun élément avec l'id %s\n", args[0])
			return nil
		}
		if _, err := a.session.Recategorize(cmd.Context(), it.ID, c); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s  [%s]  %s\n", c.Icon(), c.Label(), utils.ShortID(it.ID), it.Text)
		return nil
	},
}
