package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/utils"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if _, err := a.session.Remove(cmd.Context(), it.ID); err != nil {
			return err
		}
		fmt.Fprintf(out, "🗑️ supprimé  [%s]  %s\n", utils.ShortID(it.ID), it.Text)
		return nil
	},
}
