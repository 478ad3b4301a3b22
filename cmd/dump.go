package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

var (
	dumpCategory    string
	confideCategory string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <text…>",
	Short: "Vider ma tête: décharger une pensée",
	Long: `Examples:
	mindclean dump je dois appeler le plombier
	mindclean dump -c delegate préparer le compte rendu
	cat idees.txt | mindclean dump -          # one item per line`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return discharge(cmd, engine.ModeDump, dumpCategory, args)
	},
}

var confideCmd = &cobra.Command{
	Use:   "confide <text…>",
	Short: "Se confier: décharger une pensée intime",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return discharge(cmd, engine.ModeConfide, confideCategory, args)
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpCategory, "category", "c", "", "Force the category: todo|delegate|introspect|forget")
	confideCmd.Flags().StringVarP(&confideCategory, "category", "c", "", "Force the category: todo|delegate|introspect|forget")
}

func discharge(cmd *cobra.Command, mode engine.Mode, category string, args []string) error {
	manual, err := categoryFlag(category)
	if err != nil {
		return err
	}

	texts := []string{strings.Join(args, " ")}
	if len(args) == 1 && args[0] == "-" {
		if texts, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	for _, text := range texts {
		it, err := a.session.Discharge(cmd.Context(), text, mode, manual)
		if errors.Is(err, engine.ErrEmptyText) {
			return errors.New("rien à décharger")
		}
		if it.ID == "" {
			return err
		}
		fmt.Fprintf(out, "%s %s  [%s]  %s\n", it.Category.Icon(), it.Category.Label(), utils.ShortID(it.ID), it.Text)
		if err != nil {
			// item kept, streak not saved
			return err
		}
	}
	s := a.session.Streak()
	fmt.Fprintf(out, "🔥 streak: %d\n", s.Count)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("rien à décharger")
	}
	return lines, nil
}
