package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

var (
	statsMode    string
	statsDate    string
	statsDays    int
	statsNoColor bool
)

// statsCmd prints the streak, the seven-day histogram and per-category totals.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Streak, last seven days and totals per category",
	Long: `Examples:
	mindclean stats
	mindclean stats -m confide --date hier
	mindclean stats --days 30                   # daily counts over a longer window`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFlag(statsMode, defaultMode())
		if err != nil {
			return err
		}
		ref, err := parseRef(statsDate)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		rc := utils.DefaultRenderConfig()
		rc.Location = cfg.Location()
		if statsNoColor {
			rc.Color = false
		}
		r := utils.NewRenderer(rc)
		st := r.Styles()
		out := cmd.OutOrStdout()

		streak := a.session.Streak()
		items := a.session.Query(engine.Query{Mode: mode})
		fmt.Fprintf(out, "%s\n", st.Title.Render(fmt.Sprintf("%s MindClean · %s", mode.Icon(), mode.Label())))
		fmt.Fprintf(out, "🔥 Streak: %d jour%s", streak.Count, plural(streak.Count))
		if !streak.LastDay.IsZero() {
			fmt.Fprintf(out, "  %s", st.Meta.Render("(dernière activité "+streak.LastDay.String()+")"))
		}
		fmt.Fprintf(out, "\n📊 Total: %d éléments\n\n", len(items))

		h := a.session.Weekly(mode, ref)
		fmt.Fprintf(out, "%s\n", st.Category.Render(fmt.Sprintf("7 derniers jours (%d)", h.Total)))
		fmt.Fprint(out, r.RenderHistogram(h))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s\n", st.Category.Render("Par catégorie"))
		fmt.Fprint(out, r.RenderTotals(items))

		if statsDays > engine.WeekDays {
			from, to := utils.DayRange(ref, statsDays)
			counts, err := a.journal.CountByDay(cmd.Context(), mode, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", st.Category.Render(fmt.Sprintf("%d derniers jours", statsDays)))
			fmt.Fprint(out, renderDays(counts, engine.DayOf(from), statsDays))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsMode, "mode", "m", "", "Mode: dump|confide (default from config)")
	statsCmd.Flags().StringVar(&statsDate, "date", "", "Reference day: today, hier, 3 days ago, 2026-10-01…")
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "Also list daily counts over this many days")
	statsCmd.Flags().BoolVar(&statsNoColor, "no-color", false, "Disable colored output")
}

// renderDays prints one line per day starting at first, skipping nothing.
func renderDays(counts map[engine.Day]int, first engine.Day, days int) string {
	var b strings.Builder
	for i := 0; i < days; i++ {
		d := first.AddDays(i)
		fmt.Fprintf(&b, "%s  %s %d\n", d, strings.Repeat("▪", min(counts[d], 40)), counts[d])
	}
	return b.String()
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
