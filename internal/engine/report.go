package engine

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// EmptySection marks a category with no items in a text report. It is
// intentionally not a bullet, so bullets always equal items.
const EmptySection = "  (aucun élément)"

// FormatReport renders the items of mode as the plain-text export.
func FormatReport(items []Item, mode Mode, streak int, ref time.Time) string {
	var b strings.Builder

	modeItems := filterMode(items, mode)
	fmt.Fprintf(&b, "🔥 MindClean - %s - Export du %s\n", mode.Label(), LongDate(ref))
	fmt.Fprintf(&b, "📊 Total: %d éléments • Streak: %d %s\n", len(modeItems), streak, dayWord(streak))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for _, c := range Categories {
		section := (Query{Mode: mode, Category: c}).filter(items)
		label := c.Label()
		fmt.Fprintf(&b, "%s %s (%d)\n", c.Icon(), strings.ToUpper(label), len(section))
		b.WriteString("-" + strings.Repeat("-", utf8.RuneCountInString(label)+10) + "\n")

		if len(section) == 0 {
			b.WriteString(EmptySection + "\n\n")
			continue
		}
		for _, it := range section {
			fmt.Fprintf(&b, "• %s %s\n", it.Mode.Icon(), it.Text)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n🔥 Généré par MindClean - Prenez soin de votre flamme intérieure ❤️")
	return b.String()
}

// FormatMarkdown renders the same report as a markdown document.
func FormatMarkdown(items []Item, mode Mode, streak int, ref time.Time) string {
	var b strings.Builder

	modeItems := filterMode(items, mode)
	fmt.Fprintf(&b, "# %s MindClean: %s\n\n", mode.Icon(), mode.Label())
	fmt.Fprintf(&b, "_Export du %s_ · **%d** éléments · streak **%d** %s\n\n", LongDate(ref), len(modeItems), streak, dayWord(streak))

	for _, c := range Categories {
		section := (Query{Mode: mode, Category: c}).filter(items)
		fmt.Fprintf(&b, "## %s %s (%d)\n\n", c.Icon(), c.Label(), len(section))
		if len(section) == 0 {
			b.WriteString("_Aucun élément_\n\n")
			continue
		}
		for _, it := range section {
			fmt.Fprintf(&b, "- %s\n", it.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportFilename is the default file name for an export made on ref.
func ReportFilename(ref time.Time) string {
	return "mindclean_" + ref.Format("2006-01-02") + ".txt"
}

// Export is the structured form of a report, used for JSON and YAML output.
type Export struct {
	Mode     Mode            `json:"mode" yaml:"mode"`
	Date     string          `json:"date" yaml:"date"`
	Total    int             `json:"total" yaml:"total"`
	Streak   int             `json:"streak" yaml:"streak"`
	Sections []ExportSection `json:"sections" yaml:"sections"`
	Week     Histogram       `json:"week" yaml:"week"`
}

type ExportSection struct {
	Category Category `json:"category" yaml:"category"`
	Label    string   `json:"label" yaml:"label"`
	Items    []Item   `json:"items" yaml:"items"`
}

// BuildExport collects the data shown by FormatReport.
func BuildExport(items []Item, mode Mode, streak int, ref time.Time) Export {
	e := Export{
		Mode:   mode,
		Date:   ref.Format("2006-01-02"),
		Total:  len(filterMode(items, mode)),
		Streak: streak,
		Week:   WeeklyHistogram(items, mode, ref),
	}
	for _, c := range Categories {
		e.Sections = append(e.Sections, ExportSection{
			Category: c,
			Label:    c.Label(),
			Items:    (Query{Mode: mode, Category: c}).filter(items),
		})
	}
	return e
}

func (q Query) filter(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if q.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

func filterMode(items []Item, mode Mode) []Item {
	return Query{Mode: mode}.filter(items)
}

func dayWord(n int) string {
	if n > 1 {
		return "jours"
	}
	return "jour"
}
