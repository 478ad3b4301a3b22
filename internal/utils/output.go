package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/ramanasai/mindclean/internal/engine"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact, FormatQuiet:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (default, table, json, csv, compact, quiet)", s)
	}
}

// ShortIDLen is how many id characters the human formats print.
const ShortIDLen = 8

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format   OutputFormat
	Width    int
	ShowID   bool
	ShowDate bool
	ShowMode bool
	Color    bool
	Location *time.Location
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}

	return &RenderConfig{
		Format:   FormatDefault,
		Width:    width,
		ShowID:   true,
		ShowDate: true,
		ShowMode: true,
		Color:    os.Getenv("NO_COLOR") == "",
		Location: time.Local,
	}
}

// ItemList is a page of items plus the filters that produced it.
type ItemList struct {
	Items      []engine.Item     `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page,omitempty"`
	PerPage    int               `json:"per_page,omitempty"`
	TotalPages int               `json:"total_pages,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	ID        lipgloss.Style
	Category  lipgloss.Style
	Text      lipgloss.Style
	Bar       lipgloss.Style
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

func initStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:     plain.Bold(true),
			Separator: plain,
			Meta:      plain,
			ID:        plain,
			Category:  plain.Bold(true),
			Text:      plain,
			Bar:       plain,
			Highlight: plain.Bold(true),
			Success:   plain,
			Warning:   plain,
		}
	}
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Meta:      lipgloss.NewStyle().Faint(true),
		ID:        lipgloss.NewStyle().Faint(true),
		Category:  lipgloss.NewStyle().Bold(true),
		Text:      lipgloss.NewStyle(),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
	}
}

// Styles exposes the renderer's style set to commands.
func (r *Renderer) Styles() *Styles { return r.styles }

// RenderItemList renders a list of items according to the configured format
func (r *Renderer) RenderItemList(list *ItemList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list), nil
	case FormatCompact:
		return r.renderCompact(list), nil
	case FormatQuiet:
		return r.renderQuiet(list), nil
	default:
		return r.renderDefault(list), nil
	}
}

func (r *Renderer) rule() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 80)))
}

func (r *Renderer) renderDefault(list *ItemList) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("🔥 MindClean"))
	for _, k := range []string{"mode", "category"} {
		if v := list.Filters[k]; v != "" {
			b.WriteString("  ")
			b.WriteString(r.styles.Meta.Render(k + ": " + v))
		}
	}
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")

	if len(list.Items) == 0 {
		b.WriteString(r.styles.Meta.Render(engine.EmptySection))
		b.WriteString("\n")
		return b.String()
	}

	for _, it := range list.Items {
		b.WriteString(r.renderSingleItem(it))
	}

	if list.TotalPages > 1 {
		b.WriteString(r.rule())
		b.WriteString("\n")
		p := NewPagination(list.Total, list.PerPage, list.Page)
		b.WriteString(r.styles.Meta.Render(p.FormatSummary()))
		b.WriteString("\n")
		if nav := p.FormatNavigation(); nav != "" {
			b.WriteString(r.styles.Meta.Render(nav))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderSingleItem(it engine.Item) string {
	var meta []string
	if r.config.ShowID {
		meta = append(meta, r.styles.ID.Render("["+ShortID(it.ID)+"]"))
	}
	if r.config.ShowDate {
		meta = append(meta, r.styles.Meta.Render(it.CreatedAt.In(r.config.Location).Format("2006-01-02 15:04")))
	}
	meta = append(meta, r.styles.Category.Foreground(ColorForCategory(it.Category)).Render(it.Category.Icon()+" "+it.Category.Label()))
	if r.config.ShowMode {
		meta = append(meta, r.styles.Meta.Render(it.Mode.Icon()))
	}

	var b strings.Builder
	b.WriteString(strings.Join(meta, "  "))
	b.WriteString("\n")
	b.WriteString(r.styles.Text.Render("  " + oneLine(it.Text)))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderJSON(list *ItemList) (string, error) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func (r *Renderer) renderCSV(list *ItemList) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{"id", "created_at", "mode", "category", "text"}}
	for _, it := range list.Items {
		rows = append(rows, []string{
			it.ID,
			it.CreatedAt.In(r.config.Location).Format(time.RFC3339),
			string(it.Mode),
			string(it.Category),
			it.Text,
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderTable(list *ItemList) string {
	textW := max(r.config.Width-48, 20)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Separator).
		Headers("ID", "DATE", "MODE", "CATÉGORIE", "TEXTE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Category
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, it := range list.Items {
		t.Row(
			ShortID(it.ID),
			it.CreatedAt.In(r.config.Location).Format("01-02 15:04"),
			it.Mode.Icon(),
			it.Category.Label(),
			Truncate(oneLine(it.Text), textW),
		)
	}
	return t.Render() + "\n"
}

func (r *Renderer) renderCompact(list *ItemList) string {
	var b strings.Builder
	for _, it := range list.Items {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.styles.ID.Render(ShortID(it.ID)),
			it.Category.Icon(),
			Truncate(oneLine(it.Text), max(r.config.Width-14, 20)))
	}
	return b.String()
}

// renderQuiet renders only the item text (for scripting)
func (r *Renderer) renderQuiet(list *ItemList) string {
	var b strings.Builder
	for _, it := range list.Items {
		b.WriteString(oneLine(it.Text))
		b.WriteString("\n")
	}
	return b.String()
}

const barWidth = 30

// RenderHistogram draws one bar per day, scaled to the busiest day.
func (r *Renderer) RenderHistogram(h engine.Histogram) string {
	var b strings.Builder
	for _, dc := range h.Days {
		n := dc.Count * barWidth / h.MaxCount
		if dc.Count > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%-5s %s%s %d\n",
			dc.Label,
			r.styles.Bar.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", barWidth-n),
			dc.Count)
	}
	return b.String()
}

// RenderTotals lists per-category counts in the fixed category order.
func (r *Renderer) RenderTotals(items []engine.Item) string {
	counts := map[engine.Category]int{}
	for _, it := range items {
		counts[it.Category]++
	}
	var b strings.Builder
	for _, c := range engine.Categories {
		label := r.styles.Category.Foreground(ColorForCategory(c)).Render(c.Label())
		fmt.Fprintf(&b, "%s %s %s\n", c.Icon(), padRight(label, 16), strconv.Itoa(counts[c]))
	}
	return b.String()
}

// ShortID trims a uuid to its first ShortIDLen characters.
func ShortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}
	return id
}

// Truncate cuts s to width terminal cells, adding an ellipsis when shortened.
func Truncate(s string, width int) string {
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}

func padRight(s string, width int) string {
	if w := xansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ColorForCategory returns the accent color of a category.
func ColorForCategory(c engine.Category) lipgloss.Color {
	switch c {
	case engine.CategoryTodo:
		return lipgloss.Color("#A6E3A1") // green
	case engine.CategoryDelegate:
		return lipgloss.Color("#89B4FA") // blue
	case engine.CategoryIntrospect:
		return lipgloss.Color("#CBA6F7") // mauve
	default:
		return lipgloss.Color("#6C7086") // gray
	}
}
