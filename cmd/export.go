package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ramanasai/mindclean/internal/engine"
)

var (
	exportMode   string
	exportDate   string
	exportFormat string
	exportOut    string
	exportSave   bool
	exportCopy   bool
	exportRender bool
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the report of one mode",
	Long: `Examples:
	mindclean export                            # text report on stdout
	mindclean export --save                     # writes mindclean_YYYY-MM-DD.txt
	mindclean export -m confide --copy          # copy to the clipboard
	mindclean export --format markdown --render
	mindclean export --format json --out report.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFlag(exportMode, defaultMode())
		if err != nil {
			return err
		}
		ref, err := parseRef(exportDate)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		items := a.session.Query(engine.Query{})
		streak := a.session.Streak().Count
		report, err := buildReport(exportFormat, items, mode, streak, ref)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		path := exportOut
		if exportSave && path == "" {
			path = engine.ReportFilename(ref)
			if ext := formatExt(exportFormat); ext != ".txt" {
				path = strings.TrimSuffix(path, ".txt") + ext
			}
		}
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(out, "💾 rapport enregistré: %s\n", path)
		}
		if exportCopy {
			if err := copyToClipboard(report); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(out, "📋 rapport copié")
		}
		if path != "" || exportCopy {
			return nil
		}

		if exportRender {
			md := report
			if !isFormat(exportFormat, "markdown") {
				md = engine.FormatMarkdown(items, mode, streak, ref)
			}
			rendered, err := renderMarkdown(md, 80)
			if err != nil {
				return err
			}
			report = rendered
		}
		_, err = fmt.Fprintln(out, report)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportMode, "mode", "m", "", "Mode: dump|confide (default from config)")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Report date: today, hier, 2026-10-01…")
	exportCmd.Flags().StringVar(&exportFormat, "format", "text", "Format: text, json, yaml, markdown")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the report to this file")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "Write the report to mindclean_YYYY-MM-DD.txt")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy the report to the clipboard")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "Render the report as styled markdown")
}

func buildReport(format string, items []engine.Item, mode engine.Mode, streak int, ref time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		return engine.FormatReport(items, mode, streak, ref), nil
	case "markdown", "md":
		return engine.FormatMarkdown(items, mode, streak, ref), nil
	case "json":
		b, err := json.MarshalIndent(engine.BuildExport(items, mode, streak, ref), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(b), nil
	case "yaml", "yml":
		b, err := yaml.Marshal(engine.BuildExport(items, mode, streak, ref))
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown format %q (text, json, yaml, markdown)", format)
	}
}

func isFormat(format, want string) bool {
	f := strings.ToLower(strings.TrimSpace(format))
	return f == want || (want == "markdown" && f == "md")
}

func formatExt(format string) string {
	switch {
	case isFormat(format, "markdown"):
		return ".md"
	case isFormat(format, "json"):
		return ".json"
	case isFormat(format, "yaml"), isFormat(format, "yml"):
		return ".yaml"
	default:
		return ".txt"
	}
}

// renderMarkdown styles md for the terminal; MINDCLEAN_MD_STYLE picks dark, light or notty.
func renderMarkdown(md string, width int) (string, error) {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("MINDCLEAN_MD_STYLE")))
	switch style {
	case "light", "dark", "notty":
	default:
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
