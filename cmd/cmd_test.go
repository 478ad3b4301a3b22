package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

// resetFlags restores every flag variable; cobra keeps values between Execute calls.
func resetFlags() {
	cfgPath, dataDir, logLevel, noReminder = "", "", "", false
	dumpCategory, confideCategory = "", ""
	listMode, listCategory, listFormat, listLimit, listPage, listNoColor = "", "", "default", 0, "1", false
	searchMode, searchCategory, searchFormat, searchLimit = "", "", "default", 50
	statsMode, statsDate, statsDays, statsNoColor = "", "", 0, false
	exportMode, exportDate, exportFormat, exportOut = "", "", "text", ""
	exportSave, exportCopy, exportRender = false, false, false
	classifyJSON, versionShort, tuiMode = false, false, ""
}

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, dir, "", args...)
}

// executeIn runs the root command against dir with stdin as standard input.
func executeIn(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	base := []string{"--config", filepath.Join(dir, "config.yaml"), "--data-dir", filepath.Join(dir, "data"), "--no-reminder"}
	rootCmd.SetArgs(append(base, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := execute(t, dir, args...)
	require.NoError(t, err, out)
	return out
}

func listItems(t *testing.T, dir string, args ...string) []engine.Item {
	t.Helper()
	out := mustExecute(t, dir, append([]string{"list", "--format", "json"}, args...)...)
	var list utils.ItemList
	require.NoError(t, json.Unmarshal([]byte(out), &list), out)
	return list.Items
}

func TestDischargeListMoveRemove(t *testing.T) {
	dir := t.TempDir()

	out := mustExecute(t, dir, "dump", "je", "dois", "appeler", "le", "plombier")
	assert.Contains(t, out, "✅ À faire")
	assert.Contains(t, out, "🔥 streak: 1")

	out = mustExecute(t, dir, "confide", "je me sens seul ce soir")
	assert.Contains(t, out, "🧘 Introspection")

	out = mustExecute(t, dir, "dump", "-c", "forget", "acheter du pain")
	assert.Contains(t, out, "🗑️ À oublier")

	_, err := execute(t, dir, "dump", "   ")
	require.EqualError(t, err, "rien à décharger")

	items := listItems(t, dir)
	require.Len(t, items, 3)
	assert.Equal(t, "acheter du pain", items[0].Text)
	assert.Equal(t, "je dois appeler le plombier", items[2].Text)

	out = mustExecute(t, dir, "list", "-m", "confide", "--format", "quiet")
	assert.Equal(t, "je me sens seul ce soir\n", out)

	plumber := items[2]
	out = mustExecute(t, dir, "move", utils.ShortID(plumber.ID), "delegate")
	assert.Contains(t, out, "🤝 À déléguer")
	moved := listItems(t, dir, "-c", "delegate")
	require.Len(t, moved, 1)
	assert.Equal(t, plumber.ID, moved[0].ID)

	out = mustExecute(t, dir, "move", "zzzzzzzz", "todo")
	assert.Contains(t, out, "aucun élément avec l'id zzzzzzzz")

	_, err = execute(t, dir, "move", plumber.ID, "urgent")
	require.ErrorIs(t, err, engine.ErrUnknownCategory)

	out = mustExecute(t, dir, "rm", plumber.ID)
	assert.Contains(t, out, "supprimé")
	assert.Len(t, listItems(t, dir), 2)

	out = mustExecute(t, dir, "rm", plumber.ID)
	assert.Contains(t, out, "aucun élément")
}

// pinNow freezes the command clock at at until the test ends.
func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	old := now
	t.Cleanup(func() { now = old })
	now = func() time.Time { return at }
}

func TestStreakAcrossDays(t *testing.T) {
	dir := t.TempDir()
	day1 := time.Date(2026, 10, 16, 20, 0, 0, 0, time.Local)

	pinNow(t, day1)
	out := mustExecute(t, dir, "dump", "acheter du pain")
	assert.Contains(t, out, "🔥 streak: 1")
	out = mustExecute(t, dir, "dump", "la météo")
	assert.Contains(t, out, "🔥 streak: 1")

	pinNow(t, day1.AddDate(0, 0, 1))
	out = mustExecute(t, dir, "dump", "je dois appeler le plombier")
	assert.Contains(t, out, "🔥 streak: 2")

	items := listItems(t, dir)
	require.Len(t, items, 3)
	assert.Equal(t, "je dois appeler le plombier", items[0].Text)
	assert.True(t, items[0].CreatedAt.Equal(day1.AddDate(0, 0, 1)))
	assert.True(t, items[2].CreatedAt.Equal(day1))

	out = mustExecute(t, dir, "stats", "--no-color")
	assert.Contains(t, out, "🔥 Streak: 2 jours")
}

func TestDumpFromStdin(t *testing.T) {
	dir := t.TempDir()
	out, err := executeIn(t, dir, "finir le rapport\n\n  la météo  \n", "dump", "-")
	require.NoError(t, err, out)
	assert.Contains(t, out, "✅ À faire")
	assert.Contains(t, out, "🗑️ À oublier")
	assert.Len(t, listItems(t, dir), 2)

	_, err = executeIn(t, dir, "\n  \n", "dump", "-")
	require.EqualError(t, err, "rien à décharger")
}

func TestListPaging(t *testing.T) {
	dir := t.TempDir()
	for _, s := range []string{"un", "deux", "trois"} {
		mustExecute(t, dir, "dump", s)
	}
	out := mustExecute(t, dir, "list", "--format", "quiet", "--limit", "2", "--page", "last")
	assert.Equal(t, "un\n", out)

	out = mustExecute(t, dir, "list", "--limit", "2", "--no-color")
	assert.Contains(t, out, "1-2 sur 3 (page 1/2)")

	_, err := execute(t, dir, "list", "--format", "xml")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "dump", "acheter du pain")
	mustExecute(t, dir, "confide", "pourquoi je doute autant")

	out := mustExecute(t, dir, "export", "-m", "dump", "--date", "2026-10-17")
	assert.Contains(t, out, "🔥 MindClean - Vider ma tête - Export du samedi 17 octobre 2026")
	assert.Contains(t, out, "📊 Total: 1 éléments • Streak: 1 jour")
	assert.Contains(t, out, "• 🧠 acheter du pain")
	assert.NotContains(t, out, "doute")

	out = mustExecute(t, dir, "export", "-m", "confide", "--format", "json", "--date", "2026-10-17")
	var exp engine.Export
	require.NoError(t, json.Unmarshal([]byte(out), &exp), out)
	assert.Equal(t, engine.ModeConfide, exp.Mode)
	assert.Equal(t, 1, exp.Total)
	assert.Equal(t, "2026-10-17", exp.Date)

	out = mustExecute(t, dir, "export", "--format", "yaml", "--date", "2026-10-17")
	assert.Contains(t, out, "mode: dump")

	out = mustExecute(t, dir, "export", "--format", "markdown", "--date", "2026-10-17")
	assert.Contains(t, out, "## ✅ À faire (1)")

	path := filepath.Join(dir, "out", "report.txt")
	out = mustExecute(t, dir, "export", "--out", path, "--date", "2026-10-17")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "🔥 MindClean - Vider ma tête"))

	var copied string
	old := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = old })
	out = mustExecute(t, dir, "export", "--copy")
	assert.Contains(t, out, "📋 rapport copié")
	assert.Contains(t, copied, "• 🧠 acheter du pain")

	_, err = execute(t, dir, "export", "--format", "pdf")
	require.Error(t, err)
}

func TestStatsAndSearch(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "dump", "je dois appeler le plombier")
	mustExecute(t, dir, "dump", "demander au voisin")

	out := mustExecute(t, dir, "stats", "--no-color", "--days", "10")
	assert.Contains(t, out, "🔥 Streak: 1 jour")
	assert.Contains(t, out, "📊 Total: 2 éléments")
	assert.Contains(t, out, "7 derniers jours (2)")
	assert.Contains(t, out, "10 derniers jours")

	out = mustExecute(t, dir, "search", "PLOMBIER", "--format", "quiet")
	assert.Equal(t, "je dois appeler le plombier\n", out)

	out = mustExecute(t, dir, "search", "introuvable", "--format", "quiet")
	assert.Empty(t, out)
}

func TestClassifyDoesNotStore(t *testing.T) {
	dir := t.TempDir()
	out := mustExecute(t, dir, "classify", "je", "dois", "payer", "le", "loyer")
	assert.Equal(t, "✅ À faire\n", out)

	out = mustExecute(t, dir, "classify", "--json", "la météo")
	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "forget", res["category"])

	assert.Empty(t, listItems(t, dir))
}

func TestEncryptedConfide(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("privacy:\n  encrypt_confide: true\n"), 0o644))

	_, err := execute(t, dir, "confide", "secret")
	require.ErrorContains(t, err, "passphrase")

	t.Setenv("MINDCLEAN_PRIVACY_PASSPHRASE", "pw")
	mustExecute(t, dir, "confide", "j'ai peur du noir")
	items := listItems(t, dir)
	require.Len(t, items, 1)
	assert.Equal(t, "j'ai peur du noir", items[0].Text)

	raw, err := os.ReadFile(filepath.Join(dir, "data", "mindclean.db"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "peur du noir")
}

func TestVersion(t *testing.T) {
	out := mustExecute(t, t.TempDir(), "version", "--short")
	assert.True(t, strings.HasPrefix(out, "MindClean "), out)
}

func TestRemindersOn(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	cfg.Reminder.Enabled = true
	t.Setenv("MINDCLEAN_NO_REMINDER", "")
	assert.True(t, remindersOn())

	noReminder = true
	assert.False(t, remindersOn())

	noReminder = false
	t.Setenv("MINDCLEAN_NO_REMINDER", "1")
	assert.False(t, remindersOn())
}
