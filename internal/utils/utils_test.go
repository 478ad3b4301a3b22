package utils

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/mindclean/internal/engine"
)

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func sampleList() *ItemList {
	items := []engine.Item{
		{ID: "0f3c2a9e-1111", Text: "appeler le plombier", Category: engine.CategoryTodo, Mode: engine.ModeDump, CreatedAt: now},
		{ID: "7ab1c3d4-2222", Text: "je me sens, \"vidé\"", Category: engine.CategoryIntrospect, Mode: engine.ModeConfide, CreatedAt: now.Add(-time.Hour)},
	}
	return &ItemList{Items: items, Total: len(items), Page: 1, PerPage: 10, TotalPages: 1}
}

func plainRenderer(f OutputFormat) *Renderer {
	return NewRenderer(&RenderConfig{Format: f, Width: 80, ShowID: true, ShowDate: true, ShowMode: true, Location: time.UTC})
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, f)
	f, err = ParseOutputFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	_, err = ParseOutputFormat("xml")
	require.Error(t, err)
}

func TestRenderDefault(t *testing.T) {
	out, err := plainRenderer(FormatDefault).RenderItemList(sampleList())
	require.NoError(t, err)
	assert.Contains(t, out, "[0f3c2a9e]")
	assert.Contains(t, out, "2026-10-17 09:30")
	assert.Contains(t, out, "✅ À faire")
	assert.Contains(t, out, "  appeler le plombier")

	out, err = plainRenderer(FormatDefault).RenderItemList(&ItemList{})
	require.NoError(t, err)
	assert.Contains(t, out, engine.EmptySection)
}

func TestRenderJSON(t *testing.T) {
	out, err := plainRenderer(FormatJSON).RenderItemList(sampleList())
	require.NoError(t, err)

	var decoded ItemList
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, engine.CategoryIntrospect, decoded.Items[1].Category)
	assert.Equal(t, 2, decoded.Total)
}

func TestRenderCSVQuotes(t *testing.T) {
	out, err := plainRenderer(FormatCSV).RenderItemList(sampleList())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,created_at,mode,category,text", lines[0])
	assert.Equal(t, `7ab1c3d4-2222,2026-10-17T08:30:00Z,confide,introspect,"je me sens, ""vidé"""`, lines[2])
}

func TestRenderQuietAndCompact(t *testing.T) {
	out, err := plainRenderer(FormatQuiet).RenderItemList(sampleList())
	require.NoError(t, err)
	assert.Equal(t, "appeler le plombier\nje me sens, \"vidé\"\n", out)

	out, err = plainRenderer(FormatCompact).RenderItemList(sampleList())
	require.NoError(t, err)
	assert.Contains(t, out, "0f3c2a9e ✅ appeler le plombier")
}

func TestRenderTable(t *testing.T) {
	out, err := plainRenderer(FormatTable).RenderItemList(sampleList())
	require.NoError(t, err)
	assert.Contains(t, out, "CATÉGORIE")
	assert.Contains(t, out, "Introspection")
}

func TestRenderHistogram(t *testing.T) {
	var h engine.Histogram
	for i := range h.Days {
		h.Days[i] = engine.DayCount{Label: "lun.", Count: 0}
	}
	h.Days[6].Count = 4
	h.Days[5].Count = 1
	h.MaxCount = 4

	lines := strings.Split(strings.TrimRight(plainRenderer(FormatDefault).RenderHistogram(h), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, barWidth, strings.Count(lines[6], "█"))
	assert.Equal(t, barWidth/4, strings.Count(lines[5], "█"))
	assert.Zero(t, strings.Count(lines[0], "█"))
}

func TestRenderTotals(t *testing.T) {
	out := plainRenderer(FormatDefault).RenderTotals(sampleList().Items)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], " 1"))
	assert.True(t, strings.HasSuffix(lines[1], " 0"))
}

func TestTruncateAndShortID(t *testing.T) {
	assert.Equal(t, "court", Truncate("court", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "0f3c2a9e", ShortID("0f3c2a9e-aaaa-bbbb"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestPagination(t *testing.T) {
	p := NewPagination(25, 10, 3)
	assert.Equal(t, 3, p.TotalPages)
	lo, hi := p.Window()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
	assert.Equal(t, "21-25 sur 25 (page 3/3)", p.FormatSummary())
	assert.Equal(t, "--page 2 pour la page précédente", p.FormatNavigation())

	p = NewPagination(25, 10, 99)
	assert.Equal(t, 3, p.Current)

	p = NewPagination(4, 0, 1)
	lo, hi = p.Window()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
	assert.Empty(t, p.FormatNavigation())

	assert.Equal(t, "Aucun résultat", NewPagination(0, 10, 1).FormatSummary())
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage("last", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, page)
	page, err = ParsePage("9", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, page)
	_, err = ParsePage("zéro", 4)
	require.Error(t, err)
}

func TestParseRefDate(t *testing.T) {
	loc := time.FixedZone("CEST", 2*3600)
	noon := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 12, 0, 0, 0, loc) }

	cases := []struct {
		in   string
		want time.Time
	}{
		{"", now.In(loc)},
		{"aujourd'hui", now.In(loc)},
		{"hier", noon(2026, 10, 16)},
		{"yesterday", noon(2026, 10, 16)},
		{"3 days ago", noon(2026, 10, 14)},
		{"il y a 2 semaines", noon(2026, 10, 3)},
		{"2026-09-01", noon(2026, 9, 1)},
		{"01/09/2026", noon(2026, 9, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRefDate(tc.in, now, loc)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseRefDate("la saint-glinglin", now, loc)
	require.Error(t, err)
}

func TestDayRange(t *testing.T) {
	from, to := DayRange(time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC), 7)
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), to)
}
