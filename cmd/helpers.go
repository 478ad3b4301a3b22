package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

// now drives item timestamps, the streak day and relative --date values.
var now = time.Now

func nowIn() time.Time { return now().In(cfg.Location()) }

// modeFlag parses a --mode value; empty means fallback.
func modeFlag(s string, fallback engine.Mode) (engine.Mode, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return engine.ParseMode(s)
}

// categoryFlag parses a --category value; empty means automatic.
func categoryFlag(s string) (engine.Category, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return engine.ParseCategory(s)
}

// resolveID finds the item whose id starts with prefix.
// ok is false when nothing matches; an ambiguous prefix is an error.
func resolveID(s *engine.Session, prefix string) (engine.Item, bool, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return engine.Item{}, false, fmt.Errorf("empty id")
	}
	if it, ok := s.Get(prefix); ok {
		return it, true, nil
	}
	var found []engine.Item
	for _, it := range s.Query(engine.Query{}) {
		if strings.HasPrefix(it.ID, prefix) {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 0:
		return engine.Item{}, false, nil
	case 1:
		return found[0], true, nil
	default:
		return engine.Item{}, false, fmt.Errorf("id %q is ambiguous (%d items)", prefix, len(found))
	}
}

// parseRef resolves a --date flag in the configured timezone.
func parseRef(s string) (time.Time, error) {
	return utils.ParseRefDate(s, now(), cfg.Location())
}
