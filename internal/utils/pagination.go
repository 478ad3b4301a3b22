package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// NewPagination creates pagination info. perPage <= 0 means a single page.
func NewPagination(total, perPage, current int) *PaginationInfo {
	if perPage <= 0 {
		perPage = max(total, 1)
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	return &PaginationInfo{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// GetRange returns the range of items on the current page (1-indexed)
func (p *PaginationInfo) GetRange() (start, end int) {
	start = p.Offset + 1
	end = min(p.Offset+p.PerPage, p.Total)
	return start, end
}

// Window returns the [lo, hi) slice bounds of the current page.
func (p *PaginationInfo) Window() (lo, hi int) {
	lo = min(p.Offset, p.Total)
	hi = min(p.Offset+p.PerPage, p.Total)
	return lo, hi
}

// HasNext returns true if there's a next page
func (p *PaginationInfo) HasNext() bool {
	return p.Current < p.TotalPages
}

// HasPrev returns true if there's a previous page
func (p *PaginationInfo) HasPrev() bool {
	return p.Current > 1
}

// FormatSummary returns a human-readable summary
func (p *PaginationInfo) FormatSummary() string {
	if p.Total == 0 {
		return "Aucun résultat"
	}

	start, end := p.GetRange()
	if p.TotalPages == 1 {
		return fmt.Sprintf("%d-%d sur %d", start, end, p.Total)
	}
	return fmt.Sprintf("%d-%d sur %d (page %d/%d)", start, end, p.Total, p.Current, p.TotalPages)
}

// FormatNavigation returns navigation hints for CLI
func (p *PaginationInfo) FormatNavigation() string {
	if p.TotalPages <= 1 {
		return ""
	}

	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("--page %d pour la page précédente", p.Current-1))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("--page %d pour la suivante", p.Current+1))
	}
	return strings.Join(hints, ", ")
}

// ParsePage parses a --page value: a number, "first" or "last".
func ParsePage(pageStr string, totalPages int) (int, error) {
	s := strings.TrimSpace(strings.ToLower(pageStr))
	switch s {
	case "", "first":
		return 1, nil
	case "last":
		return max(totalPages, 1), nil
	}

	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1, fmt.Errorf("invalid page number: %q", pageStr)
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page, nil
}
