package tui

import (
	"fmt"
	"strconv"

	"moviebrowser/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Column widths for movie rows.
const (
	colTitle = 42
	colScore = 5
	colYear  = 4
	colGross = 16
)

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func formatScore(m domain.Movie) string {
	if m.ImdbScore == nil {
		return "-"
	}
	return strconv.FormatFloat(*m.ImdbScore, 'f', 1, 64)
}

func formatYear(m domain.Movie) string {
	if m.TitleYear == nil {
		return "-"
	}
	return strconv.Itoa(*m.TitleYear)
}

func formatGross(m domain.Movie) string {
	if m.Gross == nil {
		return "-"
	}
	return printer.Sprintf("$%d", *m.Gross)
}

func formatTitle(m domain.Movie) string {
	if m.MovieTitle == nil {
		return "(untitled)"
	}
	return truncate(*m.MovieTitle, colTitle)
}

func movieRow(m domain.Movie) string {
	return fmt.Sprintf("%-*s  %*s  %*s  %*s",
		colTitle, formatTitle(m),
		colScore, formatScore(m),
		colYear, formatYear(m),
		colGross, formatGross(m),
	)
}

func headerRow() string {
	return fmt.Sprintf("%-*s  %*s  %*s  %*s",
		colTitle, "Title",
		colScore, "Score",
		colYear, "Year",
		colGross, "Gross",
	)
}

// pageSummary matches the web page footer: "Total: 120, page 0 of 4".
func pageSummary(total int64, page int) string {
	return printer.Sprintf("Total: %d, page %d of %d", total, page, domain.LastPage(total))
}
