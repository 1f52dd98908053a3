package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"moviebrowser/internal/domain"
)

// RenderPlain writes one page as an unstyled table.
func RenderPlain(w io.Writer, page int, res domain.PageResult) error {
	if _, err := fmt.Fprintln(w, headerRow()); err != nil {
		return err
	}
	for _, m := range res.Items {
		if _, err := fmt.Fprintln(w, movieRow(m)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, pageSummary(res.TotalCount, page))
	return err
}

// RenderJSON writes one page in the API wire format.
func RenderJSON(w io.Writer, res domain.PageResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
