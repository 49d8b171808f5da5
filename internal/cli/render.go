package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"itemdeck/internal/core/listview"
	"itemdeck/internal/domain/item"
)

// renderSnapshot prints one page of the list view with its controls.
func renderSnapshot(w io.Writer, s listview.Snapshot) {
	search := s.SearchTerm
	if search == "" {
		search = "-"
	}
	fmt.Fprintf(w, "Search: %s   Sort: [%s] [%s]   Page size: %d\n",
		search, s.SortLabel(listview.SortByName), s.SortLabel(listview.SortByID), s.PageSize)

	if len(s.Items) == 0 {
		fmt.Fprintln(w, "No items found.")
	} else {
		renderItems(w, s.Items)
	}

	fmt.Fprintln(w, s.ResultsLabel())
	fmt.Fprintf(w, "%s %s %s\n", control("prev", s.HasPrevious()), s.PageLabel(), control("next", s.HasNext()))
}

func renderItems(w io.Writer, items []item.Item) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", it.ID, it.DisplayName(), it.Description)
	}
	tw.Flush()
}

func control(label string, enabled bool) string {
	if enabled {
		return "[" + label + "]"
	}
	return "(" + label + ")"
}

func renderError(w io.Writer, msg string) {
	fmt.Fprintf(w, "Error: %s\n", strings.TrimSpace(msg))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
