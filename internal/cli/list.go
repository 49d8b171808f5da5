package cli

import (
	"fmt"

	"itemdeck/internal/core/listview"

	"github.com/spf13/cobra"
)

var (
	listSearch string
	listSort   string
	listOrder  string
	listPage   int
	listSize   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show one page of the collection",
	Long: `Fetch the collection and show one page of it.

Records are filtered by a case-insensitive substring of the name or
description, sorted, then paginated. Page sizes are 5, 10, 25 or 50.

Examples:
  itemsctl list
  itemsctl list --search an --sort name --order desc
  itemsctl list --size 5 --page 3
  itemsctl list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only show records whose name or description contains TERM")
	listCmd.Flags().StringVar(&listSort, "sort", string(listview.SortByID), "Sort field: name or id")
	listCmd.Flags().StringVar(&listOrder, "order", string(listview.Ascending), "Sort order: asc or desc")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number, starting at 1")
	listCmd.Flags().IntVar(&listSize, "size", listview.DefaultPageSize, "Page size: 5, 10, 25 or 50")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	params, err := listParams()
	if err != nil {
		return err
	}

	all, err := newClient().List(cmd.Context())
	if err != nil {
		return err
	}

	snap := listview.Compute(all, params).Snapshot()
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), snap)
	}
	renderSnapshot(cmd.OutOrStdout(), snap)
	return nil
}

func listParams() (listview.Params, error) {
	p := listview.DefaultParams()
	p.SearchTerm = listSearch

	field, ok := listview.ParseSortField(listSort)
	if !ok {
		return p, fmt.Errorf("invalid --sort %q (want name or id)", listSort)
	}
	order, ok := listview.ParseSortOrder(listOrder)
	if !ok {
		return p, fmt.Errorf("invalid --order %q (want asc or desc)", listOrder)
	}
	if !listview.ValidPageSize(listSize) {
		return p, fmt.Errorf("invalid --size %d (want one of %v)", listSize, listview.PageSizes)
	}
	if listPage < 1 {
		return p, fmt.Errorf("invalid --page %d", listPage)
	}
	p.SortField = field
	p.SortOrder = order
	p.PageSize = listSize
	p.PageIndex = listPage
	return p, nil
}
