package cli

import (
	"errors"
	"fmt"

	"itemdeck/internal/collection"
	"itemdeck/internal/domain/item"
	"itemdeck/internal/form"

	"github.com/spf13/cobra"
)

var (
	addTitle       string
	addDescription string
)

var errNameRequired = errors.New("a name or title is required")

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new record",
	Long: `Add a new record to the collection.

A record needs a name or a title.

Examples:
  itemsctl add Mango
  itemsctl add Mango --description "Tropical stone fruit"
  itemsctl add --title "Groceries" --description "milk, eggs"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Title, used when the record has no name")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store := collection.New(newClient())
	defer store.Close()

	f := form.New(store, nil)
	if len(args) == 1 {
		_ = f.Set("name", args[0])
	}
	_ = f.Set("title", addTitle)
	_ = f.Set("description", addDescription)

	saved, submitted, err := f.Submit(cmd.Context())
	if err != nil {
		return err
	}
	if !submitted {
		return errNameRequired
	}
	return printSaved(cmd, "Added", saved)
}

func printSaved(cmd *cobra.Command, verb string, it item.Item) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), it)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n", verb, it.ID, it.DisplayName())
	return nil
}
