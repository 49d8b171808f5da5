package cli

import (
	"fmt"
	"strconv"

	"itemdeck/internal/collection"
	"itemdeck/internal/form"

	"github.com/spf13/cobra"
)

var (
	editName        string
	editTitle       string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of an existing record",
	Long: `Change fields of an existing record. Only the flags given are changed.

Examples:
  itemsctl edit 2 --name Plantain
  itemsctl edit 2 --description "Cooking banana"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	store := collection.New(c)
	defer store.Close()

	f := form.New(store, nil)
	f.Load(&current)
	for _, field := range []struct {
		flag  string
		value string
	}{
		{"name", editName},
		{"title", editTitle},
		{"description", editDescription},
	} {
		if cmd.Flags().Changed(field.flag) {
			_ = f.Set(field.flag, field.value)
		}
	}

	saved, submitted, err := f.Submit(cmd.Context())
	if err != nil {
		return err
	}
	if !submitted {
		return errNameRequired
	}
	return printSaved(cmd, "Updated", saved)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
