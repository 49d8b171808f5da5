package cli

import (
	"fmt"

	"itemdeck/internal/collection"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store := collection.New(newClient())
	defer store.Close()

	if err := store.Delete(cmd.Context(), id); err != nil {
		return err
	}
	if !jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d\n", id)
	}
	return nil
}
