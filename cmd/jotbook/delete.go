// Delete and clear commands remove notes. Deletion is immediate and
// physical; there is no soft delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note by ID",
	Long: `Delete removes the note matching both the ID and the current owner.
A note owned by someone else is left untouched.

Example:
  jotbook delete 7`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := service.Delete(owner, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	fmt.Printf("Deleted note %d\n", id)
	return nil
}

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every note of the current owner",
	Long: `Clear removes all notes belonging to the current owner. Requires
--yes; there is no undo.

Example:
  jotbook clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm removing every note of the owner")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("clear removes every note of the owner; pass --yes to confirm")
	}

	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := service.Clear(owner); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}

	fmt.Printf("Cleared all notes for %s\n", owner)
	return nil
}
