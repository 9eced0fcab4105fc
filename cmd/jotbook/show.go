// Show command displays a single note.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note by ID",
	Long: `Show looks up one note by ID, scoped to the current owner. A note
that does not exist, or belongs to a different owner, reads as not
found.

Example:
  jotbook show 7
  jotbook show 7 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	note, err := service.Get(owner, id)
	if errors.Is(err, types.ErrNotFound) {
		// Nothing to show; this is an empty result, not a fault.
		fmt.Printf("Note %d not found.\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("show note: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(note, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal note: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("ID:      %d\n", note.ID)
	fmt.Printf("Title:   %s\n", note.Title)
	fmt.Printf("Emoji:   %d\n", note.Emoji)
	fmt.Printf("Created: %s\n", formatCreated(note.CreationTime))
	if note.ImagePath != "" {
		fmt.Printf("Image:   %s\n", note.ImagePath)
	}
	if note.Description != "" {
		fmt.Printf("\n%s\n", note.Description)
	}
	return nil
}
