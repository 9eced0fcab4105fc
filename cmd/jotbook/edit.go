// Edit command rewrites a note's mutable fields.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

var (
	editTitle string
	editDesc  string
	editEmoji int
	editImage string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long: `Edit rewrites the provided fields of an existing note. Fields not
passed as flags keep their stored values; the creation time never
changes.

Example:
  jotbook edit 7 --title "New title"
  jotbook edit 7 --desc "updated text" --emoji 2
  jotbook edit 7 --image photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title (non-blank)")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "new description")
	editCmd.Flags().IntVar(&editEmoji, "emoji", 0, "new emoji marker identifier")
	editCmd.Flags().StringVar(&editImage, "image", "", "new image file to attach")
}

func runEdit(cmd *cobra.Command, args []string) error {
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
		fmt.Printf("Note %d not found.\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("edit note: %w", err)
	}

	if cmd.Flags().Changed("title") {
		note.Title = editTitle
	}
	if cmd.Flags().Changed("desc") {
		note.Description = editDesc
	}
	if cmd.Flags().Changed("emoji") {
		note.Emoji = editEmoji
	}
	if cmd.Flags().Changed("image") {
		imagePath, err := importImage(editImage)
		if err != nil {
			return fmt.Errorf("attach image: %w", err)
		}
		note.ImagePath = imagePath
	}

	if err := service.Update(owner, note); err != nil {
		return fmt.Errorf("edit note: %w", err)
	}

	fmt.Printf("Updated note %d\n", id)
	return nil
}
