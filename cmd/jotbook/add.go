// Add command creates a new note.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addDesc  string
	addEmoji int
	addImage string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a new note for the current owner. The creation time is
stamped once and never changes afterwards.

Example:
  jotbook add --title "Shopping" --desc "milk, eggs"
  jotbook add --title "Trip" --emoji 4 --image photo.jpg
  jotbook add --title "Idea" --json`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "note title (required, non-blank)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "note description")
	addCmd.Flags().IntVar(&addEmoji, "emoji", 0, "emoji marker identifier")
	addCmd.Flags().StringVar(&addImage, "image", "", "image file to attach (imported into managed storage)")
	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	imagePath := ""
	if addImage != "" {
		imagePath, err = importImage(addImage)
		if err != nil {
			return fmt.Errorf("attach image: %w", err)
		}
	}

	note, err := service.Create(owner, addTitle, addDesc, addEmoji, imagePath)
	if err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(note, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal note: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Created note %d\n", note.ID)
	return nil
}
