// List command shows the owner's notes, newest first.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the owner's notes",
	Long: `List shows every note belonging to the current owner, ordered by
creation time descending (newest first).

Example:
  jotbook list
  jotbook list --json
  jotbook list --owner u2`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	notes, err := service.List(owner)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(notes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal notes: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printNoteTable(notes)
	return nil
}

var headerColor = color.New(color.FgCyan, color.Bold)

// printNoteTable prints notes in a human-readable table format. Color
// is applied after the tabwriter flush so escape codes do not skew the
// column widths.
func printNoteTable(notes []*types.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tEMOJI\tIMG\tCREATED")
	for _, n := range notes {
		title := n.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		img := ""
		if n.ImagePath != "" {
			img = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			n.ID, title, n.Emoji, img, formatCreated(n.CreationTime))
	}
	w.Flush()

	for i, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		line = strings.TrimRight(line, " ")
		if i == 0 {
			headerColor.Println(line)
			continue
		}
		fmt.Println(line)
	}

	fmt.Printf("Total: %d note(s)\n", len(notes))
}
