// Watch command follows the live note feed for the current owner.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the owner's live note list",
	Long: `Watch subscribes to the owner's note feed and prints the full
recomputed list after every change until interrupted. The first
emission is the current list.

Example:
  jotbook watch
  jotbook watch --json`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	sub, err := service.Watch(owner)
	if err != nil {
		return fmt.Errorf("watch notes: %w", err)
	}
	defer sub.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	emission := 0
	for {
		select {
		case notes, ok := <-sub.Notes():
			if !ok {
				return nil
			}
			emission++
			if flagJSON {
				output, err := json.MarshalIndent(notes, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal notes: %w", err)
				}
				fmt.Println(string(output))
				continue
			}
			headerColor.Printf("--- emission %d ---\n", emission)
			printNoteTable(notes)
		case <-interrupt:
			return nil
		}
	}
}
