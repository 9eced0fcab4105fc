// Version command for the jotbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/jotbook/pkg/jotbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the jotbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("jotbook", jotbook.Version)
	},
}
