// Version command for the erb CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rulebook/pkg/erb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the erb version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("erb", erb.Version)
	},
}
