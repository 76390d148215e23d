package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	rasa "github.com/malhotra1432/rasa-1"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rasa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rasa version %s\n", strings.TrimSpace(rasa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
