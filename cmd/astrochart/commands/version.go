package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilbagatto/go-astrologer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the astrochart version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
