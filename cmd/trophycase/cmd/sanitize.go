package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sanitizePlatform string

// sanitizeCmd shows how a title resolves to its canonical storage location.
var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <title>",
	Short: "Show the canonical storage path for a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		id := client.Identity(sanitizePlatform, args[0])
		fmt.Printf("platform folder: %s\n", id.PlatformFolder)
		fmt.Printf("title folder:    %s\n", id.TitleFolder)
		fmt.Printf("canonical file:  %s\n", id.CanonicalFilePath)
		return nil
	},
}

func init() {
	sanitizeCmd.Flags().StringVarP(&sanitizePlatform, "platform", "p", "PC", "platform of the title")
	rootCmd.AddCommand(sanitizeCmd)
}
