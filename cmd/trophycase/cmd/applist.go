package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/trophycase/internal/metastore"
	"github.com/agentstation/trophycase/internal/transport"
)

// applistCmd refreshes the local app-id index from the public app list.
var applistCmd = &cobra.Command{
	Use:   "applist",
	Short: "Refresh the local app-id index",
	Long: `Fetches the public app list and rewrites the local CSV index used to look
up a title's app id when its metadata record lacks one.`,
	Args: cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, _ []string) error {
		store := metastore.New(cfg.AccountRoot)
		idx, err := store.RefreshAppIndex(cobraCmd.Context(), transport.New(), "")
		if err != nil {
			return fmt.Errorf("refreshing app index: %w", err)
		}
		fmt.Printf("indexed %d titles\n", idx.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applistCmd)
}
