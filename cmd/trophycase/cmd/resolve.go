package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentstation/trophycase/pkg/constants"
)

var resolvePlatform string

// resolveCmd reconciles and prints the achievement set for one title.
var resolveCmd = &cobra.Command{
	Use:   "resolve <title>",
	Short: "Reconcile the achievement set for a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), constants.ResolveTimeout)
		defer cancel()

		set, err := client.Resolve(ctx, resolvePlatform, args[0])
		if err != nil {
			return err
		}

		if cfg.Output == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(set.List())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tUNLOCKED\tDATE\tDESCRIPTION")
		for _, a := range set.List() {
			unlocked := ""
			if a.Unlocked {
				unlocked = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, unlocked, a.DateUnlocked, a.Description)
		}
		return w.Flush()
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolvePlatform, "platform", "p", "PC", "platform of the title")
	rootCmd.AddCommand(resolveCmd)
}
