package cmd

import (
	"fmt"

	"github.com/magpietutor/magpie/tutor/handlers"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Load the configured sets and list them",
	Args:  cobra.NoArgs,
	RunE:  handlers.WrapWithLogging("sets", runSets),
}

func init() {
	rootCmd.AddCommand(setsCmd)
}

func runSets(cmd *cobra.Command, _ []string) error {
	t, err := newTutor(cmd)
	if err != nil {
		return err
	}

	for _, set := range t.Registry.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-28s %d cards\n", set.Code, set.Name, len(set.Cards))
	}
	return nil
}
