package cmd

import (
	"fmt"
	"strings"

	"github.com/magpietutor/magpie/tutor/handlers"
	"github.com/magpietutor/magpie/tutor/utils"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <message>",
	Short: "Answer every [request] in a message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  handlers.WrapWithLogging("search", runSearch),
}

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Run a query against the loaded sets",
	Long: `Run a query against the loaded sets.

Fields: name (n), description (d), rarity (r), temple (tp), tribe (tb),
attack (a), health (h), sigil (s), spatk (sp), cost (c), costtype (ct),
trait (tr). Combine keywords with spaces (and), "or", "!" (not) and
parentheses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: handlers.WrapWithLogging("query", runQuery),
}

var (
	querySets    string
	queryAllSets bool
	queryDebug   bool
)

func init() {
	queryCmd.Flags().StringVarP(&querySets, "sets", "s", "", "set codes separated by "+utils.SetSeparator)
	queryCmd.Flags().BoolVarP(&queryAllSets, "all", "a", false, "query every loaded set")
	queryCmd.Flags().BoolVarP(&queryDebug, "debug", "d", false, "print the active filters")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(queryCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	if len(utils.ParseSearchMessage(message)) == 0 {
		return fmt.Errorf("no [request] found in %q", message)
	}
	return printSearch(cmd, message)
}

func runQuery(cmd *cobra.Command, args []string) error {
	modifiers := string(utils.ModifierQuery)
	if queryAllSets {
		modifiers += string(utils.ModifierAllSets)
	}
	if queryDebug {
		modifiers += string(utils.ModifierDebug)
	}
	return printSearch(cmd, fmt.Sprintf("%s%s[%s]", modifiers, querySets, strings.Join(args, " ")))
}

func printSearch(cmd *cobra.Command, message string) error {
	t, err := newTutor(cmd)
	if err != nil {
		return err
	}

	out, err := t.SearchMessage(cmd.Context(), message)
	if err != nil {
		return err
	}
	for _, text := range out {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
