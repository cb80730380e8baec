// Package main provides the CLI entrypoint for relfunc.
//
// relfunc is a thin driver over the library packages:
//   - Loads shape declarations from YAML
//   - Parses CSV row-sets into wildcard-capable typed records
//   - Checks (domain, range) relations for function consistency
//   - Evaluates lookups against a validated relation
package main

import (
	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show file.csv",
		Short: "Parse a row-set against a shape and print every record",
		Args:  cobra.ExactArgs(1),
		Run:   showRecords}
	cmd.Flags().StringP("schema", "s", "", "shape declaration YAML file (required)")
	cmd.Flags().Bool("dump", false, "dump full value structure instead of one line per record")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "check file.csv",
		Short: "Check that a (domain, range) row-set denotes a function",
		Args:  cobra.ExactArgs(1),
		Run:   checkRelation}
	cmd.Flags().StringP("domain", "d", "", "domain shape declaration YAML file (required)")
	cmd.Flags().StringP("range", "r", "", "range shape declaration YAML file (required)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "apply file.csv",
		Short: "Evaluate one lookup against a (domain, range) row-set",
		Args:  cobra.ExactArgs(1),
		Run:   applyRelation}
	cmd.Flags().StringP("domain", "d", "", "domain shape declaration YAML file (required)")
	cmd.Flags().StringP("range", "r", "", "range shape declaration YAML file (required)")
	cmd.Flags().StringArrayP("key", "k", nil, "query key cell as column=value (repeatable; omitted columns are wildcards)")
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "relfunc"}
	addCommands(root)
	root.Execute()
}
