package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"relfunc/csvio"
	"relfunc/record"
	"relfunc/relation"
	"relfunc/schema"
	"relfunc/value"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func loadShape(cmd *cobra.Command, flag string) schema.Schema {
	path, _ := cmd.Flags().GetString(flag)
	if path == "" {
		fatal("--%s is required", flag)
	}

	s, err := schema.LoadFile(path)
	if err != nil {
		fatal("%s", err)
	}

	return s
}

func showRecords(cmd *cobra.Command, args []string) {
	shape := loadShape(cmd, "schema")

	records, err := csvio.LoadFile(args[0], shape)
	if err != nil {
		fatal("%s", err)
	}

	dump, _ := cmd.Flags().GetBool("dump")

	for _, rec := range records {
		if dump {
			spew.Dump(rec)
			continue
		}

		fmt.Println(rec)
	}
}

func loadRelation(cmd *cobra.Command, path string) (relation.Relation, schema.Schema) {
	domain := loadShape(cmd, "domain")
	rng := loadShape(cmd, "range")

	f, err := os.Open(path)
	if err != nil {
		fatal("%s", errors.Wrapf(err, "failed to open data file %s", path))
	}
	defer f.Close()

	rel, err := csvio.LoadRelation(f, domain, rng)
	if err != nil {
		fatal("%s", errors.Wrapf(err, "data file %s", path))
	}

	return rel, domain
}

func checkRelation(cmd *cobra.Command, args []string) {
	rel, _ := loadRelation(cmd, args[0])

	if err := relation.Check(rel); err != nil {
		fatal("%s", err)
	}

	fmt.Printf("ok: %d pairs denote a function\n", len(rel))
}

func applyRelation(cmd *cobra.Command, args []string) {
	rel, domain := loadRelation(cmd, args[0])

	fn, err := relation.ToFunc(rel)
	if err != nil {
		fatal("%s", err)
	}

	key, err := queryKey(cmd, domain)
	if err != nil {
		fatal("%s", err)
	}

	result, err := fn(key)
	if err != nil {
		fatal("%s", err)
	}

	fmt.Println(result)
}

// queryKey assembles a row from repeated column=value flags and parses it
// against the domain shape. Columns left out become wildcards, exactly as
// if the row-set had no such column.
func queryKey(cmd *cobra.Command, domain schema.Schema) (value.Value, error) {
	pairs, _ := cmd.Flags().GetStringArray("key")

	row := record.Row{}

	for _, p := range pairs {
		col, val, ok := strings.Cut(p, "=")
		if !ok {
			return value.Value{}, errors.Errorf("invalid --key %q, expected column=value", p)
		}

		row[col] = val
	}

	return record.ParseRecord(row, domain)
}
