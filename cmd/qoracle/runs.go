package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/qoracle-xyz/go-qoracle/recordlog"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	db := fs.String("db", "records.db", "SQLite database holding the record log")
	show := fs.String("show", "", "Run ID to print in full (empty: list runs only)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qoracle runs [options]

List schedule runs persisted in a record database, or print one run's
records in sequence order.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := recordlog.NewSQLiteStore(*db)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if *show != "" {
		records, err := store.Read(ctx, *show)
		if err != nil {
			return fmt.Errorf("read run: %w", err)
		}
		fmt.Printf("Run %s: %d records\n", *show, len(records))
		for _, rec := range records {
			fmt.Printf("  [%d] %s at %s\n", rec.Seq, rec.Op, rec.CreatedAt.Format("15:04:05.000"))
		}
		return nil
	}

	ids, err := store.Runs(ctx)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(ids) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}

	return nil
}
