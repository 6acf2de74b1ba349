// Command extract runs a rule set against a single PDF and prints the
// record as JSON. Useful for writing and debugging vendor rules without a
// database or mailbox.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoicerd/invoicerd/constants"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/pdfio"
	"github.com/invoicerd/invoicerd/internal/rules"
)

func main() {
	_ = godotenv.Load()

	rulesPath := flag.String("rules", "", "path to the rule set JSON")
	pdfPath := flag.String("pdf", "", "path to the invoice PDF")
	strict := flag.Bool("strict", false, "discard partial results when required fields fail")
	method := flag.String("parsing-method", "", "default table parsing method: ruled, whitespace or hybrid")
	timeout := flag.Duration("timeout", 2*time.Minute, "extraction deadline")
	dumpText := flag.Bool("dump-text", false, "print per-page text instead of extracting")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if *pdfPath == "" {
		fatal("missing -pdf")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *dumpText {
		if err := dumpPages(*pdfPath, logger); err != nil {
			fatal(err.Error())
		}
		return
	}

	if *rulesPath == "" {
		fatal("missing -rules")
	}
	raw, err := os.ReadFile(*rulesPath)
	if err != nil {
		fatal(fmt.Sprintf("read rules: %v", err))
	}
	ruleSet, err := rules.ParseRuleSet(raw)
	if err != nil {
		fatal(fmt.Sprintf("parse rules: %v", err))
	}

	extractor := extract.NewExtractor(extract.Config{
		StrictRequiredFields: *strict,
		DefaultParsingMethod: constants.NormalizeParsingMethod(*method),
	}, extract.DefaultRegistry(), logger)

	record, issues, err := extractor.ExtractFile(ctx, *pdfPath, ruleSet)
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "field %s: %s %s\n", issue.Field, issue.Kind, issue.Detail)
	}
	if err != nil {
		if record == nil {
			fatal(err.Error())
		}
		fmt.Fprintln(os.Stderr, err.Error())
	}

	out, merr := json.MarshalIndent(record, "", "  ")
	if merr != nil {
		fatal(fmt.Sprintf("encode record: %v", merr))
	}
	fmt.Println(string(out))
	if err != nil {
		os.Exit(1)
	}
}

func dumpPages(path string, logger *slog.Logger) error {
	doc, err := pdfio.Open(path, logger)
	if err != nil {
		return err
	}
	defer doc.Close()
	for n := 1; n <= doc.NumPages(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "page %d: %v\n", n, err)
			continue
		}
		fmt.Printf("--- page %d ---\n%s\n", n, page.Text())
	}
	return nil
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(2)
}
