package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/pharma_inventory/pkg/validate"
)

// CLI для офлайн-проверки поставщиков, товаров и приёмок.
// Валидные записи пишутся в stdout, отказы и сводка - в stderr.
func main() {
	entity := flag.String("entity", "", "record kind: supplier|product|reception")
	mode := flag.String("mode", "create", "validation mode: create|update")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl|csv")
	inputPath := flag.String("in", "", "path to input (.json, .jsonl or .csv). If empty, reads from stdin.")
	tz := flag.String("tz", "UTC", "timezone for reception dates without offset")
	flag.Parse()

	target, err := validate.ParseTarget(*entity, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timezone %q: %v\n", *tz, err)
		os.Exit(2)
	}

	ctx := context.Background()
	vs := validate.NewValidators(validate.WithLocation(loc))
	format := validate.InputFormat(*formatStr)

	var summary string
	if *inputPath == "" {
		summary, err = validate.ValidateReader(ctx, vs, target, os.Stdin, format, os.Stdout, os.Stderr)
	} else {
		summary, err = validate.ValidateFile(ctx, vs, target, *inputPath, format, os.Stdout, os.Stderr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation %s: %v (%s)\n", target, err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation %s done (%s)\n", target, summary)
}
