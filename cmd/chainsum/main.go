// Command chainsum samples chained add/subtract problems, prints the
// difficulty distribution of the pool, selects balanced batches, and
// writes printable worksheet files.
//
// Precedence: defaults < -config YAML < CHAINSUM_* env < flags.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ksarkes/chainsum/difficulty"
	"github.com/ksarkes/chainsum/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to YAML run config")
	outDir := flag.String("out", ".", "directory for worksheet files")
	terms := flag.Int("terms", 0, "operands per problem (2..n)")
	limit := flag.Int("limit", 0, "running-total limit")
	amount := flag.Int("amount", 0, "problems per worksheet")
	batches := flag.Int("batches", 0, "worksheets to export")
	minusPercent := flag.Int("minus-percent", -1, "subtraction-led share, 0..100")
	minLevel := flag.Float64("min-level", 0, "inclusive minimum difficulty")
	maxLevel := flag.Float64("max-level", 0, "inclusive maximum difficulty (<=0 = unbounded)")
	sampleSize := flag.Int("sample-size", 0, "candidate pool target")
	seed := flag.Int64("seed", 0, "RNG seed (0 = fixed default stream)")
	capAnswers := flag.Bool("cap-answers", false, "cap repeats of a single answer")
	balance := flag.Bool("balance-halves", false, "exact half/half operator split")
	answers := flag.Bool("answers", false, "render answer keys instead of blanks")
	title := flag.String("title", "", "worksheet title")
	flag.Parse()

	cfg, err := pipeline.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	if err := cfg.FromEnv(); err != nil {
		slog.Error("parse env failed", "error", err)
		os.Exit(1)
	}

	// Only flags the user actually set override the layered config.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "terms":
			cfg.Terms = *terms
		case "limit":
			cfg.Limit = *limit
		case "amount":
			cfg.Amount = *amount
		case "batches":
			cfg.Batches = *batches
		case "minus-percent":
			cfg.MinusPercent = *minusPercent
		case "min-level":
			cfg.MinLevel = *minLevel
		case "max-level":
			cfg.MaxLevel = *maxLevel
		case "sample-size":
			cfg.SampleSize = *sampleSize
		case "seed":
			cfg.Seed = *seed
		case "cap-answers":
			cfg.CapAnswers = *capAnswers
		case "balance-halves":
			cfg.BalanceHalves = *balance
		case "answers":
			cfg.ShowAnswers = *answers
		case "title":
			cfg.Title = *title
		}
	})

	summary, err := pipeline.Run(cfg)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	printDistribution(summary, cfg)
	printBatches(summary)

	if err := writeSheets(summary, *outDir); err != nil {
		slog.Error("write worksheets failed", "error", err)
		os.Exit(1)
	}
	if len(summary.Batches) < cfg.Batches {
		slog.Warn("pool exhausted before all worksheets were filled",
			"completed", len(summary.Batches), "requested", cfg.Batches)
	}
}

// printDistribution reports the sampled difficulty histogram so the
// operator can judge whether the configured window is realistic.
func printDistribution(summary *pipeline.Summary, cfg pipeline.Config) {
	if summary.SampleShort {
		slog.Warn("sampler hit its attempt budget; distribution is partial",
			"unique", summary.Distribution.Unique)
	}
	fmt.Printf("sampled %d unique problems (terms=%d, limit=%d)\n",
		summary.Distribution.Unique, cfg.Terms, cfg.Limit)
	fmt.Println("difficulty distribution:")
	for i, b := range summary.Distribution.Buckets {
		fmt.Printf("  level %-8s %7d  (%5.2f%%)\n",
			difficulty.FormatLevel(b.Level), b.Count, summary.Distribution.Ratio(i))
	}
}

func printBatches(summary *pipeline.Summary) {
	for i, res := range summary.Batches {
		fmt.Printf("\nbatch %d: %d problems (%d addition-led, %d subtraction-led)\n",
			i+1, len(res.Problems), res.PlusCount, res.MinusCount)
		for _, note := range res.Notes {
			fmt.Printf("  note: %s\n", note)
		}
	}
}

func writeSheets(summary *pipeline.Summary, dir string) error {
	if len(summary.Sheets) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, sheet := range summary.Sheets {
		path := filepath.Join(dir, sheet.Name)
		if err := os.WriteFile(path, sheet.HTML, 0o644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", path)
	}

	return nil
}
