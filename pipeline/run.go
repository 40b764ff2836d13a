package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ksarkes/chainsum/difficulty"
	"github.com/ksarkes/chainsum/problem"
	"github.com/ksarkes/chainsum/sampler"
	"github.com/ksarkes/chainsum/selector"
	"github.com/ksarkes/chainsum/worksheet"
)

// Sheet is one rendered worksheet document.
type Sheet struct {
	// Name is a suggested file name, e.g. "worksheet_01.html".
	Name string
	// HTML is the rendered page.
	HTML []byte
}

// Summary is everything one pipeline run produced.
type Summary struct {
	// Distribution is the difficulty histogram of the sampled pool.
	Distribution sampler.Distribution
	// Batches holds one selection result per completed worksheet;
	// fewer than Config.Batches entries means the pool ran dry.
	Batches []selector.Result
	// Sheets are the rendered documents, index-aligned with Batches.
	Sheets []Sheet
	// SampleShort reports that the sampler hit its attempt budget
	// before reaching the configured sample size.
	SampleShort bool
}

// Run executes the full pipeline for cfg.
//
// Degraded supply — a starved sampler, short batches, an empty
// difficulty window — is reported inside the Summary; Run errors only
// on invalid configuration, factory construction, or rendering.
func Run(cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := problem.NewFactory(cfg.Terms, cfg.Limit, problem.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}

	pool, err := sampler.Sample(f, difficulty.Default(), sampler.Options{
		SampleSize:    cfg.SampleSize,
		Precision:     cfg.Precision,
		AttemptFactor: cfg.AttemptFactor,
	})
	short := errors.Is(err, sampler.ErrInsufficientSupply)
	if err != nil && !short {
		return nil, err
	}

	summary := &Summary{
		Distribution: sampler.NewDistribution(pool, cfg.Precision),
		SampleShort:  short,
	}

	maxLevel := cfg.MaxLevel
	if maxLevel <= 0 {
		maxLevel = math.Inf(1)
	}
	req := selector.Request{
		Amount:        cfg.Amount,
		MinusPercent:  cfg.MinusPercent,
		MinLevel:      cfg.MinLevel,
		MaxLevel:      maxLevel,
		CapAnswers:    cfg.CapAnswers,
		BalanceHalves: cfg.BalanceHalves,
	}
	rng := rand.New(rand.NewSource(selectionSeed(cfg.Seed)))
	summary.Batches = selector.Batches(selector.NewPool(pool), req, cfg.Batches, rng)

	meta := worksheet.Meta{
		Title:       cfg.Title,
		Note:        cfg.Note,
		ShowAnswers: cfg.ShowAnswers,
	}
	for i, res := range summary.Batches {
		meta.Subtitle = fmt.Sprintf("%d problems · difficulty %s – %s",
			len(res.Problems),
			difficulty.FormatLevel(cfg.MinLevel),
			difficulty.FormatLevel(maxLevel),
		)
		problems := make([]problem.Problem, len(res.Problems))
		for j, s := range res.Problems {
			problems[j] = s.Problem
		}
		var buf bytes.Buffer
		if err := worksheet.RenderHTML(&buf, problems, meta); err != nil {
			return nil, err
		}
		summary.Sheets = append(summary.Sheets, Sheet{
			Name: fmt.Sprintf("worksheet_%02d.html", i+1),
			HTML: buf.Bytes(),
		})
	}

	return summary, nil
}

// selectionSeed decorrelates the selection stream from the generation
// stream so both can share one configured seed. SplitMix64-style
// finalizer; constants are the canonical multipliers.
func selectionSeed(seed int64) int64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
