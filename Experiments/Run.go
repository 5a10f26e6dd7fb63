package Experiments

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/g-m-twostay/go-avl/Stats"
	"github.com/g-m-twostay/go-avl/Trees"
)

// Result holds the measurements of one structure on one dataset. Runs emit
// results in pairs, the BST row directly before its AVL counterpart.
type Result struct {
	Structure string // "BST" or "AVL"
	Pattern   Pattern
	Size      int
	Height    uint
	// Work done while inserting the whole dataset.
	Comparisons uint64
	Rotations   uint64 // always 0 for the BST
	BuildTime   time.Duration
	// Probe for the dataset's middle element after the build.
	SearchKey         int
	SearchComparisons uint64
	SearchFound       bool
}

// Runner executes the configured grid of experiments.
type Runner struct {
	Log zerolog.Logger
	// Progress draws a terminal progress bar across the grid.
	Progress bool
}

// Run executes every size x pattern combination and returns two Results per
// combination. Datasets are generated from cfg.Seed, so runs reproduce.
func (u *Runner) Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	var bar *progressbar.ProgressBar
	if u.Progress {
		bar = progressbar.Default(int64(len(cfg.Sizes)*len(cfg.Patterns)), "experiments")
	}
	results := make([]Result, 0, 2*len(cfg.Sizes)*len(cfg.Patterns))
	for _, n := range cfg.Sizes {
		for _, p := range cfg.Patterns {
			data, err := Generate(p, n, cfg.SortedFraction, rg)
			if err != nil {
				return nil, err
			}
			u.Log.Info().Int("size", n).Str("pattern", string(p)).Msg("running experiment")
			bst := u.measure("BST", p, data)
			avl := u.measure("AVL", p, data)
			u.Log.Debug().
				Uint("bstHeight", bst.Height).Uint("avlHeight", avl.Height).
				Uint64("bstComparisons", bst.Comparisons).Uint64("avlComparisons", avl.Comparisons).
				Uint64("rotations", avl.Rotations).
				Msg("experiment done")
			results = append(results, bst, avl)
			if bar != nil {
				bar.Add(1)
			}
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return results, nil
}

func (u *Runner) measure(structure string, p Pattern, data []int) Result {
	var cnt Stats.Counters[int]
	var tree Trees.Tree[int]
	if structure == "AVL" {
		tree = Trees.NewAVLTraced[int](&cnt)
	} else {
		tree = Trees.NewBSTTraced[int](&cnt)
	}
	start := time.Now()
	for _, k := range data {
		tree.Insert(k)
	}
	res := Result{
		Structure:   structure,
		Pattern:     p,
		Size:        len(data),
		Comparisons: cnt.Comparisons,
		Rotations:   cnt.Rotations(),
		BuildTime:   time.Since(start),
		Height:      tree.Height(),
	}
	if len(data) > 0 {
		res.SearchKey = data[len(data)/2]
		before := cnt.Comparisons
		res.SearchFound = tree.Has(res.SearchKey)
		res.SearchComparisons = cnt.Comparisons - before
	}
	return res
}
