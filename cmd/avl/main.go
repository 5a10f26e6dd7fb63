// Command avl is the terminal frontend for the trees: an annotated demo, an
// ASCII tree printer, the AVL vs BST experiment harness, and an invariant
// verifier.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-avl/Experiments"
	"github.com/g-m-twostay/go-avl/Stats"
	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/g-m-twostay/go-avl/Views"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Walk through insertions, rotations, traversals and deletions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(log)
		},
	}

	var detailed bool
	var cmdPrint = &cobra.Command{
		Use:   "print key...",
		Short: "Insert the given integer keys and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := Trees.NewAVL[int]()
			for _, a := range args {
				k, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("key %q is not an integer: %w", a, err)
				}
				if !tree.Insert(k) {
					log.Warn().Int("key", k).Msg("duplicate key skipped")
				}
			}
			Views.Fprint(os.Stdout, tree.Root(), detailed)
			return nil
		},
	}
	cmdPrint.Flags().BoolVarP(&detailed, "detailed", "d", false, "annotate nodes with height and balance factor")

	var configPath, pattern string
	var size int
	var seed int64
	var cmdCompare = &cobra.Command{
		Use:   "compare",
		Short: "Run the AVL vs BST performance experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := Experiments.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = Experiments.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if size > 0 {
				cfg.Sizes = []int{size}
			}
			if pattern != "" {
				cfg.Patterns = []Experiments.Pattern{Experiments.Pattern(pattern)}
			}
			if seed != 0 {
				cfg.Seed = seed
			}
			runner := Experiments.Runner{Log: log, Progress: true}
			results, err := runner.Run(cfg)
			if err != nil {
				return err
			}
			Experiments.WriteReport(os.Stdout, results)
			return nil
		},
	}
	cmdCompare.Flags().StringVarP(&configPath, "config", "c", "", "yaml experiment config file")
	cmdCompare.Flags().IntVarP(&size, "size", "n", 0, "run a single dataset size")
	cmdCompare.Flags().StringVarP(&pattern, "pattern", "p", "", "run a single pattern (random|sorted|reverse|nearly-sorted)")
	cmdCompare.Flags().Int64VarP(&seed, "seed", "s", 0, "dataset generation seed")

	var ops int
	var cmdVerify = &cobra.Command{
		Use:   "verify [key...]",
		Short: "Check tree invariants, over given keys or a random workload",
		Long: `With keys, builds a tree from them and reports its invariants. Without,
hammers the tree with random inserts and removes, checking invariants
throughout.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return verifyKeys(log, args)
			}
			return runVerify(log, ops, seed)
		},
	}
	cmdVerify.Flags().IntVarP(&ops, "ops", "n", 100000, "number of random operations")
	cmdVerify.Flags().Int64VarP(&seed, "seed", "s", 1, "workload seed")

	var rootCmd = &cobra.Command{
		Use:   "avl",
		Short: "AVL tree playground and benchmark harness",
		Long: `avl demonstrates a self-balancing binary search tree: how rotations keep
the height logarithmic, what that buys over a plain BST, and what the
resulting trees look like.`,
	}
	rootCmd.AddCommand(cmdDemo, cmdPrint, cmdCompare, cmdVerify)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// narrator logs every rotation as it happens so the demo can show which
// insertions trigger which cases.
type narrator struct {
	log zerolog.Logger
}

func (u *narrator) Rotated(kind Trees.Rotation, pivot int) {
	u.log.Info().Stringer("case", kind).Int("pivot", pivot).Msg("rotation")
}

func (u *narrator) Compared() {}

func runDemo(log zerolog.Logger) {
	tree := Trees.NewAVLTraced[int](&narrator{log})

	fmt.Println(Views.Heading("Phase 1: insertions"))
	// this sequence triggers all four rotation cases: LL, RR, RL, LL, LR
	fmt.Println("Inserting 30, 20, 10, 40, 50, 35, 5, 15, 17. Watch the log for rotations.")
	for _, k := range []int{30, 20, 10, 40, 50, 35, 5, 15, 17} {
		tree.Insert(k)
	}
	Views.Fprint(os.Stdout, tree.Root(), true)
	fmt.Printf("size=%d height=%d balanced=%v\n\n", tree.Size(), tree.Height(), tree.IsBalanced())

	fmt.Println(Views.Heading("Phase 2: traversals"))
	fmt.Printf("in-order:    %v\n", Trees.Collect(tree.InOrder()))
	fmt.Printf("pre-order:   %v\n", Trees.Collect(tree.PreOrder()))
	fmt.Printf("post-order:  %v\n", Trees.Collect(tree.PostOrder()))
	fmt.Printf("level-order: %v\n\n", Trees.Collect(tree.LevelOrder()))

	fmt.Println(Views.Heading("Phase 3: ordered queries"))
	if mn, ok := tree.Minimum(); ok {
		fmt.Printf("minimum: %d\n", mn)
	}
	if mx, ok := tree.Maximum(); ok {
		fmt.Printf("maximum: %d\n", mx)
	}
	if s, ok := tree.Successor(25); ok {
		fmt.Printf("successor of 25: %d\n", s)
	}
	if p, ok := tree.Predecessor(25); ok {
		fmt.Printf("predecessor of 25: %d\n", p)
	}
	if n, ok := tree.Search(30); ok {
		fmt.Println(Views.Card(n))
	}
	fmt.Println()

	fmt.Println(Views.Heading("Phase 4: deletions"))
	fmt.Println("Removing 50 (leaf), 40 (one child), 10 (two children).")
	for _, k := range []int{50, 40, 10} {
		tree.Remove(k)
	}
	Views.Fprint(os.Stdout, tree.Root(), true)
	fmt.Printf("in-order after removals: %v\n", Trees.Collect(tree.InOrder()))
	fmt.Printf("corrupt=%v\n\n", tree.Corrupt())

	fmt.Println(Views.Heading("Phase 5: why balance matters"))
	var avlStats, bstStats Stats.Counters[int]
	avl := Trees.NewAVLTraced[int](&avlStats)
	bst := Trees.NewBSTTraced[int](&bstStats)
	const n = 1 << 12
	for k := range n {
		avl.Insert(k)
		bst.Insert(k)
	}
	fmt.Printf("%d ascending insertions:\n", n)
	fmt.Printf("  AVL: height=%d %v\n", avl.Height(), &avlStats)
	fmt.Printf("  BST: height=%d %v\n", bst.Height(), &bstStats)
}

func verifyKeys(log zerolog.Logger, args []string) error {
	tree := Trees.NewAVL[int]()
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("key %q is not an integer: %w", a, err)
		}
		tree.Insert(k)
	}
	log.Info().
		Uint("size", tree.Size()).
		Uint("height", tree.Height()).
		Bool("balanced", tree.IsBalanced()).
		Bool("corrupt", tree.Corrupt()).
		Msg("verified")
	if tree.Corrupt() {
		return fmt.Errorf("tree is corrupt")
	}
	return nil
}

func runVerify(log zerolog.Logger, ops int, seed int64) error {
	if ops < 4 {
		return fmt.Errorf("at least 4 operations required, got %d", ops)
	}
	rg := rand.New(rand.NewSource(seed))
	tree := Trees.NewAVL[int]()
	model := make(map[int]struct{})
	for i := range ops {
		k := rg.Intn(ops / 4)
		if rg.Intn(3) == 0 {
			_, in := model[k]
			if tree.Remove(k) != in {
				return fmt.Errorf("op %d: remove(%d) disagrees with model", i, k)
			}
			delete(model, k)
		} else {
			_, in := model[k]
			if tree.Insert(k) == in {
				return fmt.Errorf("op %d: insert(%d) disagrees with model", i, k)
			}
			model[k] = struct{}{}
		}
		if i%(ops/10+1) == 0 && tree.Corrupt() {
			return fmt.Errorf("op %d: tree is corrupt", i)
		}
	}
	if tree.Corrupt() {
		return fmt.Errorf("tree is corrupt after %d operations", ops)
	}
	if int(tree.Size()) != len(model) {
		return fmt.Errorf("size %d disagrees with model size %d", tree.Size(), len(model))
	}
	log.Info().
		Int("ops", ops).
		Uint("size", tree.Size()).
		Uint("height", tree.Height()).
		Msg("all invariants hold")
	return nil
}
