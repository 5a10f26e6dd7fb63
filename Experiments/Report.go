package Experiments

import (
	"fmt"
	"io"
)

// Comparison is one BST/AVL result pair with the derived ratios.
type Comparison struct {
	BST, AVL Result
	// HeightRatio is BST height over AVL height; 0 when undefined.
	HeightRatio float64
	// ComparisonRatio is BST comparisons over AVL comparisons; 0 when
	// undefined.
	ComparisonRatio float64
	// Speedup is how many times faster the AVL build was; below 1 means the
	// BST built faster.
	Speedup float64
}

// Pair groups a result list into BST/AVL comparisons. Results arrive from
// Runner.Run already ordered; stray unpaired rows are dropped.
func Pair(results []Result) []Comparison {
	var cs []Comparison
	for i := 0; i+1 < len(results); i += 2 {
		bst, avl := results[i], results[i+1]
		if bst.Structure != "BST" || avl.Structure != "AVL" {
			continue
		}
		c := Comparison{BST: bst, AVL: avl}
		if avl.Height > 0 {
			c.HeightRatio = float64(bst.Height) / float64(avl.Height)
		}
		if avl.Comparisons > 0 {
			c.ComparisonRatio = float64(bst.Comparisons) / float64(avl.Comparisons)
		}
		if avl.BuildTime > 0 {
			c.Speedup = float64(bst.BuildTime) / float64(avl.BuildTime)
		}
		cs = append(cs, c)
	}
	return cs
}

const separator = "========================================\n"

// WriteReport renders the full comparison report for a run.
func WriteReport(w io.Writer, results []Result) {
	for _, c := range Pair(results) {
		fmt.Fprint(w, separator)
		fmt.Fprintf(w, "PATTERN %s, %d ELEMENTS\n", c.BST.Pattern, c.BST.Size)
		fmt.Fprint(w, separator)

		fmt.Fprintf(w, "--- Binary Search Tree (BST) ---\n")
		fmt.Fprintf(w, "Final Height:        %d\n", c.BST.Height)
		fmt.Fprintf(w, "Total Comparisons:   %d\n", c.BST.Comparisons)
		fmt.Fprintf(w, "Insertion Time:      %v\n\n", c.BST.BuildTime)

		fmt.Fprintf(w, "--- AVL Tree (Balanced) ---\n")
		fmt.Fprintf(w, "Final Height:        %d\n", c.AVL.Height)
		fmt.Fprintf(w, "Total Comparisons:   %d\n", c.AVL.Comparisons)
		fmt.Fprintf(w, "Total Rotations:     %d\n", c.AVL.Rotations)
		fmt.Fprintf(w, "Insertion Time:      %v\n\n", c.AVL.BuildTime)

		fmt.Fprintf(w, "--- Analysis ---\n")
		if c.HeightRatio > 1 {
			fmt.Fprintf(w, "BST is %.2fx taller than AVL\n", c.HeightRatio)
		}
		switch {
		case c.Speedup > 1:
			fmt.Fprintf(w, "AVL is %.2fx faster for insertions\n", c.Speedup)
		case c.Speedup > 0:
			fmt.Fprintf(w, "BST is %.2fx faster for insertions\n", 1/c.Speedup)
		default:
			fmt.Fprintf(w, "Insertion times too small to measure accurately\n")
		}
		if c.ComparisonRatio > 1 {
			fmt.Fprintf(w, "BST made %.2fx more comparisons\n", c.ComparisonRatio)
		}

		fmt.Fprintf(w, "\n--- Search Performance Test ---\n")
		fmt.Fprintf(w, "Searching for key: %d\n", c.BST.SearchKey)
		fmt.Fprintf(w, "BST: %d comparisons, %s\n", c.BST.SearchComparisons, foundStr(c.BST.SearchFound))
		fmt.Fprintf(w, "AVL: %d comparisons, %s\n", c.AVL.SearchComparisons, foundStr(c.AVL.SearchFound))
		if c.AVL.SearchComparisons > 0 && c.BST.SearchComparisons > c.AVL.SearchComparisons {
			fmt.Fprintf(w, "BST required %.2fx more comparisons for search\n",
				float64(c.BST.SearchComparisons)/float64(c.AVL.SearchComparisons))
		}
		fmt.Fprintf(w, "\n")
	}
}

func foundStr(found bool) string {
	if found {
		return "FOUND"
	}
	return "NOT FOUND"
}
