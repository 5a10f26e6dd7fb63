// Package Views renders trees as ASCII art for terminals. The layout puts
// the right subtree above its parent and the left below, so the picture
// reads like the tree rotated 90° counterclockwise.
package Views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/g-m-twostay/go-avl/Trees"
)

// to control the print routine
type branch int

const (
	asRoot branch = iota
	asLeft
	asRight
)

// Fprint writes an ASCII graphic of the subtree rooted at n and returns the
// maximum depth drawn. With detailed set, each node is annotated with its
// stored height and balance factor.
// Time: O(N); Space: O(D)
func Fprint[T any](w io.Writer, n Trees.Node[T], detailed bool) int {
	return fprint(w, n, "", asRoot, detailed)
}

// Sprint is Fprint into a string.
func Sprint[T any](n Trees.Node[T], detailed bool) string {
	var sb strings.Builder
	Fprint(&sb, n, detailed)
	return sb.String()
}

func fprint[T any](w io.Writer, n Trees.Node[T], prefix string, br branch, detailed bool) int {
	if !n.Present() {
		return 0
	}
	rd, ld := 0, 0
	if n.Right().Present() {
		t := "       "
		if br == asLeft {
			t = "|      "
		}
		rd = fprint(w, n.Right(), prefix+t, asRight, detailed)
	}
	switch br {
	case asRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case asLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case asRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detailed {
		fmt.Fprintf(w, "%v (h=%d,bf=%+d)\n", n.Key(), n.Height(), n.Balance())
	} else {
		fmt.Fprintf(w, "%v\n", n.Key())
	}
	if n.Left().Present() {
		t := "       "
		if br == asRight {
			t = "|      "
		}
		ld = fprint(w, n.Left(), prefix+t, asLeft, detailed)
	}
	return 1 + max(rd, ld)
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true)
	leanStyle  = lipgloss.NewStyle().Faint(true)
)

// Card renders a small framed summary of one node, for interactive use.
func Card[T any](n Trees.Node[T]) string {
	if !n.Present() {
		return cardStyle.Render(leanStyle.Render("(absent)"))
	}
	lean := "even"
	switch {
	case n.Balance() > 0:
		lean = "left-heavy"
	case n.Balance() < 0:
		lean = "right-heavy"
	}
	body := fmt.Sprintf("%s %v\n%s %d\n%s %+d (%s)",
		labelStyle.Render("key:"), n.Key(),
		labelStyle.Render("height:"), n.Height(),
		labelStyle.Render("balance:"), n.Balance(), lean,
	)
	return cardStyle.Render(body)
}

// Heading styles a section title for the demo output.
func Heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Underline(true).Render(s)
}
