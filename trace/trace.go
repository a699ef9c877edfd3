// Package trace renders the progress of an astar search as console text.
//
// After every step a Printer lists the frontier and the expanded set, one
// node per line with its f, g and h scores. Once the search ends it prints
// either the solution path with its length and cost, or the failure reason.
// Headings are styled with lipgloss; styling is dropped automatically when
// the destination is not a terminal.
package trace

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlath/astar"
)

const divider = "---------------------------------------------"

// Printer writes search traces for engines over states of type S.
// It is not safe for concurrent use.
type Printer[S astar.State[S, K], K comparable] struct {
	w       io.Writer
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer writing to w.
func New[S astar.State[S, K], K comparable](w io.Writer) *Printer[S, K] {
	r := lipgloss.NewRenderer(w)

	return &Printer[S, K]{
		w:       w,
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Run steps e until it leaves Searching, printing every step and the outcome.
// The solution, if any, is left live for the caller to read and release.
func (p *Printer[S, K]) Run(e *astar.Engine[S, K]) (astar.SearchState, error) {
	for e.State() == astar.Searching {
		e.Step()
		if err := p.Step(e); err != nil {
			return e.State(), err
		}
	}

	return e.State(), nil
}

// Step prints the step just taken by e. While the search is running that is
// the frontier and the expanded set, afterwards it is the outcome.
func (p *Printer[S, K]) Step(e *astar.Engine[S, K]) error {
	var b bytes.Buffer
	b.WriteString(p.heading.Render(fmt.Sprintf("Step %d:", e.StepCount())))
	b.WriteString("\n")

	if e.State() != astar.Searching {
		p.outcome(&b, e)
		return p.flush(&b)
	}

	b.WriteString("Open list:\n")
	n := 0
	for s, sc, ok := e.OpenStart(); ok; s, sc, ok = e.OpenNext() {
		writeNode(&b, s, sc)
		n++
	}
	if n == 0 {
		b.WriteString("\tEmpty\n")
	}
	fmt.Fprintf(&b, "Open list has %d nodes\n\n", e.OpenLen())

	b.WriteString("Closed list:\n")
	n = 0
	for s, sc, ok := e.ClosedStart(); ok; s, sc, ok = e.ClosedNext() {
		writeNode(&b, s, sc)
		n++
	}
	if n == 0 {
		b.WriteString("\tEmpty\n")
	}
	fmt.Fprintf(&b, "Closed list has %d nodes\n\n%s\n\n", e.ClosedLen(), divider)

	return p.flush(&b)
}

// Outcome prints how the search ended. It prints nothing while e is still
// searching.
func (p *Printer[S, K]) Outcome(e *astar.Engine[S, K]) error {
	var b bytes.Buffer
	p.outcome(&b, e)

	return p.flush(&b)
}

func (p *Printer[S, K]) outcome(b *bytes.Buffer, e *astar.Engine[S, K]) {
	switch e.State() {
	case astar.Succeeded:
		b.WriteString(p.success.Render("Search found the goal state."))
		b.WriteString("\n\nDisplaying solution...\n\n")
		path := e.Path()
		for i, s := range path {
			if i > 0 {
				b.WriteString(" -> ")
			}
			fmt.Fprint(b, s)
		}
		fmt.Fprintf(b, "\n\nSolution steps: %d\n", max(len(path)-1, 0))
		fmt.Fprintf(b, "Solution cost: %g\n", e.SolutionCost())
	case astar.Failed:
		b.WriteString(p.failure.Render("Search terminated. Did not find goal state"))
		fmt.Fprintf(b, "\nReason: %v\n", e.Err())
	default:
		return
	}
	fmt.Fprintf(b, "SearchSteps: %d\n", e.StepCount())
}

func (p *Printer[S, K]) flush(b *bytes.Buffer) error {
	if b.Len() == 0 {
		return nil
	}
	_, err := p.w.Write(b.Bytes())

	return err
}

func writeNode[S any](b *bytes.Buffer, s S, sc astar.Scores) {
	fmt.Fprintf(b, "\t%v f=%g g=%g h=%g\n", s, sc.F, sc.G, sc.H)
}
