package combinatorics

import "fmt"

// Peg names one of the three Hanoi rods.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Peg
type Peg int

const (
	A Peg = iota // conventional source
	B            // conventional auxiliary
	C            // conventional target
)

// Move transfers the top disc Disc from peg From to peg To.
// Discs are numbered 1 (smallest) to n (largest).
type Move struct {
	Disc int
	From Peg
	To   Peg
}

// String renders the move as "disc 1: A -> C".
func (m Move) String() string {
	return fmt.Sprintf("disc %d: %s -> %s", m.Disc, m.From, m.To)
}
