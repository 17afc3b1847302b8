package inventory

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

// PrintPolicy writes the policy as a triangle: one row per on-hand level,
// one column per in-transit level. Zero orders are faint, orders that fill
// capacity are green.
func PrintPolicy(w io.Writer, au aurora.Aurora, space mdp.StateSpace, policy mdp.Policy) {
	fmt.Fprint(w, au.Bold(fmt.Sprintf("%9s", "a \\ b")))
	for b := 0; b <= space.Capacity; b++ {
		fmt.Fprint(w, au.Bold(fmt.Sprintf("%4d", b)))
	}
	fmt.Fprintln(w)

	for a := 0; a <= space.Capacity; a++ {
		fmt.Fprintf(w, "%s%s", au.Bold(fmt.Sprintf("%7d", a)), au.White(" |"))
		for b := 0; b <= space.Capacity-a; b++ {
			s := mdp.State{OnHand: a, InTransit: b}
			act := policy.Act(s)
			cell := fmt.Sprintf("%4d", act)
			switch {
			case act == 0:
				fmt.Fprint(w, au.Faint(cell))
			case act == space.MaxAction(s):
				fmt.Fprint(w, au.Green(cell))
			default:
				fmt.Fprint(w, au.Blue(cell))
			}
		}
		fmt.Fprintln(w)
	}
}

func PrintComparison(w io.Writer, au aurora.Aurora, c Comparison, steps int) {
	fmt.Fprintf(w, "%s over %d steps\n", au.Bold("Performance"), steps)
	fmt.Fprintf(w, "  %-20s %12.2f\n", c.Learned.Name, c.Learned.TotalCost)
	fmt.Fprintf(w, "  %-20s %12.2f\n", c.Heuristic.Name, c.Heuristic.TotalCost)

	savings := fmt.Sprintf("%12.2f", c.Savings)
	if c.Savings >= 0 {
		fmt.Fprintf(w, "  %-20s %s\n", "savings", au.Green(savings))
	} else {
		fmt.Fprintf(w, "  %-20s %s\n", "savings", au.Red(savings))
	}
}

func PrintSeedComparison(w io.Writer, au aurora.Aurora, c SeedComparison, steps int) {
	fmt.Fprintf(w, "%s over %d seeds, %d steps each\n", au.Bold("Total cost"), len(c.Seeds), steps)
	for _, s := range []CostSummary{c.Learned, c.OrderUpTo, c.MaxOrder} {
		line := fmt.Sprintf("  %-20s %12.2f ± %.2f", s.Name, s.Mean, s.StdDev)
		if s.Name == c.Learned.Name {
			fmt.Fprintln(w, au.Cyan(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}
