// Package report renders armor collections for human-readable console output.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/avelsher/armory/internal/armory"
)

// Write renders the collection as an aligned table followed by its
// aggregate totals. An empty collection renders a placeholder notice.
func Write(w io.Writer, title string, items armory.Items) error {
	if _, err := fmt.Fprintf(w, "*** %s ***\n", title); err != nil {
		return err
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "[no items]")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DESCRIPTION\tCOST (GOLD)\tDEFENSE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%g\t%g\n", item.Description(), item.Cost(), item.Defense())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	totalCost, totalDefense := armory.Sum(items)
	_, err := fmt.Fprintf(w, "> Total cost: %g gold\n> Total defense: %g\n", totalCost, totalDefense)
	return err
}
