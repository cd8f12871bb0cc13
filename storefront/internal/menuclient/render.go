package menuclient

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func RenderMenu(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tOFFER")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t₹%.2f\t₹%d.00 (10%% OFF)\n", e.ID, e.Name, e.Category, e.Price, e.DiscountedPrice)
	}
	return tw.Flush()
}

func RenderPopular(w io.Writer, items []PopularItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No orders yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tORDERED")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\n", i+1, it.ID, it.Name, it.Ordered)
	}
	return tw.Flush()
}
