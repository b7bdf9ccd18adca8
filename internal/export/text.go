package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
)

// WriteReport writes a plain-text load plan: totals, then each used bin with
// its items in placement order, then the unfit items.
func WriteReport(w io.Writer, result model.PackResult) error {
	var sb strings.Builder
	used := result.UsedBins()

	fmt.Fprintf(&sb, "Bins used: %d of %d\n", len(used), len(result.Bins))
	fmt.Fprintf(&sb, "Items packed: %d\n", result.PackedCount())
	fmt.Fprintf(&sb, "Unfit items: %d\n", len(result.Unfit))
	fmt.Fprintf(&sb, "Overall fill: %.1f%%\n", result.TotalEfficiency())

	for i, b := range used {
		fmt.Fprintf(&sb, "\n== Bin %d: %s ==\n", i+1, b)
		flag := ""
		if b.Overweight() {
			flag = "  OVERWEIGHT"
		}
		fmt.Fprintf(&sb, "fill: %.1f%%  weight: %g/%g%s\n", b.FillRatio(), b.ItemsWeight(), b.MaxWeight, flag)
		writeItems(&sb, b.Items)
	}

	if len(result.Unfit) > 0 {
		sb.WriteString("\n== Unfit ==\n")
		writeItems(&sb, result.Unfit)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeItems(sb *strings.Builder, items []*model.Item) {
	for i, it := range items {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, it)
	}
}
