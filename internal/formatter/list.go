package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/zksim/internal/znode"
)

// noFlags fills the flags column of a node with neither flag set.
const noFlags = "-"

// FormatLongList renders one row per node: name, flags, data length and child
// count. Columns are aligned by display width so wide runes in names keep the
// layout intact.
func FormatLongList(nodes []*znode.Node) string {
	if len(nodes) == 0 {
		return ""
	}

	nameW, flagW, lenW, countW := 0, len(noFlags), 0, 0
	for _, n := range nodes {
		nameW = max(nameW, runewidth.StringWidth(n.Name))
		flagW = max(flagW, len(n.Flags()))
		lenW = max(lenW, len(strconv.Itoa(len(n.Data))))
		countW = max(countW, len(strconv.Itoa(n.NumChildren())))
	}

	var b strings.Builder
	for _, n := range nodes {
		flags := n.Flags()
		if flags == "" {
			flags = noFlags
		}
		row := runewidth.FillRight(n.Name, nameW) + "  " +
			runewidth.FillRight(flags, flagW) + "  " +
			padLeft(strconv.Itoa(len(n.Data)), lenW) + "  " +
			padLeft(strconv.Itoa(n.NumChildren()), countW)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// padLeft right-aligns s within width columns.
func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
