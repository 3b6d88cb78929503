package renderer

import (
	"fmt"
	"strings"
)

// TableMarkdown renders the report table in markdown.
func TableMarkdown(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Crypto Portfolio in %s\n\n", r.Currency)
	writeRow(&b, r.Header)
	align := make([]string, len(r.Header))
	for i := range align {
		align[i] = "---:"
	}
	align[1] = ":---" // Coin
	writeRow(&b, align)
	for _, row := range r.Rows {
		writeRow(&b, row.Cells())
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		fmt.Fprintf(b, " %s |", strings.ReplaceAll(c, "|", "\\|"))
	}
	b.WriteString("\n")
}
