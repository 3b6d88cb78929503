package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal and writes it to w.
// If the rendering fails the raw markdown is written instead.
func printMarkdown(w io.Writer, md string, width int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	log.Printf("cannot render markdown (ignored): %v", err)
	fmt.Fprint(w, md)
}
