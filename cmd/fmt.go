package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report for the terminal. The raw markdown
// is still perfectly readable, so any rendering trouble (odd TERM, no style)
// falls back to printing it as-is.
func printMarkdown(w io.Writer, source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprintln(w, source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Fprintln(w, source)
		return
	}
	fmt.Fprint(w, out)
}
