package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the orbitsieve banner to w using the color profile of
// the destination.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"   ___       _     _ _       _                 ", "#818cf8"},
		{"  / _ \\ _ __| |__ (_) |_ ___(_) _____   _____  ", "#a78bfa"},
		{" | | | | '__| '_ \\| | __/ __| |/ _ \\ \\ / / _ \\ ", "#c084fc"},
		{" | |_| | |  | |_) | | |_\\__ \\ |  __/\\ V /  __/ ", "#e879f9"},
		{"  \\___/|_|  |_.__/|_|\\__|___/_|\\___| \\_/ \\___| ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
