package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the formlang banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   __                      _                   ", "#818cf8"},
		{"  / _| ___  _ __ _ __ ___ | | __ _ _ __   __ _ ", "#a78bfa"},
		{" | |_ / _ \\| '__| '_ ` _ \\| |/ _` | '_ \\ / _` |", "#c084fc"},
		{" |  _| (_) | |  | | | | | | | (_| | | | | (_| |", "#e879f9"},
		{" |_|  \\___/|_|  |_| |_| |_|_|\\__,_|_| |_|\\__, |", "#f472b6"},
		{"                                          |___/ ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
