package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/width"

	"countdown/internal/countdown"
	"countdown/internal/logger"
	"countdown/pkg/models"
)

// runList prints the upcoming countdowns, one per line.
func runList(w io.Writer, loader countdown.Loader, now time.Time, opts countdown.Options) error {
	items, err := countdown.List(loader, now, opts)
	if err != nil {
		return err
	}
	logger.Infof("Showing %d upcoming events", len(items))
	return printCountdowns(w, items, terminalWidth(w))
}

// printCountdowns renders items as "<days> days until <name>". Lines wider
// than maxWidth cells are cut; maxWidth 0 disables cutting.
func printCountdowns(w io.Writer, items []models.Countdown, maxWidth int) error {
	for _, c := range items {
		line := fmt.Sprintf("%d days until %s", c.DaysLeft, c.Name)
		if _, err := fmt.Fprintln(w, clip(line, maxWidth)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// terminalWidth returns the column count when w is a terminal, else 0 so
// piped output is never cut.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		logger.Debugf("terminal size: %v", err)
		return 0
	}
	return cols
}

// clip shortens s to at most maxWidth display cells, ending in an ellipsis
// when anything was removed. Wide (East Asian) runes count as two cells.
func clip(s string, maxWidth int) string {
	if maxWidth <= 0 || cellWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "…"
	budget := maxWidth - 1
	used := 0
	for i, r := range s {
		rw := runeWidth(r)
		if used+rw > budget {
			return s[:i] + ellipsis
		}
		used += rw
	}
	return s
}

func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
