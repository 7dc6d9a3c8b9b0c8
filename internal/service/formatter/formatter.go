package formatter

import (
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/oshokin/worldclock/internal/domain/clock"
)

const (
	// TimeLayout renders 24-hour zero-padded wall time.
	TimeLayout = "15:04:05"
	// Separator sits between the padded label and the time.
	Separator = "  "
)

// Format renders one line per clock for the same instant, in input order.
func Format(instant time.Time, clocks []clock.Resolved) []string {
	labels := lo.Map(clocks, func(c clock.Resolved, _ int) string {
		return norm.NFC.String(c.Label)
	})

	column := lo.Max(lo.Map(labels, func(label string, _ int) int {
		return DisplayWidth(label)
	}))

	return lo.Map(clocks, func(c clock.Resolved, i int) string {
		return Line(labels[i], column, WallTime(instant, c.Location))
	})
}

// WallTime formats instant as HH:MM:SS in loc, with DST applied.
// A nil loc means the host zone.
func WallTime(instant time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return instant.In(loc).Format(TimeLayout)
}

// Line joins label and wall time, padding the label to column cells.
func Line(label string, column int, wall string) string {
	var b strings.Builder

	b.WriteString(label)

	if pad := column - DisplayWidth(label); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	b.WriteString(Separator)
	b.WriteString(wall)

	return b.String()
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	cells := 0

	for _, r := range norm.NFC.String(s) {
		switch {
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Variation_Selector):
			continue
		case isWide(r):
			cells += 2
		default:
			cells++
		}
	}

	return cells
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}
