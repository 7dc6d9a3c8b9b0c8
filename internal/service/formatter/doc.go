// Package formatter renders resolved clocks as "<label>  <HH:MM:SS>" lines.
//
// Labels are padded to a common display width so that times line up. Width
// is measured in terminal cells: wide East Asian characters and most emoji
// take two cells, combining marks and joiners take none.
package formatter
