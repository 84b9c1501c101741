// Package render turns cost matrices and solver snapshots into text:
// aligned plain grids, LaTeX pmatrix blocks, and marked snapshots with
// stars, primes and covered lines (optionally coloured with lipgloss).
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/munkres"
)

// ErrNilMatrix is returned when a nil matrix is rendered.
var ErrNilMatrix = errors.New("render: matrix is nil")

var (
	starStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	primeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	coveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// formatValue prints v in its shortest exact form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// cells loads m into formatted strings and returns the widest entry.
func cells(m matrix.Matrix) ([][]string, int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNilMatrix, err)
	}
	var (
		out   = make([][]string, m.Rows())
		width int
		v     float64
		err   error
	)
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			if v, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			out[i][j] = formatValue(v)
			width = max(width, len(out[i][j]))
		}
	}

	return out, width, nil
}

// Plain renders m as right-aligned columns, one row per line.
//
//	4 2 8
//	4 3 7
func Plain(m matrix.Matrix) (string, error) {
	grid, width, err := cells(m)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, row := range grid {
		for j, s := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", width, s)
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// LaTeX renders m as a pmatrix environment:
//
//	\begin{pmatrix}
//	  4 & 2\\
//	  3 & 1\\
//	\end{pmatrix}
func LaTeX(m matrix.Matrix) (string, error) {
	grid, _, err := cells(m)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(`\begin{pmatrix}` + "\n")
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(row, " & "))
		sb.WriteString(`\\` + "\n")
	}
	sb.WriteString(`\end{pmatrix}`)

	return sb.String(), nil
}

// Snapshot renders solver state. Starred cells carry a '*' suffix, primed
// cells a '\'' suffix; covered rows and columns are flagged with 'x' in the
// left margin and the header line. With styled set, stars, primes, covered
// lines and flags are coloured.
//
//	  x  x
//	  1  0* 2
//	  0* 0  0
//	  1  0  1
func Snapshot(s munkres.Snapshot, styled bool) string {
	var (
		width int
		vals  = make([]string, len(s.Values))
	)
	for i, v := range s.Values {
		vals[i] = formatValue(v)
		width = max(width, len(vals[i]))
	}

	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}

		return st.Render(text)
	}

	var sb strings.Builder
	lines := make([]string, 0, s.N+1)

	// Header: column cover flags.
	sb.WriteString("  ")
	for c := 0; c < s.N; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		if s.ColCovered[c] {
			sb.WriteString(paint(headerStyle, fmt.Sprintf("%*s", width, "x")) + " ")
		} else {
			sb.WriteString(strings.Repeat(" ", width+1))
		}
	}
	lines = append(lines, strings.TrimRight(sb.String(), " "))

	for r := 0; r < s.N; r++ {
		sb.Reset()
		if s.RowCovered[r] {
			sb.WriteString(paint(headerStyle, "x") + " ")
		} else {
			sb.WriteString("  ")
		}
		for c := 0; c < s.N; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := fmt.Sprintf("%*s", width, vals[r*s.N+c])
			switch s.MarkAt(r, c) {
			case munkres.Starred:
				sb.WriteString(paint(starStyle, cell+"*"))
			case munkres.Primed:
				sb.WriteString(paint(primeStyle, cell+"'"))
			default:
				if s.RowCovered[r] || s.ColCovered[c] {
					cell = paint(coveredStyle, cell)
				}
				sb.WriteString(cell + " ")
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return strings.Join(lines, "\n") + "\n"
}
