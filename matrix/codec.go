// SPDX-License-Identifier: MIT

// Package matrix - text form.
//
// Format (whitespace separated, row-major):
//
//	rows cols
//	v00 v01 ... v0(cols-1)
//	...
//
// WriteText emits values with the shortest representation that parses back
// to the same float64, so ReadText(WriteText(m)) is Equal to m.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	opReadText  = "ReadText"
	opWriteText = "WriteText"
)

// WriteText serializes m in the row-major text form.
func WriteText(w io.Writer, m *Dense) error {
	if m == nil {
		return matrixErrorf(opWriteText, ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(m.at(i, j), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWriteText, err)
	}

	return nil
}

// ReadText parses one matrix in the row-major text form.
// Tokens after the rows*cols values are ignored.
//
// Errors:
//   - ErrSyntax on a missing header, a non-numeric token or too few values.
//   - ErrBadShape on a negative header dimension.
func ReadText(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", matrixErrorf(opReadText, err)
			}
			return "", matrixErrorf(opReadText, fmt.Errorf("missing %s: %w", what, ErrSyntax))
		}
		return sc.Text(), nil
	}

	var dims [2]int
	for k, what := range []string{"rows", "cols"} {
		tok, err := next(what)
		if err != nil {
			return nil, err
		}
		if dims[k], err = strconv.Atoi(tok); err != nil {
			return nil, matrixErrorf(opReadText, fmt.Errorf("%s %q: %w", what, tok, ErrSyntax))
		}
	}
	m, err := NewDense(dims[0], dims[1])
	if err != nil {
		return nil, matrixErrorf(opReadText, err)
	}
	for idx := range m.data {
		tok, err := next(fmt.Sprintf("value #%d", idx))
		if err != nil {
			return nil, err
		}
		if m.data[idx], err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, matrixErrorf(opReadText, fmt.Errorf("value #%d %q: %w", idx, tok, ErrSyntax))
		}
	}

	return m, nil
}

// ParseText is ReadText over a string.
func ParseText(s string) (*Dense, error) { return ReadText(strings.NewReader(s)) }

// FormatText is WriteText into a string.
func FormatText(m *Dense) (string, error) {
	var b strings.Builder
	if err := WriteText(&b, m); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Dump writes a human-readable, column-aligned diagnostic view:
//
//	Matrix Dump: rows = 2, columns = 2
//	1         0
//	0         1
func Dump(w io.Writer, m *Dense) error {
	if m == nil {
		return matrixErrorf("Dump", ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Matrix Dump: rows = %d, columns = %d\n", m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(bw, "%-10.4g", m.at(i, j))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
