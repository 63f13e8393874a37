// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/stretchr/testify/require"
)

// TestTextRoundTrip checks ReadText(WriteText(m)) == m exactly.
func TestTextRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {1, 1}, {3, 4}, {4, 0}} {
		m := MustDense(t, shape[0], shape[1])
		RandomFill(t, m, 99)

		var buf bytes.Buffer
		require.NoError(t, matrix.WriteText(&buf, m))
		got, err := matrix.ReadText(&buf)
		require.NoError(t, err)
		require.True(t, got.Equal(m), "shape %v", shape)
	}
}

// TestFormatText pins the layout.
func TestFormatText(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, -0.5, 3e10, 0)
	s, err := matrix.FormatText(m)
	require.NoError(t, err)
	require.Equal(t, "2 2\n1 -0.5\n3e+10 0\n", s)
}

// TestReadTextErrors covers malformed input.
func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", matrix.ErrSyntax},
		{"bad rows", "x 2", matrix.ErrSyntax},
		{"missing cols", "2", matrix.ErrSyntax},
		{"too few values", "2 2\n1 2 3", matrix.ErrSyntax},
		{"bad value", "1 2\n1 two", matrix.ErrSyntax},
		{"negative", "-1 2", matrix.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.ParseText(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestDump pins the diagnostic header.
func TestDump(t *testing.T) {
	var b strings.Builder
	require.NoError(t, matrix.Dump(&b, NewFilledDense(t, 1, 2, 1, 2)))
	require.Equal(t, "Matrix Dump: rows = 1, columns = 2\n1         2         \n", b.String())

	require.ErrorIs(t, matrix.WriteText(&b, nil), matrix.ErrNilMatrix)
}
