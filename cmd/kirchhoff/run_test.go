package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/circuit"
	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/katalvlaran/kirchhoff/netlist"
)

const triangle = `# 6 V source, three resistors
0 -- 1, 1R, 6V;
1 -- 2, 2R;
2 -- 0, 3R;
`

func runString(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)

	return out.String(), err
}

func TestRun_Solve(t *testing.T) {
	out, err := runString(t, triangle, "solve", "-")
	require.NoError(t, err)
	assert.Equal(t, "# 3 branches, 1 loops, rank 3\n"+
		"0-1 (1R, 6V): 1 A\n"+
		"1-2 (2R, 0V): 1 A\n"+
		"2-0 (3R, 0V): 1 A\n", out)
}

func TestRun_SolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.net")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o600))

	out, err := runString(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2-0 (3R, 0V): 1 A")
}

func TestRun_SolveFreeCurrents(t *testing.T) {
	out, err := runString(t, "0 -- 1, 0; 1 -- 2, 0; 2 -- 0, 0;", "solve", "-")
	require.NoError(t, err)
	assert.Equal(t, "# 3 branches, 1 loops, rank 2\n"+
		"# 1 free currents, showing the particular solution\n"+
		"0-1 (0R, 0V): 0 A\n"+
		"1-2 (0R, 0V): 0 A\n"+
		"2-0 (0R, 0V): 0 A\n", out)
}

func TestRun_System(t *testing.T) {
	out, err := runString(t, triangle, "system", "-")
	require.NoError(t, err)

	aug, err := matrix.ParseText(out)
	require.NoError(t, err)
	want, err := matrix.NewFromSlice(4, 4, []float64{
		1, 1, 0, 0,
		-1, 0, 1, 0,
		0, -1, -1, 0,
		1, -3, 2, 6,
	})
	require.NoError(t, err)
	assert.True(t, want.Equal(aug), "got\n%s", out)
}

func TestRun_Det(t *testing.T) {
	out, err := runString(t, "2 2\n1 2\n3 4\n", "det", "-algo=full", "-")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	out, err = runString(t, "2 2\n2 1\n0 3\n", "det", "-")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = runString(t, "2 2\n1 2\n2 4\n", "det", "-algo", "gauss", "-")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRun_Rank(t *testing.T) {
	out, err := runString(t, "3 3\n1 2 3\n2 4 6\n1 0 1\n", "rank", "-")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRun_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.net")
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"no command", "", nil, ErrUsage},
		{"unknown command", "", []string{"plot", "-"}, ErrUsage},
		{"no file", "", []string{"solve"}, ErrUsage},
		{"two files", "", []string{"rank", "a", "b"}, ErrUsage},
		{"bad flag", "", []string{"det", "-fast", "-"}, ErrUsage},
		{"bad algorithm", "1 1\n5\n", []string{"det", "-algo=lu", "-"}, matrix.ErrInvalidAlgorithm},
		{"not square", "1 2\n1 2\n", []string{"det", "-"}, matrix.ErrNotSquare},
		{"bad matrix", "2 2\n1 x\n", []string{"rank", "-"}, matrix.ErrSyntax},
		{"bad netlist", "0 -- 1;", []string{"solve", "-"}, netlist.ErrSyntax},
		{"huge vertex", "0 -- 100000, 1R;", []string{"solve", "-"}, circuit.ErrBadVertex},
		{"missing file", "", []string{"solve", missing}, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runString(t, tc.stdin, tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
