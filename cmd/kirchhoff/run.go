package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/kirchhoff"
	"github.com/katalvlaran/kirchhoff/circuit"
	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/katalvlaran/kirchhoff/netlist"
)

// ErrUsage reports a missing or unknown command or argument.
var ErrUsage = errors.New("usage: kirchhoff solve|system|det|rank FILE")

const stdinName = "-"

// run dispatches one command; args excludes the program name.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "solve":
		return cmdSolve(rest, stdin, stdout)
	case "system":
		return cmdSystem(rest, stdin, stdout)
	case "det":
		return cmdDet(rest, stdin, stdout)
	case "rank":
		return cmdRank(rest, stdin, stdout)
	default:
		return errors.Wrapf(ErrUsage, "unknown command %q", cmd)
	}
}

// openInput returns the reader behind path, with "-" meaning stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinName {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}

	return f, nil
}

func onePath(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.Wrapf(ErrUsage, "%s takes exactly one FILE, got %d arguments", cmd, len(args))
	}

	return args[0], nil
}

func loadNetlist(path string, stdin io.Reader) (*netlist.Netlist, *circuit.Adjacency, error) {
	in, err := openInput(path, stdin)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	src, err := io.ReadAll(in)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read %s", path)
	}
	nl, err := netlist.Parse(path, string(src))
	if err != nil {
		return nil, nil, err
	}
	adj, err := nl.Adjacency()
	if err != nil {
		return nil, nil, err
	}
	klog.V(2).Infof("%s: %d branches over %d vertices", path, len(nl.Branches), adj.Order())

	return nl, adj, nil
}

func loadMatrix(path string, stdin io.Reader) (*matrix.Dense, error) {
	in, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	m, err := matrix.ReadText(in)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	klog.V(2).Infof("%s: %dx%d matrix", path, m.Rows(), m.Cols())

	return m, nil
}

// cmdSolve prints the current of every branch in the orientation it was declared.
func cmdSolve(args []string, stdin io.Reader, stdout io.Writer) error {
	path, err := onePath("solve", args)
	if err != nil {
		return err
	}
	nl, adj, err := loadNetlist(path, stdin)
	if err != nil {
		return err
	}
	rep, err := kirchhoff.Analyze(adj)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "# %d branches, %d loops, rank %d\n", len(rep.Currents), len(rep.Cycles), rep.Rank)
	if free := rep.Solution.Fundamental.Cols(); free > 0 {
		fmt.Fprintf(stdout, "# %d free currents, showing the particular solution\n", free)
	}
	for _, e := range nl.GivenEdges() {
		i, err := rep.CurrentOn(e)
		if err != nil {
			return err
		}
		if math.Abs(i) < 1e-12 {
			i = 0
		}
		fmt.Fprintf(stdout, "%v %v: %.6g A\n", e, adj.At(e.From, e.To), i)
	}

	return nil
}

// cmdSystem prints the augmented Kirchhoff system [LHS | RHS] in matrix text form.
func cmdSystem(args []string, stdin io.Reader, stdout io.Writer) error {
	path, err := onePath("system", args)
	if err != nil {
		return err
	}
	_, adj, err := loadNetlist(path, stdin)
	if err != nil {
		return err
	}
	a, err := circuit.NewAssembler(adj)
	if err != nil {
		return err
	}
	sys, err := a.Execute()
	if err != nil {
		return err
	}
	if err = sys.LHS.AppendCols(sys.RHS, false); err != nil {
		return err
	}

	return matrix.WriteText(stdout, sys.LHS)
}

func cmdDet(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("det", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	algoName := fs.String("algo", "gauss", "determinant algorithm: gauss or full")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(ErrUsage, err.Error())
	}
	algo, err := matrix.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	path, err := onePath("det", fs.Args())
	if err != nil {
		return err
	}
	m, err := loadMatrix(path, stdin)
	if err != nil {
		return err
	}
	det, err := m.Determinant(algo)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%g\n", det)

	return nil
}

func cmdRank(args []string, stdin io.Reader, stdout io.Writer) error {
	path, err := onePath("rank", args)
	if err != nil {
		return err
	}
	m, err := loadMatrix(path, stdin)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d\n", m.Rank())

	return nil
}
