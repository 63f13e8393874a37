// Command kirchhoff solves resistive networks and inspects matrices.
//
// Usage:
//
//	kirchhoff [klog flags] solve  NETLIST
//	kirchhoff [klog flags] system NETLIST
//	kirchhoff [klog flags] det [-algo=gauss|full] MATRIX
//	kirchhoff [klog flags] rank MATRIX
//
// NETLIST is a netlist file (see package netlist) and MATRIX a matrix in the
// text form of matrix.WriteText. A path of "-" reads standard input.
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("kirchhoff", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	if err := fset.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	err := run(fset.Args(), os.Stdin, os.Stdout)
	if err != nil {
		klog.Errorf("kirchhoff: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
