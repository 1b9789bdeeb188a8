package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/jdmio"
	"github.com/katalvlaran/jdmgraph/verify"
)

// errMismatch is returned by verify --strict when any cell differs.
var errMismatch = errors.New("jdm: JDM mismatch")

func newVerifyCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <jdm-file> <edge-list-file>",
		Short: "Compare a graph's JDM with a target JDM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, in, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&in.strict, "strict", false, "exit non-zero when any cell differs")

	return cmd
}

func runVerify(cmd *cobra.Command, in *Input, jdmPath, graphPath string) error {
	cells, _, err := jdmio.ReadJDMFile(jdmPath, in.log)
	if err != nil {
		return err
	}
	el, _, err := jdmio.ReadEdgeListFile(graphPath, in.log)
	if err != nil {
		return err
	}

	rep := verify.Compare(jdm.FromCells(cells), el.VertexCount, el.Edges)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Graph has %d nodes, %d edges and %d connected component(s).\n", rep.Nodes, rep.Edges, rep.Components)
	for _, d := range rep.Differences {
		fmt.Fprintf(out, "[diff] J[%d][%d]: want %d, got %d\n", d.K, d.L, d.Want, d.Got)
	}
	if rep.OK() {
		fmt.Fprintln(out, "[OK] the computed JDM matches the input.")
		return nil
	}
	fmt.Fprintf(out, "[WARN] %d difference(s) found.\n", len(rep.Differences))
	if in.strict {
		return fmt.Errorf("%d cell(s) differ: %w", len(rep.Differences), errMismatch)
	}

	return nil
}
