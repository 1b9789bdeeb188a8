package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jdmgraph/builder"
	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/jdmio"
)

func newRandomCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "random <n> <p>",
		Short:       "Print the JDM of a G(n,p) random graph",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{annotationSeeded: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("p must be a number, got %q", args[1])
			}
			return runRandom(cmd, in, n, p)
		},
	}
	cmd.Flags().StringVarP(&in.randomOutput, "output", "o", "", "JDM output file (default: stdout)")

	return cmd
}

func runRandom(cmd *cobra.Command, in *Input, n int, p float64) error {
	g, err := builder.RandomSparse(n, p, builder.WithSeed(in.seed), builder.WithLogger(in.log))
	if err != nil {
		return err
	}
	cells := jdm.FromGraph(g).Cells()

	if in.randomOutput == "" {
		return jdmio.WriteJDM(cmd.OutOrStdout(), cells)
	}

	return jdmio.WriteFileAtomic(in.randomOutput, func(w io.Writer) error {
		return jdmio.WriteJDM(w, cells)
	})
}
