package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/jdmio"
	"github.com/katalvlaran/jdmgraph/matrix"
	"github.com/katalvlaran/jdmgraph/mutate"
)

func newMutateCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "mutate <input.jdm> <num_steps> <output.jdm>",
		Short:       "Perturb a JDM with degree-preserving 2-swaps",
		Args:        cobra.ExactArgs(3),
		Annotations: map[string]string{annotationSeeded: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[1])
			if err != nil || steps < 0 {
				return fmt.Errorf("num_steps must be a non-negative integer, got %q", args[1])
			}
			return runMutate(cmd, in, args[0], steps, args[2])
		},
	}
	cmd.Flags().Int64Var(&in.sampleBudget, "sample-budget", mutate.DefaultSampleBudget, "candidate draws per step (0 = unbounded)")

	return cmd
}

func runMutate(cmd *cobra.Command, in *Input, src string, steps int, dst string) error {
	cells, _, err := jdmio.ReadJDMFile(src, in.log)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		return fmt.Errorf("%s: no JDM records", src)
	}
	if err := jdm.Check(jdm.FromCells(cells)); err != nil {
		in.log.WithError(err).Warn("input JDM is not realizable; capacities may be meaningless")
	}

	m, err := matrix.FromCells(cells)
	if err != nil {
		return err
	}
	if in.sampleBudget < 0 {
		return fmt.Errorf("--sample-budget must not be negative, got %d", in.sampleBudget)
	}
	st, err := mutate.Run(m, steps,
		mutate.WithSeed(in.seed),
		mutate.WithSampleBudget(in.sampleBudget),
		mutate.WithLogger(in.log),
	)
	if err != nil {
		return err
	}

	out, err := m.Project(cells)
	if err != nil {
		return err
	}
	err = jdmio.WriteFileAtomic(dst, func(w io.Writer) error {
		return jdmio.WriteJDM(w, out)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "#Steps:%d\n#Moved:%d\n", st.Steps, st.Moved)

	return nil
}
