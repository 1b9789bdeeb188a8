package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jdmgraph/bfs"
	"github.com/katalvlaran/jdmgraph/builder"
	"github.com/katalvlaran/jdmgraph/jdm"
	"github.com/katalvlaran/jdmgraph/jdmio"
)

func newRealizeCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "realize <jdm-file>",
		Short:       "Build a random simple graph with exactly the given JDM",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationSeeded: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRealize(cmd, in, args[0])
		},
	}
	cmd.Flags().StringVarP(&in.realizeOutput, "output", "o", "generated.graph", "edge-list output file")
	cmd.Flags().IntVar(&in.attempts, "attempts", builder.DefaultAttempts, "construction attempts before giving up on a stuck neighbor switch")
	cmd.Flags().Int64Var(&in.drawBudget, "draw-budget", -1, "random pair draws per attempt (0 = unbounded, <0 = derived from the edge count)")

	return cmd
}

func runRealize(cmd *cobra.Command, in *Input, path string) error {
	start := time.Now()
	cells, rep, err := jdmio.ReadJDMFile(path, in.log)
	if err != nil {
		return err
	}
	if len(rep.Skipped) > 0 {
		in.log.WithField("skipped", len(rep.Skipped)).Warn("some JDM lines were ignored")
	}
	if in.attempts < 1 {
		return fmt.Errorf("--attempts must be at least 1, got %d", in.attempts)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(in.seed),
		builder.WithAttempts(in.attempts),
		builder.WithLogger(in.log),
	}
	if in.drawBudget >= 0 {
		opts = append(opts, builder.WithDrawBudget(in.drawBudget))
	}
	res, err := builder.Realize(jdm.FromCells(cells), opts...)
	if err != nil {
		return err
	}

	err = jdmio.WriteFileAtomic(in.realizeOutput, func(w io.Writer) error {
		return jdmio.WriteEdgeList(w, res.Edges)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#Switches:%d\n", res.Switches)
	fmt.Fprintf(out, "#Edges:%d\n", res.EdgeCount())
	fmt.Fprintf(out, "#Nodes:%d\n", res.VertexCount())
	_, components := bfs.Components(res.Graph)
	fmt.Fprintf(out, "#Components:%d\n", components)
	fmt.Fprintf(out, "Elapsed:%.3fs\n", time.Since(start).Seconds())
	in.log.WithField("file", in.realizeOutput).WithField("seed", res.Seed).Info("graph written")

	return nil
}
