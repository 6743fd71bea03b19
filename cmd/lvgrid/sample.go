package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvgrid/param"
	"github.com/katalvlaran/lvgrid/sweep"
	"github.com/spf13/cobra"
)

// maxDrawsPerSample bounds rejection sampling against a filter.
const maxDrawsPerSample = 1000

func (a *app) newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "Draw random points from a sweep",
		Long: `Draw points uniformly at random (with replacement). Points rejected by the
filter are redrawn. The seed comes from --seed, else the definition file,
else the clock; it is logged so a draw can be replayed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.v.GetString("sample.format")
			if err := checkFormat(format); err != nil {
				return err
			}
			n := a.v.GetInt("sample.count")
			if n < 0 {
				return fmt.Errorf("--count must be >= 0, got %d", n)
			}
			def, space, filter, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}

			var seed int64
			switch {
			case cmd.Flags().Changed("seed") || a.v.IsSet("sample.seed"):
				seed = a.v.GetInt64("sample.seed")
			case def.Seed != nil:
				seed = *def.Seed
			default:
				seed = time.Now().UnixNano()
			}
			a.logger.Info("Sampling sweep.", "seed", seed, "n", n)

			smp := space.Sample(param.WithSeed(seed))
			run := sweep.NewRun(def.Name, space, filter)
			w := newRecordWriter(a.out, format, space.Names())
			for i := 0; i < n; i++ {
				p, err := drawAccepted(smp, filter)
				if err != nil {
					return err
				}
				if err := w.write(run.Record(p)); err != nil {
					return err
				}
			}
			return w.flush()
		},
	}
	cmd.Flags().IntP("count", "n", 1, "number of points to draw")
	cmd.Flags().Int64("seed", 0, "random seed (default: from file, else clock)")
	cmd.Flags().String("format", formatJSONL, "output format: jsonl or table")
	a.bindFlag(cmd, "count")
	a.bindFlag(cmd, "seed")
	a.bindFlag(cmd, "format")
	return cmd
}

// drawAccepted draws until f accepts a point or the attempt budget runs out.
func drawAccepted(smp *sweep.Sampler, f *sweep.Filter) (sweep.Point, error) {
	for i := 0; i < maxDrawsPerSample; i++ {
		p := smp.Draw()
		ok, err := f.Match(p)
		if err != nil {
			return sweep.Point{}, err
		}
		if ok {
			return p, nil
		}
	}
	return sweep.Point{}, fmt.Errorf("filter %q rejected %d consecutive draws", f, maxDrawsPerSample)
}
