package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/hyperlog/clproof/cl"
)

// dataPoint is one (hidden attribute count, mean proof-construction
// latency) sample, for a fixed number of GE predicates.
type dataPoint struct {
	attrs     int
	latencyMs float64
}

func newRunCmd() *cobra.Command {
	var minAttrs, maxAttrs, step, predicates, iterations int
	var chartFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time proof construction across hidden-attribute and predicate counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minAttrs < 1 || maxAttrs < minAttrs || step < 1 {
				return fmt.Errorf("clbench: invalid attribute range [%d,%d] step %d", minAttrs, maxAttrs, step)
			}
			if predicates < 0 {
				return fmt.Errorf("clbench: predicates must be non-negative")
			}

			points := make([]dataPoint, 0)
			for attrs := minAttrs; attrs <= maxAttrs; attrs += step {
				if predicates > attrs {
					logger.Warn().Int("attrs", attrs).Int("predicates", predicates).Msg("skipping: more predicates than attributes")
					continue
				}
				mean, err := benchOnce(attrs, predicates, iterations)
				if err != nil {
					return fmt.Errorf("clbench: attrs=%d: %w", attrs, err)
				}
				logger.Info().Int("attrs", attrs).Int("predicates", predicates).Float64("mean_ms", mean).Msg("measured")
				points = append(points, dataPoint{attrs: attrs, latencyMs: mean})
			}

			if chartFile != "" {
				if err := renderChart(points, predicates, chartFile); err != nil {
					return err
				}
				logger.Info().Str("file", chartFile).Msg("chart written")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minAttrs, "min-attrs", 1, "minimum number of hidden attributes")
	cmd.Flags().IntVar(&maxAttrs, "max-attrs", 10, "maximum number of hidden attributes")
	cmd.Flags().IntVar(&step, "step", 1, "step between attribute counts")
	cmd.Flags().IntVar(&predicates, "predicates", 1, "number of greater-or-equal predicates per proof")
	cmd.Flags().IntVar(&iterations, "iterations", 5, "iterations averaged per data point")
	cmd.Flags().StringVar(&chartFile, "chart", "clbench.png", "output chart file (empty to skip charting)")
	return cmd
}

// benchOnce times `iterations` full AddSubProofRequest+Finalize passes over
// a synthetic credential with the given attribute and predicate counts,
// returning the mean latency in milliseconds.
func benchOnce(attrs, predicates, iterations int) (float64, error) {
	attrNames := make([]string, attrs)
	for i := range attrNames {
		attrNames[i] = fmt.Sprintf("attr%d", i)
	}

	pk, claim, err := syntheticKeyPair(attrNames)
	if err != nil {
		return 0, err
	}

	schema := schemaFor(attrNames)
	valuesBuilder := valuesFor(attrNames)
	values, err := valuesBuilder.Build(schema)
	if err != nil {
		return 0, err
	}
	request, err := requestFor(attrNames, predicates)
	if err != nil {
		return 0, err
	}

	ms, err := cl.NewMasterSecret()
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()

		builder, err := cl.NewProofBuilder()
		if err != nil {
			return 0, err
		}
		if err := builder.AddSubProofRequest("bench", &cl.ClaimSignature{PClaim: claim}, values, &cl.IssuerPublicKey{Primary: pk}, nil, request, schema); err != nil {
			return 0, err
		}
		if _, err := builder.Finalize(&cl.Nonce{Value: big.NewInt(time.Now().UnixNano())}, ms); err != nil {
			return 0, err
		}

		total += time.Since(start)
	}

	return float64(total.Milliseconds()) / float64(iterations), nil
}

func renderChart(points []dataPoint, predicates int, path string) error {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.attrs)
		ys[i] = p.latencyMs
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Proof construction latency (%d GE predicates)", predicates),
		XAxis: chart.XAxis{Name: "hidden attributes"},
		YAxis: chart.YAxis{Name: "mean latency (ms)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "latency",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("clbench: create chart file: %w", err)
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
