package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/probability/distributions"
	"github.com/born-ml/probability/tensor"
)

type evalFunc func(g *distributions.Gamma, x *tensor.RawTensor) (*tensor.RawTensor, error)

var evalFuncs = map[string]evalFunc{
	"logpdf": (*distributions.Gamma).LogPDF,
	"pdf":    (*distributions.Gamma).PDF,
	"logcdf": (*distributions.Gamma).LogCDF,
	"cdf":    (*distributions.Gamma).CDF,
}

type evalPoint struct {
	X      jsonFloat            `json:"x" yaml:"x"`
	Index  int                  `json:"index" yaml:"index"`
	Values map[string]jsonFloat `json:"values" yaml:"values"`
}

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate densities and distribution functions at points",
		Long: `eval evaluates every requested function at every point for every batch
member. Points must be strictly positive.

Functions: logpdf, pdf, logcdf, cdf.`,
		Example: `  gamma eval --alpha 3 --beta 2 --x 1
  gamma eval --alpha 3,4 --beta 2,3 --x 0.5,1,2 --fn pdf --fn cdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(a.v)
			if err != nil {
				return err
			}
			if len(p.X) == 0 {
				return errors.New("at least one evaluation point is required (--x)")
			}
			fns, err := normalizeFuncs(p.Fn)
			if err != nil {
				return err
			}

			g, err := p.buildGamma(a.backend)
			if err != nil {
				return err
			}
			dt, _ := p.dtype()

			rank, _ := g.StaticBatchShape().Rank()
			x, err := toTensor(p.X, pointsShape(len(p.X), rank), dt)
			if err != nil {
				return errors.Wrap(err, "x")
			}
			a.logger.Debug("evaluating", "distribution", g.String(), "points", len(p.X), "functions", strings.Join(fns, ","))

			results := make(map[string][]float64, len(fns))
			for _, fn := range fns {
				start := time.Now()
				out, err := evalFuncs[fn](g, x)
				if err != nil {
					return errors.Wrapf(err, "evaluate %s", fn)
				}
				observeEvaluation(fn, len(p.X), start)
				results[fn] = out.Float64s()
			}

			batchSize := g.Mean().NumElements()
			t := table{header: append([]string{"X", "INDEX"}, upper(fns)...)}
			points := make([]evalPoint, 0, len(p.X)*batchSize)
			for i, xi := range p.X {
				for j := 0; j < batchSize; j++ {
					point := evalPoint{X: jsonFloat(xi), Index: j, Values: make(map[string]jsonFloat, len(fns))}
					row := []string{formatFloat(xi), strconv.Itoa(j)}
					for _, fn := range fns {
						v := results[fn][i*batchSize+j]
						point.Values[fn] = jsonFloat(v)
						row = append(row, formatFloat(v))
					}
					points = append(points, point)
					t.rows = append(t.rows, row)
				}
			}
			t.value = points

			return render(cmd.OutOrStdout(), p.Output, t)
		},
	}

	cmd.Flags().String("x", "", "evaluation point(s), comma separated")
	cmd.Flags().StringSlice("fn", []string{"pdf"}, "function(s) to evaluate: logpdf, pdf, logcdf, cdf")
	_ = a.v.BindPFlag("x", cmd.Flags().Lookup("x"))
	_ = a.v.BindPFlag("fn", cmd.Flags().Lookup("fn"))

	return cmd
}

// pointsShape lays n points along a leading axis so they broadcast against
// every batch member: (n, 1, ..., 1) with batchRank trailing ones.
func pointsShape(n, batchRank int) tensor.Shape {
	shape := make(tensor.Shape, 1+batchRank)
	shape[0] = n
	for i := 1; i < len(shape); i++ {
		shape[i] = 1
	}
	return shape
}

// normalizeFuncs lower-cases, de-duplicates and validates function names.
func normalizeFuncs(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	var fns []string
	for _, name := range names {
		fn := strings.ToLower(strings.TrimSpace(name))
		if fn == "" || seen[fn] {
			continue
		}
		if _, ok := evalFuncs[fn]; !ok {
			return nil, fmt.Errorf("unknown function %q (want logpdf, pdf, logcdf or cdf)", name)
		}
		seen[fn] = true
		fns = append(fns, fn)
	}
	if len(fns) == 0 {
		return []string{"pdf"}, nil
	}
	return fns, nil
}

func upper(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}
