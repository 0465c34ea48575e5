// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/matrix"
)

func newMatrixCmd(a *app) *cobra.Command {
	matrixCmd := &cobra.Command{
		Use:   "matrix",
		Short: "Matrix operations over fractions",
		Long: `Matrix literals list rows separated by ';' and cells separated by ','.

Example:
  ratcalc matrix invert "2,1;1,1"
  ratcalc matrix mul "1,2,3;4,5,6" "7,8;9,10;11,12"
  ratcalc matrix solve "2,1;1,3" "3,5"`,
	}

	pf := matrixCmd.PersistentFlags()
	pf.Int("parallel-threshold", matrix.DefaultParallelThreshold, "cell count from which reductions run in parallel")
	pf.Int("workers", matrix.DefaultWorkers, "parallel workers (0 = GOMAXPROCS)")
	pf.Float64("pivot-tolerance", matrix.DefaultPivotTolerance, "approx mode: pivots at or below this magnitude count as zero")
	_ = a.v.BindPFlag("parallel_threshold", pf.Lookup("parallel-threshold"))
	_ = a.v.BindPFlag("workers", pf.Lookup("workers"))
	_ = a.v.BindPFlag("pivot_tolerance", pf.Lookup("pivot-tolerance"))

	matrixCmd.AddCommand(
		a.unaryMatrixCmd("invert <M>", "Invert a square matrix", matrix.InverseOf),
		a.unaryMatrixCmd("rref <M>", "Reduced row-echelon form (no row swaps)", matrix.ReducedEchelonOf),
		a.unaryMatrixCmd("echelon <M>", "Gauss-Jordan elimination without normalizing pivots", echelonOf),
		a.unaryMatrixCmd("identity-minus <M>", "Compute I - M", matrix.IdentityMinusOf),
		a.unaryMatrixCmd("reduce <M>", "Normalize every cell to lowest terms", reducedOf),
		newMulCmd(a),
		newSolveCmd(a),
		newLCDCmd(a),
	)

	return matrixCmd
}

func echelonOf(m *matrix.FractionMatrix) (*matrix.FractionMatrix, error) {
	out := m.Clone()
	if err := out.GaussJordan(); err != nil {
		return nil, err
	}

	return out, nil
}

func reducedOf(m *matrix.FractionMatrix) (*matrix.FractionMatrix, error) {
	if err := m.Reduce(); err != nil {
		return nil, err
	}

	return m, nil
}

// unaryMatrixCmd wires a matrix-to-matrix function to a one-argument command.
func (a *app) unaryMatrixCmd(use, short string, fn func(*matrix.FractionMatrix) (*matrix.FractionMatrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseMatrix(args[0])
			if err != nil {
				return err
			}
			out, err := fn(m)
			if err != nil {
				return err
			}
			a.log.Debug().Int("rows", out.Rows()).Int("cols", out.Cols()).Stringer("storage", out.Representation()).Msg("done")

			return a.printMatrix(cmd.OutOrStdout(), out)
		},
	}
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul <A> <B>",
		Short: "Multiply two matrices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseMatrix(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseMatrix(args[1])
			if err != nil {
				return err
			}
			p, err := matrix.Mul(x, y)
			if err != nil {
				return err
			}

			return a.printMatrix(cmd.OutOrStdout(), p)
		},
	}
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <A> <b>",
		Short: "Solve A·x = b for square A",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := a.factory().ParseList(args[1], ",")
			if err != nil {
				return err
			}
			x, err := matrix.Solve(m, b)
			if err != nil {
				return err
			}

			return a.printVector(cmd.OutOrStdout(), x)
		},
	}
}

func newLCDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lcd <M>",
		Short: "Least common denominator of all cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parseMatrix(args[0])
			if err != nil {
				return err
			}
			d, err := m.CommonDenominator()
			if err != nil {
				return err
			}

			return a.printValue(cmd.OutOrStdout(), fraction.ExactFactory().BigInt(d))
		},
	}
}
