// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/matrix"
)

// text renders one value honoring --digits.
func (a *app) text(v fraction.Value) string {
	if a.cfg.Digits > 0 {
		return v.Decimal(a.cfg.Digits)
	}

	return v.String()
}

// row renders values in the "[a, b]" form used for matrix rows.
func (a *app) row(vs []fraction.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = a.text(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (a *app) printMatrix(w io.Writer, m *matrix.FractionMatrix) error {
	if a.cfg.Output == outputJSON {
		return a.writeJSON(w, m)
	}
	if a.cfg.Digits == 0 {
		_, err := fmt.Fprint(w, m)
		return err
	}
	for _, r := range m.ToRows() {
		if _, err := fmt.Fprintln(w, a.row(r)); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) printVector(w io.Writer, vs []fraction.Value) error {
	if a.cfg.Output == outputJSON {
		return a.writeJSON(w, vs)
	}
	_, err := fmt.Fprintln(w, a.row(vs))

	return err
}

func (a *app) printValue(w io.Writer, v fraction.Value) error {
	if a.cfg.Output == outputJSON {
		return a.writeJSON(w, v)
	}
	_, err := fmt.Fprintln(w, a.text(v))

	return err
}

// parseMatrix reads the literal form "1,0;0,1/2": rows split by ';',
// cells by ','.
func (a *app) parseMatrix(s string) (*matrix.FractionMatrix, error) {
	var rows [][]fraction.Value
	if strings.TrimSpace(s) != "" {
		for i, line := range strings.Split(s, ";") {
			r, err := a.factory().ParseList(line, ",")
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows = append(rows, r)
		}
	}

	return matrix.FromRows(rows, a.matrixOptions()...)
}

func (a *app) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithMode(a.mode),
		matrix.WithLogger(a.log),
		matrix.WithParallelThreshold(a.cfg.ParallelThreshold),
		matrix.WithWorkers(a.cfg.Workers),
		matrix.WithPivotTolerance(a.cfg.PivotTolerance),
	}
}
