// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures built from fraction literals.
//   • Compare matrices cell by cell through their string form so failures
//     print readable fractions instead of big.Int internals.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/matrix"
)

var (
	ex = fraction.ExactFactory()
	ap = fraction.ApproxFactory()
)

// maxU64 is 2^64-1, the largest narrow magnitude.
const maxU64 = "18446744073709551615"

// MustExact builds an exact matrix from fraction literals or fails the test.
func MustExact(t testing.TB, rows [][]string, opts ...matrix.Option) *matrix.FractionMatrix {
	t.Helper()
	vals := make([][]fraction.Value, len(rows))
	for i, row := range rows {
		vals[i] = make([]fraction.Value, len(row))
		for j, s := range row {
			v, err := ex.Parse(s)
			require.NoError(t, err)
			vals[i][j] = v
		}
	}
	m, err := matrix.FromRows(vals, opts...)
	require.NoError(t, err)

	return m
}

// MustApprox builds an approximate matrix or fails the test.
func MustApprox(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.FractionMatrix {
	t.Helper()
	vals := make([][]fraction.Value, len(rows))
	for i, row := range rows {
		vals[i] = fraction.Values(ap, row)
	}
	m, err := matrix.FromRows(vals, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m *matrix.FractionMatrix, i, j int) fraction.Value {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Cells renders every cell with fraction.Value.String.
func Cells(m *matrix.FractionMatrix) [][]string {
	out := make([][]string, m.Rows())
	for i, row := range m.ToRows() {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}

// RequireCells asserts the string form of every cell.
func RequireCells(t testing.TB, m *matrix.FractionMatrix, want [][]string) {
	t.Helper()
	require.Equal(t, want, Cells(m))
}

// ForceWide switches m to wide storage without changing its values: it
// writes 2^64 into (0, 0) and then restores the original cell.
func ForceWide(t testing.TB, m *matrix.FractionMatrix) {
	t.Helper()
	orig := MustAt(t, m, 0, 0)
	big64 := new(big.Int).Lsh(big.NewInt(1), 64)
	require.NoError(t, m.Set(0, 0, ex.BigInt(big64)))
	require.NoError(t, m.Set(0, 0, orig))
	require.True(t, m.IsWide())
}
