// SPDX-License-Identifier: MIT
// Package matrix provides in-place elimination kernels on FractionMatrix:
// Gauss-Jordan elimination, reduced row-echelon form, inversion and I-M.
//
// Purpose:
//   - Run one algorithm over all three layouts. Narrow kernels use checked
//     arithmetic and promote the matrix mid-row on overflow; the wide kernel
//     then finishes the row from the column that failed.
//   - Approximate pivots compare against the pivot tolerance
//     (WithPivotTolerance); exact pivots test for exact zero.
//
// Notes:
//   - Pivots live on the diagonal; a zero pivot is skipped, never swapped.
//   - Errors are plain sentinels wrapped via matrixErrorf with an op tag.

package matrix

import (
	"math"
	"math/big"

	"github.com/katalvlaran/ratla/fraction"
)

// Operation name constants for unified error wrapping.
const (
	opMul                = "Mul"
	opMulVec             = "MulVec"
	opVecMul             = "VecMul"
	opGaussJordan        = "GaussJordan"
	opGaussJordanReduced = "GaussJordanReduced"
	opInvert             = "Invert"
	opIdentityMinus      = "IdentityMinus"
)

// GaussJordan applies Gauss-Jordan elimination in place.
// MAIN DESCRIPTION:
//   - Forward pass: for each nonzero diagonal pivot (a, a), subtract
//     multiples of row a from every lower row with a nonzero cell in
//     column a. Backward pass: the same for the rows above, bottom-up.
//
// Implementation:
//   - Stage 1: forward elimination over a < min(rows, cols).
//   - Stage 2: backward elimination over the same pivots in reverse.
//
// Behavior highlights:
//   - Zero pivots are skipped (no row exchange), so singular input is
//     left partially reduced rather than rejected.
//   - Narrow matrices are promoted to wide storage on the first overflow.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r^2 * c) cell operations, Space O(1) extra (O(r*c) once on
//     promotion).
func (m *FractionMatrix) GaussJordan() error {
	if m == nil {
		return matrixErrorf(opGaussJordan, ErrNilMatrix)
	}
	p := min(m.r, m.c)
	for a := 0; a < p; a++ {
		if m.cellIsZero(a*m.c + a) {
			continue
		}
		for b := a + 1; b < m.r; b++ {
			if !m.cellIsZero(b*m.c + a) {
				m.eliminate(b, a, a)
			}
		}
	}
	for a := p - 1; a >= 0; a-- {
		if m.cellIsZero(a*m.c + a) {
			continue
		}
		for b := a - 1; b >= 0; b-- {
			if !m.cellIsZero(b*m.c + a) {
				m.eliminate(b, a, a)
			}
		}
	}

	return nil
}

// eliminate performs row dst -= (dst[col]/src[col]) * row src over the
// columns col..c-1.
func (m *FractionMatrix) eliminate(dst, src, col int) {
	if m.data != nil {
		d, s := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
		factor := d[col] / s[col]
		for k := col; k < m.c; k++ {
			d[k] -= factor * s[k]
		}
		return
	}

	from := col
	var factor wideCell
	if m.narrow != nil {
		f, ok := narrowDiv(m.narrow.get(dst*m.c+col), m.narrow.get(src*m.c+col))
		if ok {
			if from = m.eliminateNarrow(dst, src, col, f); from == m.c {
				return
			}
			factor = f.widen()
		}
		m.promote(opGaussJordan)
	}
	if factor.num == nil {
		factor = wideDiv(m.wide.get(dst*m.c+col), m.wide.get(src*m.c+col))
	}
	for k := from; k < m.c; k++ {
		t := wideMul(factor, m.wide.get(src*m.c+k))
		m.wide.set(dst*m.c+k, wideSub(m.wide.get(dst*m.c+k), t))
	}
}

// eliminateNarrow runs the narrow row update from column col and returns
// the first column it could not finish (m.c when the row is done).
func (m *FractionMatrix) eliminateNarrow(dst, src, col int, factor narrowCell) int {
	s := m.narrow
	for k := col; k < m.c; k++ {
		t, ok := narrowMul(factor, s.get(src*m.c+k))
		if !ok {
			return k
		}
		d, ok := narrowSub(s.get(dst*m.c+k), t)
		if !ok {
			return k
		}
		s.set(dst*m.c+k, d)
	}

	return m.c
}

// GaussJordanReduced brings the matrix to reduced row-echelon form in
// place: GaussJordan, then every row i is divided by its diagonal cell on
// the columns past the leading square block and the diagonal becomes 1.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNoReducedForm (wraps ErrSingular) when rows > cols or a diagonal
//     cell is zero after elimination. The matrix is then left eliminated
//     but not normalized.
func (m *FractionMatrix) GaussJordanReduced() error {
	if m == nil {
		return matrixErrorf(opGaussJordanReduced, ErrNilMatrix)
	}
	if err := m.GaussJordan(); err != nil {
		return matrixErrorf(opGaussJordanReduced, err)
	}
	if m.r > m.c {
		return matrixErrorf(opGaussJordanReduced, ErrNoReducedForm)
	}
	for i := 0; i < m.r; i++ {
		if m.cellIsZero(i*m.c + i) {
			return matrixErrorf(opGaussJordanReduced, ErrNoReducedForm)
		}
	}
	for i := 0; i < m.r; i++ {
		m.divideRow(i, m.r, i*m.c+i)
		m.setOneAt(i*m.c + i)
	}

	return nil
}

// divideRow divides the cells of row from column from on by the cell at
// offset diag.
func (m *FractionMatrix) divideRow(row, from, diag int) {
	if m.data != nil {
		d := m.data[diag]
		for k := from; k < m.c; k++ {
			m.data[row*m.c+k] /= d
		}
		return
	}

	if m.narrow != nil {
		inv := m.narrow.get(diag).recip()
		for k := from; k < m.c; k++ {
			q, ok := narrowMul(m.narrow.get(row*m.c+k), inv)
			if !ok {
				m.promote(opGaussJordanReduced)
				from = k
				break
			}
			m.narrow.set(row*m.c+k, q)
			from = k + 1
		}
		if m.narrow != nil {
			return
		}
	}
	inv := m.wide.get(diag).recip()
	for k := from; k < m.c; k++ {
		m.wide.set(row*m.c+k, wideMul(m.wide.get(row*m.c+k), inv))
	}
}

// Invert replaces the matrix with its inverse.
// MAIN DESCRIPTION:
//   - 0×0: no-op. 1×1: reciprocal. 2×2: closed form via the determinant.
//   - n >= 3: augment with the identity, reduce, drop the left n columns.
//
// Behavior highlights:
//   - On error the receiver is unchanged.
//   - Exact results are exact; narrow input may come back wide.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular for a zero determinant or pivot (ErrNoReducedForm for
//     n >= 3, which matches ErrSingular under errors.Is).
//
// Complexity:
//   - Time O(n^3) cell operations, Space O(n^2).
func (m *FractionMatrix) Invert() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opInvert, err)
	}
	n := m.r
	switch n {
	case 0:
		return nil
	case 1:
		if m.cellIsZero(0) {
			return matrixErrorf(opInvert, ErrSingular)
		}
		m.storeValue(opInvert, 0, m.cellValue(0).Recip())
		return nil
	case 2:
		return m.invert2()
	}

	w := m.Clone()
	if err := w.PushColumns(n); err != nil {
		return matrixErrorf(opInvert, err)
	}
	for i := 0; i < n; i++ {
		w.setOneAt(i*w.c + n + i)
	}
	if err := w.GaussJordanReduced(); err != nil {
		return matrixErrorf(opInvert, err)
	}
	if err := w.PopFrontColumns(n); err != nil {
		return matrixErrorf(opInvert, err)
	}
	*m = *w

	return nil
}

// invert2 applies [[a, b], [c, d]]^-1 = [[d, -b], [-c, a]] / (ad - bc).
func (m *FractionMatrix) invert2() error {
	a, b, c, d := m.cellValue(0), m.cellValue(1), m.cellValue(2), m.cellValue(3)
	det := a.Mul(d).Sub(b.Mul(c))
	if m.data != nil {
		if x := det.Approximate(); x == 0 || math.Abs(x) <= m.opts.pivotTol {
			return matrixErrorf(opInvert, ErrSingular)
		}
	} else if det.IsZero() {
		return matrixErrorf(opInvert, ErrSingular)
	}

	inv := det.Recip()
	out := [4]fraction.Value{d.Mul(inv), b.Neg().Mul(inv), c.Neg().Mul(inv), a.Mul(inv)}
	for i, v := range out {
		m.storeValue(opInvert, i, v)
	}

	return nil
}

// IdentityMinus replaces the matrix M with I - M in place. The diagonal is
// the set of cells with row == col, so non-square matrices are accepted.
//
// Behavior highlights:
//   - Diagonal: 1 - x, computed on the magnitude (x >= 1 gives -(x-1),
//     0 <= x < 1 gives 1-x, x < 0 gives 1+|x|). Specials flip their sign;
//     NaN stays NaN.
//   - Off-diagonal: negated.
//   - A narrow matrix whose diagonal 1+|x| would overflow is promoted
//     before any cell is written.
//
// Errors:
//   - ErrNilMatrix.
func (m *FractionMatrix) IdentityMinus() error {
	if m == nil {
		return matrixErrorf(opIdentityMinus, ErrNilMatrix)
	}
	if m.data != nil {
		for i := 0; i < m.r; i++ {
			for j := 0; j < m.c; j++ {
				idx := i*m.c + j
				switch {
				case i == j:
					m.data[idx] = 1 - m.data[idx]
				case m.data[idx] != 0:
					m.data[idx] = -m.data[idx]
				}
			}
		}
		return nil
	}

	if m.narrow != nil {
		for d := 0; d < min(m.r, m.c); d++ {
			cell := m.narrow.get(d*m.c + d)
			if _, ok := add64(cell.num, cell.den); cell.tag == Minus && !ok {
				m.promote(opIdentityMinus)
				break
			}
		}
	}

	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			idx := i*m.c + j
			if m.narrow != nil {
				cell := m.narrow.get(idx)
				if i == j {
					m.narrow.set(idx, oneMinusNarrow(cell))
				} else {
					m.narrow.set(idx, cell.neg())
				}
				continue
			}
			cell := m.wide.get(idx)
			if i == j {
				m.wide.set(idx, oneMinusWide(cell))
			} else {
				m.wide.set(idx, cell.neg())
			}
		}
	}

	return nil
}

// oneMinusNarrow returns 1 - c; the caller guarantees num+den fits for
// negative c.
func oneMinusNarrow(c narrowCell) narrowCell {
	switch {
	case c.tag.IsSpecial():
		return narrowCell{tag: c.tag.Negate()}
	case c.tag == Minus:
		return narrowCell{tag: Plus, num: c.num + c.den, den: c.den}
	case c.num >= c.den:
		return normalizeNarrow(true, c.num-c.den, c.den)
	}

	return narrowCell{tag: Plus, num: c.den - c.num, den: c.den}
}

func oneMinusWide(c wideCell) wideCell {
	switch {
	case c.tag.IsSpecial():
		return wideSpecial(c.tag.Negate())
	case c.tag == Minus:
		return wideCell{tag: Plus, num: new(big.Int).Add(c.num, c.den), den: c.den}
	case c.num.Cmp(c.den) >= 0:
		return normalizeWide(true, new(big.Int).Sub(c.num, c.den), new(big.Int).Set(c.den))
	}

	return wideCell{tag: Plus, num: new(big.Int).Sub(c.den, c.num), den: c.den}
}
