// SPDX-License-Identifier: MIT

// Package matrix - FractionMatrix: row-major matrix of fraction values with
// three storage layouts and safe accessors.
//
// Purpose:
//   - Exact matrices live in narrow storage (uint64 pairs) and move to wide
//     storage (*big.Int pairs) the first time a result does not fit.
//   - Approximate matrices use the flat []float64 dense layout.
//   - Indexed accessors and mutators (At, Set, Is*, Increase, Decrease,
//     SetRowZero) never panic on user input: they return
//     sentinel errors, ErrNilMatrix included. Shape getters (Rows, Cols,
//     Shape, Mode) expect a non-nil receiver.
//
// Invariants:
//   - Exactly one of narrow, wide, data is non-nil (data may be empty).
//   - len(cells) == r*c; offset(i, j) = i*c + j.
//   - A matrix never holds both exact and approximate cells.
//
// Complexity quicksheet:
//   - New/Identity/FromRows: O(r*c); At/Set: O(1) amortized (a promotion
//     is O(r*c) once); Clone: O(r*c); Push*/Pop*: O(r*c).
package matrix

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/katalvlaran/ratla/fraction"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxSetZero    = "SetZero"
	ctxSetOne     = "SetOne"
	ctxIsZero     = "IsZero"
	ctxIsOne      = "IsOne"
	ctxIsPositive = "IsPositive"
	ctxIsNegative = "IsNegative"
	ctxIncrease   = "Increase"
	ctxDecrease   = "Decrease"
	ctxSetRowZero = "SetRowZero"

	opNew             = "New"
	opIdentity        = "Identity"
	opFromRows        = "FromRows"
	opPushColumns     = "PushColumns"
	opPushRows        = "PushRows"
	opPopFrontColumns = "PopFrontColumns"
	opUnmarshalJSON   = "UnmarshalJSON"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// FractionMatrix is a row-major matrix of fraction values.
//   - r, c hold the dimensions (>= 0).
//   - mode is fixed for the lifetime of the matrix.
//   - narrow / wide back exact matrices, data backs approximate ones.
//   - opts carries the logger, parallelism and pivot tolerance.
type FractionMatrix struct {
	r, c   int
	mode   fraction.Mode
	narrow *narrowStore
	wide   *wideStore
	data   []float64
	opts   Options
}

var (
	_ fmt.Stringer     = (*FractionMatrix)(nil)
	_ json.Marshaler   = (*FractionMatrix)(nil)
	_ json.Unmarshaler = (*FractionMatrix)(nil)
)

// newWithOptions allocates an r×c zero matrix in mode m.
func newWithOptions(rows, cols int, m fraction.Mode, o Options) *FractionMatrix {
	out := &FractionMatrix{r: rows, c: cols, mode: m, opts: o}
	if m == fraction.ModeApprox {
		out.data = make([]float64, rows*cols)
	} else {
		out.narrow = newNarrowStore(rows * cols)
	}

	return out
}

// New creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Zero matrix in the mode chosen by WithMode (default:
//     fraction.DefaultMode()). Exact matrices start in narrow storage.
//
// Inputs:
//   - rows, cols: non-negative dimensions; 0×k and k×0 are legal.
//
// Errors:
//   - ErrBadShape when rows or cols is negative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*FractionMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}

	o := gatherOptions(opts...)

	return newWithOptions(rows, cols, o.mode, o), nil
}

// Identity creates the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n is negative.
func Identity(n int, opts ...Option) (*FractionMatrix, error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, ErrBadShape)
	}
	o := gatherOptions(opts...)
	m := newWithOptions(n, n, o.mode, o)
	for i := 0; i < n; i++ {
		m.setOneAt(i*n + i)
	}

	return m, nil
}

// FromRows builds a matrix from a slice of rows.
// MAIN DESCRIPTION:
//   - Copies the values row by row. The mode is the mode of the cells; an
//     empty input uses WithMode (or the default mode).
//
// Implementation:
//   - Stage 1: validate the shape (all rows have the same length).
//   - Stage 2: validate that every cell has the mode of the first one.
//   - Stage 3: exact input is stored narrow when every cell fits in
//     uint64, wide otherwise.
//
// Errors:
//   - ErrBadShape on ragged rows.
//   - ErrIncompatible when cells mix modes or one is Incompatible.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]fraction.Value, opts ...Option) (*FractionMatrix, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, ErrBadShape)
		}
	}
	if r*c == 0 {
		return newWithOptions(r, c, o.mode, o), nil
	}

	mode, err := rows[0][0].Mode()
	if err != nil {
		return nil, matrixErrorf(opFromRows, ErrIncompatible)
	}
	for i := range rows {
		for j := range rows[i] {
			if err = ValidateValueMode(mode, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	m := &FractionMatrix{r: r, c: c, mode: mode, opts: o}
	if mode == fraction.ModeApprox {
		m.data = make([]float64, r*c)
		for i := range rows {
			for j, v := range rows[i] {
				m.data[i*c+j] = v.Approximate()
			}
		}
		return m, nil
	}

	w := &wideStore{tag: make([]Tag, r*c), num: make([]*big.Int, r*c), den: make([]*big.Int, r*c)}
	for i := range rows {
		for j, v := range rows[i] {
			cell, _ := wideFromValue(v) // mode checked above
			w.set(i*c+j, cell)
		}
	}
	m.wide = w
	m.demote(opFromRows)

	return m, nil
}

// ToRows copies the matrix into a fresh slice of rows.
func (m *FractionMatrix) ToRows() [][]fraction.Value {
	out := make([][]fraction.Value, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]fraction.Value, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.cellValue(i*m.c + j)
		}
	}

	return out
}

// Rows returns the number of rows.
func (m *FractionMatrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *FractionMatrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *FractionMatrix) Shape() (rows, cols int) { return m.r, m.c }

// Mode returns the exactness mode of the matrix.
func (m *FractionMatrix) Mode() fraction.Mode { return m.mode }

// Representation returns the storage layout currently in use.
func (m *FractionMatrix) Representation() Representation {
	switch {
	case m.data != nil || m.mode == fraction.ModeApprox:
		return Approx
	case m.wide != nil:
		return Wide
	}

	return Narrow
}

// IsWide reports whether the matrix currently uses wide storage.
func (m *FractionMatrix) IsWide() bool { return m.wide != nil }

// ---------- cell plumbing ----------

// indexOf validates (row, col) and returns the flat offset.
func (m *FractionMatrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(method, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cellErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// cellWide returns cell i of an exact matrix as a wide cell.
func (m *FractionMatrix) cellWide(i int) wideCell {
	if m.wide != nil {
		return m.wide.get(i)
	}

	return m.narrow.get(i).widen()
}

// cellValue returns cell i as a fraction.Value.
func (m *FractionMatrix) cellValue(i int) fraction.Value {
	switch {
	case m.data != nil:
		return fraction.Approx(m.data[i])
	case m.wide != nil:
		return m.wide.get(i).value()
	}

	return m.narrow.get(i).value()
}

// storeWide writes a wide result into cell i, narrowing it when possible
// and promoting the matrix when not.
func (m *FractionMatrix) storeWide(op string, i int, cell wideCell) {
	if m.wide == nil {
		if n, ok := cell.narrow(); ok {
			m.narrow.set(i, n)
			return
		}
		m.promote(op)
	}
	m.wide.set(i, cell)
}

// storeValue writes a value of the matrix's mode into cell i.
func (m *FractionMatrix) storeValue(op string, i int, v fraction.Value) {
	if m.data != nil {
		m.data[i] = v.Approximate()
		return
	}
	cell, _ := wideFromValue(v)
	m.storeWide(op, i, cell)
}

func (m *FractionMatrix) setZeroAt(i int) {
	switch {
	case m.data != nil:
		m.data[i] = 0
	case m.wide != nil:
		m.wide.set(i, wideZero())
	default:
		m.narrow.set(i, narrowZero)
	}
}

func (m *FractionMatrix) setOneAt(i int) {
	switch {
	case m.data != nil:
		m.data[i] = 1
	case m.wide != nil:
		m.wide.set(i, wideOne())
	default:
		m.narrow.set(i, narrowOne)
	}
}

// ---------- accessors ----------

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange for invalid indices.
func (m *FractionMatrix) At(row, col int) (fraction.Value, error) {
	i, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return fraction.Value{}, err
	}

	return m.cellValue(i), nil
}

// Set writes v at (row, col). An exact value that does not fit in uint64
// promotes the matrix to wide storage.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrIncompatible when v is of the other mode or Incompatible.
func (m *FractionMatrix) Set(row, col int, v fraction.Value) error {
	i, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if err = ValidateValueMode(m.mode, v); err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.storeValue(ctxSet, i, v)

	return nil
}

// SetZero writes 0 at (row, col).
func (m *FractionMatrix) SetZero(row, col int) error {
	i, err := m.indexOf(ctxSetZero, row, col)
	if err != nil {
		return err
	}
	m.setZeroAt(i)

	return nil
}

// SetOne writes 1 at (row, col).
func (m *FractionMatrix) SetOne(row, col int) error {
	i, err := m.indexOf(ctxSetOne, row, col)
	if err != nil {
		return err
	}
	m.setOneAt(i)

	return nil
}

// cellIsZero follows the pivot rule: exact cells test for an exact finite
// zero, approximate ones compare |x| against the pivot tolerance.
func (m *FractionMatrix) cellIsZero(i int) bool {
	switch {
	case m.data != nil:
		return math.Abs(m.data[i]) <= m.opts.pivotTol
	case m.wide != nil:
		return m.wide.get(i).isZero()
	}

	return m.narrow.get(i).isZero()
}

// cellPredicate evaluates pred on the value at (row, col).
func (m *FractionMatrix) cellPredicate(method string, row, col int, pred func(fraction.Value) bool) (bool, error) {
	i, err := m.indexOf(method, row, col)
	if err != nil {
		return false, err
	}

	return pred(m.cellValue(i)), nil
}

// IsZero reports whether the cell at (row, col) is zero.
func (m *FractionMatrix) IsZero(row, col int) (bool, error) {
	return m.cellPredicate(ctxIsZero, row, col, fraction.Value.IsZero)
}

// IsOne reports whether the cell at (row, col) is one.
func (m *FractionMatrix) IsOne(row, col int) (bool, error) {
	return m.cellPredicate(ctxIsOne, row, col, fraction.Value.IsOne)
}

// IsPositive reports whether the cell at (row, col) is > 0 (+Inf included).
func (m *FractionMatrix) IsPositive(row, col int) (bool, error) {
	return m.cellPredicate(ctxIsPositive, row, col, fraction.Value.IsPositive)
}

// IsNegative reports whether the cell at (row, col) is < 0 (-Inf included).
func (m *FractionMatrix) IsNegative(row, col int) (bool, error) {
	return m.cellPredicate(ctxIsNegative, row, col, fraction.Value.IsNegative)
}

// Increase adds v to the cell at (row, col). Exact sums that no longer
// fit in uint64 promote the matrix to wide storage.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange for invalid indices.
//   - ErrIncompatible when v is of the other mode or Incompatible.
func (m *FractionMatrix) Increase(row, col int, v fraction.Value) error {
	return m.addValue(ctxIncrease, row, col, v, false)
}

// Decrease subtracts v from the cell at (row, col). Errors as Increase.
func (m *FractionMatrix) Decrease(row, col int, v fraction.Value) error {
	return m.addValue(ctxDecrease, row, col, v, true)
}

func (m *FractionMatrix) addValue(method string, row, col int, v fraction.Value, negative bool) error {
	i, err := m.indexOf(method, row, col)
	if err != nil {
		return err
	}
	if err = ValidateValueMode(m.mode, v); err != nil {
		return cellErrorf(method, row, col, err)
	}
	if m.data != nil {
		f, _ := v.Float64()
		if negative {
			f = -f
		}
		m.data[i] += f
		return nil
	}

	delta, _ := wideFromValue(v)
	if negative {
		delta = delta.neg()
	}
	if m.narrow != nil {
		if d, ok := delta.narrow(); ok {
			if sum, ok := narrowAdd(m.narrow.get(i), d); ok {
				m.narrow.set(i, sum)
				return nil
			}
		}
		m.promote(method)
	}
	m.wide.set(i, wideAdd(m.wide.get(i), delta))

	return nil
}

// SetRowZero sets every cell of row to zero.
//
// Errors:
//   - ErrOutOfRange for an invalid row.
func (m *FractionMatrix) SetRowZero(row int) error {
	if m == nil {
		return matrixErrorf(ctxSetRowZero, ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return cellErrorf(ctxSetRowZero, row, 0, ErrOutOfRange)
	}
	for j := 0; j < m.c; j++ {
		m.setZeroAt(row*m.c + j)
	}

	return nil
}

// Do iterates cells in row-major order, stopping when f returns false.
func (m *FractionMatrix) Do(f func(i, j int, v fraction.Value) bool) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.cellValue(i*m.c+j)) {
				return
			}
		}
	}
}

// ---------- reshaping ----------

// reshape rebuilds the storage as newR×newC. src maps a new (i, j) to the
// old flat offset, or -1 for a zero cell.
func (m *FractionMatrix) reshape(newR, newC int, src func(i, j int) int) {
	n := newR * newC
	switch {
	case m.data != nil:
		data := make([]float64, n)
		for i := 0; i < newR; i++ {
			for j := 0; j < newC; j++ {
				if k := src(i, j); k >= 0 {
					data[i*newC+j] = m.data[k]
				}
			}
		}
		m.data = data
	case m.wide != nil:
		w := newWideStore(n)
		for i := 0; i < newR; i++ {
			for j := 0; j < newC; j++ {
				if k := src(i, j); k >= 0 {
					w.set(i*newC+j, m.wide.get(k))
				}
			}
		}
		m.wide = w
	default:
		s := newNarrowStore(n)
		for i := 0; i < newR; i++ {
			for j := 0; j < newC; j++ {
				if k := src(i, j); k >= 0 {
					s.set(i*newC+j, m.narrow.get(k))
				}
			}
		}
		m.narrow = s
	}
	m.r, m.c = newR, newC
}

// PushColumns appends n zero columns on the right.
//
// Errors:
//   - ErrBadShape when n is negative.
func (m *FractionMatrix) PushColumns(n int) error {
	if n < 0 {
		return matrixErrorf(opPushColumns, ErrBadShape)
	}
	oldC := m.c
	m.reshape(m.r, m.c+n, func(i, j int) int {
		if j >= oldC {
			return -1
		}
		return i*oldC + j
	})

	return nil
}

// PushRows appends n zero rows at the bottom.
//
// Errors:
//   - ErrBadShape when n is negative.
func (m *FractionMatrix) PushRows(n int) error {
	if n < 0 {
		return matrixErrorf(opPushRows, ErrBadShape)
	}
	oldR, c := m.r, m.c
	m.reshape(m.r+n, m.c, func(i, j int) int {
		if i >= oldR {
			return -1
		}
		return i*c + j
	})

	return nil
}

// PopFrontColumns removes the first n columns.
//
// Errors:
//   - ErrBadShape when n is negative or larger than Cols().
func (m *FractionMatrix) PopFrontColumns(n int) error {
	if n < 0 || n > m.c {
		return matrixErrorf(opPopFrontColumns, ErrBadShape)
	}
	oldC := m.c
	m.reshape(m.r, m.c-n, func(i, j int) int { return i*oldC + j + n })

	return nil
}

// ---------- copies & comparison ----------

// Clone returns a deep copy sharing no mutable state with m.
func (m *FractionMatrix) Clone() *FractionMatrix {
	out := &FractionMatrix{r: m.r, c: m.c, mode: m.mode, opts: m.opts}
	switch {
	case m.data != nil:
		out.data = append([]float64(nil), m.data...)
	case m.wide != nil:
		out.wide = m.wide.clone()
	default:
		out.narrow = m.narrow.clone()
	}

	return out
}

// Equal reports numeric equality: same shape, same mode and equal cells.
// Narrow and wide matrices holding the same values are equal. Exact
// specials are equal when their tags are; approximate cells compare within
// fraction.Epsilon.
func (m *FractionMatrix) Equal(other *FractionMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || m.mode != other.mode {
		return false
	}
	n := m.r * m.c
	if m.data != nil {
		for i := 0; i < n; i++ {
			if !fraction.Approx(m.data[i]).Equal(fraction.Approx(other.data[i])) {
				return false
			}
		}
		return true
	}
	if m.narrow != nil && other.narrow != nil {
		for i := 0; i < n; i++ {
			if !narrowEqual(m.narrow.get(i), other.narrow.get(i)) {
				return false
			}
		}
		return true
	}
	for i := 0; i < n; i++ {
		if !wideEqual(m.cellWide(i), other.cellWide(i)) {
			return false
		}
	}

	return true
}

// narrowEqual compares a.num*b.den with b.num*a.den in 128 bits.
func narrowEqual(a, b narrowCell) bool {
	if a.isZero() || b.isZero() {
		return a.isZero() == b.isZero()
	}
	if a.tag != b.tag {
		return false
	}
	if a.tag.IsSpecial() {
		return true
	}
	h1, l1 := bits.Mul64(a.num, b.den)
	h2, l2 := bits.Mul64(b.num, a.den)

	return h1 == h2 && l1 == l2
}

func wideEqual(a, b wideCell) bool {
	if a.isZero() || b.isZero() {
		return a.isZero() == b.isZero()
	}
	if a.tag != b.tag {
		return false
	}
	if a.tag.IsSpecial() {
		return true
	}

	return new(big.Int).Mul(a.num, b.den).Cmp(new(big.Int).Mul(b.num, a.den)) == 0
}

// InnerEqual reports structural equality: same shape, same representation
// and identical stored tags, numerators and denominators. Unlike Equal it
// distinguishes narrow from wide storage and unreduced from reduced cells.
func (m *FractionMatrix) InnerEqual(other *FractionMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || m.Representation() != other.Representation() {
		return false
	}
	n := m.r * m.c
	for i := 0; i < n; i++ {
		switch {
		case m.data != nil:
			if math.Float64bits(m.data[i]) != math.Float64bits(other.data[i]) {
				return false
			}
		case m.wide != nil:
			a, b := m.wide.get(i), other.wide.get(i)
			if a.tag != b.tag || a.num.Cmp(b.num) != 0 || a.den.Cmp(b.den) != 0 {
				return false
			}
		default:
			if m.narrow.get(i) != other.narrow.get(i) {
				return false
			}
		}
	}

	return true
}

// ---------- formatting ----------

// String renders one "[a, b, ...]" line per row.
func (m *FractionMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(m.cellValue(i*m.c + j).String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// MarshalJSON encodes the matrix as an array of rows of fraction values.
func (m *FractionMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes an array of rows; the receiver keeps its options.
func (m *FractionMatrix) UnmarshalJSON(data []byte) error {
	var rows [][]fraction.Value
	if err := json.Unmarshal(data, &rows); err != nil {
		return matrixErrorf(opUnmarshalJSON, err)
	}
	o := m.opts
	if o.parallelThreshold == 0 {
		o = defaultOptions()
	}
	out, err := FromRows(rows, func(dst *Options) { *dst = o })
	if err != nil {
		return matrixErrorf(opUnmarshalJSON, err)
	}
	*m = *out

	return nil
}
