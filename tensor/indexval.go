package tensor

import (
	"fmt"
	"log"
)

// An IndexVal pairs an Index of bond dimension m with a concrete
// value in [1, m], selecting a single fiber along the leg the Index
// labels.
type IndexVal struct {
	Index Index
	Val   int64
}

// NewIndexVal pairs index with val. A value outside [1, index.Dim()]
// on a non-null index is a programmer error and panics while
// validation is enabled.
func NewIndexVal(index Index, val int64) IndexVal {
	if ValidationEnabled() && !index.IsNull() &&
		(val < 1 || val > index.Dim()) {
		log.Panicf("value %d out of range [1,%d] for Index %q",
			val, index.Dim(), index.Name())
	}

	return IndexVal{Index: index, Val: val}
}

// Equals reports whether other wraps a copy of the same Index at the
// same prime level and carries the same value.
func (iv IndexVal) Equals(other IndexVal) bool {
	return iv.Index.Equals(other.Index) && iv.Val == other.Val
}

// EqualsIndex compares only the wrapped Index, ignoring the value.
func (iv IndexVal) EqualsIndex(index Index) bool {
	return iv.Index.Equals(index)
}

// Dim returns the bond dimension of the wrapped Index.
func (iv IndexVal) Dim() int64 {
	return iv.Index.Dim()
}

// IsNull reports whether the wrapped Index is the null Index.
func (iv IndexVal) IsNull() bool {
	return iv.Index.IsNull()
}

// SetPrimeLevel sets the wrapped Index's prime level directly.
func (iv *IndexVal) SetPrimeLevel(plev int) {
	iv.Index.SetPrimeLevel(plev)
}

// Prime adds inc to the wrapped Index's prime level.
func (iv *IndexVal) Prime(inc int) {
	iv.Index.Prime(inc)
}

// PrimeType adds inc to the wrapped Index's prime level if typ
// matches its type or is All.
func (iv *IndexVal) PrimeType(typ IndexType, inc int) {
	iv.Index.PrimeType(typ, inc)
}

// NoPrime resets the wrapped Index's prime level to zero if typ
// matches its type or is All.
func (iv *IndexVal) NoPrime(typ IndexType) {
	iv.Index.NoPrime(typ)
}

// MapPrime switches the wrapped Index's prime level from exactly
// plevOld to plevNew when the level and type match.
func (iv *IndexVal) MapPrime(plevOld, plevNew int, typ IndexType) {
	iv.Index.MapPrime(plevOld, plevNew, typ)
}

// Dag conjugates the wrapped Index. It currently has no effect.
func (iv *IndexVal) Dag() {}

func (iv IndexVal) String() string {
	return fmt.Sprintf("%s=%d", iv.Index, iv.Val)
}
