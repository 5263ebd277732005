package tensor

import (
	"cmp"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
)

// An Index labels one leg of a tensor with a fixed bond dimension.
//
// Every copy of an Index carries the ID assigned at construction, and
// two Indices are equal when they are copies of the same Index at the
// same prime level. Raising the prime level of a copy makes it
// distinct from the original while still referring to the same
// underlying leg, which NoPrimeEquals still detects.
//
// The zero value Index{} is the null Index: ID 0, type NullIndex,
// bond dimension 1. It stands for the absence of an index.
type Index struct {
	id         uint64
	primeLevel int
	m          int64
	typ        IndexType
	rawName    string
}

// NewIndex returns a Link Index with the given display name and bond
// dimension, carrying a freshly generated ID.
func NewIndex(name string, m int64) Index {
	return NewTypedIndexAt(name, m, Link, 0)
}

// NewTypedIndex is NewIndex with an explicit IndexType.
func NewTypedIndex(name string, m int64, typ IndexType) Index {
	return NewTypedIndexAt(name, m, typ, 0)
}

// NewTypedIndexAt is NewTypedIndex with an initial prime level.
func NewTypedIndexAt(name string, m int64, typ IndexType, plev int) Index {
	return NewIndexUsing(GetIDGenerator(), name, m, typ, plev)
}

// NewIndexUsing constructs an Index that draws its ID from g instead
// of the package generator. This suits deterministic tests as well as
// callers that keep one generator per goroutine to avoid contention.
func NewIndexUsing(
	g IDGenerator,
	name string,
	m int64,
	typ IndexType,
	plev int,
) Index {
	if ValidationEnabled() && (typ == All || typ == NullIndex) {
		log.Panicf("constructing an Index with type %s is disallowed", typ)
	}

	return Index{
		id:         g.Generate(),
		primeLevel: plev,
		m:          m,
		typ:        typ,
		rawName:    name,
	}
}

// ID returns the identifier assigned at construction. It is shared by
// all copies of an Index and is 0 only for the null Index.
func (i Index) ID() uint64 {
	return i.id
}

// Dim returns the bond dimension.
func (i Index) Dim() int64 {
	if i.m == 0 {
		return 1
	}
	return i.m
}

// PrimeLevel returns the current prime level.
func (i Index) PrimeLevel() int {
	return i.primeLevel
}

// Type returns the IndexType.
func (i Index) Type() IndexType {
	return i.typ
}

// RawName returns the display name without prime decoration.
func (i Index) RawName() string {
	return i.rawName
}

// Name returns the display name with one prime mark per prime level.
func (i Index) Name() string {
	if i.primeLevel <= 0 {
		return i.rawName
	}
	return i.rawName + strings.Repeat("'", i.primeLevel)
}

// IsNull reports whether this is the null Index.
func (i Index) IsNull() bool {
	return i.typ == NullIndex
}

// Dir returns the Arrow direction, which is always Out in this core.
func (i Index) Dir() Arrow {
	return Out
}

// SetDir has no effect; it exists for interface symmetry with
// direction-aware index variants.
func (i *Index) SetDir(Arrow) {}

// SetPrimeLevel sets the prime level directly.
func (i *Index) SetPrimeLevel(plev int) {
	i.primeLevel = plev
}

// Prime adds inc to the prime level. Driving the level negative is a
// programmer error and panics while validation is enabled.
func (i *Index) Prime(inc int) {
	i.primeLevel += inc

	if ValidationEnabled() && i.primeLevel < 0 {
		log.Panicf("prime level of Index %q driven negative", i.rawName)
	}
}

// PrimeType adds inc to the prime level if typ matches this Index's
// type or is All. Otherwise it is a no-op.
func (i *Index) PrimeType(typ IndexType, inc int) {
	if typ == i.typ || typ == All {
		i.Prime(inc)
	}
}

// NoPrime resets the prime level to zero if typ matches this Index's
// type or is All.
func (i *Index) NoPrime(typ IndexType) {
	i.PrimeType(typ, -i.primeLevel)
}

// MapPrime switches the prime level from exactly plevOld to plevNew
// when the current level is plevOld and typ matches this Index's type
// or is All. Any other starting level leaves the Index unchanged.
func (i *Index) MapPrime(plevOld, plevNew int, typ IndexType) {
	if i.primeLevel == plevOld && (typ == i.typ || typ == All) {
		i.primeLevel = plevNew
	}
}

// Dag conjugates the Index. It currently has no effect and exists for
// interface symmetry with direction-aware index variants.
func (i *Index) Dag() {}

// Equals reports whether other is a copy of this Index at the same
// prime level.
func (i Index) Equals(other Index) bool {
	return i.id == other.id && i.primeLevel == other.primeLevel
}

// NoPrimeEquals reports whether other is a copy of this Index,
// ignoring prime levels.
func (i Index) NoPrimeEquals(other Index) bool {
	return i.id == other.id
}

// Compare orders Indices by bond dimension, then ID, then prime
// level, returning -1, 0, or 1. The induced order is total over
// distinct (dim, id, level) triples, which makes it usable for
// sorting legs into a canonical order.
func (i Index) Compare(other Index) int {
	if c := cmp.Compare(i.Dim(), other.Dim()); c != 0 {
		return c
	}
	if c := cmp.Compare(i.id, other.id); c != 0 {
		return c
	}
	return cmp.Compare(i.primeLevel, other.primeLevel)
}

// Less reports whether i sorts before other.
func (i Index) Less(other Index) bool {
	return i.Compare(other) < 0
}

// More reports whether i sorts after other.
func (i Index) More(other Index) bool {
	return i.Compare(other) > 0
}

// At pairs the Index with a concrete leg value, selecting a single
// fiber along the leg.
func (i Index) At(val int64) IndexVal {
	return NewIndexVal(i, val)
}

func (i Index) String() string {
	s := fmt.Sprintf("(%s,%d,%s)", i.rawName, i.Dim(), i.typ)
	if i.primeLevel > 0 {
		s += strings.Repeat("'", i.primeLevel)
	}
	return s
}

// SortIndices sorts indices in place into the canonical leg ordering.
func SortIndices(indices []Index) {
	slices.SortFunc(indices, Index.Compare)
}

// ShowDim renders the bond dimension of an Index for diagnostics.
func ShowDim(i Index) string {
	return "m=" + strconv.FormatInt(i.Dim(), 10)
}

// NameInt builds an Index name from a base label and a site number,
// such as NameInt("s", 3) == "s3".
func NameInt(base string, n int) string {
	return base + strconv.Itoa(n)
}
