package tensor

import "strconv"

// IndexType tags the role an Index plays on a tensor leg.
type IndexType int

// The closed set of leg-role tags. NullIndex and All are sentinels:
// NullIndex is the type of a zero-value Index, All is a wildcard
// matching any type in prime operations. Neither can be given to a
// constructed Index.
const (
	NullIndex IndexType = iota
	Link
	Site
	Xind
	Yind
	Zind
	Wind
	Vind
	All
)

func (t IndexType) String() string {
	switch t {
	case NullIndex:
		return "NullIndex"
	case Link:
		return "Link"
	case Site:
		return "Site"
	case Xind:
		return "Xind"
	case Yind:
		return "Yind"
	case Zind:
		return "Zind"
	case Wind:
		return "Wind"
	case Vind:
		return "Vind"
	case All:
		return "All"
	}

	return "IndexType(" + strconv.Itoa(int(t)) + ")"
}

// Arrow gives the direction of an Index. This core always reports
// Out; the type exists for interface symmetry with direction-aware
// index variants.
type Arrow int

// The two Arrow directions.
const (
	In  Arrow = -1
	Out Arrow = 1
)

func (a Arrow) String() string {
	if a == In {
		return "In"
	}
	return "Out"
}
