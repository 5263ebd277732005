package tensor

// A Primer can adjust the prime level of the Index it carries. Both
// *Index and *IndexVal implement it, so the by-value helpers below
// are written once and serve either type.
type Primer interface {
	Prime(inc int)
	PrimeType(typ IndexType, inc int)
	NoPrime(typ IndexType)
	MapPrime(plevOld, plevNew int, typ IndexType)
	Dag()
}

// Prime returns a copy of x with its prime level increased by one, or
// by inc if given. The argument is left unmodified.
func Prime[T any, P interface {
	Primer
	*T
}](x T, inc ...int) T {
	P(&x).Prime(incOrOne(inc))
	return x
}

// PrimeType returns a copy of x with its prime level increased by one
// (or by inc) if typ matches the copy's type or is All.
func PrimeType[T any, P interface {
	Primer
	*T
}](x T, typ IndexType, inc ...int) T {
	P(&x).PrimeType(typ, incOrOne(inc))
	return x
}

// NoPrime returns a copy of x with its prime level reset to zero if
// typ (default All) matches the copy's type.
func NoPrime[T any, P interface {
	Primer
	*T
}](x T, typ ...IndexType) T {
	P(&x).NoPrime(typeOrAll(typ))
	return x
}

// MapPrime returns a copy of x with its prime level switched from
// exactly plevOld to plevNew when the level and the type (default
// All) match; otherwise the copy is identical to x.
func MapPrime[T any, P interface {
	Primer
	*T
}](x T, plevOld, plevNew int, typ ...IndexType) T {
	P(&x).MapPrime(plevOld, plevNew, typeOrAll(typ))
	return x
}

// Dag returns a conjugated copy of x. Conjugation currently has no
// effect on either Index or IndexVal.
func Dag[T any, P interface {
	Primer
	*T
}](x T) T {
	P(&x).Dag()
	return x
}

func incOrOne(inc []int) int {
	if len(inc) == 0 {
		return 1
	}
	return inc[0]
}

func typeOrAll(typ []IndexType) IndexType {
	if len(typ) == 0 {
		return All
	}
	return typ[0]
}
