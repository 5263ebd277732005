package tensor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Index", func() {
	It("should be null when default constructed", func() {
		var i Index

		Expect(i.IsNull()).To(BeTrue())
		Expect(i.ID()).To(Equal(uint64(0)))
		Expect(i.Dim()).To(Equal(int64(1)))
		Expect(i.Type()).To(Equal(NullIndex))
		Expect(i.PrimeLevel()).To(Equal(0))
	})

	It("should not be null when explicitly constructed", func() {
		i := NewIndex("i", 4)

		Expect(i.IsNull()).To(BeFalse())
		Expect(i.Type()).To(Equal(Link))
		Expect(i.Dim()).To(Equal(int64(4)))
		Expect(i.RawName()).To(Equal("i"))
		Expect(i.ID()).NotTo(Equal(uint64(0)))
	})

	It("should assign a fresh id to each constructed index", func() {
		a := NewIndex("a", 2)
		b := NewIndex("a", 2)

		Expect(a.ID()).NotTo(Equal(b.ID()))
		Expect(a.Equals(b)).To(BeFalse())
	})

	It("should panic when constructed with a sentinel type", func() {
		Expect(func() { NewTypedIndex("x", 2, All) }).To(Panic())
		Expect(func() { NewTypedIndex("x", 2, NullIndex) }).To(Panic())
	})

	It("should skip the sentinel type check when validation is off", func() {
		SetValidationEnabled(false)
		defer SetValidationEnabled(true)

		Expect(func() { NewTypedIndex("x", 2, All) }).NotTo(Panic())
	})

	It("should keep the id when copied and primed", func() {
		i := NewIndex("i", 3)
		j := i
		j.Prime(1)

		Expect(i.PrimeLevel()).To(Equal(0))
		Expect(j.PrimeLevel()).To(Equal(1))
		Expect(j.ID()).To(Equal(i.ID()))
		Expect(i.Equals(j)).To(BeFalse())
		Expect(i.NoPrimeEquals(j)).To(BeTrue())
	})

	It("should panic when the prime level is driven negative", func() {
		i := NewIndex("i", 3)

		Expect(func() { i.Prime(-1) }).To(Panic())
	})

	It("should allow a negative prime level when validation is off", func() {
		SetValidationEnabled(false)
		defer SetValidationEnabled(true)

		i := NewIndex("i", 3)
		i.Prime(-2)

		Expect(i.PrimeLevel()).To(Equal(-2))
		Expect(i.Name()).To(Equal("i"))
	})

	It("should only prime matching types", func() {
		i := NewTypedIndex("s", 2, Site)

		i.PrimeType(Link, 1)
		Expect(i.PrimeLevel()).To(Equal(0))

		i.PrimeType(Site, 1)
		Expect(i.PrimeLevel()).To(Equal(1))

		i.PrimeType(All, 2)
		Expect(i.PrimeLevel()).To(Equal(3))
	})

	It("should reset the prime level with NoPrime", func() {
		i := NewTypedIndexAt("s", 2, Site, 4)

		i.NoPrime(Link)
		Expect(i.PrimeLevel()).To(Equal(4))

		i.NoPrime(All)
		Expect(i.PrimeLevel()).To(Equal(0))
	})

	It("should remap the prime level only on an exact match", func() {
		i := NewTypedIndexAt("i", 2, Link, 1)

		i.MapPrime(2, 9, All)
		Expect(i.PrimeLevel()).To(Equal(1))

		i.MapPrime(1, 5, Site)
		Expect(i.PrimeLevel()).To(Equal(1))

		i.MapPrime(1, 5, All)
		Expect(i.PrimeLevel()).To(Equal(5))

		i.MapPrime(5, 0, Link)
		Expect(i.PrimeLevel()).To(Equal(0))
	})

	It("should set the prime level directly", func() {
		i := NewIndex("i", 2)
		i.SetPrimeLevel(7)

		Expect(i.PrimeLevel()).To(Equal(7))
		Expect(i.Name()).To(Equal("i'''''''"))
	})

	It("should order by dimension, then id, then prime level", func() {
		a := NewIndex("a", 2)
		b := NewIndex("b", 2)
		c := b
		c.Prime(1)
		d := NewIndex("d", 5)

		Expect(a.Less(b)).To(BeTrue())
		Expect(b.Less(c)).To(BeTrue())
		Expect(c.Less(d)).To(BeTrue())
		Expect(a.Less(d)).To(BeTrue())
		Expect(d.More(a)).To(BeTrue())
		Expect(b.Compare(b)).To(Equal(0))

		indices := []Index{d, c, b, a}
		SortIndices(indices)
		Expect(indices).To(Equal([]Index{a, b, c, d}))
	})

	It("should decorate the name with prime marks", func() {
		i := NewIndex("i", 4)
		Expect(i.Name()).To(Equal("i"))

		i.Prime(2)
		Expect(i.Name()).To(Equal("i''"))
		Expect(i.RawName()).To(Equal("i"))
	})

	It("should render as name, dimension, and type", func() {
		i := NewTypedIndex("s", 3, Site)
		Expect(i.String()).To(Equal("(s,3,Site)"))

		i.Prime(1)
		Expect(i.String()).To(Equal("(s,3,Site)'"))

		Expect(ShowDim(i)).To(Equal("m=3"))
		Expect(NameInt("s", 3)).To(Equal("s3"))
	})

	It("should always point out", func() {
		i := NewIndex("i", 2)
		before := i

		i.SetDir(In)
		i.Dag()

		Expect(i.Dir()).To(Equal(Out))
		Expect(i.Equals(before)).To(BeTrue())
	})

	It("should create an IndexVal with At", func() {
		i := NewIndex("i", 4)
		iv := i.At(3)

		Expect(iv.Index.Equals(i)).To(BeTrue())
		Expect(iv.Val).To(Equal(int64(3)))
	})
})
