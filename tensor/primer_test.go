package tensor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Prime helpers", func() {
	It("should prime a copy and leave the original unchanged", func() {
		i := NewIndex("i", 4)
		j := Prime(i)

		Expect(j.Dim()).To(Equal(int64(4)))
		Expect(j.PrimeLevel()).To(Equal(1))
		Expect(j.ID()).To(Equal(i.ID()))
		Expect(i.Equals(j)).To(BeFalse())
		Expect(i.NoPrimeEquals(j)).To(BeTrue())
		Expect(i.PrimeLevel()).To(Equal(0))
	})

	It("should prime by an explicit increment", func() {
		i := NewIndex("i", 4)
		j := Prime(i, 3)

		Expect(j.PrimeLevel()).To(Equal(3))
		Expect(i.PrimeLevel()).To(Equal(0))
	})

	It("should gate priming on the type", func() {
		i := NewTypedIndex("s", 2, Site)

		Expect(PrimeType(i, Link).PrimeLevel()).To(Equal(0))
		Expect(PrimeType(i, Site).PrimeLevel()).To(Equal(1))
		Expect(PrimeType(i, All, 2).PrimeLevel()).To(Equal(2))
	})

	It("should unprime a copy", func() {
		i := NewTypedIndexAt("s", 2, Site, 3)

		Expect(NoPrime(i).PrimeLevel()).To(Equal(0))
		Expect(NoPrime(i, Link).PrimeLevel()).To(Equal(3))
		Expect(i.PrimeLevel()).To(Equal(3))
	})

	It("should remap the prime level of a copy on an exact match", func() {
		i := NewIndex("i", 4)
		j := Prime(i)

		k := MapPrime(j, 1, 5)
		Expect(k.PrimeLevel()).To(Equal(5))

		unchanged := MapPrime(j, 2, 9)
		Expect(unchanged.Equals(j)).To(BeTrue())
		Expect(unchanged.PrimeLevel()).To(Equal(1))
	})

	It("should work on an IndexVal as well", func() {
		i := NewIndex("i", 4)
		iv := NewIndexVal(i, 2)

		primed := Prime(iv)
		Expect(primed.Index.PrimeLevel()).To(Equal(1))
		Expect(primed.Val).To(Equal(int64(2)))
		Expect(iv.Index.PrimeLevel()).To(Equal(0))

		Expect(NoPrime(primed).Index.PrimeLevel()).To(Equal(0))
		Expect(MapPrime(primed, 1, 4).Index.PrimeLevel()).To(Equal(4))
	})

	It("should conjugate without effect", func() {
		i := NewIndex("i", 4)

		Expect(Dag(i).Equals(i)).To(BeTrue())
		Expect(Dag(i.At(1)).Equals(i.At(1))).To(BeTrue())
	})
})
