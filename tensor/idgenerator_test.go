package tensor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("IDGenerator", func() {
	It("should count up from 1 sequentially", func() {
		g := NewSequentialIDGenerator()

		Expect(g.Generate()).To(Equal(uint64(1)))
		Expect(g.Generate()).To(Equal(uint64(2)))
		Expect(g.Generate()).To(Equal(uint64(3)))
	})

	It("should generate distinct non-zero random ids", func() {
		g := NewRandomIDGenerator()

		seen := make(map[uint64]bool)
		for n := 0; n < 1000; n++ {
			id := g.Generate()

			Expect(id).NotTo(Equal(uint64(0)))
			Expect(seen[id]).To(BeFalse())
			seen[id] = true
		}
	})

	It("should keep returning the installed generator", func() {
		Expect(GetIDGenerator()).To(BeIdenticalTo(GetIDGenerator()))
	})

	It("should refuse to change the generator after use", func() {
		Expect(func() { UseRandomIDGenerator() }).To(Panic())
		Expect(func() { UseSequentialIDGenerator() }).To(Panic())
		Expect(func() { UseIDGenerator(NewSequentialIDGenerator()) }).
			To(Panic())
	})

	It("should construct indices from an injected generator", func() {
		mockController := gomock.NewController(GinkgoT())
		defer mockController.Finish()

		g := NewMockIDGenerator(mockController)
		g.EXPECT().Generate().Return(uint64(42))

		i := NewIndexUsing(g, "i", 4, Link, 0)

		Expect(i.ID()).To(Equal(uint64(42)))
		Expect(i.Dim()).To(Equal(int64(4)))
		Expect(i.Type()).To(Equal(Link))
	})
})
