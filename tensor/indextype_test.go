package tensor

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IndexType", func() {
	It("should render as its label", func() {
		Expect(Link.String()).To(Equal("Link"))
		Expect(Site.String()).To(Equal("Site"))
		Expect(All.String()).To(Equal("All"))
		Expect(NullIndex.String()).To(Equal("NullIndex"))
		Expect(IndexType(99).String()).To(Equal("IndexType(99)"))
	})

	It("should render arrows", func() {
		Expect(In.String()).To(Equal("In"))
		Expect(Out.String()).To(Equal("Out"))
	})
})
