package fem_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mechlab/internal/fem"
)

var _ = Describe("Element", func() {
	It("computes k = A·E/L", func() {
		e := fem.Element{Area: 0.02, Modulus: 200e9, Length: 4}
		Expect(e.Stiffness()).To(BeNumerically("~", 1e9, 1e-3))
	})

	DescribeTable("rejects bad physical parameters",
		func(e fem.Element) {
			Expect(e.Validate()).To(MatchError(fem.ErrInvalidElement))
		},
		Entry("zero length", fem.Element{Area: 1, Modulus: 1, Length: 0}),
		Entry("negative length", fem.Element{Area: 1, Modulus: 1, Length: -2}),
		Entry("zero modulus", fem.Element{Area: 1, Modulus: 0, Length: 1}),
		Entry("NaN force", fem.Element{Area: 1, Modulus: 1, Length: 1, Force: math.NaN()}),
		Entry("infinite area", fem.Element{Area: math.Inf(1), Modulus: 1, Length: 1}),
	)
})

var _ = Describe("Assemble", func() {
	It("sums 2×2 blocks into a tridiagonal matrix", func() {
		global, err := fem.Assemble([]fem.Element{
			{Area: 1, Modulus: 2, Length: 1},
			{Area: 1, Modulus: 3, Length: 1},
			{Area: 1, Modulus: 5, Length: 1},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(global.SymmetricDim()).To(Equal(4))

		want := [][]float64{
			{2, -2, 0, 0},
			{-2, 5, -3, 0},
			{0, -3, 8, -5},
			{0, 0, -5, 5},
		}
		for i := range want {
			for j := range want[i] {
				Expect(global.At(i, j)).To(Equal(want[i][j]), "entry (%d,%d)", i, j)
			}
		}
	})

	It("rejects an empty chain", func() {
		_, err := fem.Assemble(nil)
		Expect(err).To(MatchError(fem.ErrNoElements))
	})
})

var _ = Describe("Solve", func() {
	It("solves a single element", func() {
		res, err := fem.Solve([]fem.Element{{Area: 1, Modulus: 1e9, Length: 1, Force: 100}})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Stiffness).To(Equal([]float64{1e9}))
		Expect(res.Nodes()).To(Equal(2))
		Expect(res.Displacements[0]).To(Equal(0.0))
		Expect(res.Displacements[1]).To(BeNumerically("~", 1e-7, 1e-19))
		Expect(res.Reaction).To(Equal(-100.0))
		Expect(res.AxialForces[0]).To(BeNumerically("~", 100, 1e-9))
		Expect(res.Stresses[0]).To(BeNumerically("~", 100, 1e-9))
	})

	It("follows the series spring law", func() {
		el := fem.Element{Area: 0.01, Modulus: 200e9, Length: 2}
		k := el.Stiffness()
		loaded := el
		loaded.Force = 100

		res, err := fem.Solve([]fem.Element{el, loaded})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Displacements).To(HaveLen(3))
		Expect(res.Displacements[0]).To(Equal(0.0))
		Expect(res.Displacements[1]).To(BeNumerically("~", 100/k, 1e-12*100/k))
		Expect(res.Displacements[2]).To(BeNumerically("~", 200/k, 1e-12*200/k))
		Expect(res.AxialForces[0]).To(BeNumerically("~", 100, 1e-6))
		Expect(res.AxialForces[1]).To(BeNumerically("~", 100, 1e-6))
	})

	It("superposes loads on a stepped bar", func() {
		elements := []fem.Element{
			{Area: 2e-3, Modulus: 70e9, Length: 0.5, Force: 1000},
			{Area: 1e-3, Modulus: 200e9, Length: 1.5, Force: -400},
			{Area: 5e-4, Modulus: 110e9, Length: 1, Force: 2500},
		}
		res, err := fem.Solve(elements)
		Expect(err).NotTo(HaveOccurred())

		// Each element carries the sum of the forces beyond it.
		carried := []float64{3100, 2100, 2500}
		u := 0.0
		for i, e := range elements {
			u += carried[i] / e.Stiffness()
			Expect(res.Displacements[i+1]).To(BeNumerically("~", u, 1e-9*math.Abs(u)))
			Expect(res.AxialForces[i]).To(BeNumerically("~", carried[i], 1e-6))
			Expect(res.Stresses[i]).To(BeNumerically("~", carried[i]/e.Area, 1e-3))
		}
		Expect(res.Reaction).To(Equal(-3100.0))
	})

	It("keeps node 0 at exactly zero for any load", func() {
		for _, f := range []float64{-1e6, 0, 3.3, 1e9} {
			res, err := fem.Solve([]fem.Element{
				{Area: 1, Modulus: 1e6, Length: 1, Force: f},
				{Area: 3, Modulus: 1e6, Length: 2, Force: -f},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Displacements[0]).To(BeZero())
		}
	})

	It("does not modify its input", func() {
		elements := []fem.Element{{Area: 1, Modulus: 1e9, Length: 1, Force: 100}}
		before := append([]fem.Element(nil), elements...)
		_, err := fem.Solve(elements)
		Expect(err).NotTo(HaveOccurred())
		Expect(elements).To(Equal(before))
	})

	DescribeTable("surfaces a singular reduced matrix",
		func(elements []fem.Element) {
			res, err := fem.Solve(elements)
			Expect(err).To(MatchError(fem.ErrSingular))
			Expect(res).To(BeNil())
		},
		Entry("single zero-area element", []fem.Element{{Area: 0, Modulus: 1e9, Length: 1, Force: 10}}),
		Entry("zero-area tail", []fem.Element{
			{Area: 1, Modulus: 1e9, Length: 1},
			{Area: 0, Modulus: 1e9, Length: 1, Force: 10},
		}),
		Entry("negative stiffness", []fem.Element{{Area: -1, Modulus: 1e9, Length: 1, Force: 10}}),
	)

	It("names the offending element", func() {
		_, err := fem.Solve([]fem.Element{
			{Area: 1, Modulus: 1, Length: 1},
			{Area: 1, Modulus: 1, Length: 0},
		})
		Expect(err).To(MatchError(fem.ErrInvalidElement))

		var elErr *fem.ElementError
		Expect(errors.As(err, &elErr)).To(BeTrue())
		Expect(elErr.Index).To(Equal(1))
	})
})
