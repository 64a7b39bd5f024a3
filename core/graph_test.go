package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/element"
)

func TestAddEdgeErrors(t *testing.T) {
	g := ethanol(t)

	err := g.AddEdge(core.NewEdge(0, 5, core.Single))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	err = g.AddEdge(core.NewEdge(1, 1, core.Single))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	err = g.AddEdge(core.NewEdge(1, 0, core.Double))
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	g := benzene(t)
	for u := 0; u < g.Order(); u++ {
		assert.Equal(t, 2, g.Degree(u))
		for _, v := range g.Neighbors(u) {
			assert.True(t, g.Adjacent(v, u))
			assert.Contains(t, g.Neighbors(v), u)
		}
	}
	assert.False(t, g.Adjacent(0, 3))
	assert.False(t, g.Adjacent(0, 42))

	_, err := g.Edge(0, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	e, err := g.Edge(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, e.U)
	assert.Equal(t, 0, e.V)
}

func TestEdgesKeepInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
	}
	require.NoError(t, g.AddEdge(core.NewEdge(0, 3, core.Implicit)))
	require.NoError(t, g.AddEdge(core.NewEdge(0, 1, core.Double)))
	require.NoError(t, g.AddEdge(core.NewEdge(2, 0, core.Implicit)))
	assert.Equal(t, []int{3, 1, 2}, g.Neighbors(0))
	assert.Len(t, g.AllEdges(), 3)
}

func TestBondFromAndSetBond(t *testing.T) {
	g := ethanol(t)
	require.NoError(t, g.SetBond(1, 0, core.Up))
	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Down, e.Bond)
	assert.Equal(t, core.Up, e.BondFrom(1))
	assert.Equal(t, core.Down, e.BondFrom(0))

	assert.ErrorIs(t, g.SetBond(0, 2, core.Single), core.ErrEdgeNotFound)
}

func TestImplHCount(t *testing.T) {
	g := ethanol(t)
	assert.Equal(t, 3, g.ImplHCount(0))
	assert.Equal(t, 2, g.ImplHCount(1))
	assert.Equal(t, 1, g.ImplHCount(2))

	b := benzene(t)
	for v := 0; v < 6; v++ {
		assert.Equal(t, 1, b.ImplHCount(v))
	}

	// bracket hydrogens are taken as written
	h := core.NewGraph()
	h.AddAtom(core.BracketAtom(element.Nitrogen, core.WithHydrogens(4), core.WithCharge(1)))
	assert.Equal(t, 4, h.ImplHCount(0))
}

func TestTotalHCountCountsExplicitHydrogens(t *testing.T) {
	g := core.NewGraph()
	c := g.AddAtom(core.OrganicAtom(element.Carbon, false))
	hAtom := g.AddAtom(core.BracketAtom(element.Hydrogen))
	require.NoError(t, g.AddEdge(core.NewEdge(c, hAtom, core.Implicit)))
	assert.Equal(t, 3, g.ImplHCount(c))
	assert.Equal(t, 4, g.TotalHCount(c))
}

func TestPermuteRoundTrip(t *testing.T) {
	g := benzene(t)
	g.SetTitle("benzene")
	tp, err := core.Tetrahedral(1, []int{0, 1, 2, 3}, core.TH2)
	require.NoError(t, err)
	require.NoError(t, g.AddTopology(tp))

	perm := []int{3, 5, 0, 1, 4, 2}
	h, err := g.Permute(perm)
	require.NoError(t, err)
	assert.Equal(t, g.Order(), h.Order())
	assert.Equal(t, "benzene", h.Title())

	// vertex i moved to perm[i]
	for i := 0; i < g.Order(); i++ {
		for _, j := range g.Neighbors(i) {
			assert.True(t, h.Adjacent(perm[i], perm[j]))
		}
	}
	moved := h.Topology(perm[1])
	centre, err := moved.Atom()
	require.NoError(t, err)
	assert.Equal(t, perm[1], centre)

	back, err := h.Permute(core.InversePermutation(perm))
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestPermuteRejectsNonBijection(t *testing.T) {
	g := ethanol(t)
	for _, p := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err := g.Permute(p)
		assert.ErrorIs(t, err, core.ErrInvalidPermutation, "%v", p)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := ethanol(t)
	c := g.Clone()
	require.NoError(t, c.SetBond(0, 1, core.Double))
	require.NoError(t, c.SetAtom(2, core.OrganicAtom(element.Nitrogen, false)))

	e, _ := g.Edge(0, 1)
	assert.Equal(t, core.Implicit, e.Bond)
	assert.Equal(t, element.Oxygen, g.Atom(2).Element)
}

func TestSortStrategies(t *testing.T) {
	// central carbon bonded to H, O (double), C, N in that order
	g := core.NewGraph()
	c := g.AddAtom(core.OrganicAtom(element.Carbon, false))
	h := g.AddAtom(core.BracketAtom(element.Hydrogen))
	o := g.AddAtom(core.OrganicAtom(element.Oxygen, false))
	n := g.AddAtom(core.OrganicAtom(element.Nitrogen, false))
	require.NoError(t, g.AddEdge(core.NewEdge(c, n, core.Implicit)))
	require.NoError(t, g.AddEdge(core.NewEdge(c, o, core.Double)))
	require.NoError(t, g.AddEdge(core.NewEdge(c, h, core.Implicit)))

	s := g.Clone()
	s.Sort(core.CanonicalFirst)
	assert.Equal(t, []int{h, o, n}, s.Neighbors(c))

	s = g.Clone()
	s.Sort(core.VisitHighOrderFirst)
	assert.Equal(t, []int{o, n, h}, s.Neighbors(c))

	s = g.Clone()
	s.Sort(core.Chain(core.VisitHydrogenFirst, core.VisitHighOrderFirst))
	assert.Equal(t, []int{h, o, n}, s.Neighbors(c))

	// nil comparator leaves the order untouched
	s = g.Clone()
	s.Sort(nil)
	assert.Equal(t, []int{n, o, h}, s.Neighbors(c))
}

func TestBondOrderAndInverse(t *testing.T) {
	assert.Equal(t, 0, core.Dot.Order())
	assert.Equal(t, 1, core.Implicit.Order())
	assert.Equal(t, 1, core.Aromatic.Order())
	assert.Equal(t, 3, core.Triple.Order())
	assert.Equal(t, 4, core.Quadruple.Order())
	assert.Equal(t, core.Down, core.Up.Inverse())
	assert.Equal(t, core.Double, core.Double.Inverse())

	for _, c := range []byte(".-=#$:/\\") {
		b, ok := core.BondOf(c)
		require.True(t, ok)
		assert.Equal(t, string(c), b.String())
	}
	_, ok := core.BondOf('x')
	assert.False(t, ok)
}

func TestAtomString(t *testing.T) {
	assert.Equal(t, "c", core.OrganicAtom(element.Carbon, true).String())
	a := core.BracketAtom(element.Carbon,
		core.WithIsotope(13), core.WithHydrogens(3), core.WithCharge(1), core.WithAtomClass(2))
	assert.Equal(t, "[13CH3+:2]", a.String())
	assert.Equal(t, "[O-2]", core.BracketAtom(element.Oxygen, core.WithCharge(-2)).String())
	assert.Equal(t, "[se]", core.BracketAtom(element.Selenium, core.WithAromatic()).String())
}
