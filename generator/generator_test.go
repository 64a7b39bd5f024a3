package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/dfs"
	"github.com/katalvlaran/beam/element"
	"github.com/katalvlaran/beam/generator"
	"github.com/katalvlaran/beam/parser"
)

func generate(t *testing.T, in string, opts ...generator.Option) string {
	t.Helper()
	g, err := parser.Parse(in)
	require.NoError(t, err, in)
	out, err := generator.Generate(g, opts...)
	require.NoError(t, err, in)
	return out
}

func TestGenerateRoundTrip(t *testing.T) {
	inputs := []string{
		"CC",
		"O=C=O",
		"C#N",
		"CC(C)(C)C",
		"CC(=O)O",
		"c1ccccc1",
		"C1CCCCC1",
		"C1CC1C1CC1",
		"c1ccccc1-c1ccccc1",
		"[Na+].[Cl-]",
		"[13CH4+]",
		"[NH4+]",
		"[2H]O[2H]",
		"c1cc[nH]c1",
		"[O-][n+]1ccccc1",
		"F/C=C/F",
		"F/C=C\\F",
		"N[C@@H](C)C(=O)O",
		"N[C@H](C)C(=O)O",
		"C[S@](=O)CC",
		"CC=[C@]=CC",
		"[Co@OH1](F)(F)(F)(F)(F)F",
		"F[Pt@SP1](Cl)(F)Cl",
		"S[As@TB7](F)(Cl)(Br)N",
		"*C[CH3:7]",
	}
	for _, in := range inputs {
		assert.Equal(t, in, generate(t, in), in)
	}
}

func TestGenerateMinimalAtoms(t *testing.T) {
	tests := map[string]string{
		"[CH4]":         "C",
		"[CH3][OH]":     "CO",
		"[CH3]":         "[CH3]",
		"[n]1ccccc1":    "n1ccccc1",
		"[C@@H](C)(N)O": "[C@@H](C)(N)O",
		"[*]":           "*",
		"[Fe+2]":        "[Fe+2]",
		"[C-+1]":        "[C]",
		"[se]1cccc1":    "[se]1cccc1",
	}
	for in, want := range tests {
		assert.Equal(t, want, generate(t, in), in)
	}
}

func TestGenerateKekule(t *testing.T) {
	tests := map[string]string{
		"c1ccccc1":   "C1=CC=CC=C1",
		"c1cc[nH]c1": "C=1C=CNC1",
		"c1ccncc1":   "C1=CC=NC=C1",
	}
	for in, want := range tests {
		g, err := parser.Parse(in, parser.WithKekulize())
		require.NoError(t, err, in)
		out, err := generator.Generate(g)
		require.NoError(t, err, in)
		assert.Equal(t, want, out, in)
	}
}

func TestGenerateStart(t *testing.T) {
	g := parser.MustParse("N[C@@H](C)C(=O)O")
	r, err := generator.Write(g, generator.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, "C[C@H](N)C(=O)O", r.SMILES)
	assert.Equal(t, []int{2, 1, 0, 3, 4, 5}, r.Order)

	out, err := generator.Generate(parser.MustParse("CC=[C@]=CC"), generator.WithStart(4))
	require.NoError(t, err)
	assert.Equal(t, "CC=[C@]=CC", out)

	_, err = generator.Generate(g, generator.WithStart(42))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestGenerateComponentsOrder(t *testing.T) {
	out := generate(t, "O.CC.N", generator.WithStart(1))
	assert.Equal(t, "CC.O.N", out)
}

func TestGenerateAromaticBonds(t *testing.T) {
	assert.Equal(t, "c:1:c:c:c:c:c1", generate(t, "c1ccccc1", generator.WithAromaticBonds()))
	assert.Equal(t, "c1ccccc1", generate(t, "c:1:c:c:c:c:c1"))
}

func TestGenerateRingLabels(t *testing.T) {
	// hub atom 0 bonded to every atom of the chain 1..11
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
	}
	for v := 1; v < 12; v++ {
		require.NoError(t, g.AddEdge(core.NewEdge(0, v, core.Implicit)))
	}
	for v := 1; v < 11; v++ {
		require.NoError(t, g.AddEdge(core.NewEdge(v, v+1, core.Implicit)))
	}
	out, err := generator.Generate(g)
	require.NoError(t, err)
	assert.Equal(t, "C123456789%10CC1C2C3C4C5C6C7C8C9C%10", out)

	back, err := parser.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, g.Size(), back.Size())
	assert.Equal(t, 11, back.Degree(0))
}

func TestGenerateFollowsSortOrder(t *testing.T) {
	g := parser.MustParse("C(O)=C")
	g.Sort(core.VisitHighOrderFirst)
	assert.Equal(t, "C(=C)O", mustGenerate(t, g))
}

func TestGenerateIsStable(t *testing.T) {
	inputs := []string{
		"OC(=O)[C@@H]1CCCN1",
		"C[C@H]1CC[C@@H](C)CC1",
		"c1ccc2ccccc2c1",
		"C1CC2CCC1CC2",
	}
	for _, in := range inputs {
		first := generate(t, in)
		assert.Equal(t, first, generate(t, first), in)
	}
}

func TestGenerateEmpty(t *testing.T) {
	out, err := generator.Generate(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func mustGenerate(t *testing.T, g *core.Graph) string {
	t.Helper()
	out, err := generator.Generate(g)
	require.NoError(t, err)
	return out
}

func TestGenerateRoundTripStereo(t *testing.T) {
	inputs := []string{
		"N[C@@H](C)C(=O)O",
		"C[C@H]1CCCCO1",
		"C[C@H]1CC[C@@H](C)CC1",
		"C[S@](=O)CC",
		"CC=[C@]=CC",
		"F[Pt@SP1](Cl)(Br)I",
		"[Pt@SP2](F)(Cl)(Br)I",
		"[Pt@SP3](F)(Cl)(Br)I",
		"S[As@TB7](F)(Cl)(Br)N",
		"F[As@TB15](Cl)(Br)(I)N",
		"[Co@OH1](F)(Cl)(Br)(I)(N)O",
		"F[Co@OH25](Cl)(Br)(I)(N)O",
	}
	orders := map[string]core.EdgeComparator{
		"input":           nil,
		"canonical-first": core.CanonicalFirst,
		"hydrogen-first":  core.VisitHydrogenFirst,
		"high-order":      core.VisitHighOrderFirst,
	}
	for _, in := range inputs {
		for name, cmp := range orders {
			g := parser.MustParse(in)
			g.Sort(cmp)
			want := g.Topologies()
			require.NotEmpty(t, want, in)

			for start := 0; start < g.Order(); start++ {
				r, err := generator.Write(g, generator.WithStart(start))
				require.NoError(t, err, "%s %s start=%d", in, name, start)
				back, err := parser.Parse(r.SMILES)
				require.NoError(t, err, "%s %s start=%d: %s", in, name, start, r.SMILES)

				got := back.Topologies()
				require.Len(t, got, len(want), r.SMILES)
				for _, tp := range got {
					// Order maps written (re-parsed) indices back to g
					mapped := tp.Transform(r.Order)
					c, err := mapped.Atom()
					require.NoError(t, err)
					orig := g.Topology(c)
					require.True(t, orig.Known(), "%s: atom %d", r.SMILES, c)
					same, err := mapped.OrderBy(orig.Neighbors())
					require.NoError(t, err, "%s: %v vs %v", r.SMILES, mapped, orig)
					assert.Equal(t, orig.Configuration(), same.Configuration(),
						"%s %s start=%d: %s", in, name, start, r.SMILES)
				}
			}
		}
	}
}
