package canon_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/diagcanon/attrset"
	"github.com/katalvlaran/diagcanon/canon"
	"github.com/katalvlaran/diagcanon/colorgraph"
)

// MultiDriverSuite exercises driver E against the concrete scenarios of
// spec §8 and its quantified invariants.
type MultiDriverSuite struct {
	suite.Suite
}

// scenario1Graph builds the 6-vertex multigraph of spec §8 scenario 1:
// vertex colors red@{0,2}, green@{1,3}, black@{4,5}; edges
// {(0,4,red),(1,4,green),(2,5,red),(3,5,green),(4,5,blue)x2}.
func scenario1Graph() *colorgraph.Multi {
	mg := colorgraph.NewMulti()
	red := attrset.Set{"color": attrset.String("red")}
	green := attrset.Set{"color": attrset.String("green")}
	black := attrset.Set{"color": attrset.String("black")}
	blue := attrset.Set{"color": attrset.String("blue")}

	_ = mg.AddVertex("0", red)
	_ = mg.AddVertex("2", red)
	_ = mg.AddVertex("1", green)
	_ = mg.AddVertex("3", green)
	_ = mg.AddVertex("4", black)
	_ = mg.AddVertex("5", black)

	_, _ = mg.AddEdge("0", "4", red)
	_, _ = mg.AddEdge("1", "4", green)
	_, _ = mg.AddEdge("2", "5", red)
	_, _ = mg.AddEdge("3", "5", green)
	_, _ = mg.AddEdge("4", "5", blue)
	_, _ = mg.AddEdge("4", "5", blue)
	return mg
}

// TestScenario1_LabelSwapYieldsSameCanonicalFormAndNontrivialAutomorphism.
func (s *MultiDriverSuite) TestScenario1_LabelSwapYieldsSameCanonicalFormAndNontrivialAutomorphism() {
	original := scenario1Graph()
	swapped := permuteMulti(original, map[string]string{
		"0": "0", "1": "1", "2": "2", "3": "3", "4": "5", "5": "4",
	})

	require.NotEqual(s.T(), canon.EncodeMulti(original), canon.EncodeMulti(swapped),
		"the swapped input must differ from the original before canonicalization")

	gc1, auts1, _, err := canon.CanonizeMulti(original)
	require.NoError(s.T(), err)
	gc2, _, _, err := canon.CanonizeMulti(swapped)
	require.NoError(s.T(), err)

	require.Equal(s.T(), canon.EncodeMulti(gc1), canon.EncodeMulti(gc2))
	require.NotEmpty(s.T(), auts1, "the 4<->5 swap must surface as a nontrivial automorphism")
}

// TestScenario2_TriangleAllDistinctColorsIsRigid.
func (s *MultiDriverSuite) TestScenario2_TriangleAllDistinctColorsIsRigid() {
	mg := colorgraph.NewMulti()
	_ = mg.AddVertex("0", attrset.Set{"color": attrset.String("red")})
	_ = mg.AddVertex("1", attrset.Set{"color": attrset.String("green")})
	_ = mg.AddVertex("2", attrset.Set{"color": attrset.String("blue")})
	_, _ = mg.AddEdge("0", "1", attrset.Set{"color": attrset.String("a")})
	_, _ = mg.AddEdge("1", "2", attrset.Set{"color": attrset.String("b")})
	_, _ = mg.AddEdge("2", "0", attrset.Set{"color": attrset.String("c")})

	_, auts, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	require.Empty(s.T(), auts)
}

// TestScenario3_SymmetricPathHasSingleReflection.
func (s *MultiDriverSuite) TestScenario3_SymmetricPathHasSingleReflection() {
	mg := colorgraph.NewMulti()
	black := attrset.Set{"color": attrset.String("black")}
	_ = mg.AddVertex("0", attrset.Set{"color": attrset.String("red")})
	_ = mg.AddVertex("1", attrset.Set{"color": attrset.String("red")})
	_ = mg.AddVertex("2", attrset.Set{"color": attrset.String("blue")})
	_, _ = mg.AddEdge("0", "2", black)
	_, _ = mg.AddEdge("2", "1", black)

	_, auts, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	require.Len(s.T(), auts, 1)
	sigma := auts[0]
	require.Equal(s.T(), "2", sigma["2"])
	require.ElementsMatch(s.T(), []string{"0", "1"}, []string{sigma["0"], sigma["1"]})
}

// TestScenario4_RelabeledIsomorphicCopyProducesIdenticalCanonicalForm.
func (s *MultiDriverSuite) TestScenario4_RelabeledIsomorphicCopyProducesIdenticalCanonicalForm() {
	original := scenario1Graph()
	relabeled := permuteMulti(original, reverseIDPermutation(6))

	gc1, _, _, err := canon.CanonizeMulti(original)
	require.NoError(s.T(), err)
	gc2, _, _, err := canon.CanonizeMulti(relabeled)
	require.NoError(s.T(), err)

	require.Equal(s.T(), canon.EncodeMulti(gc1), canon.EncodeMulti(gc2))
}

// TestScenario5_EmptyGraph.
func (s *MultiDriverSuite) TestScenario5_EmptyGraph() {
	mg := colorgraph.NewMulti()
	mgc, auts, cm, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, mgc.VertexCount())
	require.Empty(s.T(), auts)
	require.Empty(s.T(), cm)
}

// TestScenario6_ParallelEdgesOrderedByColor: the edge with the
// lexicographically smaller color attribute set must receive parallel-key
// 0, i.e. sort before its sibling in the canonical encoding.
func (s *MultiDriverSuite) TestScenario6_ParallelEdgesOrderedByColor() {
	mg := colorgraph.NewMulti()
	_ = mg.AddVertex("0", attrset.Set{})
	_ = mg.AddVertex("1", attrset.Set{})
	_, _ = mg.AddEdge("0", "1", attrset.Set{"color": attrset.String("red")})
	_, _ = mg.AddEdge("0", "1", attrset.Set{"color": attrset.String("blue")})

	mgc, _, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)

	edges := mgc.Edges()
	require.Len(s.T(), edges, 2)
	blueFirst, _ := attrset.Set{"color": attrset.String("blue")}.Encode()
	firstColor, _ := edges[0].Color.Encode()
	require.Equal(s.T(), blueFirst, firstColor, "blue sorts lexicographically before red")
}

// TestDeterminism: repeated calls on the same input are bitwise identical.
func (s *MultiDriverSuite) TestDeterminism() {
	mg := randomColoredMulti(withSeed(7))
	gc1, _, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	gc2, _, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), canon.EncodeMulti(gc1), canon.EncodeMulti(gc2))
}

// TestInvarianceUnderAttributeIterationOrder: rebuilding every color with
// keys inserted in a different order must not change G_c (Go maps have no
// insertion order, but Set.With/Merge let us build equivalent sets two
// different ways and confirm they encode, and canonicalize, identically).
func (s *MultiDriverSuite) TestInvarianceUnderAttributeIterationOrder() {
	a := attrset.New(0).With("hue", attrset.String("red")).With("weight", attrset.Int(3))
	b := attrset.New(0).With("weight", attrset.Int(3)).With("hue", attrset.String("red"))
	require.True(s.T(), a.Equal(b))

	build := func(color attrset.Set) *colorgraph.Multi {
		mg := colorgraph.NewMulti()
		_ = mg.AddVertex("0", color)
		_ = mg.AddVertex("1", attrset.Set{})
		_, _ = mg.AddEdge("0", "1", attrset.Set{})
		return mg
	}
	gc1, _, _, err := canon.CanonizeMulti(build(a))
	require.NoError(s.T(), err)
	gc2, _, _, err := canon.CanonizeMulti(build(b))
	require.NoError(s.T(), err)
	require.Equal(s.T(), canon.EncodeMulti(gc1), canon.EncodeMulti(gc2))
}

// TestAutomorphismValidity: relabeling the input by each reported generator
// must leave it encoding-equal to itself.
func (s *MultiDriverSuite) TestAutomorphismValidity() {
	mg := scenario1Graph()
	_, auts, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), auts)

	for _, sigma := range auts {
		relabeled := colorgraph.NewMulti()
		for _, id := range mg.Vertices() {
			_ = relabeled.AddVertex(sigma[id], mg.VertexColor(id))
		}
		for _, e := range mg.Edges() {
			_, _ = relabeled.AddEdge(sigma[e.From], sigma[e.To], e.Color)
		}
		require.Equal(s.T(), canon.EncodeMulti(mg), canon.EncodeMulti(relabeled))
	}
}

// TestRoundTrip: relabeling G_c by canonical_map reproduces the original
// multigraph under standardized encoding.
func (s *MultiDriverSuite) TestRoundTrip() {
	mg := scenario1Graph()
	mgc, _, canonicalMap, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)

	back := colorgraph.NewMulti()
	for _, id := range mgc.Vertices() {
		_ = back.AddVertex(canonicalMap[id], mgc.VertexColor(id))
	}
	for _, e := range mgc.Edges() {
		_, _ = back.AddEdge(canonicalMap[e.From], canonicalMap[e.To], e.Color)
	}

	require.Equal(s.T(), canon.EncodeMulti(mg), canon.EncodeMulti(back))
}

// TestColorSensitivity: changing one vertex's color to a value distinct
// from every other attribute set must change the canonical form.
func (s *MultiDriverSuite) TestColorSensitivity() {
	mg := scenario1Graph()
	gc1, _, _, err := canon.CanonizeMulti(mg)
	require.NoError(s.T(), err)

	mutated := colorgraph.NewMulti()
	red := attrset.Set{"color": attrset.String("red")}
	green := attrset.Set{"color": attrset.String("green")}
	black := attrset.Set{"color": attrset.String("black")}
	blue := attrset.Set{"color": attrset.String("blue")}
	_ = mutated.AddVertex("0", attrset.Set{"color": attrset.String("unique-sentinel")})
	_ = mutated.AddVertex("2", red)
	_ = mutated.AddVertex("1", green)
	_ = mutated.AddVertex("3", green)
	_ = mutated.AddVertex("4", black)
	_ = mutated.AddVertex("5", black)
	_, _ = mutated.AddEdge("0", "4", red)
	_, _ = mutated.AddEdge("1", "4", green)
	_, _ = mutated.AddEdge("2", "5", red)
	_, _ = mutated.AddEdge("3", "5", green)
	_, _ = mutated.AddEdge("4", "5", blue)
	_, _ = mutated.AddEdge("4", "5", blue)
	gc2, _, _, err := canon.CanonizeMulti(mutated)
	require.NoError(s.T(), err)

	require.NotEqual(s.T(), canon.EncodeMulti(gc1), canon.EncodeMulti(gc2))
}

func TestMultiDriverSuite(t *testing.T) {
	suite.Run(t, new(MultiDriverSuite))
}
