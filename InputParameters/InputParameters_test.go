package InputParameters

import (
	"testing"

	"github.com/notargets/swbench/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Mountain
Case: Case5
RefinementLevel: 3
MeshDegree: 2
Reorder: false
Family: CG
PolynomialOrder: 2
Partitions: 4
Rank: 1
Overlap: vertex
OverlapDepth: 2
Units:
  Metre: 0.001
Overrides:
  URef: 15.
  MountainHeight: 1500
`)
	var ip InputParametersSW
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "case5", ip.Case)
	assert.Equal(t, 3, ip.RefinementLevel)
	assert.Equal(t, 2, ip.MeshDegree)
	require.NotNil(t, ip.Reorder)
	assert.False(t, *ip.Reorder)
	assert.Equal(t, 2, ip.PolynomialOrder)
	assert.Equal(t, 1, ip.Rank)
	assert.Equal(t, 0.001, ip.Units.Metre)
	assert.Equal(t, 1., ip.Units.Second)
	u, ok := ip.Override("URef")
	assert.True(t, ok)
	assert.Equal(t, 15., u)
	_, ok = ip.Override("HRef")
	assert.False(t, ok)
	assert.Equal(t, &mesh.DistributionParameters{
		Partition: true, OverlapType: mesh.OverlapVertex, OverlapDepth: 2,
	}, ip.Distribution())
	assert.Equal(t, 3600., ip.UnitSystem().Hour)
	ip.Print()
}

func TestDefaults(t *testing.T) {
	var ip InputParametersSW
	require.NoError(t, ip.Parse([]byte(`Title: Minimal`)))
	assert.Equal(t, "case2", ip.Case)
	assert.Equal(t, 1, ip.MeshDegree)
	assert.Equal(t, "CG", ip.Family)
	assert.Equal(t, 1, ip.PolynomialOrder)
	assert.Equal(t, 1, ip.Partitions)
	assert.Nil(t, ip.Reorder)
	assert.Equal(t, &mesh.DistributionParameters{
		Partition: false, OverlapType: mesh.OverlapFacet, OverlapDepth: 1,
	}, ip.Distribution())

	// DG keeps an explicit degree of zero
	var dg InputParametersSW
	require.NoError(t, dg.Parse([]byte("Family: DG\nPolynomialOrder: 0")))
	assert.Equal(t, 0, dg.PolynomialOrder)
}

func TestInvalid(t *testing.T) {
	for _, input := range []string{
		"Case: case7",
		"Overlap: sideways",
		"Overrides:\n  Gravity: 10",
		"Units:\n  Second: -1",
		"RefinementLevel: [1, 2]",
	} {
		var ip InputParametersSW
		assert.Error(t, ip.Parse([]byte(input)), input)
	}
}
