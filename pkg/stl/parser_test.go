package stl_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiCube = `solid corner
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 -2
      vertex 0 1 -2
      vertex 1 0 -2
    endloop
  endfacet
endsolid corner
`

func binarySTL(t *testing.T, name string, facets ...[4][3]float32) []byte {
	t.Helper()

	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, name)
	buf.Write(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(facets))))
	for _, f := range facets {
		for _, v := range f {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	return buf.Bytes()
}

func TestParseASCII(t *testing.T) {
	model, err := stl.Parse(strings.NewReader(asciiCube))
	require.NoError(t, err)

	assert.Equal(t, "corner", model.Name)
	require.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(1, 0, 0), model.Triangles[0].V2)
	assert.Equal(t, geometry.NewVector3(0, 0, -1), model.Triangles[1].Normal)

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, -2), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), bbox.Max)
}

func TestParseASCIIInvalidVertex(t *testing.T) {
	_, err := stl.Parse(strings.NewReader("solid x\nfacet normal 0 0 1\nvertex 0 zero 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseBinary(t *testing.T) {
	data := binarySTL(t, "exported",
		[4][3]float32{{0, 0, 1}, {0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
	)

	model, err := stl.Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "exported", model.Name)
	require.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(2, 0, 0), model.Triangles[0].V2)
}

func TestParseBinaryWithSolidHeader(t *testing.T) {
	// Several CAD exporters write "solid" into the binary header
	data := binarySTL(t, "solid part",
		[4][3]float32{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[4][3]float32{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	)

	model, err := stl.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())
}

func TestParseEmpty(t *testing.T) {
	_, err := stl.Parse(bytes.NewReader(nil))
	assert.ErrorIs(t, err, stl.ErrEmptyFile)
}
