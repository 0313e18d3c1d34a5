package renderer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFloat(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestMarshalMarkers(t *testing.T) {
	markers := []Marker{
		{Position: mgl32.Vec3{1, 2, 3}, Scale: 0.5},
		{Position: mgl32.Vec3{-4, 5, -6}, Scale: 2},
	}
	buf := MarshalMarkers(markers)
	require.Len(t, buf, 2*MarkerStride)

	assert.Equal(t, float32(1), readFloat(buf, 0))
	assert.Equal(t, float32(2), readFloat(buf, 4))
	assert.Equal(t, float32(3), readFloat(buf, 8))
	assert.Equal(t, float32(0.5), readFloat(buf, 12))
	assert.Equal(t, float32(-4), readFloat(buf, 16))
	assert.Equal(t, float32(-6), readFloat(buf, 24))
	assert.Equal(t, float32(2), readFloat(buf, 28))

	assert.Empty(t, MarshalMarkers(nil))
}

func TestCubeEdges(t *testing.T) {
	seen := make(map[[2]uint32]bool)
	for i := 0; i < len(cubeEdges); i += 2 {
		a, b := cubeEdges[i], cubeEdges[i+1]
		require.Less(t, int(a), len(cubeCorners))
		require.Less(t, int(b), len(cubeCorners))

		// every edge spans exactly one axis
		diff := cubeCorners[a].Sub(cubeCorners[b])
		axes := 0
		for _, d := range diff {
			if d != 0 {
				axes++
				assert.Equal(t, float32(1), float32(math.Abs(float64(d))))
			}
		}
		assert.Equal(t, 1, axes, "edge %d-%d", a, b)

		key := [2]uint32{min(a, b), max(a, b)}
		assert.False(t, seen[key], "duplicate edge %v", key)
		seen[key] = true
	}
	assert.Len(t, seen, 12)
}

func TestCubeBufferData(t *testing.T) {
	vertices := cubeVertexData()
	require.Len(t, vertices, 8*12)
	assert.Equal(t, float32(-0.5), readFloat(vertices, 0))
	assert.Equal(t, float32(0.5), readFloat(vertices, 6*12+8))

	indices := cubeIndexData()
	require.Len(t, indices, 24*4)
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(indices[23*4:]))
}

func TestRendererBuilderOptions(t *testing.T) {
	r := &renderer{}
	for _, opt := range []RendererBuilderOption{
		WithPresentMode(PresentModeVSync),
		WithMSAA(MSAAOff),
		WithClearColor(0.2, 0.3, 0.4, 1),
		WithForceSoftwareRenderer(true),
	} {
		opt(r)
	}

	require.NotNil(t, r.pendingPresentMode)
	assert.Equal(t, PresentModeVSync, *r.pendingPresentMode)
	require.NotNil(t, r.pendingMSAA)
	assert.Equal(t, MSAAOff, *r.pendingMSAA)
	require.NotNil(t, r.pendingClearColor)
	assert.Equal(t, [4]float64{0.2, 0.3, 0.4, 1}, *r.pendingClearColor)
	assert.True(t, r.forceFallbackAdapter)
}

func TestPresentModeString(t *testing.T) {
	assert.Equal(t, "vsync", PresentModeVSync.String())
	assert.Equal(t, "uncapped", PresentModeUncapped.String())
	assert.Equal(t, "unknown", PresentMode(7).String())
}
