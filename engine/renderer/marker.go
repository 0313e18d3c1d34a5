package renderer

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MarkerStride is the byte size of one marker instance in the instance buffer.
const MarkerStride = 16

// Marker is a wireframe cube drawn at a world position as a spatial reference
// while flying the camera.
type Marker struct {
	Position mgl32.Vec3
	// Scale is the cube edge length in world units.
	Scale float32
}

// MarshalMarkers packs markers into the little-endian instance layout read by the
// marker shader: vec4<f32>(position.xyz, scale) per instance.
//
// Parameters:
//   - markers: the markers to pack
//
// Returns:
//   - []byte: len(markers) * MarkerStride bytes
func MarshalMarkers(markers []Marker) []byte {
	buf := make([]byte, len(markers)*MarkerStride)
	for i, m := range markers {
		off := i * MarkerStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(m.Position.X()))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(m.Position.Y()))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(m.Position.Z()))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(m.Scale))
	}
	return buf
}

// cubeCorners are the eight corners of a unit cube centered on the origin.
var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

// cubeEdges index cubeCorners as a line list, two indices per edge.
var cubeEdges = [24]uint32{
	0, 1, 1, 2, 2, 3, 3, 0, // back face
	4, 5, 5, 6, 6, 7, 7, 4, // front face
	0, 4, 1, 5, 2, 6, 3, 7, // connecting edges
}

func cubeVertexData() []byte {
	buf := make([]byte, len(cubeCorners)*12)
	for i, c := range cubeCorners {
		for j := 0; j < 3; j++ {
			binary.LittleEndian.PutUint32(buf[i*12+j*4:], math.Float32bits(c[j]))
		}
	}
	return buf
}

func cubeIndexData() []byte {
	buf := make([]byte, len(cubeEdges)*4)
	for i, idx := range cubeEdges {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
