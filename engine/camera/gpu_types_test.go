package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	var u GPUCameraUniform
	assert.Equal(t, 144, u.Size())
	assert.Contains(t, GPUCameraUniformSource, "struct CameraUniform")
	assert.Contains(t, GPUCameraUniformSource, "camera_position: vec3<f32>")
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
	u := c.Uniform()
	buf := u.Marshal()
	require.Len(t, buf, 144)

	readFloat := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}

	for i := range 16 {
		assert.Equal(t, u.View[i], readFloat(i*4), "view[%d]", i)
		assert.Equal(t, u.Projection[i], readFloat(64+i*4), "projection[%d]", i)
	}
	assert.Equal(t, float32(1), readFloat(128))
	assert.Equal(t, float32(2), readFloat(132))
	assert.Equal(t, float32(3), readFloat(136))
	assert.Equal(t, float32(0), readFloat(140))
}
