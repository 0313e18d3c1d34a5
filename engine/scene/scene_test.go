package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markerSink records the markers passed to SetMarkers.
type markerSink struct {
	renderer.Renderer
	got []renderer.Marker
	err error
}

func (r *markerSink) SetMarkers(markers []renderer.Marker) error {
	if r.err != nil {
		return r.err
	}
	r.got = append([]renderer.Marker(nil), markers...)
	return nil
}

func newTestCamera() camera.Camera {
	// looks down -Z from (0, 0, 3)
	return camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})
}

var (
	origin   = renderer.Marker{Position: mgl32.Vec3{0, 0, 0}, Scale: 1}
	behind   = renderer.Marker{Position: mgl32.Vec3{0, 0, 10}, Scale: 1}
	tooFar   = renderer.Marker{Position: mgl32.Vec3{0, 0, -200}, Scale: 1}
	sideways = renderer.Marker{Position: mgl32.Vec3{50, 0, 2}, Scale: 1}
	ahead    = renderer.Marker{Position: mgl32.Vec3{2, 5, -15}, Scale: 1}
)

func TestSceneRegistry(t *testing.T) {
	s := NewScene("field", nil, WithMarkers(origin, behind))
	assert.Equal(t, "field", s.Name())
	assert.True(t, s.Active())
	assert.Equal(t, 2, s.Count())

	id := s.Add(ahead)
	assert.Equal(t, uint64(3), id)
	m, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, ahead, m)

	s.Remove(2)
	s.Remove(42)
	assert.Equal(t, []renderer.Marker{origin, ahead}, s.Markers())

	_, ok = s.Get(2)
	assert.False(t, ok)

	s.Clear()
	assert.Zero(t, s.Count())
	assert.Equal(t, uint64(4), s.Add(origin), "IDs are not reused after Clear")
}

func TestSceneVisibleCullsAgainstFrustum(t *testing.T) {
	s := NewScene("field", newTestCamera(), WithMarkers(origin, behind, tooFar, sideways, ahead))
	assert.Equal(t, []renderer.Marker{origin, ahead}, s.Visible())

	s.SetCullingDisabled(true)
	assert.Len(t, s.Visible(), 5)
}

func TestSceneVisibleWithoutCamera(t *testing.T) {
	s := NewScene("field", nil, WithMarkers(origin, behind))
	assert.Len(t, s.Visible(), 2)

	s.SetCamera(newTestCamera())
	assert.Equal(t, []renderer.Marker{origin}, s.Visible())
}

func TestSceneFollowsCamera(t *testing.T) {
	cam := newTestCamera()
	s := NewScene("field", cam, WithMarkers(origin, behind))
	assert.Equal(t, []renderer.Marker{origin}, s.Visible())

	// turn around: yaw -90 -> 90 looks down +Z
	cam.ProcessMouseMovement(300, 0, true)
	assert.Equal(t, []renderer.Marker{behind}, s.Visible())
}

func TestSceneSync(t *testing.T) {
	s := NewScene("field", newTestCamera(), WithMarkerField(1, origin.Position, behind.Position, ahead.Position))
	sink := &markerSink{}

	n, err := s.Sync(sink)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []renderer.Marker{origin, ahead}, sink.got)

	sink.err = errors.New("buffer lost")
	_, err = s.Sync(sink)
	assert.ErrorContains(t, err, "buffer lost")
}

func TestSceneBuilderOptions(t *testing.T) {
	s := NewScene("field", nil, WithActive(false), WithCullingDisabled(true))
	assert.False(t, s.Active())
	assert.True(t, s.CullingDisabled())

	s.SetActive(true)
	s.SetName("renamed")
	assert.True(t, s.Active())
	assert.Equal(t, "renamed", s.Name())
}
