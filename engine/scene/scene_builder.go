package scene

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is synced by the engine. Scenes start active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithMarkers adds initial markers to the scene. IDs are assigned in argument order.
//
// Parameters:
//   - markers: the markers to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMarkers(markers ...renderer.Marker) SceneBuilderOption {
	return func(s *scene) {
		for _, m := range markers {
			s.add(m)
		}
	}
}

// WithMarkerField adds one marker of the given edge length at each position.
//
// Parameters:
//   - scale: the cube edge length shared by every marker
//   - positions: the world positions of the markers
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMarkerField(scale float32, positions ...mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		for _, p := range positions {
			s.add(renderer.Marker{Position: p, Scale: scale})
		}
	}
}

// WithCullingDisabled bypasses frustum culling so every marker is uploaded.
//
// Parameters:
//   - disabled: whether culling is disabled
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
