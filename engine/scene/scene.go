package scene

import (
	"log"
	"math"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
)

// markerRadiusFactor converts a cube edge length into its bounding sphere radius (sqrt(3)/2).
var markerRadiusFactor = float32(math.Sqrt(3) / 2)

// Scene holds the reference markers the camera flies through.
// Each frame the scene culls its markers against the camera frustum and uploads the visible set.
type Scene interface {
	// Name returns the name of the scene.
	Name() string

	// SetName sets the name of the scene.
	SetName(name string)

	// Active reports whether the scene is synced by the engine.
	Active() bool

	// SetActive sets whether the scene is synced by the engine.
	SetActive(active bool)

	// Camera returns the camera used for culling.
	Camera() camera.Camera

	// SetCamera replaces the camera used for culling.
	SetCamera(cam camera.Camera)

	// CullingDisabled reports whether frustum culling is bypassed.
	CullingDisabled() bool

	// SetCullingDisabled bypasses frustum culling when true, so every marker is drawn.
	SetCullingDisabled(disabled bool)

	// Add registers a marker and returns its ID.
	//
	// Parameters:
	//   - m: the marker to add
	//
	// Returns:
	//   - uint64: the marker's ID (never 0)
	Add(m renderer.Marker) uint64

	// Get returns the marker with the given ID.
	//
	// Parameters:
	//   - id: the marker ID
	//
	// Returns:
	//   - renderer.Marker: the marker
	//   - bool: false if no marker has that ID
	Get(id uint64) (renderer.Marker, bool)

	// Remove deletes the marker with the given ID. Unknown IDs are ignored.
	Remove(id uint64)

	// Clear removes every marker.
	Clear()

	// Count returns the number of registered markers.
	Count() int

	// Markers returns every marker in insertion order.
	Markers() []renderer.Marker

	// Visible returns the markers whose bounding sphere intersects the camera frustum,
	// in insertion order. Without a camera, or with culling disabled, all markers are returned.
	Visible() []renderer.Marker

	// Sync uploads the visible markers to the renderer.
	//
	// Parameters:
	//   - r: the renderer receiving the marker instances
	//
	// Returns:
	//   - int: the number of markers uploaded
	//   - error: an error if the upload fails
	Sync(r renderer.Renderer) (int, error)
}

// scene implements the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name            string
	active          bool
	cullingDisabled bool
	cam             camera.Camera

	registry map[uint64]renderer.Marker
	nextID   uint64

	lastVisible int               // visible count at the previous Sync, -1 before the first
	visiblePool []renderer.Marker // reused by Sync to avoid per-frame allocations
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene culled against cam. A nil camera disables culling until
// SetCamera is called.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera whose frustum culls markers
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:          &sync.RWMutex{},
		name:        name,
		active:      true,
		cam:         cam,
		registry:    make(map[uint64]renderer.Marker),
		nextID:      1,
		lastVisible: -1,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Add(m renderer.Marker) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(m)
}

// add registers m under the next ID. Caller must hold s.mu write lock.
func (s *scene) add(m renderer.Marker) uint64 {
	id := s.nextID
	s.nextID++
	s.registry[id] = m
	return id
}

func (s *scene) Get(id uint64) (renderer.Marker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.registry[id]
	return m, ok
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]renderer.Marker)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Markers() []renderer.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(nil, false)
}

func (s *scene) Visible() []renderer.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(nil, !s.cullingDisabled && s.cam != nil)
}

func (s *scene) Sync(r renderer.Renderer) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visiblePool = s.collect(s.visiblePool[:0], !s.cullingDisabled && s.cam != nil)
	if len(s.visiblePool) != s.lastVisible {
		log.Printf("[Scene] %s: %d/%d markers visible", s.name, len(s.visiblePool), len(s.registry))
		s.lastVisible = len(s.visiblePool)
	}
	if err := r.SetMarkers(s.visiblePool); err != nil {
		return 0, err
	}
	return len(s.visiblePool), nil
}

// collect appends the registered markers to dst in ID order, keeping only those inside
// the camera frustum when cull is set. Caller must hold s.mu.
func (s *scene) collect(dst []renderer.Marker, cull bool) []renderer.Marker {
	ids := make([]uint64, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if dst == nil {
		dst = make([]renderer.Marker, 0, len(ids))
	}
	if !cull {
		for _, id := range ids {
			dst = append(dst, s.registry[id])
		}
		return dst
	}

	frustum := s.cam.Frustum()
	for _, id := range ids {
		m := s.registry[id]
		if frustum.IntersectsSphere(m.Position, m.Scale*markerRadiusFactor) {
			dst = append(dst, m)
		}
	}
	return dst
}
