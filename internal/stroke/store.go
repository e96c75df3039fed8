package stroke

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// Store provides thread-safe caching of loaded strokes to avoid redundant
// disk reads.
//
// Strokes are keyed by the exact path string they were loaded from; different
// paths to the same file (relative vs absolute) result in separate entries.
// Cached strokes remain in memory until explicitly removed via Evict() or
// Clear().
type Store struct {
	mu      sync.RWMutex
	strokes map[string][]geometry.Point
}

// NewStore creates and initializes a new empty stroke store.
func NewStore() *Store {
	return &Store{
		strokes: make(map[string][]geometry.Point),
	}
}

// Load retrieves a stroke from the cache or reads it from disk if not cached.
//
// The file must contain a JSON array of {"x": ..., "y": ...} objects. The
// returned slice is a copy; mutating it does not affect the cache.
//
// Returns an error if the file cannot be read, is not valid JSON, or contains
// a non-finite coordinate (NaN or infinity poison every downstream geometric
// computation, so they are rejected at the boundary).
func (s *Store) Load(path string) ([]geometry.Point, error) {
	s.mu.RLock()
	if points, ok := s.strokes[path]; ok {
		s.mu.RUnlock()
		return append([]geometry.Point(nil), points...), nil
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stroke file: %w", err)
	}

	points, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid stroke file %s: %w", path, err)
	}

	s.mu.Lock()
	s.strokes[path] = points
	s.mu.Unlock()

	return append([]geometry.Point(nil), points...), nil
}

// Parse decodes a JSON point array and validates every coordinate is finite.
func Parse(data []byte) ([]geometry.Point, error) {
	var points []geometry.Point
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to decode points: %w", err)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("non-finite coordinate at index %d", i)
		}
	}
	return points, nil
}

// Clear removes all strokes from the cache, freeing the associated memory.
func (s *Store) Clear() {
	s.mu.Lock()
	s.strokes = make(map[string][]geometry.Point)
	s.mu.Unlock()
}

// Evict removes a specific stroke from the cache by its path. If the path is
// not cached, Evict does nothing.
func (s *Store) Evict(path string) {
	s.mu.Lock()
	delete(s.strokes, path)
	s.mu.Unlock()
}

// Info contains metadata about a captured stroke.
type Info struct {
	// PointCount is the number of captured samples.
	PointCount int `json:"point_count"`

	// PathLength is the open polyline length through the samples in order,
	// in pixels.
	PathLength float64 `json:"path_length"`

	// Perimeter is the closed-polygon edge length (the last sample connects
	// back to the first).
	Perimeter float64 `json:"perimeter"`

	// Bounds is the minimal axis-aligned box containing the stroke.
	Bounds geometry.Rect `json:"bounds"`

	// EndpointGap is the distance between the first and last samples.
	EndpointGap float64 `json:"endpoint_gap"`

	// Closed reports whether the stroke is approximately closed: endpoint gap
	// under max(18, 8% of perimeter), the same tolerance the circle detector
	// applies.
	Closed bool `json:"closed"`
}

// Describe computes metadata for a stroke. Empty strokes yield a zero Info.
func Describe(points []geometry.Point) *Info {
	info := &Info{PointCount: len(points)}
	if len(points) == 0 {
		return info
	}

	info.PathLength = geometry.PathLength(points)
	info.Perimeter = geometry.Perimeter(points)
	info.Bounds = geometry.BoundingBox(points)
	info.EndpointGap = geometry.Distance(points[0], points[len(points)-1])
	if len(points) >= 3 {
		info.Closed = info.EndpointGap < math.Max(18, 0.08*info.Perimeter)
	}
	return info
}

// LoadInfo loads a stroke through the store and returns its metadata.
func LoadInfo(store *Store, path string) (*Info, error) {
	points, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return Describe(points), nil
}
