package imaging

import (
	"image"
	"sync"
)

// TextureID is an opaque handle to a frame buffer owned by a Store. Handles
// are valid on both the interactive thread and the worker; no pointers cross
// the thread boundary.
type TextureID uint32

// Store owns the pixel buffers behind TextureID handles. It stands in for
// GPU-resident textures: the interactive thread allocates buffers and hands
// the IDs to the background worker, which fills them with decoded frames.
//
// Store is safe for concurrent use. The job protocol itself never touches one
// buffer from two threads at once, but the map is guarded so that allocation
// on the interactive thread and writes on the worker cannot race.
type Store struct {
	mu   sync.RWMutex
	bufs map[TextureID]*image.NRGBA
	next TextureID
}

// NewStore creates an empty buffer store.
func NewStore() *Store {
	return &Store{bufs: make(map[TextureID]*image.NRGBA)}
}

// Create allocates a zeroed width x height buffer and returns its handle.
func (s *Store) Create(width, height int) TextureID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := s.next
	s.bufs[id] = image.NewNRGBA(image.Rect(0, 0, width, height))
	return id
}

// Update replaces the pixels of the buffer identified by id. The handle must
// have been returned by Create on this store.
func (s *Store) Update(id TextureID, img *image.NRGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bufs[id] = img
}

// Get returns the buffer for id, or false if the handle is unknown.
func (s *Store) Get(id TextureID) (*image.NRGBA, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.bufs[id]
	return img, ok
}

// Len reports the number of allocated buffers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bufs)
}

// Clear drops all buffers. Outstanding handles become invalid.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bufs = make(map[TextureID]*image.NRGBA)
}
