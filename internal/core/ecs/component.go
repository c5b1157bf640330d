package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a generic typed map store for ECS components. One store per
// component kind; at most one instance of a kind per entity.
// No reflect, no interface{}; pure generics.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 64),
	}
}

// Set attaches a component, overwriting any existing one of this kind.
func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

// Get returns the component for id, or (nil, false) when absent. Never panics.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}

func (s *Store[T]) EachID(fn func(EntityID)) {
	for id := range s.data {
		fn(id)
	}
}
