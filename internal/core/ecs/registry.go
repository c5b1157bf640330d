package ecs

// Registry holds one handle per component store so entity destruction can
// sweep a dead id out of all of them without knowing their element types.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 48)}
}

// Register enrolls a store in the destroy sweep.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll drops every component the entity carries.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
