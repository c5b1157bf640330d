package ecs

// World is the top-level ECS container. It owns the entity pool and shares
// the component registry with whoever builds the stores, so Destroy reaches
// every pool. Destruction is immediate: the frame-stepped pipeline is
// single-threaded, and consumers (death handling, projectile expiry) rely on
// the id leaving the live set within the same pass.
type World struct {
	pool     *EntityPool
	registry *Registry
}

func NewWorld(reg *Registry) *World {
	return &World{
		pool:     NewEntityPool(),
		registry: reg,
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) Create() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Destroy clears the entity from every registered component store and frees
// its id for reuse.
func (w *World) Destroy(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	w.registry.RemoveAll(id)
	w.pool.Destroy(id)
}
