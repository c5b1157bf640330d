package ecs

// EntityID is an opaque entity identifier. The zero value is never issued and
// means "no entity".
type EntityID uint32

func (id EntityID) IsZero() bool { return id == 0 }

// EntityPool allocates entity ids and recycles destroyed ones. Recycling is
// LIFO: the most recently destroyed id is reissued before any never-issued id.
type EntityPool struct {
	alive    map[EntityID]struct{}
	freeList []EntityID
	nextID   EntityID
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		alive:  make(map[EntityID]struct{}, 256),
		nextID: 1,
	}
}

func (p *EntityPool) Create() EntityID {
	var id EntityID
	if n := len(p.freeList); n > 0 {
		id = p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
	} else {
		id = p.nextID
		p.nextID++
	}
	p.alive[id] = struct{}{}
	return id
}

func (p *EntityPool) Alive(id EntityID) bool {
	_, ok := p.alive[id]
	return ok
}

// Destroy removes an id from the live set and pushes it on the free list.
// Destroying a dead or never-issued id is a no-op.
func (p *EntityPool) Destroy(id EntityID) {
	if _, ok := p.alive[id]; !ok {
		return
	}
	delete(p.alive, id)
	p.freeList = append(p.freeList, id)
}

func (p *EntityPool) Count() int { return len(p.alive) }

// EachAlive visits every live entity in unspecified order.
func (p *EntityPool) EachAlive(fn func(EntityID)) {
	for id := range p.alive {
		fn(id)
	}
}
