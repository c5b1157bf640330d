package world

// DepthCache keeps one live State per visited depth so a level is exactly as
// the player left it when they return. States are never serialized; the
// cache owns the real pools.
type DepthCache struct {
	levels map[int]*State
}

func NewDepthCache() *DepthCache {
	return &DepthCache{levels: make(map[int]*State)}
}

func (c *DepthCache) Get(depth int) (*State, bool) {
	s, ok := c.levels[depth]
	return s, ok
}

func (c *DepthCache) Put(depth int, s *State) {
	c.levels[depth] = s
}

func (c *DepthCache) Len() int {
	return len(c.levels)
}
