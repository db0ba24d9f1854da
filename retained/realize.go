package retained

// ItemTemplate turns data items into nodes for virtualized containers.
//
// With New and Bind set, nodes are recycled: New builds a fresh node (its
// properties are snapshotted as defaults), Bind fills it for an item.
// Before a recycled node is bound again it is reset to those defaults, so
// an override applied for one item never leaks into another.
//
// With only Build set, every realization builds a fresh node and released
// nodes are dropped.
type ItemTemplate struct {
	New   func() *Node
	Bind  func(n *Node, item any, index int)
	Build func(item any, index int) *Node
}

// TemplateFunc returns a non-recycling template.
func TemplateFunc(build func(item any, index int) *Node) ItemTemplate {
	return ItemTemplate{Build: build}
}

func (t ItemTemplate) empty() bool {
	return t.Build == nil && t.New == nil
}

func (t ItemTemplate) recycles() bool {
	return t.Build == nil && t.New != nil
}

type realized struct {
	node  *Node
	item  any
	index int
	seen  bool
}

// Realizer keeps the set of live item nodes for one virtualized container.
//
// Each layout pass calls Begin, then Realize for every index in the window
// in ascending order, then End, which detaches and recycles whatever was
// not realized this pass and makes the container's children exactly the
// realized nodes in realization order.
type Realizer struct {
	template ItemTemplate
	active   map[any]*realized
	order    []*Node
	pool     recyclePool

	created int
}

// NewRealizer creates a realizer keeping at most poolLimit recycled nodes.
func NewRealizer(template ItemTemplate, poolLimit int) *Realizer {
	return &Realizer{
		template: template,
		active:   make(map[any]*realized),
		pool:     recyclePool{limit: poolLimit},
	}
}

// Retain releases every live node whose key keep rejects. Containers call it
// before Begin with the keys of the new window, so nodes leaving the window
// are back in the pool before nodes entering it are built.
func (r *Realizer) Retain(keep func(key any) bool) {
	for key, e := range r.active {
		if !keep(key) {
			r.release(e.node)
			delete(r.active, key)
		}
	}
}

// Begin starts a realization pass.
func (r *Realizer) Begin() {
	for _, e := range r.active {
		e.seen = false
	}
	r.order = acquireNodeSlice(len(r.active))
}

// Realize returns the node for key, binding item at index. A node already
// live for key is reused as-is unless the index changed. It returns nil
// when the template can build nothing.
func (r *Realizer) Realize(key, item any, index int) *Node {
	if r.template.empty() {
		return nil
	}
	if e, ok := r.active[key]; ok {
		if e.seen {
			return e.node
		}
		if e.index != index {
			r.rebind(e, item, index)
		}
		e.seen = true
		r.order = append(r.order, e.node)
		return e.node
	}

	e := &realized{node: r.obtain(item, index), item: item, index: index, seen: true}
	r.active[key] = e
	r.order = append(r.order, e.node)
	return e.node
}

func (r *Realizer) obtain(item any, index int) *Node {
	if !r.template.recycles() {
		r.created++
		return r.template.Build(item, index)
	}

	n := r.pool.get()
	if n == nil {
		n = r.template.New()
		n.SnapshotDefaults()
		r.created++
	}
	if r.template.Bind != nil {
		r.template.Bind(n, item, index)
	}
	return n
}

func (r *Realizer) rebind(e *realized, item any, index int) {
	e.item, e.index = item, index
	if !r.template.recycles() {
		e.node.parent = nil
		e.node = r.obtain(item, index)
		return
	}
	e.node.ResetToDefaults()
	if r.template.Bind != nil {
		r.template.Bind(e.node, item, index)
	}
}

// Invalidate forces the node for key to be rebound on its next Realize.
func (r *Realizer) Invalidate(key any) {
	if e, ok := r.active[key]; ok {
		e.index = -1
	}
}

// End finishes a pass: unrealized nodes are released and parent's children
// become the realized nodes in realization order.
func (r *Realizer) End(parent *Node) {
	for key, e := range r.active {
		if !e.seen {
			r.release(e.node)
			delete(r.active, key)
		}
	}

	children := make([]*Node, len(r.order))
	copy(children, r.order)
	for _, c := range children {
		c.parent = parent
	}
	parent.children = children
	releaseNodeSlice(r.order)
	r.order = nil
}

func (r *Realizer) release(n *Node) {
	n.parent = nil
	if r.template.recycles() {
		r.pool.put(n)
	}
}

// Clear releases every live node and detaches them from parent.
func (r *Realizer) Clear(parent *Node) {
	for key, e := range r.active {
		r.release(e.node)
		delete(r.active, key)
	}
	if parent != nil {
		parent.children = nil
	}
	debugLog("[realize] cleared, pool=%d", r.pool.len())
}

// Release clears the live nodes and drops the recycle pool, for a
// container that is being torn down.
func (r *Realizer) Release(parent *Node) {
	r.Clear(parent)
	r.pool.clear()
}

// Len returns the number of live nodes.
func (r *Realizer) Len() int { return len(r.active) }

// Node returns the live node for key.
func (r *Realizer) Node(key any) (*Node, bool) {
	e, ok := r.active[key]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Index returns the index the node for key was last bound to.
func (r *Realizer) Index(key any) (int, bool) {
	e, ok := r.active[key]
	if !ok {
		return 0, false
	}
	return e.index, true
}

// PoolLen returns the number of recycled nodes waiting for reuse.
func (r *Realizer) PoolLen() int { return r.pool.len() }

// Created returns how many nodes the template has built in total.
func (r *Realizer) Created() int { return r.created }
