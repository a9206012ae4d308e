package pipeline

// Validate reports the raw counts of nodes and edges and whether the graph
// built from the well-formed entries is acyclic.
//
// Only nodes with a string id become vertices (duplicates collapse). Only
// edges with string endpoints that both name a vertex are wired. A self-loop
// marks the graph cyclic and stops edge processing.
func Validate(nodes, edges []any) Result {
	res := Result{NumNodes: len(nodes), NumEdges: len(edges)}

	g := newGraph(nodes)
	if !g.wire(edges) {
		return res
	}
	res.IsDAG = g.acyclic()
	return res
}

// graph is the working graph of a single Validate call.
type graph struct {
	order []string // vertices in first-seen order
	adj   map[string][]string
	indeg map[string]int
}

func newGraph(nodes []any) *graph {
	g := &graph{
		adj:   make(map[string][]string),
		indeg: make(map[string]int),
	}
	for _, raw := range nodes {
		n, ok := ClassifyNode(raw).(ValidNode)
		if !ok {
			continue
		}
		if _, seen := g.indeg[n.ID]; seen {
			continue
		}
		g.order = append(g.order, n.ID)
		g.adj[n.ID] = nil
		g.indeg[n.ID] = 0
	}
	return g
}

func (g *graph) has(id string) bool {
	_, ok := g.indeg[id]
	return ok
}

// wire adds the usable edges in input order. It returns false as soon as
// a self-loop is found.
func (g *graph) wire(edges []any) bool {
	for _, raw := range edges {
		e, ok := ClassifyEdge(raw).(ValidEdge)
		if !ok {
			continue
		}
		if !g.has(e.Source) || !g.has(e.Target) {
			continue
		}
		if e.Source == e.Target {
			return false
		}
		g.adj[e.Source] = append(g.adj[e.Source], e.Target)
		g.indeg[e.Target]++
	}
	return true
}

// acyclic runs Kahn's algorithm. It consumes the in-degree counts.
func (g *graph) acyclic() bool {
	q := newQueue(len(g.order))
	for _, id := range g.order {
		if g.indeg[id] == 0 {
			q.Push(id)
		}
	}

	visited := 0
	for q.Len() > 0 {
		u, _ := q.Pop()
		visited++
		for _, v := range g.adj[u] {
			g.indeg[v]--
			if g.indeg[v] == 0 {
				q.Push(v)
			}
		}
	}
	return visited == len(g.order)
}
