// Package pipeline validates pipeline graphs: it counts the supplied nodes
// and edges and reports whether the well-formed part of the graph is a DAG.
//
// Every function here is pure. Malformed input is never an error; it is
// reported as empty or ignored entries.
package pipeline

// Result is the report returned for every pipeline, well-formed or not.
// NumNodes and NumEdges count the raw entries; IsDAG describes the filtered graph.
type Result struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

// NodeRecord is either a ValidNode or an InvalidNode.
type NodeRecord interface {
	nodeRecord()
}

// ValidNode is a node entry carrying a string id.
type ValidNode struct {
	ID string
}

// InvalidNode is any node entry without a string id. It still counts toward NumNodes.
type InvalidNode struct {
	Raw any
}

func (ValidNode) nodeRecord()   {}
func (InvalidNode) nodeRecord() {}

// EdgeRecord is either a ValidEdge or an InvalidEdge.
type EdgeRecord interface {
	edgeRecord()
}

// ValidEdge is an edge entry with string source and target.
// Its endpoints are not guaranteed to name known nodes.
type ValidEdge struct {
	Source string
	Target string
}

// InvalidEdge is any edge entry whose source or target is missing or not a string.
type InvalidEdge struct {
	Raw any
}

func (ValidEdge) edgeRecord()   {}
func (InvalidEdge) edgeRecord() {}

// ClassifyNode inspects a raw node entry.
func ClassifyNode(raw any) NodeRecord {
	m, ok := raw.(map[string]any)
	if !ok {
		return InvalidNode{Raw: raw}
	}
	id, ok := m["id"].(string)
	if !ok {
		return InvalidNode{Raw: raw}
	}
	return ValidNode{ID: id}
}

// ClassifyEdge inspects a raw edge entry.
func ClassifyEdge(raw any) EdgeRecord {
	m, ok := raw.(map[string]any)
	if !ok {
		return InvalidEdge{Raw: raw}
	}
	source, ok := m["source"].(string)
	if !ok {
		return InvalidEdge{Raw: raw}
	}
	target, ok := m["target"].(string)
	if !ok {
		return InvalidEdge{Raw: raw}
	}
	return ValidEdge{Source: source, Target: target}
}

// Parse normalizes raw and validates the result. It never fails:
// malformed input is reported as zero counts and an acyclic graph.
func Parse(raw any) Result {
	nodes, edges := Normalize(raw)
	return Validate(nodes, edges)
}
