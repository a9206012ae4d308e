package pipeline

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		wantNodes int
		wantEdges int
	}{
		{name: "nil", raw: nil},
		{name: "empty string", raw: ""},
		{name: "malformed json", raw: `{"nodes": [`},
		{name: "json array", raw: `[{"id":"A"}]`},
		{name: "json scalar", raw: `42`},
		{name: "unsupported type", raw: 3.5},
		{name: "slice value", raw: []any{map[string]any{"id": "A"}}},
		{
			name:      "object",
			raw:       map[string]any{"nodes": []any{map[string]any{"id": "A"}}, "edges": []any{"x", "y"}},
			wantNodes: 1,
			wantEdges: 2,
		},
		{
			name:      "object nodes only",
			raw:       map[string]any{"nodes": []any{1, 2, 3}, "edges": "nope"},
			wantNodes: 3,
		},
		{
			name:      "object edges only",
			raw:       map[string]any{"nodes": map[string]any{}, "edges": []any{nil}},
			wantEdges: 1,
		},
		{
			name:      "json string",
			raw:       `{"nodes":[{"id":"A"},{"id":"B"}],"edges":[{"source":"A","target":"B"}]}`,
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name:      "json bytes",
			raw:       []byte(`{"nodes":[{"id":"A"}]}`),
			wantNodes: 1,
		},
		{
			name:      "json null nodes",
			raw:       `{"nodes":null,"edges":[1]}`,
			wantEdges: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, edges := Normalize(tt.raw)
			if nodes == nil || edges == nil {
				t.Fatalf("Normalize() returned nil slice: nodes=%v edges=%v", nodes, edges)
			}
			if len(nodes) != tt.wantNodes {
				t.Errorf("len(nodes) = %d, want %d", len(nodes), tt.wantNodes)
			}
			if len(edges) != tt.wantEdges {
				t.Errorf("len(edges) = %d, want %d", len(edges), tt.wantEdges)
			}
		})
	}
}

func TestNormalizeKeepsEntriesVerbatim(t *testing.T) {
	nodes := []any{"junk", map[string]any{"id": "A", "type": "llm"}}
	gotNodes, _ := Normalize(map[string]any{"nodes": nodes})

	if len(gotNodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(gotNodes))
	}
	if gotNodes[0] != "junk" {
		t.Errorf("nodes[0] = %v, want junk", gotNodes[0])
	}
}
