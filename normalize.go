package pipeline

import "encoding/json"

// Normalize turns a raw pipeline payload into its node and edge sequences.
//
// raw may be an already decoded object, a JSON document as string or
// []byte, or nil. Decoded values must have the shapes encoding/json
// produces: objects as map[string]any and arrays as []any. Other Go types,
// such as []map[string]any, are not recognised and count as absent. The nodes and edges keys are taken
// independently: a missing or non-array value yields an empty sequence for
// that key only. Anything unusable yields two empty sequences. The returned
// slices are never nil.
func Normalize(raw any) (nodes, edges []any) {
	switch v := raw.(type) {
	case map[string]any:
		return fromObject(v)
	case string:
		return decode([]byte(v))
	case []byte:
		return decode(v)
	default:
		return []any{}, []any{}
	}
}

func decode(data []byte) ([]any, []any) {
	if len(data) == 0 {
		return []any{}, []any{}
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return []any{}, []any{}
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return []any{}, []any{}
	}
	return fromObject(obj)
}

func fromObject(obj map[string]any) ([]any, []any) {
	nodes, ok := obj["nodes"].([]any)
	if !ok || nodes == nil {
		nodes = []any{}
	}
	edges, ok := obj["edges"].([]any)
	if !ok || edges == nil {
		edges = []any{}
	}
	return nodes, edges
}
