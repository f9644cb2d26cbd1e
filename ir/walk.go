package ir

// Walk visits n and its descendants depth-first, in source order. If fn
// returns false the node's children are skipped. ComponentRef nodes are
// leaves: Walk never follows them into the registry.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch t := n.(type) {
	case ArrayOf:
		Walk(t.Elem, fn)
	case ObjectOf:
		for _, f := range t.Fields {
			Walk(f.Type, fn)
		}
	case OneOf:
		for _, v := range t.Variants {
			Walk(v.Type, fn)
		}
	}
}

// Refs returns the distinct component names referenced anywhere inside n,
// in first-seen order.
func Refs(n Node) []string {
	seen := make(map[string]bool)
	var out []string
	Walk(n, func(n Node) bool {
		if r, ok := n.(ComponentRef); ok && !seen[r.Name] {
			seen[r.Name] = true
			out = append(out, r.Name)
		}
		return true
	})
	return out
}
