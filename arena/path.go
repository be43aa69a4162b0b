// SPDX-License-Identifier: MIT
// Package: roadsearch/arena
//
// path.go - iterative reconstruction of routes from parent handles.

package arena

// Trail returns the nodes from the start node to h, in travel order.
// It walks parent handles until NoParent and reverses the result.
// Complexity: O(depth(h)).
func (s *Store) Trail(h Handle) ([]Node, error) {
	if _, err := s.Node(h); err != nil {
		return nil, err
	}

	var trail []Node
	for cur := h; cur != NoParent; cur = s.nodes[cur].Parent {
		trail = append(trail, s.nodes[cur])
	}
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail, nil
}

// Path returns the city names from the start node to h, in travel order.
func (s *Store) Path(h Handle) ([]string, error) {
	trail, err := s.Trail(h)
	if err != nil {
		return nil, err
	}
	path := make([]string, len(trail))
	for i, n := range trail {
		path[i] = n.City
	}

	return path, nil
}
