package mesh

// Circulators are allocation-free: out is cleared and refilled, never
// reallocated unless its capacity is too small. Callers that want a fresh
// slice each call should pass nil and keep the returned slice.

// SAroundT returns the 3 sides of triangle t.
func (m *DualMesh) SAroundT(out []int, t int) []int {
	out = out[:0]
	for i := 0; i < 3; i++ {
		out = append(out, 3*t+i)
	}
	return out
}

// RAroundT returns the 3 regions at the corners of triangle t.
func (m *DualMesh) RAroundT(out []int, t int) []int {
	out = out[:0]
	for i := 0; i < 3; i++ {
		out = append(out, m.Triangles[3*t+i])
	}
	return out
}

// TAroundT returns the 3 triangles sharing a side with t (ghost triangles
// included).
func (m *DualMesh) TAroundT(out []int, t int) []int {
	out = out[:0]
	for i := 0; i < 3; i++ {
		out = append(out, m.TOuter(3*t+i))
	}
	return out
}

// circulateR walks the sides around region r starting at sOfR[r], calling
// emit(incoming) for each step. This is the shared circulation walk every
// *AroundR circulator builds on.
func (m *DualMesh) circulateR(r int, emit func(incoming int)) {
	s0 := m.sOfR[r]
	if s0 == -1 {
		return
	}
	incoming := s0
	for {
		emit(incoming)
		outgoing := SNext(incoming)
		incoming = m.Halfedges[outgoing]
		if incoming == -1 || incoming == s0 {
			return
		}
	}
}

// SAroundR returns, for each step of the circulation around region r, the
// outgoing-context side starting at r (halfedges[incoming]).
func (m *DualMesh) SAroundR(out []int, r int) []int {
	out = out[:0]
	m.circulateR(r, func(incoming int) {
		out = append(out, m.Halfedges[incoming])
	})
	return out
}

// RAroundR returns the regions adjacent to r, in circulation order.
func (m *DualMesh) RAroundR(out []int, r int) []int {
	out = out[:0]
	m.circulateR(r, func(incoming int) {
		out = append(out, m.RBegin(incoming))
	})
	return out
}

// TAroundR returns the triangles touching region r, in circulation order.
func (m *DualMesh) TAroundR(out []int, r int) []int {
	out = out[:0]
	m.circulateR(r, func(incoming int) {
		out = append(out, TOf(incoming))
	})
	return out
}
