package terrain

import "testing"

func TestTriPriorityQueue_AscendingWithIDTiebreak(t *testing.T) {
	pq := newTriPriorityQueue()
	pq.push(5, 1.0)
	pq.push(2, 1.0)
	pq.push(1, 0.5)
	pq.push(9, 2.0)

	want := []int{1, 2, 5, 9}
	for _, wantTri := range want {
		gotTri, _ := pq.pop()
		if gotTri != wantTri {
			t.Fatalf("pop() = %d, want %d", gotTri, wantTri)
		}
	}
	if pq.Len() != 0 {
		t.Fatalf("queue not drained, Len()=%d", pq.Len())
	}
}

func TestWindOrder_AscendingPriority(t *testing.T) {
	priority := []float64{3, 1, 2, 1}
	order := make([]int, len(priority))
	for i := range order {
		order[i] = i
	}
	sortByPriorityThenID(order, priority)

	for i := 1; i < len(order); i++ {
		a, b := order[i-1], order[i]
		if priority[a] > priority[b] {
			t.Fatalf("order not ascending at %d: priority[%d]=%v > priority[%d]=%v", i, a, priority[a], b, priority[b])
		}
		if priority[a] == priority[b] && a > b {
			t.Fatalf("tie at %d not broken by ascending id: order=%v", i, order)
		}
	}
}
