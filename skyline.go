package texatlas

import "fmt"

// Node is one horizontal span of the skyline: the columns [X, X+Width)
// are occupied up to row Y.
type Node struct {
	X     int
	Y     int
	Width int
}

// String returns a string representation of the node.
func (n Node) String() string {
	return fmt.Sprintf("Node(x=%d y=%d w=%d)", n.X, n.Y, n.Width)
}

// fit returns the lowest y at which a width × height rectangle can sit with
// its left edge at nodes[index].X, or false if it would cross the border.
func (a *Atlas) fit(index, width, height int) (int, bool) {
	n := a.nodes[index]
	if n.X+width > a.width-1 {
		return 0, false
	}

	y := n.Y
	left := width
	for i := index; left > 0; i++ {
		if i >= len(a.nodes) {
			return 0, false
		}
		span := a.nodes[i]
		if span.Y > y {
			y = span.Y
		}
		if y+height > a.height-1 {
			return 0, false
		}
		left -= span.Width
	}
	return y, true
}

// insert places n at index and trims the spans it now covers.
func (a *Atlas) insert(index int, n Node) {
	a.nodes = append(a.nodes, Node{})
	copy(a.nodes[index+1:], a.nodes[index:])
	a.nodes[index] = n

	for i := index + 1; i < len(a.nodes); i++ {
		prev := a.nodes[i-1]
		cur := &a.nodes[i]
		end := prev.X + prev.Width
		if cur.X >= end {
			break
		}
		shrink := end - cur.X
		cur.X += shrink
		cur.Width -= shrink
		if cur.Width > 0 {
			break
		}
		a.nodes = append(a.nodes[:i], a.nodes[i+1:]...)
		i--
	}
}

// merge joins neighbouring spans that share the same height.
func (a *Atlas) merge() {
	if len(a.nodes) == 0 {
		return
	}
	for i := 0; i+1 < len(a.nodes); {
		if a.nodes[i].Y == a.nodes[i+1].Y {
			a.nodes[i].Width += a.nodes[i+1].Width
			a.nodes = append(a.nodes[:i+1], a.nodes[i+2:]...)
			continue
		}
		i++
	}
}
