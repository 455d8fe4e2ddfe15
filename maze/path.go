package maze

// neighbors are the single-step moves between adjacent grid positions.
var neighbors = [4]Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

// Path returns the route from one open position to another, both ends included.
// It returns nil when either end is closed or the two are not connected.
// In a perfect maze the route is unique.
func (d *Description) Path(from, to Point) []Point {
	if !d.IsOpen(from) || !d.IsOpen(to) {
		return nil
	}

	parent := map[Point]Point{from: from}
	queue := []Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, n := range neighbors {
			next := cur.Add(n)
			if _, seen := parent[next]; seen || !d.IsOpen(next) {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	if _, reached := parent[to]; !reached {
		return nil
	}

	var path []Point
	for p := to; p != from; p = parent[p] {
		path = append(path, p)
	}
	path = append(path, from)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solution returns the route from the entry to the first exit.
func (d *Description) Solution() []Point {
	return d.Path(d.entry, d.exits[0])
}
