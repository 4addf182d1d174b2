package detection

import "image"

// CirclePoints rasterizes a circle of the given integer radius around
// (cx, cy), returning the lattice points in clockwise order starting from the
// leftmost point (cx-r, cy).
//
// One first octant is scanned directly: starting at (-r, 0), the point steps
// diagonally and is corrected back inward whenever its squared distance falls
// short of r². The remaining seven octants are reflections of that scan. The
// four cardinal points and each octant pair's shared diagonal point (|x| = |y|)
// are inserted exactly once, so no point is emitted twice.
//
// Every emitted point lies at distance >= r from the center, which is what the
// disk boundary test relies on.
func CirclePoints(cx, cy, r int) []image.Point {
	var octant []image.Point

	p := image.Pt(-r, 0)

	// set if the point with |x| == |y| belongs to the circle
	var diagonal *image.Point

	for -p.X > p.Y {
		p.X++
		p.Y++
		if p.X*p.X+p.Y*p.Y < r*r {
			p.X--
		}
		if abs(p.X) == abs(p.Y) {
			q := p
			diagonal = &q
		} else {
			octant = append(octant, p)
		}
	}

	capacity := 4 + 8*len(octant)
	if diagonal != nil {
		capacity += 4
	}
	points := make([]image.Point, 0, capacity)
	add := func(x, y int) {
		points = append(points, image.Pt(cx+x, cy+y))
	}

	// Octant filling order (right-handed coordinates, clockwise from (-r, 0)):
	//
	//               y
	//               ^
	//         oct2  |  oct3
	//        +      ^       +
	//     oct1      |     oct4
	// ----+---------0---------+--> x
	//     oct8      |     oct5
	//        +      |       +
	//         oct7  |  oct6

	add(-r, 0)
	for _, q := range octant { // octant 1
		add(q.X, q.Y)
	}
	if diagonal != nil {
		add(diagonal.X, diagonal.Y)
	}
	for i := len(octant) - 1; i >= 0; i-- { // octant 2
		add(-octant[i].Y, -octant[i].X)
	}
	add(0, r)
	for _, q := range octant { // octant 3
		add(q.Y, -q.X)
	}
	if diagonal != nil {
		add(-diagonal.X, diagonal.Y)
	}
	for i := len(octant) - 1; i >= 0; i-- { // octant 4
		add(-octant[i].X, octant[i].Y)
	}
	add(r, 0)
	for _, q := range octant { // octant 5
		add(-q.X, -q.Y)
	}
	if diagonal != nil {
		add(-diagonal.X, -diagonal.Y)
	}
	for i := len(octant) - 1; i >= 0; i-- { // octant 6
		add(octant[i].Y, octant[i].X)
	}
	add(0, -r)
	for _, q := range octant { // octant 7
		add(-q.Y, q.X)
	}
	if diagonal != nil {
		add(diagonal.X, -diagonal.Y)
	}
	for i := len(octant) - 1; i >= 0; i-- { // octant 8
		add(octant[i].X, -octant[i].Y)
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
