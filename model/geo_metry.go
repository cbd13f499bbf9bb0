package model

type Point struct {
	Latitude  float64
	Longitude float64
}

// Polygon is an implicitly closed ring: the last vertex connects back to the
// first, without a duplicate closing vertex. EnlargedVertices holds the
// result of the most recent offset computation, index-aligned with Vertices.
// It stays nil until an offset is computed.
type Polygon struct {
	Vertices         []Point
	EnlargedVertices []Point
}
