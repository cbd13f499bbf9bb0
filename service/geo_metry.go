package service

import (
	"log"

	"polygon-offset/model"
	"polygon-offset/usecase"

	"github.com/twpayne/go-geos"
)

// CalcEnlargedPolygon returns a fresh vertex sequence in which every vertex
// of the ring has been moved distance meters along the outward bisector of
// its two adjacent edges. The result has the same length and order as the
// input. Fewer than 3 vertices yields nil. A negative distance moves the
// vertices inward instead; self-intersection of the shrunk ring is not
// repaired.
func CalcEnlargedPolygon(vertices []model.Point, distance float64) []model.Point {
	if len(vertices) < 3 {
		return nil
	}

	n := len(vertices)
	enlarged := make([]model.Point, 0, n)

	if distance == 0 {
		// 頂点ごとの計算を省略して入力をそのまま複製する
		enlarged = append(enlarged, vertices...)
		return enlarged
	}

	// 巻き方向は符号付き面積から一度だけ判定する
	counterclockwise := usecase.IsCounterclockwise(vertices)

	for i := 0; i < n; i++ {
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		bisector := usecase.CalcAngleBisector(prev, vertices[i], next, counterclockwise)
		enlarged = append(enlarged, usecase.CalcDestinationPoint(vertices[i], bisector, distance))
	}

	return enlarged
}

// Enlarge computes the offset ring of poly and stores it in
// poly.EnlargedVertices, replacing whatever an earlier call left there.
func Enlarge(poly *model.Polygon, distance float64) {
	poly.EnlargedVertices = CalcEnlargedPolygon(poly.Vertices, distance)
}

// IsSimplePolygon reports whether the ring is free of self-intersections.
// Offsetting can fold a ring onto itself near sharp reflex vertices or under
// strong contraction; this only detects that, it does not repair it.
func IsSimplePolygon(points []model.Point) bool {
	wkt := "POLYGON" + usecase.PointsToPolygonWKT(points)
	geom, err := geos.NewGeomFromWKT(wkt)
	if err != nil {
		log.Fatalf("IsSimplePolygon Error: %v, wkt: %v", err, wkt)
	}
	return geom.IsValid()
}
