package usecase

import (
	"fmt"
	"math"
	"os"
	"strings"

	"polygon-offset/model"

	geojson "github.com/paulmach/go.geojson"
)

// 定数: 地球の平均半径 (メートル)
const EarthRadius = 6371000.0

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// 角度(ラジアン)を [0, 2π) に正規化する
func wrapTwoPi(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// 2つの緯度・経度の間の距離(メートル)を計算する関数
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)

	dlat := lat2Rad - lat1Rad
	dlon := degToRad(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// CalcBearing returns the initial great-circle bearing from one point to
// another, in radians clockwise from north, normalized to [0, 2π).
// Coincident points yield a bearing of 0.
func CalcBearing(from, to model.Point) float64 {
	lat1Rad := degToRad(from.Latitude)
	lat2Rad := degToRad(to.Latitude)
	dlon := degToRad(to.Longitude - from.Longitude)

	y := math.Sin(dlon) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dlon)

	return wrapTwoPi(math.Atan2(y, x))
}

// SignedArea returns the shoelace area of the ring in squared degrees,
// taking longitude as x and latitude as y. Positive means the vertices run
// counterclockwise.
func SignedArea(points []model.Point) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].Longitude*points[j].Latitude - points[j].Longitude*points[i].Latitude
	}
	return area / 2
}

func IsCounterclockwise(points []model.Point) bool {
	return SignedArea(points) > 0
}

// CalcAngleBisector returns the bearing pointing outward from the ring at
// curr, bisecting the exterior angle formed by the edges toward prev and
// next. counterclockwise tells which side of the ring is interior, so both
// convex and reflex (interior angle > 180°) vertices resolve to the outward
// side without a separate classification branch.
func CalcAngleBisector(prev, curr, next model.Point, counterclockwise bool) float64 {
	bearing1 := CalcBearing(curr, prev)
	bearing2 := CalcBearing(curr, next)

	// Sweeping clockwise from bearing1 to bearing2 covers the exterior angle
	// of a clockwise ring and the interior angle of a counterclockwise one.
	turn := wrapTwoPi(bearing2 - bearing1)
	bisector := wrapTwoPi(bearing1 + turn/2)
	if counterclockwise {
		bisector = wrapTwoPi(bisector + math.Pi)
	}
	return bisector
}

// 距離(メートル)と方位角(ラジアン)から新しい緯度経度を計算する
//
// The longitude of the result is not renormalized, so rings spanning the
// antimeridian or enclosing a pole come out wrong.
func CalcDestinationPoint(point model.Point, bearing, distance float64) model.Point {
	if distance == 0 {
		return point
	}

	d := distance / EarthRadius
	lat1Rad := degToRad(point.Latitude)
	lon1Rad := degToRad(point.Longitude)

	lat2Rad := math.Asin(math.Sin(lat1Rad)*math.Cos(d) +
		math.Cos(lat1Rad)*math.Sin(d)*math.Cos(bearing))

	lon2Rad := lon1Rad + math.Atan2(math.Sin(bearing)*math.Sin(d)*math.Cos(lat1Rad),
		math.Cos(d)-math.Sin(lat1Rad)*math.Sin(lat2Rad))

	return model.Point{
		Latitude:  radToDeg(lat2Rad),
		Longitude: radToDeg(lon2Rad),
	}
}

func PointsToPolygonWKT(points []model.Point) string {
	// ポリゴンが閉じているかチェックし、閉じていない場合は閉じる
	if len(points) > 1 && (points[0].Latitude != points[len(points)-1].Latitude || points[0].Longitude != points[len(points)-1].Longitude) {
		points = append(points, points[0])
	}

	var coords []string
	for _, point := range points {
		coords = append(coords, fmt.Sprintf("%f %f", point.Longitude, point.Latitude))
	}

	// POLYGON WKT形式に変換
	wkt := fmt.Sprintf("((%s))", strings.Join(coords, ", "))
	return wkt
}

func SaveGeoJSONToFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0644)
}

func MakeGeojsonPolygon(points []model.Point) *geojson.Feature {
	// ポリゴンが閉じているかチェックし、閉じていない場合は閉じる
	if len(points) > 1 && (points[0].Latitude != points[len(points)-1].Latitude || points[0].Longitude != points[len(points)-1].Longitude) {
		points = append(points, points[0])
	}

	geoJsonPoints := make([][]float64, 0, len(points))
	for _, coordinate := range points {
		geoJsonPoints = append(
			geoJsonPoints,
			[]float64{coordinate.Longitude, coordinate.Latitude},
		)
	}
	coordinates := [][][]float64{geoJsonPoints}
	polygon := geojson.NewPolygonFeature(coordinates)
	return polygon
}

func MakeGeojsonLineString(points []model.Point) *geojson.Feature {
	geojsonPoints := make([][]float64, 0, len(points))
	for _, coordinate := range points {
		geojsonPoints = append(
			geojsonPoints,
			[]float64{coordinate.Longitude, coordinate.Latitude},
		)
	}
	lineString := geojson.NewLineStringFeature(geojsonPoints)
	return lineString
}
