package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"polygon-offset/model"
	"polygon-offset/service"
	"polygon-offset/usecase"

	geojson "github.com/paulmach/go.geojson"
	"github.com/peterbourgon/ff"
)

func main() {
	fs := flag.NewFlagSet("polygon-offset", flag.ExitOnError)
	var (
		distance = fs.Float64("distance", 30000, "offset distance in meters (negative shrinks)")
		output   = fs.String("output", "enlarged.geojson", "output geojson file")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	// 凹型(L字)のデモ用ポリゴン
	polygon := &model.Polygon{
		Vertices: []model.Point{
			{Latitude: 31.0, Longitude: 141.0},
			{Latitude: 32.0, Longitude: 141.0},
			{Latitude: 32.0, Longitude: 141.5},
			{Latitude: 31.5, Longitude: 141.5},
			{Latitude: 31.5, Longitude: 142.0},
			{Latitude: 31.0, Longitude: 142.0},
		},
	}

	service.Enlarge(polygon, *distance)
	if polygon.EnlargedVertices == nil {
		fmt.Println("ポリゴンの頂点が足りません")
		return
	}

	if !service.IsSimplePolygon(polygon.EnlargedVertices) {
		log.Printf("enlarged polygon self-intersects (distance %.0fm), writing it anyway", *distance)
	}

	featureCollection := geojson.NewFeatureCollection()

	original := usecase.MakeGeojsonPolygon(polygon.Vertices)
	original.SetProperty("kind", "original")
	featureCollection.AddFeature(original)

	enlarged := usecase.MakeGeojsonPolygon(polygon.EnlargedVertices)
	enlarged.SetProperty("kind", "enlarged")
	featureCollection.AddFeature(enlarged)

	// 各頂点の変位を線で表す
	for i, vertex := range polygon.Vertices {
		line := usecase.MakeGeojsonLineString([]model.Point{vertex, polygon.EnlargedVertices[i]})
		line.SetProperty("kind", "displacement")
		featureCollection.AddFeature(line)
	}

	data, err := json.MarshalIndent(featureCollection, "", "  ")
	if err != nil {
		fmt.Println("GeoJSONの書き出しに失敗しました:", err)
		return
	}

	if err := usecase.SaveGeoJSONToFile(*output, data); err != nil {
		fmt.Println("ファイル作成に失敗しました:", err)
		return
	}

	fmt.Printf("GeoJSONファイル '%s' を作成しました\n", *output)
}
