// Package render draws the dual mesh and terrain layers to a raster image
// and exports them as GeoJSON, the way tiles.go rasterizes map layers with
// draw2dimg/colorgrad and exports vector layers with go.geojson -- here
// driven by iterating solid regions/sides instead of lat/lon polygons.
package render

import (
	"image"
	"image/color"

	"github.com/Flokey82/go_gens/utils"
	geojson "github.com/paulmach/go.geojson"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/terrain"
)

// minMax is github.com/Flokey82/go_gens/utils' MinMax, the exact call
// various.go makes (`var minMax = utils.MinMax[float64]`) to find the
// elevation range it normalizes its color gradient against.
var minMax = utils.MinMax[float64]

// Options controls what DrawPNG draws, mirroring the boolean toggles
// GetTile takes (drawRivers, drawLakes, drawShadows, ...), trimmed to the
// layers this module actually produces.
type Options struct {
	Width, Height int
	// OffsetX/OffsetY/Scale map mesh coordinates to pixel coordinates:
	// px = (x-OffsetX)*Scale, py = (y-OffsetY)*Scale.
	OffsetX, OffsetY, Scale float64
	DrawRivers              bool
	MinRiverFlow            float64
}

// elevationGradient builds the same 5-stop blue-to-red gradient GetTile's
// default branch builds with colorgrad.NewGradient (tiles.go), used here to
// color every region polygon by its elevation.
func elevationGradient() colorgrad.Gradient {
	g, err := colorgrad.NewGradient().
		Colors(
			color.RGBA{0, 0, 255, 255},
			color.RGBA{0, 255, 255, 255},
			color.RGBA{0, 255, 0, 255},
			color.RGBA{255, 255, 0, 255},
			color.RGBA{255, 0, 0, 255},
		).
		Build()
	if err != nil {
		// The stop list above is fixed and always valid; a build failure
		// here would be a programming error, not a runtime condition.
		panic(err)
	}
	return g
}

// DrawPNG rasterizes every solid region as a polygon colored by elevation,
// and, if opts.DrawRivers, every river segment as a blue line scaled by
// width, the way GetTile loops over regions/rivers with a draw2dimg
// graphic context (tiles.go).
func DrawPNG(m *mesh.DualMesh, tm *terrain.Map, opts Options) image.Image {
	dest := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	gc := draw2dimg.NewGraphicContext(dest)

	grad := elevationGradient()
	minElev, maxElev := minMax(tm.ElevationR)

	var outT []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		outT = m.TAroundR(outT, r)
		if len(outT) < 3 {
			continue
		}
		val := 0.0
		if maxElev > minElev {
			val = (tm.ElevationR[r] - minElev) / (maxElev - minElev)
		}
		col := grad.At(val)

		px, py := opts.project(m.XOfT(outT[0]), m.YOfT(outT[0]))
		gc.SetStrokeColor(col)
		gc.SetFillColor(col)
		gc.BeginPath()
		gc.MoveTo(px, py)
		for _, t := range outT[1:] {
			px, py = opts.project(m.XOfT(t), m.YOfT(t))
			gc.LineTo(px, py)
		}
		gc.Close()
		gc.FillStroke()
	}

	if opts.DrawRivers {
		gc.SetStrokeColor(color.RGBA{0, 80, 200, 255})
		for _, seg := range tm.Rivers(opts.MinRiverFlow) {
			gc.SetLineWidth(seg.Width)
			x1, y1 := opts.project(seg.X1, seg.Y1)
			x2, y2 := opts.project(seg.X2, seg.Y2)
			gc.BeginPath()
			gc.MoveTo(x1, y1)
			gc.LineTo(x2, y2)
			gc.Stroke()
		}
	}

	return dest
}

func (o Options) project(x, y float64) (float64, float64) {
	return (x - o.OffsetX) * o.Scale, (y - o.OffsetY) * o.Scale
}

// ExportGeoJSON builds a FeatureCollection with one Polygon feature per
// solid region (elevation/rainfall as properties) and, if drawRivers, one
// LineString feature per river segment -- the planar analogue of
// GetGeoJSONBorders (tiles.go), which emits geojson.Feature geometry built
// from lat/lon polylines; this module has no lat/lon, so coordinates are
// the mesh's own planar (x, y) pairs, which GeoJSON's coordinate member
// accepts without a CRS.
func ExportGeoJSON(m *mesh.DualMesh, tm *terrain.Map, drawRivers bool, minRiverFlow float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var outT []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		outT = m.TAroundR(outT, r)
		if len(outT) < 3 {
			continue
		}
		ring := make([][]float64, 0, len(outT)+1)
		for _, t := range outT {
			ring = append(ring, []float64{m.XOfT(t), m.YOfT(t)})
		}
		ring = append(ring, ring[0])

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("region", r)
		f.SetProperty("elevation", tm.ElevationR[r])
		f.SetProperty("rainfall", tm.RainfallR[r])
		fc.AddFeature(f)
	}

	if drawRivers {
		for _, seg := range tm.Rivers(minRiverFlow) {
			f := geojson.NewLineStringFeature([][]float64{
				{seg.X1, seg.Y1},
				{seg.X2, seg.Y2},
			})
			f.SetProperty("width", seg.Width)
			fc.AddFeature(f)
		}
	}

	return fc
}
