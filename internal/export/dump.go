package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/heartcloud/internal/heart"
)

type PointData struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Color string  `json:"color"`
}

type CloudData struct {
	Count    int         `json:"count"`
	Scale    float64     `json:"scale"`
	Seed     int64       `json:"seed"`
	Attempts int         `json:"attempts"`
	Points   []PointData `json:"points"`
}

func WriteJSON(w io.Writer, res *heart.SampleResult, seed int64) error {
	cloud := res.Cloud
	data := CloudData{
		Count:    cloud.Len(),
		Scale:    cloud.Scale(),
		Seed:     seed,
		Attempts: res.Attempts,
		Points:   make([]PointData, cloud.Len()),
	}
	for i, p := range cloud.Points() {
		data.Points[i] = PointData{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z, Color: p.Color.Clamped().Hex()}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per point: x, y, z, r, g, b.
func WriteCSV(w io.Writer, cloud *heart.PointCloud) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z", "r", "g", "b"}); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, p := range cloud.Points() {
		row := []string{f(p.Position.X), f(p.Position.Y), f(p.Position.Z), f(p.Color.R), f(p.Color.G), f(p.Color.B)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
