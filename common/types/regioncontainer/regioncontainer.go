package regioncontainer

import (
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bytearena/conevision/common/utils/number"
	"github.com/bytearena/conevision/common/utils/trigo"
	"github.com/bytearena/conevision/common/utils/vector"
	"github.com/bytearena/conevision/common/visibility2d"
)

type RegionContainer struct {
	Meta struct {
		Readme string `json:"readme"`
		Kind   string `json:"kind"`
		Date   string `json:"date"`
	} `json:"meta"`
	Data struct {
		Outline    RegionPolygon     `json:"outline"`
		Holes      []RegionPolygon   `json:"holes"`
		Viewpoints []RegionViewpoint `json:"viewpoints"`
	} `json:"data"`
}

type RegionPoint struct {
	X float64
	Y float64
}

func (p *RegionPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{
		number.ToFixed(p.X, 5),
		number.ToFixed(p.Y, 5),
	})
}

func (p *RegionPoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	p.X = floats[0]
	p.Y = floats[1]

	return nil
}

type RegionPolygon struct {
	Points []RegionPoint
}

func (p *RegionPolygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Points)
}

func (p *RegionPolygon) UnmarshalJSON(b []byte) error {
	var points []RegionPoint
	if err := json.Unmarshal(b, &points); err != nil {
		return err
	}

	p.Points = points

	return nil
}

type RegionViewpoint struct {
	Id        string      `json:"id"`
	Position  RegionPoint `json:"position"`
	Facing    float64     `json:"facing"`
	HalfAngle float64     `json:"halfangle"`
}

// Load decodes a region document, validating it against the embedded
// JSON schema first
func Load(data []byte) (*RegionContainer, error) {

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(regionSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, err
	}

	if !result.Valid() {
		msg := "invalid region document:"
		for _, desc := range result.Errors() {
			msg += "\n- " + desc.String()
		}
		return nil, visibility2d.NewInputError("%s", msg)
	}

	container := &RegionContainer{}
	if err := json.Unmarshal(data, container); err != nil {
		return nil, err
	}

	return container, nil
}

func LoadFile(path string) (*RegionContainer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(data)
}

// ToRegion converts the document into the core region type
func (container *RegionContainer) ToRegion() (*visibility2d.Region, error) {

	holes := make([][]vector.Vector2, 0, len(container.Data.Holes))
	for _, hole := range container.Data.Holes {
		holes = append(holes, polygonToVectors(hole))
	}

	return visibility2d.NewRegion(polygonToVectors(container.Data.Outline), holes...)
}

// Viewpoint finds a named viewpoint of the document
func (container *RegionContainer) Viewpoint(id string) (visibility2d.Viewpoint, bool) {
	for _, viewpoint := range container.Data.Viewpoints {
		if viewpoint.Id == id {
			return viewpoint.ToViewpoint(), true
		}
	}

	return visibility2d.Viewpoint{}, false
}

func (rv RegionViewpoint) ToViewpoint() visibility2d.Viewpoint {
	return visibility2d.MakeViewpoint(
		vector.MakeVector2(rv.Position.X, rv.Position.Y),
		rv.Facing,
		rv.HalfAngle,
	)
}

func polygonToVectors(polygon RegionPolygon) []vector.Vector2 {
	points := make([]vector.Vector2, 0, len(polygon.Points))
	for _, point := range polygon.Points {
		points = append(points, vector.MakeVector2(point.X, point.Y))
	}

	return points
}

// CheckCrossings verifies that no two boundary edges of the document
// genuinely cross; the sweep assumes this and fails hard on violations,
// so loaders may want to reject such documents early
func (container *RegionContainer) CheckCrossings() error {

	loops := make([][]vector.Vector2, 0, 1+len(container.Data.Holes))
	loops = append(loops, polygonToVectors(container.Data.Outline))
	for _, hole := range container.Data.Holes {
		loops = append(loops, polygonToVectors(hole))
	}

	edges := make([][2]vector.Vector2, 0)
	for _, loop := range loops {
		for i, point := range loop {
			next := loop[(i+1)%len(loop)]
			edges = append(edges, [2]vector.Vector2{point, next})
		}
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if trigo.SegmentsCross(edges[i][0], edges[i][1], edges[j][0], edges[j][1]) {
				return visibility2d.NewGeometryError(
					"boundary edges cross: (%s %s) and (%s %s)",
					edges[i][0].String(), edges[i][1].String(),
					edges[j][0].String(), edges[j][1].String(),
				)
			}
		}
	}

	return nil
}
