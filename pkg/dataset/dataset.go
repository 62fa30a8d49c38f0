package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/citynav/pkg"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/geo"
	"github.com/lintang-b-s/citynav/pkg/util"
	"gopkg.in/yaml.v3"
)

//go:embed bulgaria.yaml
var bulgariaNetwork []byte

type cityRecord struct {
	Name string  `yaml:"name" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"min=-90,max=90"`
	Lon  float64 `yaml:"lon" validate:"min=-180,max=180"`
}

type roadRecord struct {
	Origin      string  `yaml:"origin" validate:"required"`
	Destination string  `yaml:"destination" validate:"required"`
	Distance    float64 `yaml:"distance" validate:"gte=0"`
	MaxSpeed    float64 `yaml:"max_speed" validate:"gt=0"`
}

type network struct {
	Cities []cityRecord `yaml:"cities" validate:"required,min=1,dive"`
	Roads  []roadRecord `yaml:"roads" validate:"dive"`
}

// Network. graph construction input read from a network file
type Network struct {
	Cities []da.CitySpec
	Roads  []da.RoadSpec
}

// NewProjection. the canvas projection of the map view, centered vertically on a canvas of canvasHeight.
func NewProjection(canvasHeight float64) geo.Projection {
	return geo.NewProjection(pkg.CENTER_LATITUDE, pkg.CENTER_LONGITUDE, 0, canvasHeight/2, pkg.SCALE_FACTOR)
}

// Load. parses a yaml network and projects every city to planar coordinates.
func Load(r io.Reader, projection geo.Projection) (*Network, error) {
	var nw network
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&nw); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "failed to parse network file: %v", err)
	}

	validate := validator.New()
	if err := validate.Struct(nw); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid network file: %v", err)
	}

	result := &Network{
		Cities: make([]da.CitySpec, 0, len(nw.Cities)),
		Roads:  make([]da.RoadSpec, 0, len(nw.Roads)),
	}

	for _, c := range nw.Cities {
		coord := geo.NewCoordinate(c.Lat, c.Lon)
		x, y := projection.ToCanvas(c.Lat, c.Lon)
		result.Cities = append(result.Cities, da.CitySpec{
			Name:       c.Name,
			X:          x,
			Y:          y,
			Coordinate: &coord,
		})
	}

	for _, r := range nw.Roads {
		result.Roads = append(result.Roads, da.RoadSpec{
			Origin:      r.Origin,
			Destination: r.Destination,
			Distance:    r.Distance,
			MaxSpeed:    r.MaxSpeed,
		})
	}

	return result, nil
}

// LoadFile. Load from a file path
func LoadFile(path string, projection geo.Projection) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "could not open network file %s", path)
	}
	defer f.Close()

	nw, err := Load(f, projection)
	if err != nil {
		return nil, fmt.Errorf("network file %s: %w", path, err)
	}
	return nw, nil
}

// Default. the embedded twelve city network
func Default(projection geo.Projection) (*Network, error) {
	return Load(bytes.NewReader(bulgariaNetwork), projection)
}
