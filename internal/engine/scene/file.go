package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for scene files with an unrecognized extension.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// File is the on-disk description of a scene.
type File struct {
	Camera CameraDef  `yaml:"camera" toml:"camera"`
	Light  [3]float32 `yaml:"light" toml:"light"`
	Nodes  []NodeDef  `yaml:"nodes" toml:"nodes"`
}

// CameraDef selects and places the camera.
//
//	transform: Position, Scale, Rotation
//	orbit:     Center, Distance, Pitch, Yaw
//	follow:    Target, Distance, Pitch, Yaw
type CameraDef struct {
	Kind     string       `yaml:"kind" toml:"kind"`
	Position [3]float32   `yaml:"position,omitempty" toml:"position,omitempty"`
	Scale    *[3]float32  `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotation *RotationDef `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	Center   [3]float32   `yaml:"center,omitempty" toml:"center,omitempty"`
	Distance float32      `yaml:"distance,omitempty" toml:"distance,omitempty"`
	Pitch    float32      `yaml:"pitch,omitempty" toml:"pitch,omitempty"`
	Yaw      float32      `yaml:"yaw,omitempty" toml:"yaw,omitempty"`
	Target   string       `yaml:"target,omitempty" toml:"target,omitempty"`
}

// RotationDef is either an axis and angle in radians or a raw
// quaternion [r, i, j, k].
type RotationDef struct {
	Axis  [3]float32  `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Angle float32     `yaml:"angle,omitempty" toml:"angle,omitempty"`
	Quat  *[4]float32 `yaml:"quat,omitempty" toml:"quat,omitempty"`
}

// NodeDef describes one node. Scale defaults to one when omitted.
type NodeDef struct {
	Name      string        `yaml:"name" toml:"name"`
	Parent    string        `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Position  [3]float32    `yaml:"position,omitempty" toml:"position,omitempty"`
	Scale     *[3]float32   `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotation  *RotationDef  `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	Spin      [3]float32    `yaml:"spin,omitempty" toml:"spin,omitempty"`
	RotKeys   []RotKeyDef   `yaml:"rot_keys,omitempty" toml:"rot_keys,omitempty"`
	ScaleKeys []ScaleKeyDef `yaml:"scale_keys,omitempty" toml:"scale_keys,omitempty"`
}

// RotKeyDef is a rotation keyframe; Time is in seconds.
type RotKeyDef struct {
	Time        float32 `yaml:"time" toml:"time"`
	RotationDef `yaml:",inline"`
}

// ScaleKeyDef is a scale keyframe; Time is in seconds.
type ScaleKeyDef struct {
	Time  float32    `yaml:"time" toml:"time"`
	Scale [3]float32 `yaml:"scale" toml:"scale"`
}

// Decode parses a scene file. Unknown keys are rejected so that typos
// do not silently fall back to defaults.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse YAML scene: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse TOML scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &f, nil
}

// Encode serializes a scene file.
func Encode(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML scene: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal TOML scene: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
