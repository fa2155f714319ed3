// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package config parses the YAML scene/render description consumed by
// cmd/voxtrace. It only ever describes the collaborator layer: shape
// placement, camera pose, output path and worker-pool size. The octree's
// own capacity constants (Depth, BaseDepth, TableBits) are compile-time
// and never appear here.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Shape places one solid region of voxels into the scene, all sharing
// Value as their leaf payload.
type Shape struct {
	// Type selects the shape: "box", "sphere" or "heightfield".
	Type string `yaml:"type"`

	// Box bounds, inclusive Min, exclusive Max, voxel-space coordinates.
	Min [3]uint32 `yaml:"min,omitempty"`
	Max [3]uint32 `yaml:"max,omitempty"`

	// Sphere center and radius, voxel-space units.
	Center [3]float64 `yaml:"center,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`

	// Heightfield: path to a whitespace-separated grid of non-negative
	// integer column heights, Width columns by Depth rows, each cell
	// filled from y=0 up to its height along the Y axis.
	Heightmap string `yaml:"heightmap,omitempty"`
	Width     uint32 `yaml:"width,omitempty"`
	Depth     uint32 `yaml:"depth,omitempty"`

	Value uint32 `yaml:"value"`
}

// Camera is a simple pinhole camera: Origin looks at Target with the given
// vertical field of view, rendering an Width x Height image.
type Camera struct {
	Origin     [3]float64 `yaml:"origin"`
	Target     [3]float64 `yaml:"target"`
	Up         [3]float64 `yaml:"up"`
	FOVDegrees float64    `yaml:"fov_degrees"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
}

// Scene is the top-level document a render, serve or stats invocation loads.
type Scene struct {
	Shapes  []Shape `yaml:"shapes"`
	Camera  Camera  `yaml:"camera"`
	Output  string  `yaml:"output"`
	Workers int     `yaml:"workers"`
}

// Load reads and parses a scene file from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return &s, nil
}

// Validate checks the document for obviously malformed values before the
// scene builder or renderer ever sees it.
func (s *Scene) Validate() error {
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return errors.New("config: camera width and height must be positive")
	}
	if s.Camera.FOVDegrees <= 0 || s.Camera.FOVDegrees >= 180 {
		return errors.New("config: camera fov_degrees must be in (0, 180)")
	}
	if s.Workers < 0 {
		return errors.New("config: workers must be >= 0")
	}
	for i, sh := range s.Shapes {
		switch sh.Type {
		case "box", "sphere", "heightfield":
		default:
			return errors.Errorf("config: shapes[%d]: unknown type %q", i, sh.Type)
		}
		if sh.Type == "heightfield" && sh.Heightmap == "" {
			return errors.Errorf("config: shapes[%d]: heightfield requires heightmap", i)
		}
	}
	return nil
}
