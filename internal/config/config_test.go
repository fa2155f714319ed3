// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
shapes:
  - type: box
    min: [0, 0, 0]
    max: [4, 4, 4]
    value: 1
  - type: sphere
    center: [8, 8, 8]
    radius: 3
    value: 2
camera:
  origin: [0, 0, -10]
  target: [0, 0, 0]
  up: [0, 1, 0]
  fov_degrees: 60
  width: 64
  height: 48
output: out.ppm
workers: 4
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadValidScene(t *testing.T) {
	path := writeTemp(t, sampleYAML)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Shapes, 2)
	assert.Equal(t, "box", s.Shapes[0].Type)
	assert.Equal(t, uint32(2), s.Shapes[1].Value)
	assert.Equal(t, 64, s.Camera.Width)
	assert.Equal(t, "out.ppm", s.Output)
}

func TestLoadRejectsUnknownShapeType(t *testing.T) {
	path := writeTemp(t, `
shapes:
  - type: cone
    value: 1
camera:
  fov_degrees: 60
  width: 1
  height: 1
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadFOV(t *testing.T) {
	path := writeTemp(t, `
camera:
  fov_degrees: 200
  width: 1
  height: 1
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
