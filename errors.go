// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package voxoctree

import (
	"github.com/pkg/errors"

	"github.com/ochtree/voxoctree/internal/nodetable"
)

// ErrTableFull is returned by Set when the node table's load factor would
// be exceeded. It is unrecoverable within the tree: the caller must abort
// the process or rebuild with a larger TableBits.
var ErrTableFull = nodetable.ErrTableFull

// ErrOutOfBounds is returned by Set and At when a coordinate falls outside
// [0, Dim)^3.
var ErrOutOfBounds = errors.New("voxoctree: coordinate out of bounds")
