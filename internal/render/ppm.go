// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WritePPM writes img as a binary (P5, grayscale) PPM/PGM file to path.
func WritePPM(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "render: create %s", path)
	}
	defer f.Close()

	if err := EncodePPM(f, img); err != nil {
		return errors.Wrapf(err, "render: encode %s", path)
	}
	return nil
}

// EncodePPM writes img to w in the binary PGM (P5) format.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	raw := make([]byte, len(img.Pixels))
	for i, p := range img.Pixels {
		raw[i] = byte(p)
	}
	if _, err := bw.Write(raw); err != nil {
		return err
	}
	return bw.Flush()
}
