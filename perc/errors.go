// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import "errors"

var (
	// ErrEmptyBoundary indicates that the inlet or the outlet pore set is empty; the sweep is not run
	ErrEmptyBoundary = errors.New("perc: empty boundary")

	// ErrDisconnectedInput indicates a non-zero starting saturation because inlet pores have volume.
	// It is only reported as a warning.
	ErrDisconnectedInput = errors.New("perc: non-zero starting saturation")
)
