// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import "errors"

var (
	// ErrInvalidRange is returned by [Set.RangeQuery] when lo > hi.
	ErrInvalidRange = errors.New("lfcatree: invalid range: lo > hi")
	// ErrInvalidConfig is returned by [NewChecked] when the supplied options
	// describe a tree that could never adapt correctly, e.g. a split
	// threshold below 2 or a contention band with low >= high.
	ErrInvalidConfig = errors.New("lfcatree: invalid config")
)
