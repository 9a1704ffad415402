// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import "fmt"

// checkInvariants walks the tree from the root and verifies the structural
// invariants of the design: every key reachable on a route's left subtree
// is < the route's split key, and every key on its right subtree is >=
// it. It is only meant for single-threaded use in tests -- there is no
// concurrent-safe definition of "the current structure" to check against.
func (s *Set) checkInvariants() error {
	return checkNode(s.root.Load(), minInt, maxInt)
}

func checkNode(n *node, lo, hi int) error {
	switch n.k {
	case kindRoute:
		if err := checkNode(n.left.Load(), lo, n.splitKey-1); err != nil {
			return err
		}
		return checkNode(n.right.Load(), n.splitKey, hi)
	default:
		for _, k := range n.bucket.RangeQuery(minInt, maxInt) {
			if k < lo || k > hi {
				return fmt.Errorf("key %d outside expected bound [%d,%d]", k, lo, hi)
			}
		}
		return nil
	}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
