// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package lfcatree implements a concurrent ordered set of ints backed by a
// Lock-Free Contention-Adapting (LFCA) search tree.
//
// The tree is a coarse external index of route nodes over small immutable
// buckets. All structural mutation happens through atomic compare-and-swap
// on parent slots; there are no locks anywhere in [Set.Insert], [Set.Remove],
// [Set.Contains] or [Set.RangeQuery]. Under sustained contention or bucket
// growth, a base is split into a fresh route and two smaller bases; under
// sustained idleness, sibling bases are joined back together through a
// two-phase secure-join/complete-join protocol so the tree stays compact.
//
// Every public operation is linearizable to a single point between its
// invocation and return. No operation blocks or returns an error except
// [Set.RangeQuery], which rejects an inverted bound, and [NewChecked],
// which rejects a nonsensical configuration.
package lfcatree
