// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

// Default tuning constants. These are compile-time-style knobs, not a
// runtime reconfiguration protocol: a [Set] picks them up once, at
// construction, via [New] or [NewChecked], and never revisits them.
const (
	// ContentionContrib is added to a base's contention statistic when a
	// mutator observes contention (its CAS failed, or it had to help).
	ContentionContrib = 250
	// LowContentionContrib is subtracted from a base's contention statistic
	// when a mutator completes without observing contention.
	LowContentionContrib = 1
	// RangeContrib further reduces the statistic update on a base that a
	// range query touched alongside at least one other base, discouraging
	// splits that would only hurt range-query locality.
	RangeContrib = 100
	// HighContention is the upper bound of the contention band; crossing it
	// triggers a split (see maybeAdapt).
	HighContention = 1000
	// LowContention is the lower bound of the contention band; crossing it
	// triggers a join attempt (see maybeAdapt).
	LowContention = -1000
	// SplitThreshold is the bucket size at or above which a NORMAL base is
	// split regardless of its contention statistic.
	SplitThreshold = 64
)
