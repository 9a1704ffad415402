// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import (
	"log/slog"

	"github.com/relaxedb/lfcatree/internal/slogpretty"
)

// Option configures a [Set] at construction time.
type Option interface {
	apply(*Set)
}

type optionFunc func(*Set)

func (f optionFunc) apply(s *Set) {
	f(s)
}

// WithSplitThreshold overrides [SplitThreshold]. Values below 2 are
// ignored; a bucket can only be split when it holds at least 2 keys.
// Mainly useful in tests that want to observe splits without inserting 64
// keys.
func WithSplitThreshold(n int) Option {
	return optionFunc(func(s *Set) {
		if n >= 2 {
			s.splitThreshold = n
		}
	})
}

// WithContentionBounds overrides [LowContention] and [HighContention].
// Ignored unless low < high.
func WithContentionBounds(low, high int) Option {
	return optionFunc(func(s *Set) {
		if low < high {
			s.lowContention = low
			s.highContention = high
		}
	})
}

// WithContentionContribution overrides [ContentionContrib],
// [LowContentionContrib] and [RangeContrib].
func WithContentionContribution(contended, uncontended, rangePenalty int) Option {
	return optionFunc(func(s *Set) {
		s.contentionContrib = contended
		s.lowContentionContrib = uncontended
		s.rangeContrib = rangePenalty
	})
}

// WithLogger attaches a [slog.Logger] that receives debug-level events for
// adaptations: successful splits, secured and completed joins, and joins
// aborted after being started. A nil logger, the default, means silent operation; no logging
// occurs on the Insert/Remove/Contains hot path regardless.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(s *Set) {
		s.logger = logger
	})
}

// WithPrettyLogging attaches a color-coded logger suitable for watching
// adaptation decisions scroll by in a terminal, instead of plain
// key=value output. Equivalent to WithLogger(slog.New(slogpretty.DefaultHandler)).
func WithPrettyLogging() Option {
	return optionFunc(func(s *Set) {
		s.logger = slog.New(slogpretty.DefaultHandler)
	})
}
