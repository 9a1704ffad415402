// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import "log/slog"

// Keys for structured attributes emitted by the adaptation logging below,
// following the same naming convention as fox's LoggerStatusKey and
// friends.
const (
	// LogKeySplitKey is the attribute key for the split key chosen when a
	// base is split into a route and two children. The associated value is
	// an int.
	LogKeySplitKey = "split_key"
	// LogKeyContention is the attribute key for a base's contention
	// statistic at the time of an adaptation decision. The associated value
	// is an int.
	LogKeyContention = "contention"
	// LogKeyBucketSize is the attribute key for a base's bucket size at the
	// time of an adaptation decision. The associated value is an int.
	LogKeyBucketSize = "bucket_size"
	// LogKeySide is the attribute key identifying which side of a route a
	// join was attempted from. The associated value is the string "left"
	// or "right".
	LogKeySide = "side"
)

func (s *Set) logSplit(b, route *node) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("split base",
		slog.Int(LogKeySplitKey, route.splitKey),
		slog.Int(LogKeyContention, b.stat),
		slog.Int(LogKeyBucketSize, b.bucket.Len()),
	)
}

func (s *Set) logJoinSecured(b *node, left bool) {
	if s.logger == nil {
		return
	}
	side := "right"
	if left {
		side = "left"
	}
	s.logger.Debug("secured join",
		slog.String(LogKeySide, side),
		slog.Int(LogKeyContention, b.stat),
	)
}

func (s *Set) logJoinAborted(b *node, left bool) {
	if s.logger == nil {
		return
	}
	side := "right"
	if left {
		side = "left"
	}
	s.logger.Debug("aborted join", slog.String(LogKeySide, side))
}

func (s *Set) logJoinCompleted(m *node) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("completed join", slog.Int(LogKeyContention, m.stat))
}
