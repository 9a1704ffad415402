// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package lfcatree

import "github.com/relaxedb/lfcatree/internal/bucket"

// Insert adds k to the set, linearizable to the point its replacement base
// is published. It returns true if k was not already present.
func (s *Set) Insert(k int) bool {
	return s.doUpdate(k, (*bucket.Bucket).Inserted)
}

// Remove deletes k from the set, linearizable to the point its replacement
// base is published. It returns true if k was present.
func (s *Set) Remove(k int) bool {
	return s.doUpdate(k, (*bucket.Bucket).Removed)
}

// Contains reports whether k is a member of the set, linearizable to the
// read of the owning base's bucket.
func (s *Set) Contains(k int) bool {
	return s.findBase(k).bucket.Contains(k)
}

// doUpdate implements the point-update protocol common to Insert and
// Remove: find the owning base, build its NORMAL replacement by applying
// op to its bucket, and retry -- helping along the way -- until the CAS
// lands.
func (s *Set) doUpdate(key int, op func(*bucket.Bucket, int) (*bucket.Bucket, bool)) bool {
	info := infoUncontended
	for {
		b := s.findBase(key)
		if replaceable(b) {
			newBucket, changed := op(b.bucket, key)
			nb := newNormal(b.parent, newBucket, s.newStat(b, info))
			if s.tryReplace(b, nb) {
				s.maybeAdapt(nb)
				return changed
			}
		}
		info = infoContended
		s.helpIfNeeded(b)
	}
}
