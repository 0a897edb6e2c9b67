// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
)

// OutOfRangeError reports a setting which violates its minimum or
// maximum boundaries, or the boundaries themselves being inconsistent.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T   // The actual out-of-range value
	LessThanMin  bool // true if and only if min boundary is violated
	InvalidRange bool // true if and only if min is greater than max
}

func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return "value is less than min"
	default:
		return "value is greater than max"
	}
}

// VerifyRange checks the *value against the inclusive minb and maxb
// boundaries, where a nil boundary is ignored. An out-of-range value
// is clamped to the violated boundary and reported along with its
// original value. A nil *value is accepted as is.
func VerifyRange[T cmp.Ordered](
	value **T, minb, maxb *T,
) *OutOfRangeError[T] {
	switch {
	case minb != nil && maxb != nil && (*minb) > (*maxb):
		return &OutOfRangeError[T]{InvalidRange: true}
	case (*value) == nil:
		return nil
	}
	switch v := **value; {
	case minb != nil && v < *minb:
		*value = ptr(*minb)
		return &OutOfRangeError[T]{Value: &v, LessThanMin: true}
	case maxb != nil && v > *maxb:
		*value = ptr(*maxb)
		return &OutOfRangeError[T]{Value: &v}
	}
	return nil
}

func ptr[T any](t T) *T {
	return &t
}
