// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Nil2Zero replaces a nil *t with a pointer to the zero value of T.
func Nil2Zero[T any](t **T) {
	if (*t) == nil {
		*t = new(T)
	}
}

// Default replaces a nil *t with a pointer to a copy of the def value.
func Default[T any](t **T, def T) {
	if (*t) == nil {
		*t = &def
	}
}
