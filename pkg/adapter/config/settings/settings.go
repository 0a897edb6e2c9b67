// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings contains the generic helpers which are used for
// loading and validating the configuration settings. Settings fields
// are kept as pointers, so a missing item can be told apart from its
// zero value and filled by a default value.
package settings
