// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
//
// The rental domain consists of three entities. A Vehicle is a rentable
// car which is identified by its chassis number in the real world and
// is priced per day. A Client is a person who may rent vehicles. And a
// Rental reserves one vehicle for one client during a closed Period of
// calendar dates. Entities are never removed. They are deactivated
// instead, so the history of rentals remains queryable.
//
// In addition to the entities, this package contains the pure domain
// rules which are independent of any storage: the availability check
// (IsAvailable), the lifecycle guard (HasActiveObligation), and the
// pricing calculator (Charge). The use case layer composes them while
// it holds a transaction, so they can be evaluated atomically.
package model
