// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Each error belongs to exactly one class so that a caller can decide
// how to report a rejected invocation without knowing every error:
//
//   ExistsError     - replay: a record that must be created once already exists
//   NotFoundError   - a record that is required is empty
//   OwnerError      - a record is owned by the wrong program
//   IdentityError   - an address does not match its derivation or registry entry
//   ReferenceError  - two records do not refer to each other
//   AuthorityError  - a required authority or signature is missing
//   ArithmeticError - counter overflow
//   CapacityError   - a token store does not hold the required amount
//   InvalidError    - malformed input or record data
//   ProcessError    - infrastructure failure
package fault
