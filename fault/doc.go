// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each relay error to allow easy
// comparison without partial string matches.  Errors are grouped in
// classes (exists, invalid, not found, process, record) so callers
// can decide how to report a rejected contract call.
package fault
