// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyIssued        = ExistsError("already issued for this sequence")
	ErrChannelNotFound      = NotFoundError("channel not found")
	ErrDuplicateSubmission  = ExistsError("duplicate submission")
	ErrDuplicateVote        = ExistsError("notary has already voted on this proposal")
	ErrEndpointMismatch     = InvalidError("destination endpoint does not match this channel")
	ErrInsufficientFunds    = InvalidError("insufficient funds")
	ErrInvalidAmount        = InvalidError("invalid amount")
	ErrInvalidChannelSetup  = InvalidError("invalid channel setup")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPayload       = InvalidError("payload field exceeds record limits")
	ErrInvalidVoteValue     = InvalidError("invalid vote value")
	ErrNotAuthorised        = InvalidError("caller is not a notary")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotRecordPack        = RecordError("not a record pack")
	ErrOutOfOrder           = InvalidError("sequence is not at the head of the channel")
	ErrProofNotFound        = NotFoundError("proof record not found")
	ErrRecordTrailingData   = RecordError("record has trailing data")
	ErrReferenceNotFound    = NotFoundError("reference not found")
	ErrStorageFailure       = ProcessError("storage failure")
	ErrTransactionInUse     = ProcessError("transaction already in use")
	ErrUnknownProposal      = NotFoundError("unknown proposal")
	ErrUnverifiedSource     = InvalidError("source transfer is not verified")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
