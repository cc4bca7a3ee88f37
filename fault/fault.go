// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError      // a supplied argument is malformed or uses the nil sentinel
type UnauthorizedError GenericError // the caller lacks the required authorization
type PreconditionError GenericError // the ledger state does not match the caller's assertion
type OutOfRangeError GenericError   // an enumeration index is beyond the current count
type RejectedError GenericError     // a transfer destination refused the token
type NotFoundError GenericError     // a requested record does not exist
type ProcessError GenericError      // an internal operation failed

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	ApprovalNotSet               = PreconditionError("approval not set")
	CannotDecodeAddress          = InvalidError("cannot decode address")
	CertificateFileAlreadyExists = ProcessError("certificate file already exists")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DoubleTransactionAttempt     = ProcessError("double transaction attempt")
	IndexBeyondCount             = OutOfRangeError("index is beyond holding count")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidInterfaceSelector     = InvalidError("invalid interface selector")
	InvalidIpAddress             = InvalidError("invalid IP Address")
	InvalidLoggerChannel         = ProcessError("invalid logger channel")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ProcessError("key file already exists")
	LedgerIsBusy                 = ProcessError("ledger is busy with a receiver callback")
	MissingParameters            = InvalidError("missing parameters")
	NilAddress                   = InvalidError("nil address is not allowed")
	NilOperator                  = InvalidError("nil operator is not allowed")
	NilOwner                     = InvalidError("nil owner is not allowed")
	NotInitialised               = ProcessError("not initialised")
	NotOwnerOfToken              = PreconditionError("not the owner of the token")
	NotPackedEvent               = ProcessError("not a packed event record")
	NotRegistryAdministrator     = UnauthorizedError("not the registry administrator")
	OperatorApprovalNotSet       = PreconditionError("operator approval is not set")
	RateLimiting                 = ProcessError("rate limiting active")
	RedundantOperatorApproval    = PreconditionError("operator approval is already set")
	SelfApproval                 = InvalidError("approval operator is the current owner")
	TokenAlreadyExists           = PreconditionError("token already exists")
	TokenDoesNotExist            = NotFoundError("token does not exist")
	TokenNotAccepted             = RejectedError("token not accepted by receiver")
	TransferNotAuthorized        = UnauthorizedError("transfer not authorized")
	TransferToNilAddress         = InvalidError("transfer to nil address is not allowed")
	WrongAddressLength           = InvalidError("wrong address length")
	WrongTokenIdLength           = InvalidError("wrong token id length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e UnauthorizedError) Error() string { return string(e) }
func (e PreconditionError) Error() string { return string(e) }
func (e OutOfRangeError) Error() string   { return string(e) }
func (e RejectedError) Error() string     { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error by simple type assertion
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrUnauthorized(e error) bool { _, ok := e.(UnauthorizedError); return ok }
func IsErrPrecondition(e error) bool { _, ok := e.(PreconditionError); return ok }
func IsErrOutOfRange(e error) bool   { _, ok := e.(OutOfRangeError); return ok }
func IsErrRejected(e error) bool     { _, ok := e.(RejectedError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
