// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/deedledger/registryd/fault"
)

var (
	errInvalidOne      = fault.InvalidError("invalid one")
	errInvalidTwo      = fault.InvalidError("invalid two")
	errUnauthorizedOne = fault.UnauthorizedError("unauthorized one")
	errPreconditionOne = fault.PreconditionError("precondition one")
	errOutOfRangeOne   = fault.OutOfRangeError("out of range one")
	errRejectedOne     = fault.RejectedError("rejected one")
	errNotFoundOne     = fault.NotFoundError("not found one")
	errProcessOne      = fault.ProcessError("process one")
)

// test that the various error classes can be distinguished
func TestClassification(t *testing.T) {
	errorList := []struct {
		err          error
		invalid      bool
		unauthorized bool
		precondition bool
		outOfRange   bool
		rejected     bool
		notFound     bool
		process      bool
	}{
		{errInvalidOne, true, false, false, false, false, false, false},
		{errInvalidTwo, true, false, false, false, false, false, false},
		{errUnauthorizedOne, false, true, false, false, false, false, false},
		{errPreconditionOne, false, false, true, false, false, false, false},
		{errOutOfRangeOne, false, false, false, true, false, false, false},
		{errRejectedOne, false, false, false, false, true, false, false},
		{errNotFoundOne, false, false, false, false, false, true, false},
		{errProcessOne, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrUnauthorized(err) != e.unauthorized {
			t.Errorf("%d: expected 'unauthorized' == %v for err = %v", i, e.unauthorized, err)
		}
		if fault.IsErrPrecondition(err) != e.precondition {
			t.Errorf("%d: expected 'precondition' == %v for err = %v", i, e.precondition, err)
		}
		if fault.IsErrOutOfRange(err) != e.outOfRange {
			t.Errorf("%d: expected 'out of range' == %v for err = %v", i, e.outOfRange, err)
		}
		if fault.IsErrRejected(err) != e.rejected {
			t.Errorf("%d: expected 'rejected' == %v for err = %v", i, e.rejected, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// instances declared in fault must carry their class
func TestInstanceClasses(t *testing.T) {
	if !fault.IsErrUnauthorized(fault.TransferNotAuthorized) {
		t.Errorf("TransferNotAuthorized is not an unauthorized error")
	}
	if !fault.IsErrPrecondition(fault.TokenAlreadyExists) {
		t.Errorf("TokenAlreadyExists is not a precondition error")
	}
	if !fault.IsErrOutOfRange(fault.IndexBeyondCount) {
		t.Errorf("IndexBeyondCount is not an out of range error")
	}
	if !fault.IsErrRejected(fault.TokenNotAccepted) {
		t.Errorf("TokenNotAccepted is not a rejected error")
	}
	if !fault.IsErrInvalid(fault.TransferToNilAddress) {
		t.Errorf("TransferToNilAddress is not an invalid error")
	}
}
