// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/bstree/fault"
)

// test that each error instance reports only its own class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{fault.ErrAlreadyInitialised, true, false, false, false},
		{fault.ErrMissingCallback, false, true, false, false},
		{fault.ErrInvalidCount, false, true, false, false},
		{fault.ErrInvalidMaximum, false, true, false, false},
		{fault.ErrInvalidOrder, false, true, false, false},
		{fault.ErrInvalidStructPointer, false, true, false, false},
		{fault.ErrKeyNotFound, false, false, true, false},
		{fault.ErrFileRemoved, false, false, false, true},
		{fault.ErrNotBalanced, false, false, false, true},
		{fault.GenericError("generic"), false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("no error", nil)

	defer func() {
		if nil == recover() {
			t.Error("expected a panic")
		}
	}()
	fault.PanicIfError("build", fault.ErrNotBalanced)
}
