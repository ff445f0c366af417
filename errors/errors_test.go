// This file is part of the cortexa9 target driver.
//
// cortexa9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cortexa9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cortexa9.  If not, see <https://www.gnu.org/licenses/>.

package errors_test

import (
	"testing"

	"github.com/armdbg/cortexa9/errors"
)

func TestErrorfDeduplicatesHead(t *testing.T) {
	inner := errors.Errorf(errors.NotAttached, errors.NotAttachedMsg)
	outer := errors.Errorf(errors.DetachError, "target error: %v", inner)

	got := outer.Error()
	want := "target error: not attached"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIsAndHas(t *testing.T) {
	err := errors.Errorf(errors.NoSuchBreakpoint, errors.NoSuchBreakpointMsg, 0x8000)
	if !errors.IsAny(err) {
		t.Fatalf("expected curated error")
	}
	if !errors.Is(err, errors.NoSuchBreakpointMsg) {
		t.Fatalf("expected Is to match head")
	}
	if !errors.Has(err, errors.NoSuchBreakpointMsg) {
		t.Fatalf("expected Has to match head")
	}
}

func TestCodeReportsErrno(t *testing.T) {
	err := errors.Errorf(errors.NoSuchBreakpoint, errors.NoSuchBreakpointMsg, 0x8000)
	code, ok := errors.Code(err)
	if !ok {
		t.Fatalf("expected a curated error to report a code")
	}
	if code != errors.NoSuchBreakpoint {
		t.Fatalf("got %v, want %v", code, errors.NoSuchBreakpoint)
	}

	if _, ok := errors.Code(nil); ok {
		t.Fatalf("nil error should not report a code")
	}
}

func TestIsAnyNil(t *testing.T) {
	if errors.IsAny(nil) {
		t.Fatalf("nil error should not be curated")
	}
}
