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

// Package errors is a helper package for the plain Go language error type.
// We think of these errors as curated errors. External to this package,
// curated errors are referenced as plain errors (ie. they implement the
// error interface). Every curated error also carries an Errno, so a caller
// can classify an error (e.g. to decide whether a transport failure should
// abort a retry loop) without string-matching its message.
//
// Internally, errors are thought of as being composed of parts, as described
// by The Go Programming Language (Donovan, Kernighan): "When the error is
// ultimately handled by the program's main function, it should provide a
// clear causal chain from the root of the problem to the overall failure".
//
// The Error() function implementation for curated errors normalises the
// head of this chain: when the first two parts are equal, the first one is
// dropped. Duplicates further along the chain are left as they are. This
// alleviates the problem of when and how to wrap errors. For example:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return errors.Errorf(errors.DetachError, "target error: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return errors.Errorf(errors.NotAttached, errors.NotAttachedMsg)
//	}
//
// formats as "target error: target error: not attached", which Error()
// normalises to "target error: not attached", and Code(err) on the result
// reports errors.DetachError regardless of how the message was phrased.
package errors

import (
	"fmt"
	"strings"
)

// Values is the type used to specify arguments for Errorf.
type Values []interface{}

// curated errors allow code to specify a predefined error and not worry too
// much about the message behind that error and how the message will be
// formatted on output. errno classifies which subsystem category the error
// belongs to, independent of how values get interpolated into message.
type curated struct {
	errno   Errno
	message string
	values  Values
}

// Errorf creates a new curated error tagged with the given Errno category.
func Errorf(errno Errno, message string, values ...interface{}) error {
	return curated{
		errno:   errno,
		message: message,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the
// removal of the first message part when it equals the second.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.message, er.values...).Error()

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Head returns the leading part of the message.
//
// Similar to Is() but returns the string rather than a boolean. Useful for
// switches.
//
// If err is a plain error then the return of Error() is returned.
func Head(err error) string {
	if er, ok := err.(curated); ok {
		return er.message
	}
	return err.Error()
}

// IsAny checks if error is being curated by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(curated); ok {
		return true
	}
	return false
}

// Is checks if error has a specific head.
func Is(err error, head string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.message == head
	}
	return false
}

// Code reports the Errno category a curated error was raised with. The
// second return is false for a nil error or a plain, non-curated one.
func Code(err error) (Errno, bool) {
	if er, ok := err.(curated); ok {
		return er.errno, true
	}
	return 0, false
}

// Has checks if the message string appears somewhere in the error chain.
func Has(err error, msg string) bool {
	if err == nil {
		return false
	}

	if !IsAny(err) {
		return false
	}

	if Is(err, msg) {
		return true
	}

	for i := range err.(curated).values {
		if e, ok := err.(curated).values[i].(curated); ok {
			if Has(e, msg) {
				return true
			}
		}
	}

	return false
}
