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

package errors

// error messages, indexed informally by the Errno they accompany. kept as
// format strings so callers can pass %v-style detail the way Errorf expects.
const (
	// lifecycle
	NotAttachedMsg      = "target error: not attached"
	AlreadyAttachedMsg  = "target error: already attached"
	AttachTimeoutMsg    = "target error: timed out waiting for halt during attach"
	DetachErrorMsg      = "target error: detach failed: %v"

	// transport
	TransportErrorMsg   = "transport error: %v"
	TransportTimeoutMsg = "transport error: timeout"
	TargetLostMsg       = "target error: target lost"

	// cpu proxy
	ITRNotReadyMsg      = "proxy error: ITR not ready for instruction injection"
	UnexpectedModeMsg   = "proxy error: unexpected DCC mode %v"

	// memory
	MMUFaultMsg         = "memory error: translation fault at %#08x"
	DataAbortMsg        = "memory error: synchronous data abort during proxy access"
	UnalignedAccessMsg  = "memory error: unaligned fast-mode access at %#08x"

	// breakpoints
	NoFreeBreakpointMsg   = "breakpoint error: no free hardware comparator"
	NoSuchBreakpointMsg   = "breakpoint error: no breakpoint set at %#08x"
	SteppingInProgressMsg = "breakpoint error: comparator 0 is reserved for single-step"

	// probe & reset
	ProbeFailedMsg            = "probe error: %v"
	ResetReconnectTimeoutMsg  = "reset error: target did not reconnect after reset"
	ResetAttachFailedMsg      = "reset error: re-attach after reset failed: %v"

	// target facade
	ShortRegisterBufferMsg = "target error: register buffer too small, need %d bytes"
)
