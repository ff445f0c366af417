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

// Errno enumerates the curated error categories used across the target
// driver, grouped by the subsystem that raises them.
type Errno int

// list of error numbers
const (
	// Target facade / lifecycle
	NotAttached Errno = iota
	AlreadyAttached
	AttachTimeout
	DetachError

	// APB transport
	TransportError
	TransportTimeout
	TargetLost

	// CPU proxy
	ITRNotReady
	UnexpectedMode

	// Memory subsystem
	MMUFault
	DataAbort
	UnalignedAccess

	// Breakpoint manager
	NoFreeBreakpoint
	NoSuchBreakpoint
	SteppingInProgress

	// Probe & reset
	ProbeFailed
	ResetReconnectTimeout
	ResetAttachFailed

	// Target facade
	ShortRegisterBuffer
)
