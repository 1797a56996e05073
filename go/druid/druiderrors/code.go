/*
Copyright 2026 The Druid-Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package druiderrors

// ErrCode categorizes errors so callers can react to the class of a failure
// without parsing its message. The numbering follows the canonical RPC
// code space so errors translate cleanly at a service boundary.
type ErrCode int32

// All the error codes.
const (
	CodeOK                 ErrCode = 0
	CodeCanceled           ErrCode = 1
	CodeUnknown            ErrCode = 2
	CodeInvalidArgument    ErrCode = 3
	CodeDeadlineExceeded   ErrCode = 4
	CodeNotFound           ErrCode = 5
	CodeAlreadyExists      ErrCode = 6
	CodeFailedPrecondition ErrCode = 9
	CodeUnimplemented      ErrCode = 12
	CodeInternal           ErrCode = 13
)

func (c ErrCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeCanceled:
		return "CANCELED"
	case CodeUnknown:
		return "UNKNOWN"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeDeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeUnimplemented:
		return "UNIMPLEMENTED"
	case CodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
