/*
 * specsema - a type checker and name resolver for contract specification annotations
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errors draws the same line the host checker it is grounded
// on draws: an InternalError is this package's own bug (a node variant
// it forgot to dispatch, a type it can't ingest), a UserError is a
// defect the caller's input actually has. InternalErrors are always
// panicked, never returned, so they propagate past every recover-free
// call in between.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// InternalError is a bug in this package, never in the expression or
// host program being checked.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is a defect the checker found in the checked expression or
// the host program it refers to.
type UserError interface {
	error
	IsUserError()
}

// UnexpectedError is the default InternalError: a node variant or type
// ingestion this package does not yet handle.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e UnexpectedError) Unwrap() error { return e.Err }
func (e UnexpectedError) Error() string { return e.Err.Error() }
func (e UnexpectedError) IsInternalError() {}

// IsUserError reports whether err, or anything in its xerrors.Wrapper
// chain, is a UserError.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
