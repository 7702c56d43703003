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

package sema

import (
	"fmt"

	"github.com/solidity-tools/specsema/runtime/errors"
	"github.com/solidity-tools/specsema/runtime/source"
)

// CheckerError is the closed taxonomy of §4.E. Every variant is a
// UserError: it reports a defect in the checked expression, not in
// this package. Each carries the source range the driver should
// underline.
type CheckerError interface {
	errors.UserError
	Range() source.Range
}

type checkerErrorBase struct {
	R source.Range
}

func (e checkerErrorBase) Range() source.Range { return e.R }
func (checkerErrorBase) IsUserError()          {}

// NoFieldError: base.field has no such field/member.
type NoFieldError struct {
	checkerErrorBase
	BaseType Type
	Field    string
}

func (e *NoFieldError) Error() string {
	return fmt.Sprintf("%s has no member %q", e.BaseType, e.Field)
}

// WrongTypeError: an operand has a type the operator/position rejects.
type WrongTypeError struct {
	checkerErrorBase
	ActualType Type
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("unexpected type %s", e.ActualType)
}

// UnknownIdError: a bare identifier resolved against none of the
// orders in §4.D.
type UnknownIdError struct {
	checkerErrorBase
	Name string
}

func (e *UnknownIdError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}

// MissingSolidityTypeError: lookupVar found a host variable that
// carries no declared type.
type MissingSolidityTypeError struct {
	checkerErrorBase
	Name string
}

func (e *MissingSolidityTypeError) Error() string {
	return fmt.Sprintf("%q has no known host type", e.Name)
}

// ExprCountMismatchError: a cast or a call of a Function-typed value
// was given the wrong number of arguments, or a let's names do not
// match the arity of its right-hand side. (An overload set with no
// candidate of matching arity reports UnresolvedFunError instead.)
type ExprCountMismatchError struct {
	checkerErrorBase
	Expected int
	Actual   int
}

func (e *ExprCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Expected, e.Actual)
}

// UnresolvedFunError: no candidate in an overload set survived
// arity/castability filtering.
type UnresolvedFunError struct {
	checkerErrorBase
}

func (e *UnresolvedFunError) Error() string {
	return "no matching overload for this call"
}

// FunNoReturnError: a resolved function call has no return value but
// was used where one is required.
type FunNoReturnError struct {
	checkerErrorBase
}

func (e *FunNoReturnError) Error() string {
	return "function has no return value"
}

// ArgumentMismatchError: a narrowed callee rejected one of its
// arguments (not an overload-resolution failure; an explicit check
// past a single remaining candidate, e.g. a Function-typed value).
type ArgumentMismatchError struct {
	checkerErrorBase
	ArgIndex int
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("argument %d does not match the expected parameter type", e.ArgIndex)
}

// IncompatibleTypesError: unify(a, A, b, B) found neither direction
// implicitly castable.
type IncompatibleTypesError struct {
	checkerErrorBase
	LeftType  Type
	RightType Type
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("incompatible types %s and %s", e.LeftType, e.RightType)
}

// InvalidKeywordError: a keyword-like construct (e.g. $result) was
// used where its preconditions do not hold.
type InvalidKeywordError struct {
	checkerErrorBase
	Keyword string
}

func (e *InvalidKeywordError) Error() string {
	return fmt.Sprintf("%s is not valid here", e.Keyword)
}

// UnsupportedGetterError: a public state variable's implicit getter
// was called, but the variable's type is a struct or contract, which
// this checker does not yet know how to shape into a getter's return
// type (the host language itself decomposes such getters field by
// field; that decomposition is not implemented here).
type UnsupportedGetterError struct {
	checkerErrorBase
	Name string
}

func (e *UnsupportedGetterError) Error() string {
	return fmt.Sprintf("getter for %q is not yet supported for user-defined struct or contract types", e.Name)
}

func newNoField(rng source.Range, baseType Type, field string) *NoFieldError {
	return &NoFieldError{checkerErrorBase{rng}, baseType, field}
}

func newWrongType(node ExprNode, actual Type) *WrongTypeError {
	return &WrongTypeError{checkerErrorBase{source.RangeOf(node)}, actual}
}

func newUnknownId(node ExprNode, name string) *UnknownIdError {
	return &UnknownIdError{checkerErrorBase{source.RangeOf(node)}, name}
}

func newMissingSolidityType(node ExprNode, name string) *MissingSolidityTypeError {
	return &MissingSolidityTypeError{checkerErrorBase{source.RangeOf(node)}, name}
}

func newExprCountMismatch(node ExprNode, expected, actual int) *ExprCountMismatchError {
	return &ExprCountMismatchError{checkerErrorBase{source.RangeOf(node)}, expected, actual}
}

func newUnresolvedFun(node ExprNode) *UnresolvedFunError {
	return &UnresolvedFunError{checkerErrorBase{source.RangeOf(node)}}
}

func newFunNoReturn(node ExprNode) *FunNoReturnError {
	return &FunNoReturnError{checkerErrorBase{source.RangeOf(node)}}
}

func newArgumentMismatch(node ExprNode, argIndex int) *ArgumentMismatchError {
	return &ArgumentMismatchError{checkerErrorBase{source.RangeOf(node)}, argIndex}
}

func newIncompatibleTypes(rng source.Range, a, b Type) *IncompatibleTypesError {
	return &IncompatibleTypesError{checkerErrorBase{rng}, a, b}
}

func newInvalidKeyword(node ExprNode, keyword string) *InvalidKeywordError {
	return &InvalidKeywordError{checkerErrorBase{source.RangeOf(node)}, keyword}
}

func newUnsupportedGetter(node ExprNode, name string) *UnsupportedGetterError {
	return &UnsupportedGetterError{checkerErrorBase{source.RangeOf(node)}, name}
}
