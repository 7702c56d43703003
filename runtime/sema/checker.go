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
	"github.com/solidity-tools/specsema/runtime/errors"
)

// ResultIdentifier is the spelling of the `$result` keyword.
const ResultIdentifier = "$result"

// ThisIdentifier is the spelling of the implicit receiver keyword.
const ThisIdentifier = "this"

// Checker threads a type cache (the Elaboration) through one checking
// run. It has no state of its own beyond the cache: the typing
// context is passed explicitly to every check call, since it changes
// as checking descends into let and call scopes.
type Checker struct {
	Elaboration *Elaboration
}

// NewChecker returns a Checker backed by a fresh type cache.
func NewChecker() *Checker {
	return &Checker{Elaboration: NewElaboration()}
}

// Check is the single entry point of §4.D: dispatch on expr's variant,
// consulting the cache first and writing the result back before
// returning. A non-nil error means a diagnostic was raised and the
// caller should abort the surrounding expression; no partial type is
// produced.
func (c *Checker) Check(expr ExprNode, ctx *TypingContext) (Type, error) {
	if cached, ok := c.Elaboration.getType(expr); ok {
		return cached, nil
	}

	t, err := c.dispatch(expr, ctx)
	if err != nil {
		return nil, err
	}

	if !IsWellFormed(t) {
		panic(errors.NewUnexpectedError(
			"checker produced an ill-formed type %s for %T", t, expr,
		))
	}

	c.Elaboration.setType(expr, t)
	return t, nil
}

func (c *Checker) dispatch(expr ExprNode, ctx *TypingContext) (Type, error) {
	switch e := expr.(type) {
	case *BoolLiteralExpr:
		return BoolType{}, nil
	case *IntLiteralExpr:
		return IntLiteralType{}, nil
	case *StringLiteralExpr:
		return StringLiteralType{}, nil
	case *AddressLiteralExpr:
		return AddressType{Payable: true}, nil

	case *IdentifierExpr:
		return c.checkIdentifier(e, ctx)
	case *ResultExpr:
		return c.checkResult(e, ctx)
	case *UnaryExpr:
		return c.checkUnary(e, ctx)
	case *OldExpr:
		return c.Check(e.Operand, ctx)
	case *BinaryExpr:
		return c.checkBinary(e, ctx)
	case *ConditionalExpr:
		return c.checkConditional(e, ctx)
	case *IndexExpr:
		return c.checkIndex(e, ctx)
	case *MemberExpr:
		return c.checkMember(e, ctx)
	case *LetExpr:
		return c.checkLet(e, ctx)
	case *CallExpr:
		return c.checkCall(e, ctx)

	default:
		panic(errors.NewUnexpectedError("unchecked expression node variant %T", expr))
	}
}
