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

import "github.com/solidity-tools/specsema/runtime/source"

// isIntlyOrFixedBytes reports whether t is valid on the left of a
// shift, or on either side of a comparison or bitwise operator.
func isIntlyOrFixedBytes(t Type) bool {
	return IsIntly(t) || IsFixedBytes(t)
}

func (c *Checker) checkBinary(expr *BinaryExpr, ctx *TypingContext) (Type, error) {
	leftType, err := c.Check(expr.Left, ctx)
	if err != nil {
		return nil, err
	}
	rightType, err := c.Check(expr.Right, ctx)
	if err != nil {
		return nil, err
	}

	rng := source.RangeOf(expr)

	switch expr.Op {
	case OpPow:
		if !IsIntly(leftType) {
			return nil, newWrongType(expr.Left, leftType)
		}
		if !IsIntly(rightType) {
			return nil, newWrongType(expr.Right, rightType)
		}
		if rt, ok := rightType.(IntType); ok && rt.Signed {
			return nil, newWrongType(expr.Right, rightType)
		}
		if lit, ok := expr.Right.(*IntLiteralExpr); ok && lit.Value != nil && lit.Value.Sign() < 0 {
			return nil, newWrongType(expr.Right, rightType)
		}
		if neg, ok := expr.Right.(*UnaryExpr); ok && neg.Op == UnaryNeg {
			if _, ok := rightType.(IntLiteralType); ok {
				return nil, newWrongType(expr.Right, rightType)
			}
		}
		if _, ok := leftType.(IntLiteralType); ok {
			return rightType, nil
		}
		return leftType, nil

	case OpMul, OpDiv, OpMod, OpAdd, OpSub:
		if !IsIntly(leftType) {
			return nil, newWrongType(expr.Left, leftType)
		}
		if !IsIntly(rightType) {
			return nil, newWrongType(expr.Right, rightType)
		}
		unified, ok := unify(leftType, rightType)
		if !ok {
			return nil, newIncompatibleTypes(rng, leftType, rightType)
		}
		return unified, nil

	case OpShl, OpShr:
		if !isIntlyOrFixedBytes(leftType) {
			return nil, newWrongType(expr.Left, leftType)
		}
		if !IsIntly(rightType) {
			return nil, newWrongType(expr.Right, rightType)
		}
		if _, ok := leftType.(IntLiteralType); ok {
			return rightType, nil
		}
		return leftType, nil

	case OpLt, OpGt, OpLe, OpGe:
		if !isIntlyOrFixedBytes(leftType) {
			return nil, newWrongType(expr.Left, leftType)
		}
		if !isIntlyOrFixedBytes(rightType) {
			return nil, newWrongType(expr.Right, rightType)
		}
		if _, ok := unify(leftType, rightType); !ok {
			return nil, newIncompatibleTypes(rng, leftType, rightType)
		}
		return BoolType{}, nil

	case OpEq, OpNe:
		if _, ok := unify(leftType, rightType); !ok {
			return nil, newIncompatibleTypes(rng, leftType, rightType)
		}
		return BoolType{}, nil

	case OpBitOr, OpBitAnd, OpBitXor:
		if !isIntlyOrFixedBytes(leftType) {
			return nil, newWrongType(expr.Left, leftType)
		}
		if !isIntlyOrFixedBytes(rightType) {
			return nil, newWrongType(expr.Right, rightType)
		}
		unified, ok := unify(leftType, rightType)
		if !ok {
			return nil, newIncompatibleTypes(rng, leftType, rightType)
		}
		return unified, nil

	case OpOr, OpAnd, OpImplies:
		if _, ok := leftType.(BoolType); !ok {
			return nil, newWrongType(expr.Left, leftType)
		}
		if _, ok := rightType.(BoolType); !ok {
			return nil, newWrongType(expr.Right, rightType)
		}
		return BoolType{}, nil

	default:
		return nil, newInvalidKeyword(expr, "binary operator")
	}
}
