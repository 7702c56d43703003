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

func (c *Checker) checkUnary(expr *UnaryExpr, ctx *TypingContext) (Type, error) {
	operandType, err := c.Check(expr.Operand, ctx)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case UnaryNot:
		if _, ok := operandType.(BoolType); !ok {
			return nil, newWrongType(expr.Operand, operandType)
		}
		return BoolType{}, nil

	case UnaryNeg:
		if !IsIntly(operandType) {
			return nil, newWrongType(expr.Operand, operandType)
		}
		return operandType, nil

	default:
		return nil, newInvalidKeyword(expr, "unary operator")
	}
}
