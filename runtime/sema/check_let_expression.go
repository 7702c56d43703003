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

func (c *Checker) checkLet(expr *LetExpr, ctx *TypingContext) (Type, error) {
	rhsType, err := c.Check(expr.Rhs, ctx)
	if err != nil {
		return nil, err
	}

	n := len(expr.Names)
	if tuple, ok := rhsType.(TupleType); ok {
		if len(tuple.Elements) != n {
			return nil, newExprCountMismatch(expr.Rhs, n, len(tuple.Elements))
		}
	} else if n != 1 {
		return nil, newExprCountMismatch(expr.Rhs, n, 1)
	}

	inner := ctx.Clone()
	inner.PushLet(expr)
	defer inner.Pop()

	return c.Check(expr.Body, inner)
}
