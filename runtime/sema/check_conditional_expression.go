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

func (c *Checker) checkConditional(expr *ConditionalExpr, ctx *TypingContext) (Type, error) {
	condType, err := c.Check(expr.Cond, ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := condType.(BoolType); !ok {
		return nil, newWrongType(expr.Cond, condType)
	}

	thenType, err := c.Check(expr.Then, ctx)
	if err != nil {
		return nil, err
	}
	elseType, err := c.Check(expr.Else, ctx)
	if err != nil {
		return nil, err
	}

	unified, ok := unify(thenType, elseType)
	if !ok {
		return nil, newIncompatibleTypes(source.RangeOf(expr), thenType, elseType)
	}
	return unified, nil
}
