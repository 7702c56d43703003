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

func byteIndexResultType() Type { return IntType{Bits: 8, Signed: false} }

func (c *Checker) checkIndex(expr *IndexExpr, ctx *TypingContext) (Type, error) {
	baseType, err := c.Check(expr.Base, ctx)
	if err != nil {
		return nil, err
	}
	idxType, err := c.Check(expr.Index, ctx)
	if err != nil {
		return nil, err
	}

	switch b := baseType.(type) {
	case FixedBytesType:
		if !IsIntly(idxType) {
			return nil, newWrongType(expr.Index, idxType)
		}
		return byteIndexResultType(), nil

	case PointerType:
		switch to := b.To.(type) {
		case BytesType:
			if !IsIntly(idxType) {
				return nil, newWrongType(expr.Index, idxType)
			}
			return byteIndexResultType(), nil

		case ArrayType:
			if !IsIntly(idxType) {
				return nil, newWrongType(expr.Index, idxType)
			}
			return to.Element, nil

		case MappingType:
			if !ImplicitlyCastable(idxType, to.Key) {
				return nil, newWrongType(expr.Index, idxType)
			}
			return to.Value, nil

		default:
			return nil, newWrongType(expr.Base, baseType)
		}

	default:
		return nil, newWrongType(expr.Base, baseType)
	}
}
