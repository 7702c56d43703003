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

// ImplicitlyCastable reports whether a value of type from can be used
// where a value of type to is expected, per §4.D's rule:
//   - from == to;
//   - IntLiteral -> Int;
//   - StringLiteral -> Pointer(Bytes | String);
//   - Int -> Int, same sign, target at least as wide (no narrowing);
//   - Address -> Address, target not payable;
//   - Pointer(A) -> Pointer(B), A == B (locations interchangeable).
func ImplicitlyCastable(from, to Type) bool {
	if from.Equal(to) {
		return true
	}

	switch f := from.(type) {
	case IntLiteralType:
		_, ok := to.(IntType)
		return ok

	case StringLiteralType:
		p, ok := to.(PointerType)
		if !ok {
			return false
		}
		switch p.To.(type) {
		case BytesType, StringType:
			return true
		default:
			return false
		}

	case IntType:
		t, ok := to.(IntType)
		return ok && t.Signed == f.Signed && f.Bits <= t.Bits

	case AddressType:
		t, ok := to.(AddressType)
		return ok && !t.Payable

	case PointerType:
		t, ok := to.(PointerType)
		return ok && f.To.Equal(t.To)

	default:
		return false
	}
}

// unify returns the common type of a value of type a and a value of
// type b, such that one side is implicitly castable to the other. It
// is symmetric in outcome but not in preference: b wins ties (both
// directions work, e.g. equal types, or pointers to equal types at
// different locations).
func unify(a, b Type) (Type, bool) {
	if ImplicitlyCastable(a, b) {
		return b, true
	}
	if ImplicitlyCastable(b, a) {
		return a, true
	}
	return nil, false
}
