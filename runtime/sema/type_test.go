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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidity-tools/specsema/runtime/host"
)

func TestTypeEqualityIgnoresPosition(t *testing.T) {
	t.Parallel()

	a := IntType{Bits: 64, Signed: false}
	b := IntType{Bits: 64, Signed: false}
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(IntType{Bits: 32, Signed: false}))
	assert.False(t, a.Equal(IntType{Bits: 64, Signed: true}))
}

func TestTypeStringCanonicalForms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uint256", IntType{Bits: 256, Signed: false}.String())
	assert.Equal(t, "int8", IntType{Bits: 8, Signed: true}.String())
	assert.Equal(t, "bytes32", FixedBytesType{Width: 32}.String())
	assert.Equal(t, "address", AddressType{}.String())
	assert.Equal(t, "address payable", AddressType{Payable: true}.String())
	assert.Equal(t, "uint256[]", ArrayType{Element: IntType{Bits: 256, Signed: false}}.String())

	size := uint64(4)
	assert.Equal(t, "uint256[4]", ArrayType{Element: IntType{Bits: 256, Signed: false}, Size: &size}.String())

	assert.Equal(
		t,
		"mapping(uint32 => int64)",
		MappingType{Key: IntType{Bits: 32, Signed: false}, Value: IntType{Bits: 64, Signed: true}}.String(),
	)

	assert.Equal(
		t,
		"bytes memory",
		PointerType{To: BytesType{}, Location: host.Memory}.String(),
	)
}

func TestIsWellFormed(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWellFormed(BoolType{}))
	assert.True(t, IsWellFormed(IntType{Bits: 256, Signed: false}))
	assert.True(t, IsWellFormed(PointerType{To: BytesType{}, Location: host.Memory}))

	assert.False(t, IsWellFormed(BytesType{}), "Bytes must always be wrapped in a Pointer")
	assert.False(t, IsWellFormed(ArrayType{Element: BoolType{}}), "Array must always be wrapped in a Pointer")
	assert.True(t, IsWellFormed(TupleType{Elements: []Type{BoolType{}}}), "a Tuple of well-formed elements is a legitimate multi-return result")
}

func TestUserDefinedTypeEqualityComparesDeclarations(t *testing.T) {
	t.Parallel()

	s1 := &host.StructDeclaration{Name_: "S"}
	s2 := &host.StructDeclaration{Name_: "S"}

	assert.True(t, UserDefinedType{Def: s1}.Equal(UserDefinedType{Def: s1}))
	assert.False(
		t,
		UserDefinedType{Def: s1}.Equal(UserDefinedType{Def: s2}),
		"equal names but distinct declarations must not compare equal",
	)
}
