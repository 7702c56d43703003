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
	"github.com/stretchr/testify/require"

	"github.com/solidity-tools/specsema/runtime/host"
	"github.com/solidity-tools/specsema/runtime/source"
)

func TestIngestTypeNameElementary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, IntType{Bits: 256, Signed: false}, IngestTypeName(elementaryExpr("uint")))
	assert.Equal(t, IntType{Bits: 8, Signed: true}, IngestTypeName(elementaryExpr("int8")))
	assert.Equal(t, BoolType{}, IngestTypeName(elementaryExpr("bool")))
	assert.Equal(t, BytesType{}, IngestTypeName(elementaryExpr("bytes")))
	assert.Equal(t, FixedBytesType{Width: 32}, IngestTypeName(elementaryExpr("bytes32")))
	assert.Equal(t, AddressType{}, IngestTypeName(elementaryExpr("address")))
	assert.Equal(t, AddressType{Payable: true}, IngestTypeName(elementaryExpr("address payable")))
}

func TestIngestTypeNameArrayAndMapping(t *testing.T) {
	t.Parallel()

	arr := IngestTypeName(host.NewArrayTypeExpr(elementaryExpr("uint32"), nil, source.Range{}))
	assert.Equal(t, ArrayType{Element: IntType{Bits: 32, Signed: false}}, arr)

	m := IngestTypeName(host.NewMappingTypeExpr(elementaryExpr("address"), elementaryExpr("uint"), source.Range{}))
	assert.Equal(
		t,
		MappingType{Key: AddressType{}, Value: IntType{Bits: 256, Signed: false}},
		m,
	)
}

func TestEffectiveLocationRules(t *testing.T) {
	t.Parallel()

	contract := &host.ContractDeclaration{Name_: "C"}
	v := variable("sV", elementaryExpr("uint"))
	assert.Equal(t, host.Storage, EffectiveLocation(v, contract, nil))

	extFn := &host.FunctionDeclaration{Name_: "f", Visibility: host.External}
	assert.Equal(t, host.CallData, EffectiveLocation(v, extFn, nil))

	pubFn := &host.FunctionDeclaration{Name_: "g", Visibility: host.Public}
	assert.Equal(t, host.Memory, EffectiveLocation(v, pubFn, nil))

	storageLoc := host.Storage
	explicit := &host.VariableDeclaration{Name_: "sv", TypeExpr: elementaryExpr("uint"), Loc: &storageLoc}
	assert.Equal(t, host.Storage, EffectiveLocation(explicit, pubFn, nil))

	memoryLoc := host.Memory
	assert.Equal(t, host.Memory, EffectiveLocation(v, nil, &memoryLoc), "struct field falls back to container's location")
}

func TestIngestVariableSpecializesReferenceTypes(t *testing.T) {
	t.Parallel()

	contract := &host.ContractDeclaration{Name_: "C"}
	sBy := variable("sBy", elementaryExpr("bytes"))
	ty := IngestVariable(sBy, contract, nil)
	assert.Equal(t, PointerType{To: BytesType{}, Location: host.Storage}, ty)

	extFn := &host.FunctionDeclaration{Name_: "f", Visibility: host.External}
	param := variable("p", elementaryExpr("bytes"))
	ty = IngestVariable(param, extFn, nil)
	assert.Equal(t, PointerType{To: BytesType{}, Location: host.CallData}, ty)
}

// Specialize/despecialize round trip (§8 invariant 2): for every T
// ingestTypeName can produce, and every location, despecialize(specialize(T, L)) == T.
func TestSpecializeDespecializeRoundTrip(t *testing.T) {
	t.Parallel()

	structDecl := &host.StructDeclaration{Name_: "S"}
	contractDecl := &host.ContractDeclaration{Name_: "C"}
	enumDecl := &host.EnumDeclaration{Name_: "E"}

	size := uint64(3)
	cases := []Type{
		BoolType{},
		IntType{Bits: 32, Signed: false},
		FixedBytesType{Width: 4},
		AddressType{},
		BytesType{},
		StringType{},
		ArrayType{Element: IntType{Bits: 256, Signed: false}},
		ArrayType{Element: BytesType{}, Size: &size},
		MappingType{Key: AddressType{}, Value: IntType{Bits: 256, Signed: false}},
		UserDefinedType{Def: structDecl},
		UserDefinedType{Def: contractDecl},
		UserDefinedType{Def: enumDecl},
	}

	for _, general := range cases {
		for _, loc := range []host.DataLocation{host.Storage, host.Memory, host.CallData} {
			specialized := Specialize(general, loc)
			roundTripped := Despecialize(specialized)
			assert.True(
				t,
				roundTripped.Equal(general),
				"despecialize(specialize(%s, %s)) = %s, want %s",
				general, loc, roundTripped, general,
			)
		}
	}
}

func TestSpecializeEnumStaysUnwrapped(t *testing.T) {
	t.Parallel()

	enum := UserDefinedType{Def: &host.EnumDeclaration{Name_: "E"}}
	require.Equal(t, enum, Specialize(enum, host.Storage), "enums are value types, never pointer-wrapped")
}
