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
	"strings"

	"github.com/solidity-tools/specsema/runtime/common/orderedmap"
	"github.com/solidity-tools/specsema/runtime/host"
)

// Type is the closed sum of semantic types described in the data model.
// Every variant below implements it. Equality is structural and
// ignores source positions; String renders the canonical host-language
// spelling.
type Type interface {
	isType()
	Equal(other Type) bool
	String() string
}

// Bool

type BoolType struct{}

func (BoolType) isType()           {}
func (BoolType) String() string    { return "bool" }
func (BoolType) Equal(o Type) bool { _, ok := o.(BoolType); return ok }

// Address

type AddressType struct {
	Payable bool
}

func (AddressType) isType() {}

func (t AddressType) String() string {
	if t.Payable {
		return "address payable"
	}
	return "address"
}

func (t AddressType) Equal(o Type) bool {
	other, ok := o.(AddressType)
	return ok && other.Payable == t.Payable
}

// Int

type IntType struct {
	Bits   int
	Signed bool
}

func (IntType) isType() {}

func (t IntType) String() string {
	prefix := "int"
	if !t.Signed {
		prefix = "uint"
	}
	return fmt.Sprintf("%s%d", prefix, t.Bits)
}

func (t IntType) Equal(o Type) bool {
	other, ok := o.(IntType)
	return ok && other.Bits == t.Bits && other.Signed == t.Signed
}

// IntLiteral

type IntLiteralType struct{}

func (IntLiteralType) isType()        {}
func (IntLiteralType) String() string { return "<integer literal>" }
func (IntLiteralType) Equal(o Type) bool {
	_, ok := o.(IntLiteralType)
	return ok
}

// FixedBytes

type FixedBytesType struct {
	Width int
}

func (FixedBytesType) isType() {}

func (t FixedBytesType) String() string {
	return fmt.Sprintf("bytes%d", t.Width)
}

func (t FixedBytesType) Equal(o Type) bool {
	other, ok := o.(FixedBytesType)
	return ok && other.Width == t.Width
}

// Bytes

type BytesType struct{}

func (BytesType) isType()        {}
func (BytesType) String() string { return "bytes" }
func (BytesType) Equal(o Type) bool {
	_, ok := o.(BytesType)
	return ok
}

// String

type StringType struct{}

func (StringType) isType()        {}
func (StringType) String() string { return "string" }
func (StringType) Equal(o Type) bool {
	_, ok := o.(StringType)
	return ok
}

// StringLiteral

type StringLiteralType struct{}

func (StringLiteralType) isType()        {}
func (StringLiteralType) String() string { return "<string literal>" }
func (StringLiteralType) Equal(o Type) bool {
	_, ok := o.(StringLiteralType)
	return ok
}

// Array

type ArrayType struct {
	Element Type
	Size    *uint64 // nil: dynamically sized
}

func (ArrayType) isType() {}

func (t ArrayType) String() string {
	if t.Size == nil {
		return fmt.Sprintf("%s[]", t.Element)
	}
	return fmt.Sprintf("%s[%d]", t.Element, *t.Size)
}

func (t ArrayType) Equal(o Type) bool {
	other, ok := o.(ArrayType)
	if !ok || !other.Element.Equal(t.Element) {
		return false
	}
	if (t.Size == nil) != (other.Size == nil) {
		return false
	}
	return t.Size == nil || *t.Size == *other.Size
}

// Mapping

type MappingType struct {
	Key   Type
	Value Type
}

func (MappingType) isType() {}

func (t MappingType) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key, t.Value)
}

func (t MappingType) Equal(o Type) bool {
	other, ok := o.(MappingType)
	return ok && other.Key.Equal(t.Key) && other.Value.Equal(t.Value)
}

// UserDefined

type UserDefinedType struct {
	Def host.Declaration
}

func (UserDefinedType) isType() {}

func (t UserDefinedType) String() string {
	return t.Def.QualifiedName()
}

func (t UserDefinedType) Equal(o Type) bool {
	other, ok := o.(UserDefinedType)
	return ok && other.Def == t.Def
}

func (t UserDefinedType) IsEnum() bool     { return t.Def.DeclKind() == host.EnumDecl }
func (t UserDefinedType) IsStruct() bool   { return t.Def.DeclKind() == host.StructDecl }
func (t UserDefinedType) IsContract() bool { return t.Def.DeclKind() == host.ContractDecl }

// Tuple: never wrapped in a Pointer, only the type of a multi-return
// call or the right-hand side of a let.

type TupleType struct {
	Elements []Type
}

func (TupleType) isType() {}

func (t TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TupleType) Equal(o Type) bool {
	other, ok := o.(TupleType)
	if !ok || len(other.Elements) != len(t.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// Pointer wraps every reference type with the data location it lives
// at. Value types and Tuple never appear inside one; see IsWellFormed.

type PointerType struct {
	To       Type
	Location host.DataLocation
}

func (PointerType) isType() {}

func (t PointerType) String() string {
	return fmt.Sprintf("%s %s", t.To, t.Location)
}

func (t PointerType) Equal(o Type) bool {
	other, ok := o.(PointerType)
	return ok && other.Location == t.Location && other.To.Equal(t.To)
}

// Function

type FunctionType struct {
	Params     []Type
	Returns    []Type
	Visibility host.Visibility
	Mutability host.Mutability
}

func (FunctionType) isType() {}

func (t FunctionType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	returns := make([]string, len(t.Returns))
	for i, r := range t.Returns {
		returns[i] = r.String()
	}
	s := fmt.Sprintf("function(%s)", strings.Join(params, ", "))
	if len(returns) > 0 {
		s += fmt.Sprintf(" returns (%s)", strings.Join(returns, ", "))
	}
	return s
}

func (t FunctionType) Equal(o Type) bool {
	other, ok := o.(FunctionType)
	if !ok || len(other.Params) != len(t.Params) || len(other.Returns) != len(t.Returns) {
		return false
	}
	for i, p := range t.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	for i, r := range t.Returns {
		if !r.Equal(other.Returns[i]) {
			return false
		}
	}
	return other.Visibility == t.Visibility && other.Mutability == t.Mutability
}

// BuiltinStruct is the type of block/msg/tx.

type BuiltinStructType struct {
	Name_   string
	Members *orderedmap.OrderedMap[string, Type]
}

func NewBuiltinStructType(name string, members *orderedmap.OrderedMap[string, Type]) *BuiltinStructType {
	return &BuiltinStructType{Name_: name, Members: members}
}

func (*BuiltinStructType) isType() {}

func (t *BuiltinStructType) String() string { return t.Name_ }

func (t *BuiltinStructType) Equal(o Type) bool {
	other, ok := o.(*BuiltinStructType)
	return ok && other == t
}

func (t *BuiltinStructType) Member(name string) (Type, bool) {
	return t.Members.Get(name)
}

// BuiltinTypeName is the type of a type literal used as an expression,
// e.g. `uint256` appearing where a cast or struct literal expects a
// callee.

type BuiltinTypeNameType struct {
	Of Type
}

func (BuiltinTypeNameType) isType() {}

func (t BuiltinTypeNameType) String() string {
	return fmt.Sprintf("type(%s)", t.Of)
}

func (t BuiltinTypeNameType) Equal(o Type) bool {
	other, ok := o.(BuiltinTypeNameType)
	return ok && other.Of.Equal(t.Of)
}

// UserDefinedTypeName is the type of a user-defined type used as an
// expression, e.g. a struct or contract name in `S(...)`.

type UserDefinedTypeNameType struct {
	Def host.Declaration
}

func (UserDefinedTypeNameType) isType() {}

func (t UserDefinedTypeNameType) String() string {
	return fmt.Sprintf("type(%s)", t.Def.QualifiedName())
}

func (t UserDefinedTypeNameType) Equal(o Type) bool {
	other, ok := o.(UserDefinedTypeNameType)
	return ok && other.Def == t.Def
}

// FunctionOrGetter is either a function declaration, or a public state
// variable standing in for its implicit getter.
type FunctionOrGetter interface {
	isFunctionOrGetter()
	Name() string
}

type functionMember struct{ Fn *host.FunctionDeclaration }
type getterMember struct{ Var *host.VariableDeclaration }

func (functionMember) isFunctionOrGetter() {}
func (f functionMember) Name() string      { return f.Fn.Name_ }

func (getterMember) isFunctionOrGetter() {}
func (g getterMember) Name() string      { return g.Var.Name_ }

func FunctionMember(fn *host.FunctionDeclaration) FunctionOrGetter { return functionMember{fn} }
func GetterMember(v *host.VariableDeclaration) FunctionOrGetter    { return getterMember{v} }

// FunctionSet is an unresolved overload set, produced by a bare
// identifier or member access that names one or more functions (or a
// getter). It is narrowed to exactly one definition by the surrounding
// call.
type FunctionSetType struct {
	Defs []FunctionOrGetter
	// DefaultArg is the implicit receiver expression a using-for
	// directive inserted; nil when the set was not produced that way.
	DefaultArg ExprNode
}

func (*FunctionSetType) isType() {}

func (t *FunctionSetType) String() string {
	return fmt.Sprintf("<%d-overload function set>", len(t.Defs))
}

func (t *FunctionSetType) Equal(o Type) bool {
	other, ok := o.(*FunctionSetType)
	return ok && other == t
}

// IsReferenceType reports whether t is one of the variants that must
// always be wrapped in a Pointer: Array, Bytes, String, Mapping, and
// struct/contract UserDefined types.
func IsReferenceType(t Type) bool {
	switch v := t.(type) {
	case ArrayType, BytesType, StringType, MappingType:
		return true
	case UserDefinedType:
		return v.IsStruct() || v.IsContract()
	default:
		return false
	}
}

// IsWellFormed checks the invariant of §3.1: reference types appear
// only inside a Pointer, value types never do. A bare Tuple is a
// legitimate top-level result (a multi-return call, a many-return
// $result); the invariant only forbids a Tuple appearing inside a
// Pointer, so a Tuple is well-formed as long as each of its elements
// is (recursion rejects a Tuple nested inside another Tuple, which
// §9 says never occurs).
func IsWellFormed(t Type) bool {
	if ptr, ok := t.(PointerType); ok {
		return IsReferenceType(ptr.To)
	}
	if tuple, ok := t.(TupleType); ok {
		for _, element := range tuple.Elements {
			if _, nested := element.(TupleType); nested || !IsWellFormed(element) {
				return false
			}
		}
		return true
	}
	return !IsReferenceType(t)
}

// IsIntly reports whether t is Int or IntLiteral ("IntLike" in the
// spec's binary-operator table).
func IsIntly(t Type) bool {
	switch t.(type) {
	case IntType, IntLiteralType:
		return true
	default:
		return false
	}
}

// IsFixedBytes reports whether t is a FixedBytes type.
func IsFixedBytes(t Type) bool {
	_, ok := t.(FixedBytesType)
	return ok
}
