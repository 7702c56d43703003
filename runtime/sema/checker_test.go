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

// 1. sV1 (int128 sV1) in Foo -> Int(128, signed)
func TestCheckScenarioStateVariable(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	c := NewChecker()

	ty, err := c.Check(ident("sV1"), ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 128, Signed: true}, ty)
}

// 2. sBy[1] (bytes sBy) in Foo -> Int(8, unsigned)
func TestCheckScenarioBytesIndex(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	c := NewChecker()

	expr := &IndexExpr{Base: ident("sBy"), Index: intLit(1)}
	ty, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 8, Signed: false}, ty)
}

// 3. sB ? x : sV1 (x: int8, sV1: int128) in Foo.add -> Int(128, signed)
func TestCheckScenarioConditionalWidens(t *testing.T) {
	t.Parallel()

	ctx := fooAddContext()
	c := NewChecker()

	expr := &ConditionalExpr{Cond: ident("sB"), Then: ident("x"), Else: ident("sV1")}
	ty, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 128, Signed: true}, ty)
}

// 4. sFB32 << sV (bytes32, uint) in Foo.add -> FixedBytes(32)
func TestCheckScenarioShiftKeepsLeftType(t *testing.T) {
	t.Parallel()

	ctx := fooAddContext()
	c := NewChecker()

	expr := &BinaryExpr{Op: OpShl, Left: ident("sFB32"), Right: ident("sV")}
	ty, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, FixedBytesType{Width: 32}, ty)
}

// 5. u32a.ladd(u32b) with `using Lib for uint32` and
//    `Lib.ladd(uint32,uint32) returns (uint32)` in Foo -> Int(32, unsigned)
func TestCheckScenarioUsingForFallback(t *testing.T) {
	t.Parallel()

	laddFn := &host.FunctionDeclaration{
		Name_: "ladd",
		Parameters: []*host.VariableDeclaration{
			variable("a", elementaryExpr("uint32")),
			variable("b", elementaryExpr("uint32")),
		},
		Returns: []*host.VariableDeclaration{
			variable("r", elementaryExpr("uint32")),
		},
		Visibility: host.Internal,
	}
	lib := &host.LibraryDeclaration{Name_: "Lib", Functions: []*host.FunctionDeclaration{laddFn}}

	foo := newFooContract()
	foo.StateVars = append(foo.StateVars,
		variable("u32a", elementaryExpr("uint32")),
		variable("u32b", elementaryExpr("uint32")),
	)
	foo.UsingFor = []*host.UsingForDirective{
		{Library: lib, Target: elementaryExpr("uint32")},
	}

	ctx := NewContext(newProgram(foo), foo)
	c := NewChecker()

	expr := &CallExpr{
		Callee: &MemberExpr{Base: ident("u32a"), Member: "ladd"},
		Args:   []ExprNode{ident("u32b")},
	}
	ty, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 32, Signed: false}, ty)
}

// 6. $result in Foo.add -> Int(64, unsigned)
func TestCheckScenarioResult(t *testing.T) {
	t.Parallel()

	ctx := fooAddContext()
	c := NewChecker()

	ty, err := c.Check(&ResultExpr{}, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 64, Signed: false}, ty)
}

// 7. add(5, true) in Foo -> UnresolvedFun
func TestCheckScenarioUnresolvedOverload(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	c := NewChecker()

	expr := &CallExpr{
		Callee: ident("add"),
		Args:   []ExprNode{intLit(5), &BoolLiteralExpr{Value: true}},
	}
	_, err := c.Check(expr, ctx)
	var unresolved *UnresolvedFunError
	require.ErrorAs(t, err, &unresolved)
}

// 8. x<<x with x: uint in Foo.add -> ok, Int(256, unsigned); x<<sA -> WrongType
func TestCheckScenarioShiftRequiresIntlyRight(t *testing.T) {
	t.Parallel()

	foo := newFooContract()
	// Retype add's own x (int8 in the fixture) to uint; appending a second
	// x would leave the int8 one first in parameter order.
	foo.Functions[0].Parameters[0] = variable("x", elementaryExpr("uint"))
	ctx := NewContext(newProgram(foo), foo)
	ctx.PushFunction(foo.Functions[0])
	c := NewChecker()

	ty, err := c.Check(&BinaryExpr{Op: OpShl, Left: ident("x"), Right: ident("x")}, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 256, Signed: false}, ty)

	foo.StateVars = append(foo.StateVars, variable("sA", elementaryExpr("address")))
	c2 := NewChecker()
	_, err = c2.Check(&BinaryExpr{Op: OpShl, Left: ident("x"), Right: ident("sA")}, ctx)
	var wrongType *WrongTypeError
	require.ErrorAs(t, err, &wrongType)
}

// 9. FooEnum.X where FooEnum has no X, in Foo -> NoField
func TestCheckScenarioEnumMissingConstant(t *testing.T) {
	t.Parallel()

	enum := &host.EnumDeclaration{Name_: "FooEnum", Constants: []string{"A", "B"}}
	foo := newFooContract()
	foo.Enums = append(foo.Enums, enum)
	ctx := NewContext(newProgram(foo), foo)
	c := NewChecker()

	expr := &MemberExpr{Base: ident("FooEnum"), Member: "X"}
	_, err := c.Check(expr, ctx)
	var noField *NoFieldError
	require.ErrorAs(t, err, &noField)
}

// 10. let a, b = idPair(1,2) in a + b with idPair() returns (uint,uint), in Foo
//     -> Int(256, unsigned)
func TestCheckScenarioLetTupleDestructure(t *testing.T) {
	t.Parallel()

	idPairFn := &host.FunctionDeclaration{
		Name_: "idPair",
		Returns: []*host.VariableDeclaration{
			variable("a", elementaryExpr("uint")),
			variable("b", elementaryExpr("uint")),
		},
		Visibility: host.Public,
	}
	foo := newFooContract()
	foo.Functions = append(foo.Functions, idPairFn)
	idPairFn.Contract = foo
	ctx := NewContext(newProgram(foo), foo)
	c := NewChecker()

	expr := &LetExpr{
		Names: []string{"a", "b"},
		Rhs: &CallExpr{
			Callee: ident("idPair"),
		},
		Body: &BinaryExpr{Op: OpAdd, Left: ident("a"), Right: ident("b")},
	}
	ty, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, IntType{Bits: 256, Signed: false}, ty)
}

// Cache stability (§8 invariant 1): re-checking the same node returns
// the same type and never panics on the well-formedness check.
func TestCheckCacheStability(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	c := NewChecker()

	expr := ident("sV1")
	first, err := c.Check(expr, ctx)
	require.NoError(t, err)
	second, err := c.Check(expr, ctx)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

// $result outside a function scope is invalid.
func TestCheckResultOutsideFunction(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	c := NewChecker()

	_, err := c.Check(&ResultExpr{}, ctx)
	var invalidKeyword *InvalidKeywordError
	require.ErrorAs(t, err, &invalidKeyword)
}

// A public getter over a struct-typed state variable is explicitly
// unimplemented (§9 open question b): it must surface as
// UnsupportedGetterError, never as a silently wrong type.
func TestCheckScenarioUnsupportedStructGetter(t *testing.T) {
	t.Parallel()

	structDecl := &host.StructDeclaration{Name_: "Point"}
	foo := newFooContract()
	foo.Structs = append(foo.Structs, structDecl)
	foo.StateVars = append(foo.StateVars, &host.VariableDeclaration{
		Name_:    "sPoint",
		TypeExpr: host.NewUserDefinedTypeExpr(structDecl, source.Range{}),
		Public:   true,
	})
	ctx := NewContext(newProgram(foo), foo)
	c := NewChecker()

	expr := &CallExpr{Callee: &MemberExpr{Base: ident("this"), Member: "sPoint"}}
	_, err := c.Check(expr, ctx)
	var unsupported *UnsupportedGetterError
	require.ErrorAs(t, err, &unsupported)
}
