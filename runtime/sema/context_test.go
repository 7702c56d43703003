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
)

func TestLookupVarFindsFunctionParameterBeforeStateVariable(t *testing.T) {
	t.Parallel()

	foo := newFooContract()
	foo.Functions[0].Parameters = append(foo.Functions[0].Parameters,
		variable("sV1", elementaryExpr("bool")), // shadows the state var of the same name
	)
	ctx := NewContext(newProgram(foo), foo)
	ctx.PushFunction(foo.Functions[0])

	ref, ok := lookupVar("sV1", ctx)
	require.True(t, ok)
	assert.Equal(t, VarRefHost, ref.Kind)
	assert.Same(t, foo.Functions[0].Parameters[len(foo.Functions[0].Parameters)-1], ref.HostVar)
}

func TestLookupVarFindsStateVariableAcrossBaseChain(t *testing.T) {
	t.Parallel()

	base := &host.ContractDeclaration{
		Name_:     "Base",
		StateVars: []*host.VariableDeclaration{variable("baseVar", elementaryExpr("uint"))},
	}
	derived := &host.ContractDeclaration{Name_: "Derived"}
	derived.Bases_ = []*host.ContractDeclaration{derived, base}

	ctx := NewContext(newProgram(base, derived), derived)
	ref, ok := lookupVar("baseVar", ctx)
	require.True(t, ok)
	assert.Equal(t, VarRefHost, ref.Kind)
	assert.Same(t, base, ref.Owner)
}

func TestLookupVarFindsLetBoundNameBeforeOuterScopes(t *testing.T) {
	t.Parallel()

	ctx, foo := fooContext()
	let := &LetExpr{
		Names: []string{"sV1"}, // shadows the state var of the same name
		Rhs:   intLit(1),
		Body:  ident("sV1"),
	}
	ctx.PushLet(let)

	ref, ok := lookupVar("sV1", ctx)
	require.True(t, ok)
	assert.Equal(t, VarRefLet, ref.Kind)
	assert.Same(t, let, ref.Let)
	_ = foo
}

func TestLookupVarMissReturnsFalse(t *testing.T) {
	t.Parallel()

	ctx, _ := fooContext()
	_, ok := lookupVar("doesNotExist", ctx)
	assert.False(t, ok)
}

func TestResolveTypeNameSkipsFunctionAndLetScopes(t *testing.T) {
	t.Parallel()

	enum := &host.EnumDeclaration{Name_: "Color", Constants: []string{"Red"}}
	foo := newFooContract()
	foo.Enums = append(foo.Enums, enum)
	ctx := NewContext(newProgram(foo), foo)
	ctx.PushFunction(foo.Functions[0])
	ctx.PushLet(&LetExpr{Names: []string{"a"}, Rhs: intLit(1), Body: intLit(1)})

	decl, ok := resolveTypeName("Color", ctx)
	require.True(t, ok)
	assert.Same(t, enum, decl)
}

func TestResolveTypeNameFindsTopLevelContract(t *testing.T) {
	t.Parallel()

	other := &host.ContractDeclaration{Name_: "Other"}
	foo := newFooContract()
	ctx := NewContext(newProgram(foo, other), foo)

	decl, ok := resolveTypeName("Other", ctx)
	require.True(t, ok)
	assert.Same(t, other, decl)
}

func TestContractAndFunctionAccessors(t *testing.T) {
	t.Parallel()

	ctx, foo := fooContext()
	assert.Same(t, foo, ctx.Contract())
	assert.Nil(t, ctx.Function())

	ctx.PushFunction(foo.Functions[0])
	assert.Same(t, foo.Functions[0], ctx.Function())

	ctx.PushLet(&LetExpr{Names: []string{"a"}, Rhs: intLit(1), Body: intLit(1)})
	assert.Same(t, foo.Functions[0], ctx.Function(), "a let scope doesn't hide the enclosing function")
}

func TestCloneIsIndependentOfSubsequentPushes(t *testing.T) {
	t.Parallel()

	ctx, foo := fooContext()
	clone := ctx.Clone()
	clone.PushFunction(foo.Functions[0])

	assert.Nil(t, ctx.Function())
	assert.Same(t, foo.Functions[0], clone.Function())
}
