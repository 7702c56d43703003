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
	"math/big"
	"testing"

	"go.uber.org/goleak"

	"github.com/solidity-tools/specsema/runtime/host"
	"github.com/solidity-tools/specsema/runtime/source"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func elementaryExpr(name string) *host.ElementaryTypeExpr {
	return host.NewElementaryTypeExpr(name, source.Range{})
}

func variable(name string, typeExpr host.TypeExpr) *host.VariableDeclaration {
	return &host.VariableDeclaration{Name_: name, TypeExpr: typeExpr}
}

func loc(l host.DataLocation) *host.DataLocation { return &l }

func ident(name string) *IdentifierExpr {
	return &IdentifierExpr{Name: name}
}

func intLit(v int64) *IntLiteralExpr {
	return &IntLiteralExpr{Value: big.NewInt(v)}
}

// newFooContract builds the `Foo` fixture contract used across the
// scenario tests in §8 of the type-checker's requirements: state
// variables `sV1 int128`, `sBy bytes`, `sB bool`, `sV uint`,
// `sFB32 bytes32`, and a function
// `add(int8 x, uint64 y) returns (uint64 add)`.
func newFooContract() *host.ContractDeclaration {
	addFn := &host.FunctionDeclaration{
		Name_: "add",
		Parameters: []*host.VariableDeclaration{
			variable("x", elementaryExpr("int8")),
			variable("y", elementaryExpr("uint64")),
		},
		Returns: []*host.VariableDeclaration{
			variable("add", elementaryExpr("uint64")),
		},
		Visibility: host.Public,
	}

	foo := &host.ContractDeclaration{
		Name_: "Foo",
		StateVars: []*host.VariableDeclaration{
			variable("sV1", elementaryExpr("int128")),
			variable("sBy", elementaryExpr("bytes")),
			variable("sB", elementaryExpr("bool")),
			variable("sV", elementaryExpr("uint")),
			variable("sFB32", elementaryExpr("bytes32")),
		},
		Functions: []*host.FunctionDeclaration{addFn},
	}
	addFn.Contract = foo
	return foo
}

func newProgram(contracts ...*host.ContractDeclaration) *host.Program {
	return &host.Program{
		Units: []*host.SourceUnit{
			{Contracts: contracts},
		},
	}
}

func fooContext() (*TypingContext, *host.ContractDeclaration) {
	foo := newFooContract()
	return NewContext(newProgram(foo), foo), foo
}

func fooAddContext() *TypingContext {
	ctx, foo := fooContext()
	ctx.PushFunction(foo.Functions[0])
	return ctx
}
