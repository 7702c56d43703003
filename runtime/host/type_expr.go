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

package host

import "github.com/solidity-tools/specsema/runtime/source"

// TypeExpr is a host-language type expression, as written at a
// declaration site (a variable's declared type, a function's parameter
// type, a cast target, ...). It carries no notion of data location;
// the checker attaches that separately via specialization.
type TypeExpr interface {
	isTypeExpr()
	StartPosition() source.Position
	EndPosition() source.Position
}

type baseTypeExpr struct {
	Range source.Range
}

func (baseTypeExpr) isTypeExpr() {}
func (b baseTypeExpr) StartPosition() source.Position { return b.Range.StartPos }
func (b baseTypeExpr) EndPosition() source.Position   { return b.Range.EndPos }

// ElementaryTypeExpr is a single-token elementary type name: bool,
// address, address payable, an int_const literal marker, (u)?int(N)?,
// bytes(N), byte, bytes, string.
type ElementaryTypeExpr struct {
	baseTypeExpr
	Name string
}

func NewElementaryTypeExpr(name string, r source.Range) *ElementaryTypeExpr {
	return &ElementaryTypeExpr{baseTypeExpr{r}, name}
}

// ArrayTypeExpr is T[] (Size == nil) or T[N] (Size holds the literal
// size). Non-literal sizes are a parse-time concern for the host
// language and never reach the checker as anything but a literal or
// absent size.
type ArrayTypeExpr struct {
	baseTypeExpr
	Element TypeExpr
	Size    *uint64
}

func NewArrayTypeExpr(element TypeExpr, size *uint64, r source.Range) *ArrayTypeExpr {
	return &ArrayTypeExpr{baseTypeExpr{r}, element, size}
}

// MappingTypeExpr is mapping(K => V).
type MappingTypeExpr struct {
	baseTypeExpr
	Key   TypeExpr
	Value TypeExpr
}

func NewMappingTypeExpr(key, value TypeExpr, r source.Range) *MappingTypeExpr {
	return &MappingTypeExpr{baseTypeExpr{r}, key, value}
}

// UserDefinedTypeExpr names a struct, enum or contract declaration the
// host symbol table has already resolved this reference to.
type UserDefinedTypeExpr struct {
	baseTypeExpr
	Def Declaration
}

func NewUserDefinedTypeExpr(def Declaration, r source.Range) *UserDefinedTypeExpr {
	return &UserDefinedTypeExpr{baseTypeExpr{r}, def}
}

// FunctionTypeExpr is a function type value, e.g. `function (uint) external view returns (bool)`.
type FunctionTypeExpr struct {
	baseTypeExpr
	Parameters []*VariableDeclaration
	Returns    []*VariableDeclaration
	Visibility Visibility
	Mutability Mutability
}

func NewFunctionTypeExpr(
	params, returns []*VariableDeclaration,
	vis Visibility,
	mut Mutability,
	r source.Range,
) *FunctionTypeExpr {
	return &FunctionTypeExpr{baseTypeExpr{r}, params, returns, vis, mut}
}
