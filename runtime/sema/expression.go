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

	"github.com/solidity-tools/specsema/runtime/source"
)

// ExprNode is the closed sum of annotation-language AST node variants
// the checker dispatches on. The expression parser (an external
// collaborator) is the only producer of these; the checker only reads
// them, except for stamping def-sites on IdentifierExpr via the
// Elaboration side-table.
//
// New variants are added by extending this sum, never by subclassing:
// Check's dispatch is an exhaustive type switch.
type ExprNode interface {
	source.HasPosition
	isExprNode()
}

type baseExpr struct {
	Range source.Range
}

func (baseExpr) isExprNode() {}

func (b baseExpr) StartPosition() source.Position { return b.Range.StartPos }
func (b baseExpr) EndPosition() source.Position   { return b.Range.EndPos }

// Literals

type BoolLiteralExpr struct {
	baseExpr
	Value bool
}

type IntLiteralExpr struct {
	baseExpr
	Value *big.Int
}

// StringLiteralExpr covers both quoted string literals and hex string
// literals (hex"...").
type StringLiteralExpr struct {
	baseExpr
	Value string
	IsHex bool
}

type AddressLiteralExpr struct {
	baseExpr
	Value string
}

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	baseExpr
	Name string
}

// ResultExpr is `$result`.
type ResultExpr struct {
	baseExpr
}

// UnaryOp enumerates the prefix operators of §4.D.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota // !
	UnaryNeg                // -
)

type UnaryExpr struct {
	baseExpr
	Op      UnaryOp
	Operand ExprNode
}

// OldExpr is `old(e)`: a semantic marker whose type is exactly the
// type of e.
type OldExpr struct {
	baseExpr
	Operand ExprNode
}

// BinaryOp enumerates every infix operator of §4.D's table.
type BinaryOp uint8

const (
	OpPow        BinaryOp = iota // **
	OpMul                        // *
	OpDiv                        // /
	OpMod                        // %
	OpAdd                        // +
	OpSub                        // -
	OpShl                        // <<
	OpShr                        // >>
	OpLt                         // <
	OpGt                         // >
	OpLe                         // <=
	OpGe                         // >=
	OpEq                         // ==
	OpNe                         // !=
	OpBitOr                      // |
	OpBitAnd                     // &
	OpBitXor                     // ^
	OpOr                         // ||
	OpAnd                        // &&
	OpImplies                    // ==>
)

type BinaryExpr struct {
	baseExpr
	Op    BinaryOp
	Left  ExprNode
	Right ExprNode
}

// ConditionalExpr is `c ? a : b`.
type ConditionalExpr struct {
	baseExpr
	Cond ExprNode
	Then ExprNode
	Else ExprNode
}

// IndexExpr is `base[idx]`.
type IndexExpr struct {
	baseExpr
	Base  ExprNode
	Index ExprNode
}

// MemberExpr is `base.member`.
type MemberExpr struct {
	baseExpr
	Base   ExprNode
	Member string
	// MemberRange is the range of just the member name, used by
	// diagnostics that should point at the field rather than the whole
	// access.
	MemberRange source.Range
}

// LetExpr is `let x1, ..., xn = rhs in body`.
type LetExpr struct {
	baseExpr
	Names []string
	Rhs   ExprNode
	Body  ExprNode
}

// CallExpr is `callee(a1, ..., ak)`.
type CallExpr struct {
	baseExpr
	Callee ExprNode
	Args   []ExprNode
}
