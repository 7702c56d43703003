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

import "github.com/solidity-tools/specsema/runtime/host"

// Scope is one entry in a TypingContext's stack. It is one of
// *globalScope, *contractScope, *functionScope or *letScope.
type Scope interface {
	isScope()
}

type globalScope struct {
	Program *host.Program
}

type contractScope struct {
	Contract *host.ContractDeclaration
}

type functionScope struct {
	Function *host.FunctionDeclaration
}

type letScope struct {
	Let *LetExpr
}

func (*globalScope) isScope()   {}
func (*contractScope) isScope() {}
func (*functionScope) isScope() {}
func (*letScope) isScope()      {}

// TypingContext is the ordered scope stack of §3.2: source units,
// contract, function, and any number of nested let bindings, outermost
// first. The driver always supplies at least the global and contract
// scopes; function and let scopes are pushed as checking descends into
// them.
type TypingContext struct {
	scopes []Scope
}

// NewContext builds the base context the driver hands to the checker:
// the global scope followed by the contract the annotation is attached
// to.
func NewContext(program *host.Program, contract *host.ContractDeclaration) *TypingContext {
	return &TypingContext{
		scopes: []Scope{
			&globalScope{Program: program},
			&contractScope{Contract: contract},
		},
	}
}

// Clone returns a context sharing the same scope stack, safe to push
// onto independently of the receiver (e.g. to check a default-arg
// expression against a different function scope).
func (ctx *TypingContext) Clone() *TypingContext {
	scopes := make([]Scope, len(ctx.scopes))
	copy(scopes, ctx.scopes)
	return &TypingContext{scopes: scopes}
}

func (ctx *TypingContext) push(s Scope) {
	ctx.scopes = append(ctx.scopes, s)
}

func (ctx *TypingContext) Pop() {
	ctx.scopes = ctx.scopes[:len(ctx.scopes)-1]
}

// PushFunction enters a function scope, exposing its parameters and
// return parameters to lookupVar and making $result valid.
func (ctx *TypingContext) PushFunction(fn *host.FunctionDeclaration) {
	ctx.push(&functionScope{Function: fn})
}

// PushLet enters a let scope, exposing its bound names to lookupVar.
func (ctx *TypingContext) PushLet(let *LetExpr) {
	ctx.push(&letScope{Let: let})
}

// Contract returns the contract scope nearest the top of the stack, or
// nil if none is present (should not happen: the driver always
// supplies one).
func (ctx *TypingContext) Contract() *host.ContractDeclaration {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		if c, ok := ctx.scopes[i].(*contractScope); ok {
			return c.Contract
		}
	}
	return nil
}

// Function returns the innermost function scope, or nil if the
// context has none pushed (e.g. checking a contract-level invariant
// rather than a function pre/postcondition).
func (ctx *TypingContext) Function() *host.FunctionDeclaration {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		switch s := ctx.scopes[i].(type) {
		case *functionScope:
			return s.Function
		case *letScope:
			continue
		default:
			return nil
		}
	}
	return nil
}

func (ctx *TypingContext) program() *host.Program {
	for _, s := range ctx.scopes {
		if g, ok := s.(*globalScope); ok {
			return g.Program
		}
	}
	return nil
}

// VarRefKind distinguishes what lookupVar found.
type VarRefKind uint8

const (
	VarRefHost VarRefKind = iota // a host state variable, parameter or return
	VarRefLet                    // a let-bound name
)

// VarRef is what lookupVar returns: a pointer to a host variable
// declaration plus enough context to ingest its type, or a reference
// into a let scope.
type VarRef struct {
	Kind VarRefKind

	// VarRefHost
	HostVar *host.VariableDeclaration
	Owner   any // *host.ContractDeclaration or *host.FunctionDeclaration

	// VarRefLet
	Let   *LetExpr
	Index int
}

// lookupVar walks ctx top-down (innermost scope first):
//   - a function scope is scanned (parameters, then returns);
//   - a contract scope is scanned (state variables of every base, in
//     linearization order);
//   - a let scope is scanned (its left-hand names);
//   - the global scope never has variables and ends the walk.
func lookupVar(name string, ctx *TypingContext) (VarRef, bool) {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		switch s := ctx.scopes[i].(type) {
		case *functionScope:
			for _, p := range s.Function.Parameters {
				if p.Name_ == name {
					return VarRef{Kind: VarRefHost, HostVar: p, Owner: s.Function}, true
				}
			}
			for _, r := range s.Function.Returns {
				if r.Name_ == name {
					return VarRef{Kind: VarRefHost, HostVar: r, Owner: s.Function}, true
				}
			}

		case *contractScope:
			for _, base := range s.Contract.Bases() {
				for _, v := range base.StateVars {
					if v.Name_ == name {
						return VarRef{Kind: VarRefHost, HostVar: v, Owner: base}, true
					}
				}
			}

		case *letScope:
			for idx, n := range s.Let.Names {
				if n == name {
					return VarRef{Kind: VarRefLet, Let: s.Let, Index: idx}, true
				}
			}

		case *globalScope:
			return VarRef{}, false
		}
	}
	return VarRef{}, false
}

// resolveTypeName walks ctx top-down, skipping function and let
// scopes:
//   - a contract scope is searched (structs and enums of every base);
//   - the global scope is searched (every source unit's top-level
//     structs and enums, then contracts).
func resolveTypeName(name string, ctx *TypingContext) (host.Declaration, bool) {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		switch s := ctx.scopes[i].(type) {
		case *contractScope:
			for _, base := range s.Contract.Bases() {
				for _, st := range base.Structs {
					if st.Name_ == name {
						return st, true
					}
				}
				for _, en := range base.Enums {
					if en.Name_ == name {
						return en, true
					}
				}
			}

		case *globalScope:
			if s.Program == nil {
				return nil, false
			}
			for _, unit := range s.Program.Units {
				for _, st := range unit.Structs {
					if st.Name_ == name {
						return st, true
					}
				}
				for _, en := range unit.Enums {
					if en.Name_ == name {
						return en, true
					}
				}
			}
			for _, unit := range s.Program.Units {
				for _, c := range unit.Contracts {
					if c.Name_ == name {
						return c, true
					}
				}
			}
		}
	}
	return nil, false
}
