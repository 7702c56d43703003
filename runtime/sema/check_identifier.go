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

// checkIdentifier tries the resolution orders of §4.D in turn,
// stamping the winning def-site on id.
func (c *Checker) checkIdentifier(id *IdentifierExpr, ctx *TypingContext) (Type, error) {
	// 1. this
	if id.Name == ThisIdentifier {
		contract := ctx.Contract()
		if contract == nil {
			return nil, newUnknownId(id, id.Name)
		}
		c.Elaboration.setDefSite(id, DefSite{Kind: DefSiteThis})
		return PointerType{
			To:       UserDefinedType{Def: contract},
			Location: host.Storage,
		}, nil
	}

	// 2. builtin type name
	if bt, ok := detectBuiltinType(id.Name); ok {
		return bt, nil
	}

	// 3. variable
	if ref, ok := lookupVar(id.Name, ctx); ok {
		t, err := c.checkVarRef(id, ref, ctx)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	// 4. function by name in the current contract
	if contract := ctx.Contract(); contract != nil {
		if fns := contract.FunctionsNamed(id.Name); len(fns) > 0 {
			defs := make([]FunctionOrGetter, len(fns))
			for i, fn := range fns {
				defs[i] = FunctionMember(fn)
			}
			c.Elaboration.setDefSite(id, DefSite{Kind: DefSiteFunction})
			return &FunctionSetType{Defs: defs}, nil
		}
	}

	// 5. type name
	if decl, ok := resolveTypeName(id.Name, ctx); ok {
		c.Elaboration.setDefSite(id, DefSite{Kind: DefSiteType})
		return UserDefinedTypeNameType{Def: decl}, nil
	}

	// 6. builtin symbol
	if t, ok := lookupBuiltinSymbol(id.Name); ok {
		return t, nil
	}

	// 7. unknown
	return nil, newUnknownId(id, id.Name)
}

func (c *Checker) checkVarRef(id *IdentifierExpr, ref VarRef, ctx *TypingContext) (Type, error) {
	switch ref.Kind {
	case VarRefHost:
		if ref.HostVar.TypeExpr == nil {
			return nil, newMissingSolidityType(id, id.Name)
		}
		c.Elaboration.setDefSite(id, DefSite{Kind: DefSiteHostVar, HostVar: &ref})
		return IngestVariable(ref.HostVar, ref.Owner, nil), nil

	case VarRefLet:
		c.Elaboration.setDefSite(id, DefSite{Kind: DefSiteLet, Let: ref.Let, LetIdx: ref.Index})
		rhsType, err := c.Check(ref.Let.Rhs, ctx)
		if err != nil {
			return nil, err
		}
		if tuple, ok := rhsType.(TupleType); ok && len(ref.Let.Names) == len(tuple.Elements) {
			return tuple.Elements[ref.Index], nil
		}
		return rhsType, nil

	default:
		return nil, newUnknownId(id, id.Name)
	}
}

// checkResult handles `$result`: valid only when a function scope is
// in effect.
func (c *Checker) checkResult(expr *ResultExpr, ctx *TypingContext) (Type, error) {
	fn := ctx.Function()
	if fn == nil {
		return nil, newInvalidKeyword(expr, ResultIdentifier)
	}

	switch len(fn.Returns) {
	case 0:
		return nil, newInvalidKeyword(expr, ResultIdentifier)
	case 1:
		return IngestVariable(fn.Returns[0], fn, nil), nil
	default:
		elements := make([]Type, len(fn.Returns))
		for i, r := range fn.Returns {
			elements[i] = IngestVariable(r, fn, nil)
		}
		return TupleType{Elements: elements}, nil
	}
}
