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

func (c *Checker) checkMember(expr *MemberExpr, ctx *TypingContext) (Type, error) {
	baseType, err := c.Check(expr.Base, ctx)
	if err != nil {
		return nil, err
	}

	if t, found := c.memberLookup(expr, baseType, ctx); found {
		return t, nil
	}

	if t, found := c.usingForFallback(expr, baseType, ctx); found {
		return t, nil
	}

	return nil, newNoField(expr.MemberRange, baseType, expr.Member)
}

func (c *Checker) memberLookup(expr *MemberExpr, baseType Type, ctx *TypingContext) (Type, bool) {
	member := expr.Member

	switch b := baseType.(type) {
	case *BuiltinStructType:
		return b.Member(member)

	case PointerType:
		return c.memberLookupOnPointer(expr, b, ctx)

	case AddressType:
		return addressMembers().Get(member)

	case UserDefinedTypeNameType:
		return c.memberLookupOnTypeName(b, member)

	case *FunctionSetType:
		if member == "selector" && len(b.Defs) == 1 {
			return FixedBytesType{Width: 4}, true
		}
		return nil, false

	default:
		return nil, false
	}
}

func (c *Checker) memberLookupOnPointer(expr *MemberExpr, ptr PointerType, ctx *TypingContext) (Type, bool) {
	member := expr.Member

	switch to := ptr.To.(type) {
	case ArrayType:
		if member == "length" {
			return IntType{Bits: 256, Signed: false}, true
		}
		return nil, false

	case UserDefinedType:
		switch {
		case to.IsStruct():
			st, ok := to.Def.(*host.StructDeclaration)
			if !ok {
				return nil, false
			}
			for _, field := range st.Fields {
				if field.Name_ == member {
					return IngestVariable(field, nil, &ptr.Location), true
				}
			}
			return nil, false

		case to.IsContract():
			contract, ok := to.Def.(*host.ContractDeclaration)
			if !ok {
				return nil, false
			}
			if fns := contract.FunctionsNamed(member); len(fns) > 0 {
				defs := make([]FunctionOrGetter, len(fns))
				for i, fn := range fns {
					defs[i] = FunctionMember(fn)
				}
				return &FunctionSetType{Defs: defs}, true
			}
			if v, ok := contract.StateVarNamed(member); ok && v.Public {
				return &FunctionSetType{Defs: []FunctionOrGetter{GetterMember(v)}}, true
			}
			return addressMembers().Get(member)

		default:
			return nil, false
		}

	default:
		return nil, false
	}
}

func (c *Checker) memberLookupOnTypeName(t UserDefinedTypeNameType, member string) (Type, bool) {
	switch d := t.Def.(type) {
	case *host.ContractDeclaration:
		for _, st := range d.Structs {
			if st.Name_ == member {
				return UserDefinedTypeNameType{Def: st}, true
			}
		}
		for _, en := range d.Enums {
			if en.Name_ == member {
				return UserDefinedTypeNameType{Def: en}, true
			}
		}
		if fns := d.FunctionsNamed(member); len(fns) > 0 {
			defs := make([]FunctionOrGetter, len(fns))
			for i, fn := range fns {
				defs[i] = FunctionMember(fn)
			}
			return &FunctionSetType{Defs: defs}, true
		}
		return nil, false

	case *host.LibraryDeclaration:
		var defs []FunctionOrGetter
		for _, fn := range d.Functions {
			if fn.Name_ == member {
				defs = append(defs, FunctionMember(fn))
			}
		}
		if len(defs) == 0 {
			return nil, false
		}
		return &FunctionSetType{Defs: defs}, true

	case *host.EnumDeclaration:
		if d.HasConstant(member) {
			return UserDefinedType{Def: d}, true
		}
		return nil, false

	default:
		return nil, false
	}
}

// usingForFallback implements the §4.D `using for` rule: collect every
// function named member in a using-for-attached library, across every
// base of the current contract, whose directive is either unrestricted
// or targets baseType's general (despecialized) form.
func (c *Checker) usingForFallback(expr *MemberExpr, baseType Type, ctx *TypingContext) (Type, bool) {
	contract := ctx.Contract()
	if contract == nil {
		return nil, false
	}

	general := Despecialize(baseType)

	var defs []FunctionOrGetter
	for _, base := range contract.Bases() {
		for _, uf := range base.UsingFor {
			if uf.Target != nil {
				target := IngestTypeName(uf.Target)
				if !target.Equal(general) {
					continue
				}
			}
			for _, fn := range uf.Library.Functions {
				if fn.Name_ == expr.Member {
					defs = append(defs, FunctionMember(fn))
				}
			}
		}
	}

	if len(defs) == 0 {
		return nil, false
	}
	return &FunctionSetType{Defs: defs, DefaultArg: expr.Base}, true
}
