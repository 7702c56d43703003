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
	"github.com/solidity-tools/specsema/runtime/errors"
	"github.com/solidity-tools/specsema/runtime/host"
)

// IngestTypeName converts a host AST type expression to the type
// algebra, without any pointer wrapping. Callers that need a concrete,
// located type for a declaration should go through IngestVariable
// instead.
func IngestTypeName(t host.TypeExpr) Type {
	switch expr := t.(type) {
	case *host.ElementaryTypeExpr:
		ty, ok, malformed := elementaryType(expr.Name)
		if malformed {
			panic(errors.NewUnexpectedError("out-of-range elementary type name: %s", expr.Name))
		}
		if !ok {
			panic(errors.NewUnexpectedError("unknown elementary type name: %s", expr.Name))
		}
		return ty

	case *host.ArrayTypeExpr:
		element := IngestTypeName(expr.Element)
		return ArrayType{Element: element, Size: expr.Size}

	case *host.MappingTypeExpr:
		return MappingType{
			Key:   IngestTypeName(expr.Key),
			Value: IngestTypeName(expr.Value),
		}

	case *host.UserDefinedTypeExpr:
		return UserDefinedType{Def: expr.Def}

	case *host.FunctionTypeExpr:
		params := make([]Type, len(expr.Parameters))
		for i, p := range expr.Parameters {
			params[i] = IngestVariable(p, nil, nil)
		}
		returns := make([]Type, len(expr.Returns))
		for i, r := range expr.Returns {
			returns[i] = IngestVariable(r, nil, nil)
		}
		return FunctionType{
			Params:     params,
			Returns:    returns,
			Visibility: expr.Visibility,
			Mutability: expr.Mutability,
		}

	default:
		panic(errors.NewUnexpectedError("cannot ingest unsupported host type expression: %T", t))
	}
}

// EffectiveLocation determines the data location a variable declaration
// resolves to, per §4.B:
//   - an explicit location on the declaration wins;
//   - a contract state variable defaults to Storage;
//   - a function parameter/return defaults to CallData if the
//     function is external, else Memory;
//   - otherwise (a struct field) the container's location, baseLoc,
//     is used.
func EffectiveLocation(v *host.VariableDeclaration, owner any, baseLoc *host.DataLocation) host.DataLocation {
	if v.Loc != nil {
		return *v.Loc
	}
	switch o := owner.(type) {
	case *host.ContractDeclaration:
		_ = o
		return host.Storage
	case *host.FunctionDeclaration:
		if o.IsExternal() {
			return host.CallData
		}
		return host.Memory
	}
	if baseLoc != nil {
		return *baseLoc
	}
	// No location could be determined (e.g. a bare function-type
	// value's parameter). Specialize ignores the location for anything
	// but a reference type, so this default is only ever observed on
	// value types.
	return host.Memory
}

// IngestVariable ingests v's declared type and specializes it to v's
// effective data location. owner should be the *host.ContractDeclaration
// or *host.FunctionDeclaration that v belongs to, or nil when v is a
// struct field (in which case baseLoc, the container's own location,
// is required). Passing both owner and baseLoc nil is only valid for a
// variable that declares its own location explicitly.
func IngestVariable(v *host.VariableDeclaration, owner any, baseLoc *host.DataLocation) Type {
	general := IngestTypeName(v.TypeExpr)
	loc := EffectiveLocation(v, owner, baseLoc)
	return Specialize(general, loc)
}

// Specialize converts a location-less type template into a
// location-qualified concrete type by wrapping reference types in a
// Pointer. T must contain no pointers already.
func Specialize(t Type, loc host.DataLocation) Type {
	switch v := t.(type) {
	case BytesType, StringType:
		return PointerType{To: t, Location: loc}

	case ArrayType:
		return PointerType{
			To: ArrayType{
				Element: Specialize(v.Element, loc),
				Size:    v.Size,
			},
			Location: loc,
		}

	case MappingType:
		return PointerType{
			To: MappingType{
				Key:   Specialize(v.Key, host.Memory),
				Value: Specialize(v.Value, host.Storage),
			},
			Location: host.Storage,
		}

	case UserDefinedType:
		switch {
		case v.IsContract():
			return PointerType{To: t, Location: host.Storage}
		case v.IsStruct():
			return PointerType{To: t, Location: loc}
		default: // enum: value type, unchanged
			return t
		}

	default:
		return t
	}
}

// Despecialize strips a Pointer and recursively despecializes Array
// elements and Mapping key/value. It is the left inverse of
// Specialize: Despecialize(Specialize(T, L)) == T for every T
// IngestTypeName can produce.
func Despecialize(t Type) Type {
	ptr, ok := t.(PointerType)
	if !ok {
		return t
	}
	switch v := ptr.To.(type) {
	case ArrayType:
		return ArrayType{
			Element: Despecialize(v.Element),
			Size:    v.Size,
		}
	case MappingType:
		return MappingType{
			Key:   Despecialize(v.Key),
			Value: Despecialize(v.Value),
		}
	default:
		return ptr.To
	}
}
