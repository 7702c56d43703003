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

func (c *Checker) checkCall(expr *CallExpr, ctx *TypingContext) (Type, error) {
	calleeType, err := c.Check(expr.Callee, ctx)
	if err != nil {
		return nil, err
	}

	switch callee := calleeType.(type) {
	case BuiltinTypeNameType:
		if err := c.checkArgsForSideEffects(expr.Args, ctx); err != nil {
			return nil, err
		}
		if len(expr.Args) != 1 {
			return nil, newExprCountMismatch(expr, 1, len(expr.Args))
		}
		return callee.Of, nil

	case UserDefinedTypeNameType:
		return c.checkUserTypeCast(expr, callee, ctx)

	case *FunctionSetType:
		return c.checkOverloadCall(expr, callee, ctx)

	case FunctionType:
		return c.checkFunctionValueCall(expr, callee, ctx)

	default:
		return nil, newWrongType(expr.Callee, calleeType)
	}
}

func (c *Checker) checkArgsForSideEffects(args []ExprNode, ctx *TypingContext) error {
	for _, a := range args {
		if _, err := c.Check(a, ctx); err != nil {
			return err
		}
	}
	return nil
}

// checkUserTypeCast handles call cases 2-4: struct construction,
// contract casts, and enum casts.
func (c *Checker) checkUserTypeCast(expr *CallExpr, callee UserDefinedTypeNameType, ctx *TypingContext) (Type, error) {
	if err := c.checkArgsForSideEffects(expr.Args, ctx); err != nil {
		return nil, err
	}

	switch d := callee.Def.(type) {
	case *host.StructDeclaration:
		return PointerType{To: UserDefinedType{Def: d}, Location: host.Memory}, nil

	case *host.ContractDeclaration:
		if len(expr.Args) != 1 {
			return nil, newExprCountMismatch(expr, 1, len(expr.Args))
		}
		return PointerType{To: UserDefinedType{Def: d}, Location: host.Storage}, nil

	case *host.EnumDeclaration:
		if len(expr.Args) != 1 {
			return nil, newExprCountMismatch(expr, 1, len(expr.Args))
		}
		// Enums are value types and carry no data location; the cast
		// result is the bare enum type, not a Pointer, preserving the
		// well-formedness invariant at the cost of diverging from a
		// literal "Pointer(type, sourceArg's location)" reading.
		return UserDefinedType{Def: d}, nil

	default:
		panic(errors.NewUnexpectedError("unresolved user-defined type-name definition %T", d))
	}
}

// candidateFormals returns a FunctionOrGetter's formal parameter
// types, its return types, and whether it is a getter, so getters
// (zero formals) and functions share one filtering path. A getter over a struct- or contract-typed state variable
// reports newUnsupportedGetter rather than guessing at a shape (§9
// open question b).
func candidateFormals(expr *CallExpr, def FunctionOrGetter) ([]Type, []Type, bool, error) {
	switch d := def.(type) {
	case functionMember:
		params := make([]Type, len(d.Fn.Parameters))
		for i, p := range d.Fn.Parameters {
			params[i] = IngestVariable(p, d.Fn, nil)
		}
		returns := make([]Type, len(d.Fn.Returns))
		for i, r := range d.Fn.Returns {
			returns[i] = IngestVariable(r, d.Fn, nil)
		}
		return params, returns, false, nil

	case getterMember:
		if u, ok := IngestTypeName(d.Var.TypeExpr).(UserDefinedType); ok && (u.IsStruct() || u.IsContract()) {
			return nil, nil, true, newUnsupportedGetter(expr, d.Var.Name_)
		}
		// A state variable's effective location is Storage.
		storage := host.Storage
		return nil, []Type{IngestVariable(d.Var, nil, &storage)}, true, nil

	default:
		return nil, nil, false, nil
	}
}

func candidateAccepts(params []Type, args []Type) bool {
	if len(params) != len(args) {
		return false
	}
	for i, p := range params {
		if !ImplicitlyCastable(args[i], p) {
			return false
		}
	}
	return true
}

// checkOverloadCall handles call case 5: narrowing a FunctionSet to a
// single definition and computing the result of calling it.
func (c *Checker) checkOverloadCall(expr *CallExpr, set *FunctionSetType, ctx *TypingContext) (Type, error) {
	args := expr.Args
	if set.DefaultArg != nil {
		args = append([]ExprNode{set.DefaultArg}, args...)
	}

	argTypes := make([]Type, len(args))
	for i, a := range args {
		t, err := c.Check(a, ctx)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}

	var survivors []FunctionOrGetter
	var survivorReturns [][]Type
	for _, def := range set.Defs {
		params, returns, isGetter, err := candidateFormals(expr, def)
		if err != nil {
			return nil, err
		}
		if isGetter {
			if len(args) != 0 {
				continue
			}
		} else if !candidateAccepts(params, argTypes) {
			continue
		}
		survivors = append(survivors, def)
		survivorReturns = append(survivorReturns, returns)
	}

	switch len(survivors) {
	case 0:
		return nil, newUnresolvedFun(expr)
	case 1:
		return resultFromReturns(expr, survivorReturns[0])
	default:
		panic(errors.NewUnexpectedError(
			"ambiguous call: %d overloads of %q matched", len(survivors), set.Defs[0].Name(),
		))
	}
}

func resultFromReturns(expr *CallExpr, returns []Type) (Type, error) {
	switch len(returns) {
	case 0:
		return nil, newFunNoReturn(expr)
	case 1:
		return returns[0], nil
	default:
		return TupleType{Elements: returns}, nil
	}
}

// checkFunctionValueCall handles call case 6: calling a value of
// Function type directly (e.g. a parameter of function type).
func (c *Checker) checkFunctionValueCall(expr *CallExpr, fn FunctionType, ctx *TypingContext) (Type, error) {
	argTypes := make([]Type, len(expr.Args))
	for i, a := range expr.Args {
		t, err := c.Check(a, ctx)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}

	if len(argTypes) != len(fn.Params) {
		return nil, newExprCountMismatch(expr, len(fn.Params), len(argTypes))
	}
	for i, p := range fn.Params {
		if !ImplicitlyCastable(argTypes[i], p) {
			return nil, newArgumentMismatch(expr, i)
		}
	}

	return resultFromReturns(expr, fn.Returns)
}
