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

// Package host declares the surface the checker queries on the host
// contract language. The host parser and its symbol table are external
// collaborators: by the time an annotation is checked, every type
// reference and identifier in the host program has already been
// resolved to one of the declarations below. The checker never parses
// host source; it only walks these interfaces.
package host

import "github.com/solidity-tools/specsema/runtime/source"

// DataLocation is one of the three places a reference-typed value can
// live. It is attached to reference types during specialization.
type DataLocation uint8

const (
	Storage DataLocation = iota
	Memory
	CallData
)

func (l DataLocation) String() string {
	switch l {
	case Storage:
		return "storage"
	case Memory:
		return "memory"
	case CallData:
		return "calldata"
	default:
		return "?"
	}
}

// Visibility is a function's declared visibility. Only External is
// distinguished by the checker (it drives default parameter/return
// data location), the others are carried through opaquely.
type Visibility uint8

const (
	Public Visibility = iota
	External
	Internal
	Private
)

// Mutability is a function's declared state mutability. The checker
// never inspects it beyond carrying it on FunctionType.
type Mutability uint8

const (
	Nonpayable Mutability = iota
	Pure
	View
	Payable
)

// DeclKind distinguishes the three kinds of user-defined type
// declaration the checker can resolve a name to.
type DeclKind uint8

const (
	StructDecl DeclKind = iota
	EnumDecl
	ContractDecl
)

// Declaration is the common handle every user-defined type declaration
// satisfies. Semantic UserDefined types hold one of these as a
// non-owning lookup handle back into the host AST, never ownership.
type Declaration interface {
	DeclKind() DeclKind
	Name() string
	// QualifiedName is "Name" for a free declaration, or
	// "ContractName.Name" for one nested in a contract.
	QualifiedName() string
}

// VariableDeclaration is a state variable, function parameter, function
// return parameter, or struct field.
type VariableDeclaration struct {
	Name_    string
	TypeExpr TypeExpr
	// Loc is the explicitly declared data location, if any. nil means
	// the variable's effective location must be derived per the rules
	// in ingestVariable.
	Loc *DataLocation
	// Public marks a contract state variable that has an implicit getter.
	Public bool
	Range  source.Range
}

func (v *VariableDeclaration) Name() string              { return v.Name_ }
func (v *VariableDeclaration) StartPosition() source.Position { return v.Range.StartPos }
func (v *VariableDeclaration) EndPosition() source.Position   { return v.Range.EndPos }

// StructDeclaration declares a struct type, optionally nested in a
// contract (Contract is nil for a free top-level struct).
type StructDeclaration struct {
	Name_    string
	Contract *ContractDeclaration
	Fields   []*VariableDeclaration
}

func (s *StructDeclaration) DeclKind() DeclKind { return StructDecl }
func (s *StructDeclaration) Name() string       { return s.Name_ }
func (s *StructDeclaration) QualifiedName() string {
	if s.Contract == nil {
		return s.Name_
	}
	return s.Contract.Name_ + "." + s.Name_
}

// EnumDeclaration declares an enum type and its ordered constants.
type EnumDeclaration struct {
	Name_     string
	Contract  *ContractDeclaration
	Constants []string
}

func (e *EnumDeclaration) DeclKind() DeclKind { return EnumDecl }
func (e *EnumDeclaration) Name() string       { return e.Name_ }
func (e *EnumDeclaration) QualifiedName() string {
	if e.Contract == nil {
		return e.Name_
	}
	return e.Contract.Name_ + "." + e.Name_
}

func (e *EnumDeclaration) HasConstant(name string) bool {
	for _, c := range e.Constants {
		if c == name {
			return true
		}
	}
	return false
}

// FunctionDeclaration declares a function, or a library function when
// listed in a LibraryDeclaration's Functions.
type FunctionDeclaration struct {
	Name_      string
	Contract   *ContractDeclaration
	Parameters []*VariableDeclaration
	Returns    []*VariableDeclaration
	Visibility Visibility
	Mutability Mutability
	Range      source.Range
}

func (f *FunctionDeclaration) IsExternal() bool { return f.Visibility == External }

func (f *FunctionDeclaration) StartPosition() source.Position { return f.Range.StartPos }
func (f *FunctionDeclaration) EndPosition() source.Position   { return f.Range.EndPos }

// UsingForDirective attaches a library's functions as pseudo-methods to
// values of Target (nil Target means the directive is unrestricted: it
// applies to every type).
type UsingForDirective struct {
	Library *LibraryDeclaration
	Target  TypeExpr
}

// LibraryDeclaration is a host-language library: a stateless bag of
// functions that using-for directives can attach to a type.
type LibraryDeclaration struct {
	Name_     string
	Functions []*FunctionDeclaration
}

func (l *LibraryDeclaration) DeclKind() DeclKind { return ContractDecl }
func (l *LibraryDeclaration) Name() string       { return l.Name_ }
func (l *LibraryDeclaration) QualifiedName() string { return l.Name_ }

// ContractDeclaration declares a contract. Bases_ is the contract's
// linearized (C3) base chain, outermost (the contract itself) first,
// as the host checker has already computed it. Use Bases() to read it
// with the no-inheritance fallback applied.
type ContractDeclaration struct {
	Name_         string
	Bases_        []*ContractDeclaration
	StateVars     []*VariableDeclaration
	Structs       []*StructDeclaration
	Enums         []*EnumDeclaration
	Functions     []*FunctionDeclaration
	UsingFor      []*UsingForDirective
}

func (c *ContractDeclaration) DeclKind() DeclKind   { return ContractDecl }
func (c *ContractDeclaration) Name() string         { return c.Name_ }
func (c *ContractDeclaration) QualifiedName() string { return c.Name_ }

// FunctionsNamed returns every function named name across the linearized
// base chain, in linearization order.
func (c *ContractDeclaration) FunctionsNamed(name string) []*FunctionDeclaration {
	var found []*FunctionDeclaration
	for _, base := range c.linearization() {
		for _, fn := range base.Functions {
			if fn.Name_ == name {
				found = append(found, fn)
			}
		}
	}
	return found
}

// StateVarNamed returns the first state variable named name across
// the linearized base chain, public or not, and whether one was found.
func (c *ContractDeclaration) StateVarNamed(name string) (*VariableDeclaration, bool) {
	for _, base := range c.linearization() {
		for _, v := range base.StateVars {
			if v.Name_ == name {
				return v, true
			}
		}
	}
	return nil, false
}

// Bases returns the contract's linearized (C3) base chain, itself
// included, falling back to a single-element chain for a contract
// declared with no inheritance.
func (c *ContractDeclaration) Bases() []*ContractDeclaration {
	if len(c.Bases_) > 0 {
		return c.Bases_
	}
	return []*ContractDeclaration{c}
}

func (c *ContractDeclaration) linearization() []*ContractDeclaration {
	return c.Bases()
}

// SourceUnit is a single host source file's top-level declarations.
type SourceUnit struct {
	Structs   []*StructDeclaration
	Enums     []*EnumDeclaration
	Contracts []*ContractDeclaration
}

// Program is the whole set of source units the driver has parsed,
// forming the global scope.
type Program struct {
	Units []*SourceUnit
}
