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

// Package pretty renders semantic types and checker diagnostics for a
// terminal: multi-line wrapping for long function/tuple types via
// prettier.Doc, and severity colors via aurora. Neither the checker
// nor the host interfaces import this package; it is a leaf consumer,
// the driver's presentation layer.
package pretty

import (
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/turbolent/prettier"

	"github.com/solidity-tools/specsema/runtime/sema"
)

const defaultMaxLineWidth = 80
const indentation = "    "

var commaLineDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

// PrintType renders t in its canonical host-language spelling,
// wrapping long function parameter/return lists across lines the way
// an overly long call expression would be wrapped.
func PrintType(t sema.Type) string {
	var b strings.Builder
	prettier.Prettier(&b, typeDoc(t), defaultMaxLineWidth, indentation)
	return b.String()
}

func typeDoc(t sema.Type) prettier.Doc {
	switch v := t.(type) {
	case sema.FunctionType:
		return functionTypeDoc(v)
	case sema.TupleType:
		return tupleTypeDoc(v)
	case sema.PointerType:
		return prettier.Concat{
			typeDoc(v.To),
			prettier.Text(" "),
			prettier.Text(v.Location.String()),
		}
	default:
		return prettier.Text(t.String())
	}
}

func tupleTypeDoc(t sema.TupleType) prettier.Doc {
	if len(t.Elements) == 0 {
		return prettier.Text("()")
	}
	elementDocs := make([]prettier.Doc, len(t.Elements))
	for i, e := range t.Elements {
		elementDocs[i] = typeDoc(e)
	}
	return prettier.WrapParentheses(
		prettier.Join(commaLineDoc, elementDocs...),
		prettier.SoftLine{},
	)
}

func functionTypeDoc(t sema.FunctionType) prettier.Doc {
	paramDocs := make([]prettier.Doc, len(t.Params))
	for i, p := range t.Params {
		paramDocs[i] = typeDoc(p)
	}
	parts := prettier.Concat{
		prettier.Text("function"),
		prettier.WrapParentheses(
			prettier.Join(commaLineDoc, paramDocs...),
			prettier.SoftLine{},
		),
	}

	if len(t.Returns) == 0 {
		return prettier.Group{Doc: parts}
	}

	returnDocs := make([]prettier.Doc, len(t.Returns))
	for i, r := range t.Returns {
		returnDocs[i] = typeDoc(r)
	}
	return prettier.Group{
		Doc: prettier.Concat{
			parts,
			prettier.Text(" returns "),
			prettier.WrapParentheses(
				prettier.Join(commaLineDoc, returnDocs...),
				prettier.SoftLine{},
			),
		},
	}
}

// PrintDiagnostic renders a checker error with a bright red "error:"
// prefix and its source range.
func PrintDiagnostic(err sema.CheckerError) string {
	rng := err.Range()
	header := aurora.Colorize("error:", aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
	location := aurora.Colorize(
		rng.StartPos.String()+"-"+rng.EndPos.String(),
		aurora.FaintFm,
	).String()
	return header + " " + err.Error() + " (" + location + ")"
}

// PrintScope describes the innermost contract/function the checker
// was working in when it raised a diagnostic, e.g. "in Foo.add".
func PrintScope(ctx *sema.TypingContext) string {
	contract := ctx.Contract()
	if contract == nil {
		return ""
	}
	fn := ctx.Function()
	if fn == nil {
		return "in " + contract.Name()
	}
	return "in " + contract.Name() + "." + fn.Name_
}
