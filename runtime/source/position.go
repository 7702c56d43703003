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

// Package source holds the small position/range vocabulary shared by the
// host AST interfaces, the annotation-language AST and the diagnostics
// that the checker raises. Both the host language's parser and the
// annotation-language parser are expected to stamp every node they
// produce with a Range drawn from this package.
package source

import "fmt"

// Position is a line/column location in some source file. Lines start
// at 1, columns start at 0 (byte offset within the line).
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Range is a start/end position pair, inclusive of both ends.
type Range struct {
	StartPos Position
	EndPos   Position
}

// HasPosition is implemented by every host and annotation AST node that
// can be pointed to in a diagnostic.
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

func (r Range) StartPosition() Position { return r.StartPos }
func (r Range) EndPosition() Position   { return r.EndPos }

// RangeOf builds a Range from anything with a position.
func RangeOf(node HasPosition) Range {
	return Range{
		StartPos: node.StartPosition(),
		EndPos:   node.EndPosition(),
	}
}

// File identifies a source file a Range is relative to, e.g. the
// contract source file an annotation is embedded in.
type File string

func (f File) String() string {
	return string(f)
}
