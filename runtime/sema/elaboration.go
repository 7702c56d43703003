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

import "sync"

// DefSiteKind distinguishes what an IdentifierExpr's def-site points at.
type DefSiteKind uint8

const (
	DefSiteHostVar   DefSiteKind = iota // a host state variable, parameter or return
	DefSiteLet                          // a let-bound name
	DefSiteThis                         // the `this` sentinel
	DefSiteFunction                     // a bare function/getter name
	DefSiteType                         // a type name used as an expression
)

// DefSite is what Elaboration.DefSiteOf resolves an IdentifierExpr to.
// Exactly the fields matching Kind are meaningful.
type DefSite struct {
	Kind DefSiteKind

	HostVar *VarRef  // DefSiteHostVar
	Let     *LetExpr // DefSiteLet
	LetIdx  int       // DefSiteLet
}

// Elaboration is the side-table a single checking pass accumulates:
// the type cache keyed by expression node identity, and the def-site
// table for identifiers. Re-running Check on the same ExprNode tree
// with the same Elaboration is idempotent (cache stability): a node
// that already has a cached type gets that type back, without
// recomputation and without the entry being written again.
type Elaboration struct {
	lock sync.RWMutex

	types    map[ExprNode]Type
	defSites map[*IdentifierExpr]DefSite
}

// NewElaboration returns an empty side-table, ready to be threaded
// through a single call to Check on a top-level annotation expression.
func NewElaboration() *Elaboration {
	return &Elaboration{
		types:    map[ExprNode]Type{},
		defSites: map[*IdentifierExpr]DefSite{},
	}
}

func (e *Elaboration) getType(node ExprNode) (Type, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	t, ok := e.types[node]
	return t, ok
}

func (e *Elaboration) setType(node ExprNode, t Type) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.types[node] = t
}

// TypeOf returns the type Check previously assigned to node, or nil if
// node has not been checked yet.
func (e *Elaboration) TypeOf(node ExprNode) Type {
	t, _ := e.getType(node)
	return t
}

func (e *Elaboration) setDefSite(id *IdentifierExpr, site DefSite) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.defSites[id] = site
}

// DefSiteOf returns what id was resolved to, or the zero DefSite and
// false if id has not been checked yet.
func (e *Elaboration) DefSiteOf(id *IdentifierExpr) (DefSite, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	site, ok := e.defSites[id]
	return site, ok
}
