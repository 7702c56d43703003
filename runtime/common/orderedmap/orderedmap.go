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
 *
 * Based on https://github.com/wk8/go-ordered-map, Copyright Jean Rougé
 */

// Package orderedmap provides an insertion-ordered map, used by the
// checker's builtin registries (the block/msg/tx/abi member tables and
// the address member table) to preserve declaration order.
package orderedmap

import "container/list"

// OrderedMap is a map that additionally remembers the order in which
// keys were first inserted.
type OrderedMap[K comparable, V any] struct {
	pairs map[K]*Pair[K, V]
	list  *list.List
}

// New returns a new OrderedMap with the given initial capacity hint.
func New[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		pairs: make(map[K]*Pair[K, V], size),
		list:  list.New(),
	}
}

func (om *OrderedMap[K, V]) ensureInitialized() {
	if om.pairs != nil {
		return
	}
	om.pairs = make(map[K]*Pair[K, V])
	om.list = list.New()
}

// Get returns the value associated with the given key.
func (om *OrderedMap[K, V]) Get(key K) (result V, present bool) {
	if om.pairs == nil {
		return
	}
	var pair *Pair[K, V]
	if pair, present = om.pairs[key]; present {
		return pair.Value, present
	}
	return
}

// Contains returns true if the key is present in the map.
func (om *OrderedMap[K, V]) Contains(key K) bool {
	if om.pairs == nil {
		return false
	}
	_, present := om.pairs[key]
	return present
}

// Set sets the key-value pair, returning the previous value if present.
func (om *OrderedMap[K, V]) Set(key K, value V) (oldValue V, present bool) {
	om.ensureInitialized()

	var pair *Pair[K, V]
	if pair, present = om.pairs[key]; present {
		oldValue = pair.Value
		pair.Value = value
		return
	}

	pair = &Pair[K, V]{Key: key, Value: value}
	pair.element = om.list.PushBack(pair)
	om.pairs[key] = pair
	return
}

// Len returns the number of entries in the map.
func (om *OrderedMap[K, V]) Len() int {
	return len(om.pairs)
}

// Oldest returns the first-inserted pair, or nil if the map is empty.
func (om *OrderedMap[K, V]) Oldest() *Pair[K, V] {
	if om.pairs == nil {
		return nil
	}
	return elementToPair[K, V](om.list.Front())
}

// Foreach iterates over the entries of the map in insertion order.
func (om *OrderedMap[K, V]) Foreach(f func(key K, value V)) {
	if om.pairs == nil {
		return
	}
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		f(pair.Key, pair.Value)
	}
}

// Pair is an entry in an OrderedMap.
type Pair[K any, V any] struct {
	Key   K
	Value V

	element *list.Element
}

// Next returns the pair inserted immediately after this one, or nil.
func (p *Pair[K, V]) Next() *Pair[K, V] {
	return elementToPair[K, V](p.element.Next())
}

func elementToPair[K any, V any](element *list.Element) *Pair[K, V] {
	if element == nil {
		return nil
	}
	return element.Value.(*Pair[K, V])
}
