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
	"github.com/solidity-tools/specsema/runtime/common/orderedmap"
	"github.com/solidity-tools/specsema/runtime/host"
)

// detectBuiltinType matches name against the same elementary-token
// regexes IngestTypeName uses, and wraps a match as the type of a type
// literal expression. An out-of-range width (bytes33, uint255, ...) is
// deliberately NOT matched here: resolution falls through to the next
// candidate in the identifier-resolution order of §4.D, eventually
// producing UnknownId rather than a confusing internal error.
func detectBuiltinType(name string) (BuiltinTypeNameType, bool) {
	ty, ok, malformed := elementaryType(name)
	if !ok || malformed {
		return BuiltinTypeNameType{}, false
	}
	return BuiltinTypeNameType{Of: ty}, true
}

func uint256() Type  { return IntType{Bits: 256, Signed: false} }
func uint8_() Type   { return IntType{Bits: 8, Signed: false} }
func bytes32() Type  { return FixedBytesType{Width: 32} }
func addressT() Type { return AddressType{Payable: false} }

func builtinStruct(name string, members ...orderedmap.Pair[string, Type]) *BuiltinStructType {
	m := orderedmap.New[string, Type](len(members))
	for _, p := range members {
		m.Set(p.Key, p.Value)
	}
	return NewBuiltinStructType(name, m)
}

func pair(name string, t Type) orderedmap.Pair[string, Type] {
	return orderedmap.Pair[string, Type]{Key: name, Value: t}
}

var builtinSymbolsOnce struct {
	registry map[string]Type
}

// builtinSymbols is the static identifier -> type registry for
// block/msg/tx, hashing primitives, gasleft, addmod, mulmod, now,
// ecrecover and friends (§4.C lookupBuiltinSymbol).
func builtinSymbols() map[string]Type {
	if builtinSymbolsOnce.registry != nil {
		return builtinSymbolsOnce.registry
	}

	blockType := builtinStruct("block",
		pair("number", uint256()),
		pair("timestamp", uint256()),
		pair("difficulty", uint256()),
		pair("gaslimit", uint256()),
		pair("coinbase", addressT()),
		pair("chainid", uint256()),
		pair("basefee", uint256()),
	)

	msgType := builtinStruct("msg",
		pair("sender", addressT()),
		pair("value", uint256()),
		pair("data", PointerType{To: BytesType{}, Location: host.CallData}),
		pair("sig", FixedBytesType{Width: 4}),
	)

	txType := builtinStruct("tx",
		pair("origin", addressT()),
		pair("gasprice", uint256()),
	)

	abiType := builtinStruct("abi",
		pair("encode", FunctionType{
			Params:  nil,
			Returns: []Type{PointerType{To: BytesType{}, Location: host.Memory}},
		}),
		pair("encodePacked", FunctionType{
			Params:  nil,
			Returns: []Type{PointerType{To: BytesType{}, Location: host.Memory}},
		}),
	)

	registry := map[string]Type{
		"block": blockType,
		"msg":   msgType,
		"tx":    txType,
		"abi":   abiType,
		"now":   uint256(),

		"gasleft": FunctionType{Returns: []Type{uint256()}},

		"keccak256": FunctionType{
			Params:  []Type{PointerType{To: BytesType{}, Location: host.Memory}},
			Returns: []Type{bytes32()},
		},
		"sha256": FunctionType{
			Params:  []Type{PointerType{To: BytesType{}, Location: host.Memory}},
			Returns: []Type{bytes32()},
		},
		"ripemd160": FunctionType{
			Params:  []Type{PointerType{To: BytesType{}, Location: host.Memory}},
			Returns: []Type{FixedBytesType{Width: 20}},
		},
		"ecrecover": FunctionType{
			Params:  []Type{bytes32(), uint8_(), bytes32(), bytes32()},
			Returns: []Type{addressT()},
		},
		"addmod": FunctionType{
			Params:  []Type{uint256(), uint256(), uint256()},
			Returns: []Type{uint256()},
		},
		"mulmod": FunctionType{
			Params:  []Type{uint256(), uint256(), uint256()},
			Returns: []Type{uint256()},
		},
		"blockhash": FunctionType{
			Params:  []Type{uint256()},
			Returns: []Type{bytes32()},
		},
	}

	builtinSymbolsOnce.registry = registry
	return registry
}

// lookupBuiltinSymbol consults the static registry above.
func lookupBuiltinSymbol(name string) (Type, bool) {
	t, ok := builtinSymbols()[name]
	return t, ok
}

var addressMembersOnce struct {
	registry *orderedmap.OrderedMap[string, Type]
}

// addressMembers is the static member-name -> type table for
// `.balance`, `.transfer`, `.send`, `.call`, `.delegatecall`,
// `.staticcall`, `.code`, `.codehash` (§4.D member access on Address
// and on a contract cast's implicit address-member fallback).
func addressMembers() *orderedmap.OrderedMap[string, Type] {
	if addressMembersOnce.registry != nil {
		return addressMembersOnce.registry
	}

	callRet := FunctionType{
		Params:  []Type{PointerType{To: BytesType{}, Location: host.Memory}},
		Returns: []Type{BoolType{}, PointerType{To: BytesType{}, Location: host.Memory}},
	}

	m := orderedmap.New[string, Type](8)
	m.Set("balance", uint256())
	m.Set("code", PointerType{To: BytesType{}, Location: host.Memory})
	m.Set("codehash", bytes32())
	m.Set("transfer", FunctionType{Params: []Type{uint256()}})
	m.Set("send", FunctionType{Params: []Type{uint256()}, Returns: []Type{BoolType{}}})
	m.Set("call", callRet)
	m.Set("delegatecall", callRet)
	m.Set("staticcall", callRet)

	addressMembersOnce.registry = m
	return m
}
