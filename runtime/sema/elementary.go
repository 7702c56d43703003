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
	"regexp"
	"strconv"
)

var (
	intConstRegexp = regexp.MustCompile(`^int_const(\s.*)?$`)
	intRegexp      = regexp.MustCompile(`^(u?int)(\d+)?$`)
	bytesNRegexp   = regexp.MustCompile(`^bytes(\d+)$`)
)

// elementaryType matches a single elementary-token name against the
// regexes of §4.B and returns the corresponding value type. ok is false
// for a name that is not an elementary token at all (the caller should
// then try other resolution paths); a name that looks elementary but
// is out of range (bytes33, uint255, int264, ...) is reported via
// malformed.
func elementaryType(name string) (t Type, ok bool, malformed bool) {
	switch name {
	case "bool":
		return BoolType{}, true, false
	case "address":
		return AddressType{Payable: false}, true, false
	case "address payable":
		return AddressType{Payable: true}, true, false
	case "byte":
		return FixedBytesType{Width: 1}, true, false
	case "bytes":
		return BytesType{}, true, false
	case "string":
		return StringType{}, true, false
	}

	if intConstRegexp.MatchString(name) {
		return IntLiteralType{}, true, false
	}

	if m := intRegexp.FindStringSubmatch(name); m != nil {
		signed := m[1] == "int"
		bits := 256
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, true, true
			}
			bits = n
		}
		if bits < 8 || bits > 256 || bits%8 != 0 {
			return nil, true, true
		}
		return IntType{Bits: bits, Signed: signed}, true, false
	}

	if m := bytesNRegexp.FindStringSubmatch(name); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, true, true
		}
		if n < 1 || n > 32 {
			return nil, true, true
		}
		return FixedBytesType{Width: n}, true, false
	}

	return nil, false, false
}
