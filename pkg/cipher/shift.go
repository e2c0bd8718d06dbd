// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cipher

const rot13Shift = 13

// Rot13 rotates every ASCII letter 13 places within its case. It is its own
// inverse.
func Rot13(message string) string {
	return CaesarEncipher(message, rot13Shift)
}

// CaesarEncipher shifts every ASCII letter forward by shift (mod 26) within
// its case. Non-letters are copied unchanged.
func CaesarEncipher(message string, shift int) string {
	shift = normalizeShift(shift)
	if shift == 0 {
		return message
	}
	return mapLetters(message, func(r, base rune) rune {
		return shiftLetter(r, base, shift)
	})
}

// CaesarDecipher undoes CaesarEncipher by shifting forward the remaining
// 26 - (shift mod 26) places.
func CaesarDecipher(message string, shift int) string {
	return CaesarEncipher(message, alphabetSize-normalizeShift(shift))
}

// Atbash mirrors every ASCII letter within its case (a<->z, b<->y, ...).
// It is its own inverse.
func Atbash(text string) string {
	return mapLetters(text, func(r, base rune) rune {
		return base + (alphabetSize - 1) - (r - base)
	})
}

// Reverse returns message with its runes in reverse order. Combining
// sequences are reversed rune by rune like everything else.
func Reverse(message string) string {
	runes := []rune(message)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
