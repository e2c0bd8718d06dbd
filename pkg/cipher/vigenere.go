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

// VigenereEncipher shifts the i-th letter of plaintext by the ordinal of the
// key letter at position i mod len(key). Only letters advance the key-stream
// cursor. An empty key returns plaintext unchanged.
func VigenereEncipher(plaintext, key string) string {
	return vigenere(plaintext, key, 1)
}

// VigenereDecipher reverses VigenereEncipher for the same key.
func VigenereDecipher(ciphertext, key string) string {
	return vigenere(ciphertext, key, -1)
}

func vigenere(message, key string, direction int) string {
	shifts := keyShifts(key)
	if len(shifts) == 0 {
		return message
	}

	cursor := 0
	return mapLetters(message, func(r, base rune) rune {
		shift := shifts[cursor%len(shifts)]
		cursor++
		return shiftLetter(r, base, direction*shift)
	})
}

// keyShifts turns key into its shift stream. Case is ignored and non-letters
// carry no shift, so they are dropped.
func keyShifts(key string) []int {
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		if base := ringBase(r); base != 0 {
			shifts = append(shifts, int(r-base))
		}
	}
	return shifts
}
