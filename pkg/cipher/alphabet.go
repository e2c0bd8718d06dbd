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

import "strings"

// alphabetSize is the length of each case ring.
const alphabetSize = 26

// ringBase returns the first letter of r's case ring, or 0 if r is not an
// ASCII letter.
func ringBase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a'
	case r >= 'A' && r <= 'Z':
		return 'A'
	}
	return 0
}

// normalizeShift reduces shift into [0, 26).
func normalizeShift(shift int) int {
	shift %= alphabetSize
	if shift < 0 {
		shift += alphabetSize
	}
	return shift
}

// shiftLetter moves r forward by shift positions within the ring starting at base.
func shiftLetter(r, base rune, shift int) rune {
	return base + rune((int(r-base)+normalizeShift(shift))%alphabetSize)
}

// mapLetters rebuilds message, passing every ASCII letter through fn and
// copying everything else unchanged.
func mapLetters(message string, fn func(r, base rune) rune) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		if base := ringBase(r); base != 0 {
			r = fn(r, base)
		}
		b.WriteRune(r)
	}
	return b.String()
}
