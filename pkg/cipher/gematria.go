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

import (
	"strconv"
	"strings"
	"unicode"
)

// AlphaToNum replaces every ASCII letter with its 1-based position in the
// alphabet (A/a=1 .. Z/z=26). Other characters are kept as they are. Every
// token is followed by a space and the final separator is trimmed, so
// "Hello, World!" becomes "8 5 12 12 15 ,   23 15 18 12 4 !".
func AlphaToNum(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, r := range text {
		if base := ringBase(r); base != 0 {
			b.WriteString(strconv.Itoa(int(r-base) + 1))
		} else {
			b.WriteRune(r)
		}
		b.WriteByte(' ')
	}
	return strings.TrimSuffix(b.String(), " ")
}

// NumToAlpha reads whitespace-separated decimal ordinals back into letters:
// 1..26 become a..z and 27..52 become A..Z. Out of range numbers are dropped.
// Characters that are neither digits nor whitespace are ignored, so
// punctuation kept by AlphaToNum does not come back.
func NumToAlpha(text string) string {
	var b strings.Builder
	digits := make([]byte, 0, 4)

	flush := func() {
		if len(digits) == 0 {
			return
		}
		if r, ok := ordinalLetter(string(digits)); ok {
			b.WriteRune(r)
		}
		digits = digits[:0]
	}

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case unicode.IsSpace(r):
			flush()
		}
	}
	flush()

	return b.String()
}

// ordinalLetter maps a decimal ordinal onto its letter.
func ordinalLetter(digits string) (rune, bool) {
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		// only overflow can fail here
		return 0, false
	}
	switch {
	case n >= 1 && n <= alphabetSize:
		return 'a' + rune(n-1), true
	case n > alphabetSize && n <= 2*alphabetSize:
		return 'A' + rune(n-alphabetSize-1), true
	}
	return 0, false
}
