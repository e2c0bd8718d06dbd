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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 📡 MorseSymbol is one entry of the Morse table.
type MorseSymbol struct {
	Symbol rune
	Code   string
}

// morseSymbols is the fixed Morse table. Every code is unique so the table
// can be read in both directions.
var morseSymbols = []MorseSymbol{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."}, {'F', "..-."},
	{'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"}, {'K', "-.-"}, {'L', ".-.."},
	{'M', "--"}, {'N', "-."}, {'O', "---"}, {'P', ".--."}, {'Q', "--.-"}, {'R', ".-."},
	{'S', "..."}, {'T', "-"}, {'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"},
	{'Y', "-.--"}, {'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
	{' ', "/"},
	{'.', ".-.-.-"}, {',', "--..--"}, {'?', "..--.."}, {';', "-.-.-."},
	{':', "---..."}, {'-', "-....-"}, {'/', "-..-."}, {'\'', ".----."},
	{'"', ".-..-."}, {'=', "-...-"}, {'_', "..--.-"}, {'+', ".-.-."},
	{'(', "-.--."}, {')', "-.--.-"},
}

var (
	morseEncodeTable map[rune]string
	morseDecodeTable map[string]rune
)

func init() {
	morseEncodeTable = make(map[rune]string, len(morseSymbols))
	morseDecodeTable = make(map[string]rune, len(morseSymbols))
	for _, s := range morseSymbols {
		morseEncodeTable[s.Symbol] = s.Code
		morseDecodeTable[s.Code] = s.Symbol
	}
}

// MorseTable returns a copy of the Morse table in display order.
func MorseTable() []MorseSymbol {
	out := make([]MorseSymbol, len(morseSymbols))
	copy(out, morseSymbols)
	return out
}

// MorseEncode uppercases text and emits the code of every character found in
// the table, separated by single spaces. Characters without a code are
// skipped. A space becomes "/".
func MorseEncode(text string) string {
	upper := cases.Upper(language.Und).String(text)

	codes := make([]string, 0, len(upper))
	for _, r := range upper {
		if code, ok := morseEncodeTable[r]; ok {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}

// MorseDecode splits code on single spaces and maps each token back to its
// symbol. Unknown and empty tokens are skipped. The result is always
// uppercase.
func MorseDecode(code string) string {
	var b strings.Builder
	for _, token := range strings.Split(code, " ") {
		if r, ok := morseDecodeTable[token]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}
