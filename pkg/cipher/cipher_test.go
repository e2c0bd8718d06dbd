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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples are mixed ASCII messages used by the round trip tests.
var samples = []string{
	"",
	"a",
	"Hello, World!",
	"ATTACKATDAWN",
	"the quick brown fox jumps over the lazy dog",
	"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
	"Mixed CASE with digits 0123456789 and symbols !@#$%^&*()",
	"tabs\tand\nnewlines\r\n",
	"zzzz AAAA",
}

func TestRot13(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hello_world", input: "Hello, World!", want: "Uryyb, Jbeyq!"},
		{name: "reverse_direction", input: "Uryyb, Jbeyq!", want: "Hello, World!"},
		{name: "wraps_both_cases", input: "nopqrsNOPQRS", want: "abcdefABCDEF"},
		{name: "non_ascii_untouched", input: "héllo 123", want: "uéyyb 123"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rot13(tt.input))
		})
	}

	t.Run("involution", func(t *testing.T) {
		for _, m := range samples {
			assert.Equal(t, m, Rot13(Rot13(m)), "message %q", m)
		}
	})
}

func TestCaesar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		shift int
		want  string
	}{
		{name: "shift_three", input: "Hello, World!", shift: 3, want: "Khoor, Zruog!"},
		{name: "shift_zero_is_identity", input: "Hello, World!", shift: 0, want: "Hello, World!"},
		{name: "shift_26_is_identity", input: "Hello, World!", shift: 26, want: "Hello, World!"},
		{name: "shift_29_wraps_to_three", input: "Hello", shift: 29, want: "Khoor"},
		{name: "negative_shift", input: "abc xyz ABC XYZ", shift: -1, want: "zab wxy ZAB WXY"},
		{name: "punctuation_untouched", input: "1, 2; 3!", shift: 7, want: "1, 2; 3!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaesarEncipher(tt.input, tt.shift)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, CaesarDecipher(got, tt.shift))
		})
	}

	t.Run("decipher_vector", func(t *testing.T) {
		assert.Equal(t, "Hello, World!", CaesarDecipher("Khoor, Zruog!", 3))
	})

	t.Run("round_trip_all_shifts", func(t *testing.T) {
		for shift := 0; shift < alphabetSize; shift++ {
			for _, m := range samples {
				require.Equal(t, m, CaesarDecipher(CaesarEncipher(m, shift), shift), "shift %d message %q", shift, m)
			}
		}
	})

	t.Run("rot13_is_caesar_13", func(t *testing.T) {
		for _, m := range samples {
			assert.Equal(t, CaesarEncipher(m, 13), Rot13(m))
		}
	})
}

func TestVigenere(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{name: "classic_vector", input: "ATTACKATDAWN", key: "LEMON", want: "LXFOPVEFRNHR"},
		{name: "key_case_ignored", input: "ATTACKATDAWN", key: "lemon", want: "LXFOPVEFRNHR"},
		{name: "non_letters_do_not_advance_cursor", input: "Attack at dawn!", key: "Lemon", want: "Lxfopv ef rnhr!"},
		{name: "non_letters_in_key_dropped", input: "Attack at dawn!", key: "l3m-on", want: "Lfhnnw og omka!"},
		{name: "empty_key_is_identity", input: "Attack at dawn!", key: "", want: "Attack at dawn!"},
		{name: "key_without_letters_is_identity", input: "Attack at dawn!", key: "123", want: "Attack at dawn!"},
		{name: "key_a_is_identity", input: "Attack at dawn!", key: "aaa", want: "Attack at dawn!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VigenereEncipher(tt.input, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, VigenereDecipher(got, tt.key))
		})
	}

	t.Run("decipher_vector", func(t *testing.T) {
		assert.Equal(t, "ATTACKATDAWN", VigenereDecipher("LXFOPVEFRNHR", "LEMON"))
	})

	t.Run("round_trip", func(t *testing.T) {
		for _, key := range []string{"a", "z", "LEMON", "secret", "AbCdEfGhIjKlMnOpQrStUvWxYz"} {
			for _, m := range samples {
				require.Equal(t, m, VigenereDecipher(VigenereEncipher(m, key), key), "key %q message %q", key, m)
			}
		}
	})

	t.Run("empty_key_identity_both_ways", func(t *testing.T) {
		for _, m := range samples {
			assert.Equal(t, m, VigenereEncipher(m, ""))
			assert.Equal(t, m, VigenereDecipher(m, ""))
		}
	})
}

func TestAtbash(t *testing.T) {
	assert.Equal(t, "ZGGZXPZGWZDM", Atbash("ATTACKATDAWN"))
	assert.Equal(t, "ATTACKATDAWN", Atbash("ZGGZXPZGWZDM"))
	assert.Equal(t, "Svool, Dliow!", Atbash("Hello, World!"))
	assert.Equal(t, "zyx ZYX", Atbash("abc ABC"))

	for _, m := range samples {
		assert.Equal(t, m, Atbash(Atbash(m)), "message %q", m)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hello_world", input: "Hello, World!", want: "!dlroW ,olleH"},
		{name: "empty", input: "", want: ""},
		{name: "single", input: "x", want: "x"},
		{name: "multibyte_runes", input: "héllo wörld", want: "dlröw olléh"},
		{name: "combining_marks_move_with_runes", input: "e\u0301a", want: "a\u0301e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reverse(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, Reverse(got))
		})
	}
}

func TestMorse(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  string
		}{
			{name: "hello", input: "HELLO", want: ".... . .-.. .-.. ---"},
			{name: "lowercase_is_uppercased", input: "sos", want: "... --- ..."},
			{name: "space_becomes_slash", input: "Hi there", want: ".... .. / - .... . .-. ."},
			{name: "punctuation", input: "(a+b)=c?", want: "-.--. .- .-.-. -... -.--.- -...- -.-. ..--.."},
			{name: "unknown_symbols_skipped", input: "café!", want: "-.-. .- ..-."},
			{name: "only_unknown_symbols", input: "#&%", want: ""},
			{name: "empty", input: "", want: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, MorseEncode(tt.input))
			})
		}
	})

	t.Run("decode", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  string
		}{
			{name: "hello", input: ".... . .-.. .-.. ---", want: "HELLO"},
			{name: "slash_is_space", input: ".... .. / - .... . .-. .", want: "HI THERE"},
			{name: "unknown_tokens_skipped", input: "... ---- ...", want: "SS"},
			{name: "double_space_yields_empty_token", input: "...  ---", want: "SO"},
			{name: "x_decodes_to_x", input: "-..-", want: "X"},
			{name: "empty", input: "", want: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, MorseDecode(tt.input))
			})
		}
	})

	t.Run("table_codes_are_unique", func(t *testing.T) {
		seen := map[string]rune{}
		for _, s := range MorseTable() {
			prev, dup := seen[s.Code]
			assert.False(t, dup, "code %q used by %q and %q", s.Code, prev, s.Symbol)
			seen[s.Code] = s.Symbol
		}
		assert.Len(t, morseEncodeTable, len(morseSymbols))
		assert.Len(t, morseDecodeTable, len(morseSymbols))
	})

	t.Run("round_trip_over_table", func(t *testing.T) {
		var all strings.Builder
		for _, s := range MorseTable() {
			all.WriteRune(s.Symbol)
			got := MorseDecode(MorseEncode(string(s.Symbol)))
			assert.Equal(t, string(s.Symbol), got)
		}
		assert.Equal(t, all.String(), MorseDecode(MorseEncode(all.String())))
		assert.Equal(t, "THE QUICK BROWN FOX 42", MorseDecode(MorseEncode("the quick brown fox 42")))
	})

	t.Run("table_copy_is_detached", func(t *testing.T) {
		table := MorseTable()
		table[0].Code = "changed"
		assert.Equal(t, ".-", MorseEncode("A"))
	})
}

func TestGematria(t *testing.T) {
	t.Run("alpha_to_num", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  string
		}{
			{name: "hello_world", input: "Hello, World!", want: "8 5 12 12 15 ,   23 15 18 12 4 !"},
			{name: "both_cases_share_ordinals", input: "aAzZ", want: "1 1 26 26"},
			{name: "space_becomes_token", input: "Hi there", want: "8 9   20 8 5 18 5"},
			{name: "only_one_trailing_space_trimmed", input: " a", want: "  1"},
			{name: "trailing_newline_kept", input: "a\n", want: "1 \n"},
			{name: "digits_kept_literally", input: "a1", want: "1 1"},
			{name: "empty", input: "", want: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, AlphaToNum(tt.input))
			})
		}
	})

	t.Run("num_to_alpha", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  string
		}{
			{name: "hello_world", input: "8 5 12 12 15 , 23 15 18 12 4 !", want: "helloworld"},
			{name: "upper_range", input: "27 52", want: "AZ"},
			{name: "out_of_range_dropped", input: "0 53 1", want: "a"},
			{name: "out_of_range_clears_buffer", input: "53 1 2", want: "ab"},
			{name: "overflow_dropped", input: "99999999999999999999 2", want: "b"},
			{name: "punctuation_does_not_split_digits", input: "1,2 3", want: "lc"},
			{name: "any_whitespace_separates", input: "1\t2\n3", want: "abc"},
			{name: "trailing_number_flushed", input: "26", want: "z"},
			{name: "only_punctuation", input: ", ! ?", want: ""},
			{name: "empty", input: "", want: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, NumToAlpha(tt.input))
			})
		}
	})

	t.Run("letters_and_spaces_round_trip_to_lowercase", func(t *testing.T) {
		for _, m := range []string{"Hello World", "ABC xyz", "the quick brown fox"} {
			want := strings.ToLower(strings.ReplaceAll(m, " ", ""))
			assert.Equal(t, want, NumToAlpha(AlphaToNum(m)), "message %q", m)
		}
	})

	// AlphaToNum keeps punctuation and digits, NumToAlpha does not give them back.
	t.Run("punctuation_is_not_round_tripped", func(t *testing.T) {
		assert.Equal(t, "helloworld", NumToAlpha(AlphaToNum("Hello, World!")))
		assert.Equal(t, "aa", NumToAlpha(AlphaToNum("a1")))
	})
}

func TestRailFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rails int
		want  string
	}{
		{name: "classic_vector", input: "WEAREDISCOVEREDSAVEYOURSELF", rails: 3, want: "WECRAOEERDSOEESVYUSLAIVDERF"},
		{name: "two_rails", input: "HELLOWORLD", rails: 2, want: "HLOOLELWRD"},
		{name: "four_rails", input: "HELLOWORLD", rails: 4, want: "HOEWRLOLLD"},
		{name: "multibyte_runes", input: "héllo wörld", rails: 3, want: "horél öllwd"},
		{name: "one_rail_is_identity", input: "HELLOWORLD", rails: 1, want: "HELLOWORLD"},
		{name: "rails_equal_length_is_identity", input: "HELLO", rails: 5, want: "HELLO"},
		{name: "rails_beyond_length_is_identity", input: "HELLO", rails: 50, want: "HELLO"},
		{name: "zero_rails_is_identity", input: "HELLO", rails: 0, want: "HELLO"},
		{name: "negative_rails_is_identity", input: "HELLO", rails: -2, want: "HELLO"},
		{name: "empty", input: "", rails: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RailFenceEncipher(tt.input, tt.rails)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, RailFenceDecipher(got, tt.rails))
		})
	}

	t.Run("round_trip_all_rails", func(t *testing.T) {
		for _, m := range samples {
			n := len([]rune(m))
			for rails := 2; rails < n; rails++ {
				require.Equal(t, m, RailFenceDecipher(RailFenceEncipher(m, rails), rails), "rails %d message %q", rails, m)
			}
		}
	})
}

func TestZigzag(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 1, 0, 1, 2, 1, 0}, zigzag(9, 3))
	assert.Equal(t, []int{0, 1, 0, 1, 0}, zigzag(5, 2))
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1, 0}, zigzag(7, 4))
	assert.Empty(t, zigzag(0, 3))
}

func TestCipherWrappers(t *testing.T) {
	tests := []struct {
		cipher    Cipher
		plain     string
		encrypted string
	}{
		{cipher: Rot13Cipher{}, plain: "Hello, World!", encrypted: "Uryyb, Jbeyq!"},
		{cipher: CaesarCipher{Shift: 3}, plain: "Hello, World!", encrypted: "Khoor, Zruog!"},
		{cipher: VigenereCipher{Key: "LEMON"}, plain: "ATTACKATDAWN", encrypted: "LXFOPVEFRNHR"},
		{cipher: AtbashCipher{}, plain: "ATTACKATDAWN", encrypted: "ZGGZXPZGWZDM"},
		{cipher: MorseCode{}, plain: "HELLO", encrypted: ".... . .-.. .-.. ---"},
		{cipher: GematriaConverter{}, plain: "hello", encrypted: "8 5 12 12 15"},
		{cipher: RailFenceCipher{Rails: 3}, plain: "WEAREDISCOVEREDSAVEYOURSELF", encrypted: "WECRAOEERDSOEESVYUSLAIVDERF"},
		{cipher: ReverseCipher{}, plain: "Hello, World!", encrypted: "!dlroW ,olleH"},
	}

	for _, tt := range tests {
		t.Run(tt.cipher.Name(), func(t *testing.T) {
			assert.Equal(t, tt.encrypted, tt.cipher.Encipher(tt.plain))
			assert.Equal(t, tt.plain, tt.cipher.Decipher(tt.encrypted))
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	want := make([]string, len(samples))
	for i, m := range samples {
		want[i] = MorseDecode(MorseEncode(m))
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j, m := range samples {
				assert.Equal(t, want[j], MorseDecode(MorseEncode(m)), "message %q", m)
			}
		}()
	}
	wg.Wait()
}
