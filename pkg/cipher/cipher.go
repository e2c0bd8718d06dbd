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

// 🔐 Cipher is a reversible text transform.
type Cipher interface {
	// Name returns the name the cipher is registered under
	Name() string
	// Encipher transforms plain text
	Encipher(message string) string
	// Decipher undoes Encipher
	Decipher(message string) string
}

var (
	_ Cipher = Rot13Cipher{}
	_ Cipher = CaesarCipher{}
	_ Cipher = VigenereCipher{}
	_ Cipher = AtbashCipher{}
	_ Cipher = MorseCode{}
	_ Cipher = GematriaConverter{}
	_ Cipher = RailFenceCipher{}
	_ Cipher = ReverseCipher{}
)

// Rot13Cipher wraps Rot13.
type Rot13Cipher struct{}

func (Rot13Cipher) Name() string { return "rot13" }
func (Rot13Cipher) Encipher(m string) string { return Rot13(m) }
func (Rot13Cipher) Decipher(m string) string { return Rot13(m) }

// CaesarCipher wraps CaesarEncipher and CaesarDecipher.
type CaesarCipher struct {
	Shift int
}

func (c CaesarCipher) Name() string { return "caesar" }
func (c CaesarCipher) Encipher(m string) string { return CaesarEncipher(m, c.Shift) }
func (c CaesarCipher) Decipher(m string) string { return CaesarDecipher(m, c.Shift) }

// VigenereCipher wraps VigenereEncipher and VigenereDecipher.
type VigenereCipher struct {
	Key string
}

func (c VigenereCipher) Name() string { return "vigenere" }
func (c VigenereCipher) Encipher(m string) string { return VigenereEncipher(m, c.Key) }
func (c VigenereCipher) Decipher(m string) string { return VigenereDecipher(m, c.Key) }

// AtbashCipher wraps Atbash.
type AtbashCipher struct{}

func (AtbashCipher) Name() string { return "atbash" }
func (AtbashCipher) Encipher(m string) string { return Atbash(m) }
func (AtbashCipher) Decipher(m string) string { return Atbash(m) }

// MorseCode wraps MorseEncode and MorseDecode.
type MorseCode struct{}

func (MorseCode) Name() string { return "morse" }
func (MorseCode) Encipher(m string) string { return MorseEncode(m) }
func (MorseCode) Decipher(m string) string { return MorseDecode(m) }

// GematriaConverter wraps AlphaToNum and NumToAlpha.
type GematriaConverter struct{}

func (GematriaConverter) Name() string { return "gematria" }
func (GematriaConverter) Encipher(m string) string { return AlphaToNum(m) }
func (GematriaConverter) Decipher(m string) string { return NumToAlpha(m) }

// RailFenceCipher wraps RailFenceEncipher and RailFenceDecipher.
type RailFenceCipher struct {
	Rails int
}

func (c RailFenceCipher) Name() string { return "railfence" }
func (c RailFenceCipher) Encipher(m string) string { return RailFenceEncipher(m, c.Rails) }
func (c RailFenceCipher) Decipher(m string) string { return RailFenceDecipher(m, c.Rails) }

// ReverseCipher wraps Reverse.
type ReverseCipher struct{}

func (ReverseCipher) Name() string { return "reverse" }
func (ReverseCipher) Encipher(m string) string { return Reverse(m) }
func (ReverseCipher) Decipher(m string) string { return Reverse(m) }
