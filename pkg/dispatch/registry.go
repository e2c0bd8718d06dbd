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

package dispatch

import (
	"github.com/walteh/cipha/pkg/cipher"
)

// 📦 Entry describes a cipher the dispatcher can route to
type Entry struct {
	Name        string                       // Name used on the command line
	Summary     string                       // One line description
	Params      []string                     // Parameters the cipher reads (shift, key, rails)
	SelfInverse bool                         // Whether encode and decode are the same transform
	New         func(p Params) cipher.Cipher // Builds the cipher for the given parameters
}

var (
	// 🗺️ entries is the list of registered ciphers, in registration order
	entries []Entry
)

// 📝 Register registers a cipher. A later entry with the same name wins.
func Register(e Entry) {
	entries = append(entries, e)
}

// 🎯 Lookup returns the entry registered under name
func Lookup(name string) (Entry, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Name == name {
			return entries[i], true
		}
	}
	return Entry{}, false
}

// 📋 Entries returns every registered cipher, in registration order
func Entries() []Entry {
	seen := make(map[string]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if seen[entries[i].Name] {
			continue
		}
		seen[entries[i].Name] = true
		out = append(out, entries[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func init() {
	Register(Entry{
		Name:        "rot13",
		Summary:     "rotate letters by 13",
		SelfInverse: true,
		New:         func(Params) cipher.Cipher { return cipher.Rot13Cipher{} },
	})
	Register(Entry{
		Name:    "caesar",
		Summary: "shift letters by a fixed amount",
		Params:  []string{"shift"},
		New:     func(p Params) cipher.Cipher { return cipher.CaesarCipher{Shift: p.Shift} },
	})
	Register(Entry{
		Name:        "reverse",
		Summary:     "reverse the message",
		SelfInverse: true,
		New:         func(Params) cipher.Cipher { return cipher.ReverseCipher{} },
	})
	Register(Entry{
		Name:    "gematria",
		Summary: "letters to alphabet positions and back",
		New:     func(Params) cipher.Cipher { return cipher.GematriaConverter{} },
	})
	Register(Entry{
		Name:    "vigenere",
		Summary: "shift letters by a repeating key",
		Params:  []string{"key"},
		New:     func(p Params) cipher.Cipher { return cipher.VigenereCipher{Key: p.Key} },
	})
	Register(Entry{
		Name:    "morse",
		Summary: "international Morse code",
		New:     func(Params) cipher.Cipher { return cipher.MorseCode{} },
	})
	Register(Entry{
		Name:        "atbash",
		Summary:     "mirror the alphabet",
		SelfInverse: true,
		New:         func(Params) cipher.Cipher { return cipher.AtbashCipher{} },
	})
	Register(Entry{
		Name:    "railfence",
		Summary: "zig-zag transposition across rails",
		Params:  []string{"rails"},
		New:     func(p Params) cipher.Cipher { return cipher.RailFenceCipher{Rails: p.Rails} },
	})
}
