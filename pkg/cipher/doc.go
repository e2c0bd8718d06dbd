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

/*
Package cipher implements the classical text ciphers used by cipha.

	+-----------+     +-----------+     +-----------+
	|  message  | --> |  Cipher   | --> |  message' |
	+-----------+     +-----------+     +-----------+
	                  | rot13     |
	                  | caesar    |  shift
	                  | vigenere  |  key
	                  | atbash    |
	                  | morse     |
	                  | gematria  |
	                  | railfence |  rails
	                  | reverse   |
	                  +-----------+

🎯 Purpose:
  - Recreational text obfuscation. None of these resist analysis.

⚡ Shape:
  - Every cipher is a free function over strings plus a small value type that
    implements Cipher by calling those functions.
  - All functions are pure and total: they never fail and never panic, and
    they are safe to call from many goroutines.
  - Letter ciphers only touch ASCII letters; everything else is copied through.

🔄 Round trips:
  - rot13, atbash and reverse are their own inverse.
  - caesar, vigenere and railfence invert exactly for the same parameter.
  - morse loses case and anything missing from its table.
  - gematria loses case, punctuation and word spacing on the way back.
*/
package cipher
