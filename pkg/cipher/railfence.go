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

// RailFenceEncipher writes message in a zig-zag across rails rows and reads
// the rows top to bottom. One rail, or at least as many rails as runes,
// returns message unchanged.
func RailFenceEncipher(message string, rails int) string {
	runes := []rune(message)
	if flatFence(len(runes), rails) {
		return message
	}

	fence := make([][]rune, rails)
	for i, row := range zigzag(len(runes), rails) {
		fence[row] = append(fence[row], runes[i])
	}

	var b strings.Builder
	b.Grow(len(message))
	for _, row := range fence {
		b.WriteString(string(row))
	}
	return b.String()
}

// RailFenceDecipher reverses RailFenceEncipher. Row lengths are not evenly
// spaced, so the zig-zag is walked once to size each row and again to read
// the rows back in their original order.
func RailFenceDecipher(ciphertext string, rails int) string {
	runes := []rune(ciphertext)
	if flatFence(len(runes), rails) {
		return ciphertext
	}

	rows := zigzag(len(runes), rails)

	counts := make([]int, rails)
	for _, row := range rows {
		counts[row]++
	}

	fence := make([][]rune, rails)
	offset := 0
	for row, n := range counts {
		fence[row] = runes[offset : offset+n]
		offset += n
	}

	out := make([]rune, 0, len(runes))
	for _, row := range rows {
		out = append(out, fence[row][0])
		fence[row] = fence[row][1:]
	}
	return string(out)
}

func flatFence(n, rails int) bool {
	return rails <= 1 || rails >= n
}

// zigzag returns the row visited at each of n positions: 0, 1, ..,
// rails-1, rails-2, .., 1, 0, 1, ...
func zigzag(n, rails int) []int {
	rows := make([]int, n)
	row, step := 0, 1
	for i := range rows {
		rows[i] = row
		switch row {
		case 0:
			step = 1
		case rails - 1:
			step = -1
		}
		row += step
	}
	return rows
}
