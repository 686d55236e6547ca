// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"regexp"
	"sort"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

// sortNatural sorts names in place in natural order, where runs of
// digits compare by numeric value so that "Guest 2" precedes "Guest 10".
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	chunks_a := chunkifyRegexp.FindAllString(a, -1)
	chunks_b := chunkifyRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		if chunks_a[i] == chunks_b[i] {
			continue
		}

		aInt, aErr := strconv.Atoi(chunks_a[i])
		bInt, bErr := strconv.Atoi(chunks_b[i])

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil {
			if aInt != bInt {
				return aInt < bInt
			}

			// Equal values with different spellings, e.g. "07" and "7";
			// fall through to the next chunk.
			continue
		}

		return chunks_a[i] < chunks_b[i]
	}

	return len(chunks_a) < len(chunks_b)
}
