// Thumbmatch
// Copyright (c) 2026 The Thumbmatch Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Thumbmatch.
//
// Thumbmatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbmatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbmatch.  If not, see <http://www.gnu.org/licenses/>.

package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
)

// ScoreFunc scores the similarity of two strings on a 0-100 scale.
type ScoreFunc func(a, b string) int

// Scorer is a named similarity strategy. Scorers are tried in a fixed order
// by the match engine, so the cheap whole-string ratio runs before the more
// permissive token and partial variants.
type Scorer struct {
	Name  string
	Score ScoreFunc
}

// Scorers returns the similarity strategies in evaluation order.
func Scorers() []Scorer {
	return []Scorer{
		{Name: "ratio", Score: Ratio},
		{Name: "token_sort_ratio", Score: TokenSortRatio},
		{Name: "token_set_ratio", Score: TokenSetRatio},
		{Name: "partial_ratio", Score: PartialRatio},
		{Name: "partial_token_sort_ratio", Score: PartialTokenSortRatio},
	}
}

// fullProcess lowercases the string and replaces every non-alphanumeric rune
// with a space, so punctuation and case differences never affect scoring.
func fullProcess(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// levRatio converts Levenshtein edit distance into a 0-100 similarity score
// over the longer of the two strings.
func levRatio(a, b string) int {
	if a == b {
		return 100
	}

	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}

	dist := edlib.LevenshteinDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Ratio scores whole-string similarity.
func Ratio(a, b string) int {
	return levRatio(fullProcess(a), fullProcess(b))
}

// TokenSortRatio scores similarity after sorting each string's tokens, making
// the comparison word-order independent ("World Super Mario" scores 100
// against "Super Mario World").
func TokenSortRatio(a, b string) int {
	return levRatio(sortTokens(fullProcess(a)), sortTokens(fullProcess(b)))
}

// TokenSetRatio scores on the shared-token intersection, so a title that is a
// token subset of another still scores highly regardless of the extra tokens.
func TokenSetRatio(a, b string) int {
	tokensA := strings.Fields(fullProcess(a))
	tokensB := strings.Fields(fullProcess(b))

	setA := make(map[string]struct{}, len(tokensA))
	for _, tok := range tokensA {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tokensB))
	for _, tok := range tokensB {
		setB[tok] = struct{}{}
	}

	var common, diffA, diffB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common = append(common, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := levRatio(base, combinedA)
	if s := levRatio(base, combinedB); s > best {
		best = s
	}
	if s := levRatio(combinedA, combinedB); s > best {
		best = s
	}
	return best
}

// PartialRatio scores the shorter string against every same-length window of
// the longer one and keeps the best score, so substrings match well.
func PartialRatio(a, b string) int {
	return partialRatio(fullProcess(a), fullProcess(b))
}

// PartialTokenSortRatio combines token sorting with windowed comparison.
func PartialTokenSortRatio(a, b string) int {
	return partialRatio(sortTokens(fullProcess(a)), sortTokens(fullProcess(b)))
}

func partialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if s := levRatio(string(shorter), window); s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Extracted is the best-scoring candidate found by ExtractOne.
type Extracted struct {
	Candidate string
	Score     int
}

// ExtractOne scores the query against every candidate and returns the best
// result. Earlier candidates win ties. Returns false when there are no
// candidates to score.
func ExtractOne(query string, candidates []string, score ScoreFunc) (Extracted, bool) {
	var best Extracted
	found := false
	for _, candidate := range candidates {
		s := score(query, candidate)
		if !found || s > best.Score {
			best = Extracted{Candidate: candidate, Score: s}
			found = true
		}
	}
	return best, found
}
