package trivia

import (
	"regexp"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	curlyQuotes = strings.NewReplacer("‘", "'", "’", "'", "“", `"`, "”", `"`)
	nonWord     = regexp.MustCompile(`[^a-z0-9\s'-]`)

	// Filler words ignored when comparing keywords.
	noiseWords = map[string]bool{
		"the": true, "a": true, "an": true, "of": true, "in": true, "on": true,
		"at": true, "to": true, "and": true, "or": true, "is": true, "it": true,
		"was": true, "his": true, "her": true, "its": true,
	}
)

// normalize lowercases, trims, collapses runs of whitespace, and converts
// curly quotes to straight ones.
func normalize(s string) string {
	s = curlyQuotes.Replace(strings.TrimSpace(strings.ToLower(s)))
	return spaceRun.ReplaceAllString(s, " ")
}

// keyWords tokenizes a normalized string, dropping noise words.
func keyWords(s string) []string {
	s = nonWord.ReplaceAllString(strings.ToLower(s), "")
	var words []string
	for _, w := range strings.Fields(s) {
		if !noiseWords[w] {
			words = append(words, w)
		}
	}
	return words
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				cur[j] = prev[j-1]
			} else {
				cur[j] = min(prev[j-1], cur[j-1], prev[j]) + 1
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

// IsAnswerCorrect reports whether a chat message should count as a correct
// answer. Strategies are tried in order against each accepted answer and any
// hit wins:
//
//  1. exact normalized equality
//  2. message contains the full answer
//  3. answer contains the message (>= 3 chars, at a word boundary)
//  4. keyword overlap with prefix matching, in either direction
//  5. Levenshtein tolerance (1 typo under 8 chars, 2 at 8+)
//
// Trivia answers are short factual phrases that users mistype, abbreviate, or
// pad with filler ("I think it's Noah"), so recall is weighted over precision
// and the word-boundary check keeps strategy 3 honest ("dam" must not match
// "adam").
func IsAnswerCorrect(userMessage string, acceptedAnswers []string) bool {
	msg := normalize(userMessage)
	if len(msg) < 1 {
		return false
	}

	for _, answer := range acceptedAnswers {
		ans := normalize(answer)

		if msg == ans {
			return true
		}

		if strings.Contains(msg, ans) {
			return true
		}

		if len(msg) >= 3 && strings.Contains(ans, msg) {
			boundary := regexp.MustCompile(`(?:^|\s)` + regexp.QuoteMeta(msg) + `(?:\s|$)`)
			if boundary.MatchString(ans) || strings.HasPrefix(ans, msg) {
				return true
			}
		}

		userWords := keyWords(msg)
		answerWords := keyWords(ans)
		if len(userWords) > 0 && len(answerWords) > 0 {
			if allMatch(userWords, answerWords) || allMatch(answerWords, userWords) {
				return true
			}
		}

		if len(msg) >= 4 && len(ans) >= 4 {
			maxDistance := 1
			if len(ans) >= 8 {
				maxDistance = 2
			}
			if levenshtein(msg, ans) <= maxDistance {
				return true
			}
		}
	}
	return false
}

// allMatch reports whether every word in want has a prefix match (either
// direction) somewhere in have.
func allMatch(want, have []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if w == h || strings.HasPrefix(h, w) || strings.HasPrefix(w, h) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
