package trivia

import "testing"

func TestIsAnswerCorrectExact(t *testing.T) {
	cases := []struct {
		msg     string
		answers []string
		want    bool
	}{
		{"Noah", []string{"noah"}, true},
		{"  NOAH  ", []string{"noah"}, true},
		{"moses", []string{"noah"}, false},
		{"", []string{"noah"}, false},
	}
	for _, tc := range cases {
		if got := IsAnswerCorrect(tc.msg, tc.answers); got != tc.want {
			t.Errorf("IsAnswerCorrect(%q, %v) = %v, want %v", tc.msg, tc.answers, got, tc.want)
		}
	}
}

func TestIsAnswerCorrectContains(t *testing.T) {
	// Message padded with filler still counts.
	if !IsAnswerCorrect("I think it's Noah", []string{"noah"}) {
		t.Error("padded answer should match")
	}
	// Partial message matching at a word boundary counts.
	if !IsAnswerCorrect("solomon", []string{"king solomon"}) {
		t.Error("word-boundary partial should match")
	}
	// Substring without a word boundary must not count.
	if IsAnswerCorrect("dam", []string{"adam"}) {
		t.Error("dam must not match adam")
	}
}

func TestIsAnswerCorrectKeywords(t *testing.T) {
	if !IsAnswerCorrect("garden of eden", []string{"the Garden of Eden"}) {
		t.Error("noise words should be ignored")
	}
	if !IsAnswerCorrect("red sea", []string{"The Red Sea"}) {
		t.Error("article should be ignored")
	}
}

func TestIsAnswerCorrectTypos(t *testing.T) {
	// One typo allowed under 8 chars.
	if !IsAnswerCorrect("mosess", []string{"moses"}) {
		t.Error("single typo should match short answer")
	}
	// Two typos allowed at 8+ chars.
	if !IsAnswerCorrect("bethlehm", []string{"bethlehem"}) {
		t.Error("typo should match long answer")
	}
	// Way off never matches.
	if IsAnswerCorrect("pharaoh", []string{"moses"}) {
		t.Error("unrelated word must not match")
	}
	// Short messages get no typo tolerance.
	if IsAnswerCorrect("cat", []string{"can"}) {
		t.Error("3-char words get no edit distance slack")
	}
}

func TestIsAnswerCorrectCurlyQuotes(t *testing.T) {
	if !IsAnswerCorrect("it’s Noah", []string{"it's noah"}) {
		t.Error("curly apostrophe should normalize")
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"moses", "moses", 0},
		{"moses", "mosess", 1},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
