package ref

import "testing"

func TestParseBasic(t *testing.T) {
	cases := []struct {
		in      string
		book    string
		chapter int
		verses  string
		display string
	}{
		{"John 3:16", "John", 3, "16", "John 3:16"},
		{"john 3:16", "John", 3, "16", "John 3:16"},
		{"JOHN 3:16", "John", 3, "16", "John 3:16"},
		{"Romans 8:28-30", "Romans", 8, "28-30", "Romans 8:28-30"},
		{"John 3:16,17", "John", 3, "16,17", "John 3:16,17"},
		{"Psalm 23", "Psalms", 23, "", "Psalms 23"},
		{"Psalms 23", "Psalms", 23, "", "Psalms 23"},
		{"Gen 1:1", "Genesis", 1, "1", "Genesis 1:1"},
		{"1 Cor 13:4", "1 Corinthians", 13, "4", "1 Corinthians 13:4"},
		{"1Cor 13:4", "1 Corinthians", 13, "4", "1 Corinthians 13:4"},
		{"2 Tim 1:7", "2 Timothy", 1, "7", "2 Timothy 1:7"},
		{"Song of Solomon 2:1", "Song of Solomon", 2, "1", "Song of Solomon 2:1"},
		{"Phil 4:13", "Philippians", 4, "13", "Philippians 4:13"},
		{"Rev 21:4", "Revelation", 21, "4", "Revelation 21:4"},
	}
	for _, tc := range cases {
		r := Parse(tc.in)
		if r == nil {
			t.Errorf("Parse(%q) = nil, want a reference", tc.in)
			continue
		}
		if r.Book != tc.book {
			t.Errorf("Parse(%q).Book = %q, want %q", tc.in, r.Book, tc.book)
		}
		if r.Chapter != tc.chapter {
			t.Errorf("Parse(%q).Chapter = %d, want %d", tc.in, r.Chapter, tc.chapter)
		}
		if r.Verses != tc.verses {
			t.Errorf("Parse(%q).Verses = %q, want %q", tc.in, r.Verses, tc.verses)
		}
		if r.Display != tc.display {
			t.Errorf("Parse(%q).Display = %q, want %q", tc.in, r.Display, tc.display)
		}
	}
}

func TestParseChapterRange(t *testing.T) {
	r := Parse("Romans 8-9")
	if r == nil {
		t.Fatal("Parse(Romans 8-9) = nil")
	}
	if r.Chapter != 8 || r.EndChapter != 9 {
		t.Errorf("chapter range = %d-%d, want 8-9", r.Chapter, r.EndChapter)
	}
	if r.Display != "Romans 8-9" {
		t.Errorf("Display = %q, want %q", r.Display, "Romans 8-9")
	}

	// A dash after a verse spec extends the verse range, not the chapter.
	r = Parse("John 3:16-18")
	if r == nil {
		t.Fatal("Parse(John 3:16-18) = nil")
	}
	if r.EndChapter != 0 {
		t.Errorf("EndChapter = %d, want 0 for a verse range", r.EndChapter)
	}
	if r.Verses != "16-18" {
		t.Errorf("Verses = %q, want %q", r.Verses, "16-18")
	}
}

func TestParseTranslation(t *testing.T) {
	r := Parse("John 3:16 KJV")
	if r == nil {
		t.Fatal("Parse(John 3:16 KJV) = nil")
	}
	if r.Translation != "kjv" {
		t.Errorf("Translation = %q, want %q", r.Translation, "kjv")
	}
	if r.Display != "John 3:16" {
		t.Errorf("Display = %q, want translation stripped", r.Display)
	}

	// An unknown trailing word is not a translation.
	if r := Parse("John 3:16 xyz"); r != nil && r.Translation != "" {
		t.Errorf("Translation = %q, want empty for unknown code", r.Translation)
	}
}

func TestParseUnicodeDashes(t *testing.T) {
	for _, in := range []string{"John 3:16–18", "John 3:16—18"} {
		r := Parse(in)
		if r == nil {
			t.Errorf("Parse(%q) = nil", in)
			continue
		}
		if r.Verses != "16-18" {
			t.Errorf("Parse(%q).Verses = %q, want normalized %q", in, r.Verses, "16-18")
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"hi",
		"hello world",
		"Bob 3:16",
		"John",
		"3:16",
		"John :16",
	} {
		if r := Parse(in); r != nil {
			t.Errorf("Parse(%q) = %+v, want nil", in, r)
		}
	}
}

func TestParseMulti(t *testing.T) {
	refs := ParseMulti("John 3:16; Romans 8:28; garbage; Psalm 23")
	if len(refs) != 3 {
		t.Fatalf("ParseMulti returned %d refs, want 3", len(refs))
	}
	if refs[0].Display != "John 3:16" || refs[1].Display != "Romans 8:28" || refs[2].Display != "Psalms 23" {
		t.Errorf("unexpected refs: %v, %v, %v", refs[0], refs[1], refs[2])
	}
	if refs := ParseMulti("nothing; here"); len(refs) != 0 {
		t.Errorf("ParseMulti of garbage returned %d refs, want 0", len(refs))
	}
}

func TestFindInMessage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"John 3:16", "John 3:16"},
		{"I love John 3:16 so much", "John 3:16"},
		{"have you read romans 8:28?", "Romans 8:28"},
		{"psalm 23 is my favorite", "Psalms 23"},
		{"check out 1 cor 13:4-7 sometime", "1 Corinthians 13:4-7"},
	}
	for _, tc := range cases {
		r := FindInMessage(tc.in)
		if r == nil {
			t.Errorf("FindInMessage(%q) = nil, want %q", tc.in, tc.want)
			continue
		}
		if r.Display != tc.want {
			t.Errorf("FindInMessage(%q) = %q, want %q", tc.in, r.Display, tc.want)
		}
	}
}

func TestFindInMessageNegatives(t *testing.T) {
	for _, in := range []string{
		"",
		"!verse John 3:16",
		"/verse John 3:16",
		"good morning everyone",
		"i am 3 today",
	} {
		if r := FindInMessage(in); r != nil {
			t.Errorf("FindInMessage(%q) = %q, want nil", in, r.Display)
		}
	}
}

func TestFindInMessageTranslation(t *testing.T) {
	r := FindInMessage("try reading john 3:16 kjv tonight")
	if r == nil {
		t.Fatal("FindInMessage = nil")
	}
	if r.Translation != "kjv" {
		t.Errorf("Translation = %q, want %q", r.Translation, "kjv")
	}
}
