// Package ref recognizes Bible references in chat text.
//
// It handles structured references ("John 3:16", "1 Cor 13:4-7 KJV",
// "Psalm 23", "Romans 8-9", "John 3:16,17") as well as references embedded
// in free-form messages ("I love John 3:16 so much"). Book names resolve
// through a fixed table of the 66 canonical books and their common
// abbreviations. Parsing never fails with an error: unrecognized input
// yields nil.
package ref

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Reference is a structured pointer to a Bible passage. Book is always one
// of the 66 canonical names. Display round-trips through Parse.
type Reference struct {
	Book        string
	Chapter     int
	EndChapter  int    // 0 unless the reference is a chapter range
	Verses      string // normalized verse spec ("16", "16-18", "16,17"), empty for whole chapters
	Display     string
	Translation string // recognized translation code, or empty
}

func (r *Reference) String() string { return r.Display }

// Groups: 1 book (optional leading 1/2/3), 2 chapter, 3 verse spec,
// 4 trailing chapter for chapter ranges, 5 trailing translation word.
var refPattern = regexp.MustCompile(`^(?i)((?:[123]\s*)?[a-zA-Z]+(?:\s+of\s+[a-zA-Z]+)?)\s+(\d+)(?::(\d+(?:\s*[-–—,]\s*\d+)*))?(?:\s*[-–—]\s*(\d+))?(?:\s+([a-zA-Z]+))?$`)

var dashes = strings.NewReplacer("–", "-", "—", "-")

// Parse parses a single reference. It returns nil when the text does not
// start with a known book name or the numeric structure is malformed.
func Parse(text string) *Reference {
	if len(text) < 3 {
		return nil
	}
	input := strings.TrimSpace(text)

	m := refPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}

	book, ok := bookNames[strings.ToLower(strings.TrimSpace(m[1]))]
	if !ok {
		return nil
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}

	verses := ""
	if m[3] != "" {
		verses = dashes.Replace(strings.ReplaceAll(m[3], " ", ""))
	}

	endChapter := 0
	if m[4] != "" {
		endChapter, err = strconv.Atoi(m[4])
		if err != nil {
			return nil
		}
	}

	translation := ""
	if w := strings.ToLower(m[5]); w != "" && IsTranslation(w) {
		translation = w
	}

	var display string
	switch {
	case endChapter != 0 && verses == "":
		// Chapter range: "Romans 8-9".
		display = fmt.Sprintf("%s %d-%d", book, chapter, endChapter)
	case verses != "":
		display = fmt.Sprintf("%s %d:%s", book, chapter, verses)
	default:
		display = fmt.Sprintf("%s %d", book, chapter)
	}

	// A dash-number after a verse spec belongs to the verse range, never to
	// a chapter range ("John 3:16-18" is verses 16-18 of chapter 3).
	if verses != "" {
		endChapter = 0
	}

	return &Reference{
		Book:        book,
		Chapter:     chapter,
		EndChapter:  endChapter,
		Verses:      verses,
		Display:     display,
		Translation: translation,
	}
}

// ParseMulti parses semicolon-separated references ("John 3:16; Romans 8:28")
// and silently drops segments that do not parse. The result may be empty.
func ParseMulti(text string) []*Reference {
	var out []*Reference
	for _, part := range strings.Split(text, ";") {
		if r := Parse(strings.TrimSpace(part)); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// scanPatterns holds one regexp per book key (length >= 3, longest first)
// used to spot references embedded in longer messages. Short two-letter
// abbreviations are skipped to keep false positives down.
var scanPatterns = sync.OnceValue(func() []*regexp.Regexp {
	keys := make([]string, 0, len(bookNames))
	for k := range bookNames {
		if len(k) >= 3 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	trans := strings.Join(Translations, "|")
	patterns := make([]*regexp.Regexp, 0, len(keys))
	for _, k := range keys {
		patterns = append(patterns, regexp.MustCompile(
			`(?i)(?:^|\s)(`+regexp.QuoteMeta(k)+`)\s+(\d+)(?::(\d+(?:\s*[-–—,]\s*\d+)*))?(?:\s*[-–—]\s*(\d+))?(?:\s+(`+trans+`))?(?:\s|$|[.,!?;])`))
	}
	return patterns
})

// FindInMessage looks for a reference anywhere in a chat message, for
// auto-detection when someone types "John 3:16" mid-sentence. Messages that
// start with a command prefix are never scanned. Book keys are tried
// longest-first and the first hit wins; at most one reference is returned.
func FindInMessage(message string) *Reference {
	if message == "" {
		return nil
	}
	if strings.HasPrefix(message, "!") || strings.HasPrefix(message, "/") {
		return nil
	}

	trimmed := strings.TrimSpace(message)
	if r := Parse(trimmed); r != nil {
		return r
	}

	for _, pat := range scanPatterns() {
		m := pat.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		refText := m[1] + " " + m[2]
		if m[3] != "" {
			refText += ":" + m[3]
		}
		if m[4] != "" && m[3] == "" {
			refText += "-" + m[4]
		}
		if m[5] != "" {
			refText += " " + m[5]
		}
		if r := Parse(refText); r != nil {
			return r
		}
	}
	return nil
}
