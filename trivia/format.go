package trivia

import "fmt"

var diffEmoji = map[Difficulty]string{
	Easy:   "\U0001F7E2",
	Medium: "\U0001F7E1",
	Hard:   "\U0001F534",
}

func emojiFor(d Difficulty) string {
	if e, ok := diffEmoji[d]; ok {
		return e
	}
	return "❓"
}

// ChatPrompt renders the question for Twitch chat, where there is no
// markdown and the answer window needs spelling out.
func (q *Question) ChatPrompt() string {
	return fmt.Sprintf("%s Bible Trivia (%s): %s — Type your answer in chat! (30 seconds)",
		emojiFor(q.Difficulty), q.Difficulty, q.Text)
}
