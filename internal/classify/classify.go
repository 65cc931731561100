// Package classify decides which collected entries are kept and which tab
// an entry lands on when its source has no fixed category.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muu0726/Tech-Information/internal/news"
)

var categoryKeywords = map[news.Category][]string{
	news.AI: {
		"ai", "llm", "gpt", "gemini", "claude", "chatgpt", "openai", "anthropic",
		"machine learning", "deep learning", "neural", "transformer", "inference",
		"diffusion", "embedding", "nlp", "pytorch", "tensorflow", "agent",
		"生成ai", "人工知能", "機械学習", "深層学習", "大規模言語モデル",
	},
	news.Programming: {
		"python", "java", "golang", "rust", "typescript", "javascript", "kotlin",
		"swift", "react", "compiler", "library", "framework", "refactoring",
		"api", "sdk", "git", "github", "code", "coding", "programming", "test",
		"プログラミング", "実装", "コード", "開発", "エンジニア", "ライブラリ",
	},
}

// scored in this order; earlier wins ties
var ranked = []news.Category{news.AI, news.Programming}

// Relevant reports whether the entry mentions any keyword,
// case-insensitively. An empty keyword list keeps everything.
func Relevant(title, summary string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(title + " " + summary)
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Infer picks a tab for an entry from its text. Title hits count twice.
// Entries that match neither AI nor Programming go to IT.
func Infer(title, summary string) news.Category {
	titleTokens := tokenize(title)
	descTokens := tokenize(summary)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(summary)

	best := news.IT
	bestScore := 0
	for _, cat := range ranked {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if isWord(kw) {
				score += 2*count(titleTokens, kw) + count(descTokens, kw)
				continue
			}
			// phrases and CJK terms: substring match on lowered text
			if strings.Contains(titleLower, kw) {
				score += 2
			}
			if strings.Contains(descLower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = cat, score
		}
	}
	return best
}

func count(tokens []string, kw string) int {
	n := 0
	for _, t := range tokens {
		if t == kw {
			n++
		}
	}
	return n
}

// isWord reports whether kw is a single ASCII word, matched per token.
func isWord(kw string) bool {
	if strings.Contains(kw, " ") {
		return false
	}
	return utf8.RuneCountInString(kw) == len(kw)
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens = append(tokens, word)
	}
	return tokens
}
