package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON output.
// Models sometimes wrap JSON in ```json fences despite instructions.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// TruncateForPrompt limits input text to maxChars to keep prompts within
// model context budgets. Truncation happens on a byte boundary; job
// postings are ASCII-dominant so this matches the original behavior.
func TruncateForPrompt(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
