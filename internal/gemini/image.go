package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// firstImage returns the first inline image in the first candidate, or the
// concatenated text parts when there is none.
func firstImage(candidates []*genai.Candidate) ([]byte, string, bool) {
	if len(candidates) == 0 || candidates[0] == nil || candidates[0].Content == nil {
		return nil, "", false
	}
	var text strings.Builder
	for _, part := range candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, "", true
		}
		text.WriteString(part.Text)
	}
	return nil, text.String(), false
}
