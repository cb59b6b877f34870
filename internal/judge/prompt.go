package judge

import (
	"fmt"
	"strings"

	"project-intake-backend/internal/vectorindex"
)

const systemPrompt = `You review student project proposals for duplication against earlier projects.
Decide whether the new proposal is original, suspiciously close, or a copy of one of the listed matches.
Reply with a single JSON object and nothing else, no markdown fences, using exactly this structure:
{
  "analysis": "short conceptual analysis of the new proposal",
  "comparison": [
    {"match_name": "title of the match", "similarity_note": "what is shared and what differs"}
  ],
  "verdict": {
    "status": "Unique" | "Suspicious" | "Plagiarized",
    "score": 0-100,
    "reasoning": "final conclusion"
  }
}
Include one comparison entry per match, in the order given.`

// BuildPrompt renders the user message: the new proposal followed by numbered matches.
func BuildPrompt(project NewProject, matches []vectorindex.SimilarityMatch) string {
	var b strings.Builder
	b.WriteString("NEW PROPOSAL\n")
	fmt.Fprintf(&b, "Title: %s\n", project.Title)
	fmt.Fprintf(&b, "Synopsis: %s\n", project.Synopsis)
	b.WriteString("\nEXISTING MATCHES\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "\n[MATCH #%d]\nTitle: %s\nSynopsis: %s\n", i+1, m.Title, m.Synopsis)
	}
	return b.String()
}
