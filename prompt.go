package askweb

import (
	"fmt"
	"strings"
)

// SystemInstruction is the instruction sent alongside every answer prompt.
const SystemInstruction = "You are a helpful assistant answering questions about scraped web content. Answer based only on the passages provided. If the answer is not in the passages, say so."

// BuildPrompt composes the generation prompt from retrieved passages and the
// question. Each passage is tagged with its source URL when available.
func BuildPrompt(matches []Match, question string) string {
	var sb strings.Builder
	sb.WriteString("<passages>\n")
	for i, m := range matches {
		sb.WriteString("<passage>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		if source := m.Document.Metadata["source"]; source != "" {
			fmt.Fprintf(&sb, "<source>%s</source>\n", source)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", m.Document.Content)
		sb.WriteString("</passage>\n")
	}
	sb.WriteString("</passages>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
