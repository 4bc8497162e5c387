package core

import (
	"strings"

	"doctorai/pkg"
)

// ExtractDiagnosis pulls the diagnosis description out of the most recent
// assistant message containing "based on your symptoms": the substring
// after the marker, cut at the first period, lower-cased and trimmed.
//
// This is a best-effort heuristic, not a parser. Leading punctuation from
// the original sentence (typically ", you may be experiencing ...") is kept
// on purpose — downstream matching is substring-based and existing keyword
// tables were tuned against exactly this shape. Returns "" when no message
// carries the marker.
func ExtractDiagnosis(conversation []pkg.Message) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		msg := conversation[i]
		if msg.Role != pkg.RoleAssistant {
			continue
		}
		content := strings.ToLower(msg.Content)
		idx := strings.Index(content, DiagnosisMarker)
		if idx < 0 {
			continue
		}
		rest := content[idx+len(DiagnosisMarker):]
		if cut := strings.Index(rest, "."); cut >= 0 {
			rest = rest[:cut]
		}
		return strings.TrimSpace(rest)
	}
	return ""
}
