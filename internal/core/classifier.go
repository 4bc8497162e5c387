package core

import (
	"strings"

	"doctorai/pkg"
)

// TurnMode is the derived dialogue mode for one turn. It is recomputed
// from the transcript every time and never persisted; correctness depends
// on transcript completeness, not on cached state.
type TurnMode string

const (
	ModeFollowupExhausted        TurnMode = "FOLLOWUP_EXHAUSTED"
	ModeEmergency                TurnMode = "EMERGENCY"
	ModeNegativeAfterFollowup    TurnMode = "NEGATIVE_AFTER_FOLLOWUP"
	ModeDiagnosisOfferPending    TurnMode = "DIAGNOSIS_OFFER_PENDING"
	ModeAffirmativeDoctorRequest TurnMode = "AFFIRMATIVE_DOCTOR_REQUEST"
	ModeDefault                  TurnMode = "DEFAULT"
)

// isFollowupQuestion reports whether an assistant message asked a
// clarifying question instead of concluding triage.
func isFollowupQuestion(content string) bool {
	lower := strings.ToLower(content)
	for _, p := range followupPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// FollowupExhausted reports whether the assistant has already asked enough
// clarifying questions. Two or more follow-up turns switch the dialogue to
// diagnosis finalization regardless of the new user message.
func FollowupExhausted(conversation []pkg.Message) bool {
	count := 0
	for _, m := range conversation {
		if m.Role == pkg.RoleAssistant && isFollowupQuestion(m.Content) {
			count++
		}
	}
	return count >= 2
}

// ClassifyReply decides the dialogue mode once the triage reply exists.
// The checks are mutually exclusive and ordered by priority; the first hit
// wins. The conversation passed here is the updated transcript, already
// including this turn's user message and the triage reply.
func ClassifyReply(conversation []pkg.Message, userMessage, reply string) TurnMode {
	lowerReply := strings.ToLower(reply)
	lowerMsg := strings.ToLower(userMessage)

	if isEmergency(lowerReply, lowerMsg) {
		return ModeEmergency
	}
	if isNegativeAfterFollowup(conversation, lowerMsg) {
		return ModeNegativeAfterFollowup
	}
	if strings.Contains(lowerReply, OfferPhrase) {
		return ModeDiagnosisOfferPending
	}
	if containsAny(lowerMsg, affirmativeWords) {
		return ModeAffirmativeDoctorRequest
	}
	return ModeDefault
}

// isEmergency scans both the reply and the user message against the
// emergency trigger table and the critical-symptom list. A hit in either
// enters the emergency branch; the trigger table alone decides which
// specializations are paged.
func isEmergency(lowerReply, lowerMsg string) bool {
	for _, term := range criticalSymptoms {
		if strings.Contains(lowerReply, term) || strings.Contains(lowerMsg, term) {
			return true
		}
	}
	for trigger := range emergencyTriggers {
		if strings.Contains(lowerReply, trigger) || strings.Contains(lowerMsg, trigger) {
			return true
		}
	}
	return false
}

func isNegativeAfterFollowup(conversation []pkg.Message, lowerMsg string) bool {
	trimmed := strings.TrimSpace(lowerMsg)
	negative := false
	for _, w := range negativeReplies {
		if trimmed == w {
			negative = true
			break
		}
	}
	if !negative {
		return false
	}
	for _, m := range conversation {
		if m.Role == pkg.RoleAssistant && strings.Contains(strings.ToLower(m.Content), ExperiencingPhrase) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
