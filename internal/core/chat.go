package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctorai/internal/geo"
	"doctorai/internal/llm"
	"doctorai/internal/observability"
	"doctorai/pkg"
)

// ErrEmptyMessage rejects a turn before any processing happens.
var ErrEmptyMessage = errors.New("message is required")

// DoctorSource produces the provider registry. Each call re-reads the
// source; there is no caching at this layer.
type DoctorSource interface {
	Load(ctx context.Context) ([]pkg.Doctor, error)
}

// TranscriptStore appends the (user, bot) message pair for a session,
// creating the session if it does not exist yet.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID string, msgs []pkg.StoredMessage) error
}

// TurnInput is one inbound chat turn. Latitude/Longitude are nil when the
// caller supplied no coordinates; matches then carry no distance.
type TurnInput struct {
	SessionID    string
	Message      string
	Conversation []pkg.Message
	Latitude     *float64
	Longitude    *float64
}

// TurnResult is the outcome of a turn. Mode is the derived dialogue mode,
// exposed so callers can log or cache it; the service itself never stores
// it anywhere.
type TurnResult struct {
	Mode         TurnMode
	Response     string
	Conversation []pkg.Message
}

// ChatService orchestrates one turn: classification, completion calls, the
// recommendation pipeline and the transcript append. One turn is one
// sequential pipeline; the only blocking step is the completion call.
type ChatService struct {
	llmClient llm.Client
	doctors   DoctorSource
	store     TranscriptStore
	metrics   *observability.Metrics
	sampling  llm.Sampling
	limit     int
}

// NewChatService wires the orchestrator. metrics may be nil.
func NewChatService(client llm.Client, doctors DoctorSource, store TranscriptStore, sampling llm.Sampling, limit int, metrics *observability.Metrics) *ChatService {
	if limit <= 0 {
		limit = geo.DefaultLimit
	}
	return &ChatService{
		llmClient: client,
		doctors:   doctors,
		store:     store,
		metrics:   metrics,
		sampling:  sampling,
		limit:     limit,
	}
}

// Respond processes one turn and returns the reply, the updated
// conversation and the derived mode. A completion or persistence failure
// fails the whole turn; nothing is half-written.
func (s *ChatService) Respond(ctx context.Context, in TurnInput) (*TurnResult, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	conv := append([]pkg.Message(nil), in.Conversation...)

	if FollowupExhausted(conv) {
		reply, err := s.complete(ctx, DiagnosisPrompt, conv, message)
		if err != nil {
			return nil, fmt.Errorf("completion: %w", err)
		}
		conv = append(conv,
			pkg.Message{Role: pkg.RoleUser, Content: message},
			pkg.Message{Role: pkg.RoleAssistant, Content: reply},
		)
		if err := s.append(ctx, in.SessionID, message, reply, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(ModeFollowupExhausted, reply, conv), nil
	}

	reply, err := s.complete(ctx, TriagePrompt, conv, message)
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}
	if reply == "" {
		reply = CompletionFallback
	}
	conv = append(conv,
		pkg.Message{Role: pkg.RoleUser, Content: message},
		pkg.Message{Role: pkg.RoleAssistant, Content: reply},
	)

	mode := ClassifyReply(conv, message, reply)
	switch mode {
	case ModeEmergency:
		specs := ResolveSpecializations(emergencyTriggers, reply, message)
		matches, err := s.recommend(ctx, specs, in.Latitude, in.Longitude)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			full := reply + ComposeSuggestion(matches, FramingCritical)
			if err := s.append(ctx, in.SessionID, message, full, pkg.KindDoctorSuggestion); err != nil {
				return nil, err
			}
			return s.finish(mode, full, conv), nil
		}
		// No providers matched: the stored transcript keeps the bare reply,
		// the caller still sees the warning.
		if err := s.append(ctx, in.SessionID, message, reply, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(mode, reply+CriticalNoDoctors, conv), nil

	case ModeNegativeAfterFollowup:
		diagnosis, err := s.complete(ctx, DiagnosisPrompt, conv, DiagnosisRequest)
		if err != nil {
			return nil, fmt.Errorf("completion: %w", err)
		}
		conv = append(conv, pkg.Message{Role: pkg.RoleAssistant, Content: diagnosis})
		// The stored bot message is the triage reply, not the diagnosis.
		if err := s.append(ctx, in.SessionID, message, reply, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(mode, diagnosis, conv), nil

	case ModeDiagnosisOfferPending:
		if err := s.append(ctx, in.SessionID, message, reply, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(mode, reply, conv), nil

	case ModeAffirmativeDoctorRequest:
		specs := NewSpecSet()
		if diagnosis := ExtractDiagnosis(conv); diagnosis != "" {
			specs = ResolveSpecializations(diagnosisTriggers, diagnosis)
		}
		matches, err := s.recommend(ctx, specs, in.Latitude, in.Longitude)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			suggestion := ComposeSuggestion(matches, FramingElective)
			if err := s.append(ctx, in.SessionID, message, suggestion, pkg.KindDoctorSuggestion); err != nil {
				return nil, err
			}
			return s.finish(mode, suggestion, conv), nil
		}
		if err := s.append(ctx, in.SessionID, message, ElectiveNoDoctors, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(mode, ElectiveNoDoctors, conv), nil

	default:
		if err := s.append(ctx, in.SessionID, message, reply, pkg.KindText); err != nil {
			return nil, err
		}
		return s.finish(ModeDefault, reply, conv), nil
	}
}

// complete calls the completion collaborator with the system instruction,
// the conversation so far and the latest user content.
func (s *ChatService) complete(ctx context.Context, instruction string, conversation []pkg.Message, userContent string) (string, error) {
	messages := make([]pkg.Message, 0, len(conversation)+2)
	messages = append(messages, pkg.Message{Role: pkg.RoleSystem, Content: instruction})
	messages = append(messages, conversation...)
	messages = append(messages, pkg.Message{Role: pkg.RoleUser, Content: userContent})

	start := time.Now()
	reply, err := s.llmClient.Complete(ctx, messages, s.sampling)
	s.metrics.ObserveCompletion(time.Since(start).Seconds(), err == nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// recommend runs the recommendation pipeline: fresh directory load, then
// specialization filter and geodistance ranking.
func (s *ChatService) recommend(ctx context.Context, specs SpecSet, lat, lng *float64) ([]pkg.Match, error) {
	doctors, err := s.doctors.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load doctor directory: %w", err)
	}
	return geo.Rank(doctors, specs.Values(), lat, lng, s.limit), nil
}

func (s *ChatService) append(ctx context.Context, sessionID, userText, botText, botKind string) error {
	err := s.store.Append(ctx, sessionID, []pkg.StoredMessage{
		{Sender: pkg.SenderUser, Kind: pkg.KindText, Text: userText},
		{Sender: pkg.SenderBot, Kind: botKind, Text: botText},
	})
	if err != nil {
		return fmt.Errorf("persist transcript: %w", err)
	}
	return nil
}

func (s *ChatService) finish(mode TurnMode, response string, conv []pkg.Message) *TurnResult {
	s.metrics.ObserveTurn(string(mode))
	return &TurnResult{Mode: mode, Response: response, Conversation: conv}
}
