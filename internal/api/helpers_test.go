package api

import (
	"context"
	"strings"

	"expert-chat/internal/persona"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// stubAdvisor replaces the remote model in handler tests.
type stubAdvisor struct {
	reply string
	err   error

	calls    int
	persona  persona.Persona
	question string
}

func (s *stubAdvisor) Ask(ctx context.Context, p persona.Persona, question string) (string, error) {
	s.calls++
	s.persona = p
	s.question = question
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}
