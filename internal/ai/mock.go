package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns a canned advisor used in tests and when no AI_API_KEY is
// configured, so the chat flow stays usable in development.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(_ context.Context, question string) (string, error) {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "blight"):
		return "Remove and burn affected leaves, avoid overhead watering and apply a copper-based fungicide weekly until new growth is clean.", nil
	case strings.Contains(q, "pest") || strings.Contains(q, "insect"):
		return "Inspect the underside of leaves in the early morning, pick off visible insects and use neem oil spray twice a week.", nil
	default:
		return "Please share the crop name and a short description of the symptoms, and check soil moisture before the next irrigation.", nil
	}
}
