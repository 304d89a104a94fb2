package provider

import (
	"context"
	"fmt"
)

// MockProvider is a canned model backend for testing.
type MockProvider struct {
	Translations map[string]string // source text -> translation
	CallCount    int               // number of Translate calls
	LastRequest  *ModelRequest     // last request received
	Err          error             // returned from every call when set
}

// NewMockProvider creates a mock with a few default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":        "नमस्ते",
			"Thank you":    "धन्यवाद",
			"How are you?": "आप कैसे हैं?",
		},
	}
}

// Translate returns canned translations. Unknown texts come back bracketed
// so tests can tell them apart from real hits.
func (m *MockProvider) Translate(ctx context.Context, req ModelRequest) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return nil, m.Err
	}

	results := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		if translation, ok := m.Translations[text]; ok {
			results[i] = translation
		} else {
			results[i] = fmt.Sprintf("[%s]", text)
		}
	}
	return results, nil
}

// Reset clears the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements ModelProvider
var _ ModelProvider = (*MockProvider)(nil)
