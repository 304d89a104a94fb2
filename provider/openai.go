package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openlexica/bhasha"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements ModelProvider using OpenAI's chat API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // uses OPENAI_API_KEY env var if empty
	Model       string  // default "gpt-4o-mini"
	Temperature float32 // default 0.3
	BaseURL     string  // optional custom base URL
}

// NewOpenAIProvider creates an OpenAI-backed model provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a batch of texts through the model.
func (p *OpenAIProvider) Translate(ctx context.Context, req ModelRequest) ([]string, error) {
	if len(req.Texts) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &bhasha.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &bhasha.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Texts))
}

func (p *OpenAIProvider) buildSystemPrompt(req ModelRequest) string {
	source := req.SourceLang
	if source == "" {
		source = "english"
	}
	target := req.TargetLang

	prompt := fmt.Sprintf(`# Role
You are an expert native translator. Translate from %s to %s with the fluency of a highly educated native speaker.

# Task
Translate the provided texts into idiomatic %s, written in its native script.

# Style Guide
- Avoid literal translations; rephrase to sound natural to a native speaker.
- Never translate idioms literally; use natural %s equivalents.
- Preserve meaningful whitespace and use idiomatic punctuation for the target language.
- Keep names, numbers, URLs and email addresses exactly as they appear.`,
		source, target, target, target)

	if req.SourceCode != "" && req.TargetCode != "" {
		prompt += fmt.Sprintf("\n- Language codes: source %s, target %s.", req.SourceCode, req.TargetCode)
	}

	prompt += `

# Format
Return a valid JSON object with a single key "translations" containing an array of strings in the exact same order as the input.
Example: { "translations": ["translated string 1", "translated string 2"] }
Do NOT wrap the output in Markdown code blocks.`

	return prompt
}

func (p *OpenAIProvider) buildUserMessage(req ModelRequest) string {
	data, _ := json.Marshal(req.Texts)
	return string(data)
}

func (p *OpenAIProvider) parseResponse(content string, expectedCount int) ([]string, error) {
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if translations, ok := objResult["translations"]; ok {
			if arr, ok := translations.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
		// Fallback: first array value wins.
		for _, v := range objResult {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	var arrResult []interface{}
	if err := json.Unmarshal([]byte(content), &arrResult); err == nil {
		return toStringSlice(arrResult, expectedCount)
	}

	return nil, &bhasha.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}
	if len(result) != expectedCount {
		return nil, &bhasha.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}
	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"rate limit", "timeout", "connection refused", "temporary",
		"503", "502", "429",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements ModelProvider
var _ ModelProvider = (*OpenAIProvider)(nil)
