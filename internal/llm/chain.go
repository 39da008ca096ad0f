package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	"expert-chat/internal/persona"
)

// Chain pipes a persona prompt template into a chat model and reads back the
// text of the first choice.
type Chain struct {
	model       llms.Model
	temperature float64
}

func NewChain(model llms.Model, temperature float64) *Chain {
	return &Chain{model: model, temperature: temperature}
}

// Prompt is the system instruction for p followed by the human turn.
func (c *Chain) Prompt(p persona.Persona) prompts.ChatPromptTemplate {
	return prompts.NewChatPromptTemplate([]prompts.MessageFormatter{
		prompts.NewSystemMessagePromptTemplate(p.SystemPrompt(), nil),
		prompts.NewHumanMessagePromptTemplate("{{."+questionVar+"}}", []string{questionVar}),
	})
}

// Messages renders the prompt for one question.
func (c *Chain) Messages(p persona.Persona, question string) ([]llms.MessageContent, error) {
	formatted, err := c.Prompt(p).FormatMessages(map[string]any{questionVar: question})
	if err != nil {
		return nil, fmt.Errorf("format prompt: %w", err)
	}
	out := make([]llms.MessageContent, 0, len(formatted))
	for _, m := range formatted {
		out = append(out, llms.TextParts(m.GetType(), m.GetContent()))
	}
	return out, nil
}

// Invoke makes exactly one completion call. The answer is returned as sent.
func (c *Chain) Invoke(ctx context.Context, p persona.Persona, question string) (string, error) {
	msgs, err := c.Messages(p, question)
	if err != nil {
		return "", err
	}
	resp, err := c.model.GenerateContent(ctx, msgs, llms.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}
