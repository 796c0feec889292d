package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GeneratePerformanceCommentary(ctx context.Context, summary string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const commentaryPrompt = `
You are a portfolio performance analyst. The user will give you a compact JSON
summary of a portfolio's performance over a date range: the cumulative
time-weighted return, a benchmark's return over the same range, and risk
statistics (annualized volatility, Sharpe ratio, max drawdown) when enough
history exists.

Write a short (3-5 sentence) plain-English commentary on the portfolio's
performance. Mention the time-weighted return and how it compares to the
benchmark. Do not invent numbers that are not in the summary. Do not give
investment advice.
`

func (h gptRepositoryHandler) GeneratePerformanceCommentary(ctx context.Context, summary string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: commentaryPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: summary,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate commentary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
