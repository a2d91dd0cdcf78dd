package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	appconfig "github.com/aryaduta/ecommerce-admin-service/config"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/aryaduta/ecommerce-admin-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

const systemPrompt = "You are an e-commerce copywriter. Generate 3-5 concise, professional product description bullet points based on the product name and keywords provided. Do not add conversational filler. Just the bullets."

// Free-tier models tried in order; the first non-empty completion wins.
var models = []string{
	"meta-llama/llama-3.2-3b-instruct:free",
	"google/gemini-2.0-flash-exp:free",
	"microsoft/phi-3-mini-128k-instruct:free",
}

type OpenRouterClient struct {
	config  appconfig.TextGenConfig
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateOpenRouterClient(config appconfig.TextGenConfig, breaker *gobreaker.CircuitBreaker[[]byte]) TextGenerator {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	return &OpenRouterClient{config: config, breaker: breaker}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenRouterClient) GenerateDescription(ctx context.Context, productName string, keywords string) (string, error) {
	if keywords == "" {
		keywords = "General features"
	}

	for _, model := range models {
		text, err := c.complete(ctx, model, productName, keywords)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("model", model).Str("component", "GenerateDescription").Msg("model attempt failed")
			continue
		}
		if text != "" {
			return text, nil
		}
	}

	return "", errs.ErrUpstream
}

func (c *OpenRouterClient) complete(ctx context.Context, model string, productName string, keywords string) (string, error) {
	payload := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Product Name: %s\nKeywords/Features: %s", productName, keywords)},
		},
		Temperature: 0.7,
		MaxTokens:   200,
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	respBody, err := c.breaker.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.config.BaseURL + "/chat/completions",
			Method: http.MethodPost,
			Body:   reqBody,
			Headers: map[string]string{
				"Authorization": "Bearer " + c.config.APIKey,
				"HTTP-Referer":  c.config.Referer,
				"Content-Type":  "application/json",
			},
		})
		if err != nil {
			return nil, err
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("provider returned status %d", statusCode)
		}
		return body, nil
	})
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("provider error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}

	return completion.Choices[0].Message.Content, nil
}
