package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/tripcraft/tripcraft-api/internal/config"
	"github.com/tripcraft/tripcraft-api/internal/domain"
	"go.uber.org/zap"
)

// GeminiClient calls the Gemini generateContent endpoint to produce a
// destination catalog. One request per enrichment; a failed call surfaces
// immediately, there is no retry.
type GeminiClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ EnrichmentClient = (*GeminiClient)(nil)

// NewGeminiClient creates a new Gemini client from startup configuration
func NewGeminiClient(cfg config.GeminiConfig, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Provider envelope: a prompt goes out as contents/parts/text, the generated
// text comes back under candidates[0].content.parts[0].text.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// BuildPrompt returns the deterministic instruction prompt for a destination:
// exactly 25 spots and 30 hotels (15 Stay, 15 Lunch) with a fixed attribute
// schema, as pure JSON.
func (c *GeminiClient) BuildPrompt(destination string) string {
	return fmt.Sprintf(`You are a smart travel planner.

Based only on the following destination:
{
  "destination": "%s"
}

Generate a JSON response with two arrays:

1. "spots" - Include exactly 25 unique and diverse tourist spots in and around the destination. For each spot, provide:
   - name
   - location
   - category (e.g., history, food, relaxation, adventure, nightlife, art, spiritual, nature, cultural, shopping)
   - rating (1 to 5)
   - estimatedCost (in INR)
   - timeSlot (in format "HH:MM-HH:MM")
   - longitude
   - latitude

2. "hotels" - Include exactly 30 unique hotels near the above tourist spots:
   - 15 hotels with stayType "Stay" (for accommodation)
   - 15 hotels with stayType "Lunch" (for dining)

   For each hotel, provide:
   - name
   - location
   - category (e.g., Luxury, Budget, Casual Dining)
   - rating (1 to 5)
   - pricePerNight (in INR)
   - stayType ("Stay" or "Lunch")
   - longitude
   - latitude
   - nearbySpot (mention the closest tourist spot name)

Guidelines:
- All entries must be unique and relevant to the given destination.
- Include a variety of categories and budget levels.
- Ensure hotel locations are near the tourist spots.
- Format output as pure valid JSON only. Example:
{
  "spots": [ ... ],
  "hotels": [ ... ]
}`, destination)
}

// Generate requests a catalog for the destination and normalizes the
// response into Spot and Hotel records
func (c *GeminiClient) Generate(ctx context.Context, destination string) (*domain.Catalog, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: c.BuildPrompt(destination)}},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("enrichment request failed",
			zap.String("destination", destination),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrEnrichmentUnavailable, resp.StatusCode)
	}

	var envelope geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentParse, err)
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidates", ErrEnrichmentParse)
	}

	text := StripMarkdownFences(envelope.Candidates[0].Content.Parts[0].Text)

	catalog := &domain.Catalog{}
	if err := json.Unmarshal([]byte(text), catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentParse, err)
	}

	c.logger.Debug("enrichment response parsed",
		zap.String("destination", destination),
		zap.Int("spots", len(catalog.Spots)),
		zap.Int("hotels", len(catalog.Hotels)),
	)

	return catalog, nil
}

var markdownFence = regexp.MustCompile("```(?:json)?\\s*")

// StripMarkdownFences removes triple-backtick code fences (with or without a
// json language tag) and surrounding whitespace, leaving the bare payload.
func StripMarkdownFences(s string) string {
	return strings.TrimSpace(markdownFence.ReplaceAllString(s, ""))
}
