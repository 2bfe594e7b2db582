package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voxaris/utils"

	"go.uber.org/zap"
)

const defaultTavusBaseURL = "https://tavusapi.com/v2"

// TavusClient creates video conversations against the Tavus API. The tool
// callback URL it registers points back at this service's /api/execute
// endpoint.
type TavusClient struct {
	apiKey      string
	personaID   string
	callbackURL string
	baseURL     string
	httpClient  *http.Client
}

func NewTavusClient(apiKey, personaID, callbackURL string) *TavusClient {
	return &TavusClient{
		apiKey:      apiKey,
		personaID:   personaID,
		callbackURL: callbackURL,
		baseURL:     defaultTavusBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type tavusConversation struct {
	ConversationID string `json:"conversation_id"`
	PersonaID      string `json:"persona_id"`
}

type tavusListResponse struct {
	Data []tavusConversation `json:"data"`
}

// CreateConversation ends any active conversations for the persona (to stay
// under the concurrent limit), then creates a fresh one seeded with the
// visitor's name and reason.
func (c *TavusClient) CreateConversation(ctx context.Context, visitorName, reason string) (map[string]any, error) {
	if visitorName == "" {
		visitorName = "there"
	}
	if reason == "" {
		reason = "exploring travel options"
	}

	// Cleanup failures must not block conversation creation.
	if err := c.endActiveConversations(ctx); err != nil {
		utils.GetLogger().Warn("tavus: cleanup of active conversations failed", zap.Error(err))
	}

	body := map[string]any{
		"persona_id":        c.personaID,
		"conversation_name": fmt.Sprintf("Concierge - %s - %s", visitorName, time.Now().Format(time.RFC3339)),
		"conversational_context": fmt.Sprintf(
			"The visitor's name is %s. They reached out because: %s. Greet them by name and acknowledge why they're reaching out.",
			visitorName, reason),
		"callback_url": c.callbackURL,
		"properties": map[string]any{
			"max_call_duration":    1200,
			"enable_recording":     true,
			"enable_transcription": true,
			"language":             "english",
		},
	}
	return c.post(ctx, "/conversations", body)
}

func (c *TavusClient) endActiveConversations(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/conversations?status=active", nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-api-key", c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var list tavusListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fmt.Errorf("decode active conversations: %w", err)
	}
	for _, conv := range list.Data {
		if conv.PersonaID != c.personaID {
			continue
		}
		if _, err := c.post(ctx, "/conversations/"+conv.ConversationID+"/end", nil); err != nil {
			utils.GetLogger().Warn("tavus: failed to end conversation",
				zap.String("conversationId", conv.ConversationID), zap.Error(err))
		}
	}
	return nil
}

func (c *TavusClient) post(ctx context.Context, path string, body any) (map[string]any, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, fmt.Errorf("encode tavus request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavus request failed: %w", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tavus response: %w", err)
	}
	return out, nil
}
