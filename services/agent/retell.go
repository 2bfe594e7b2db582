package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultRetellBaseURL = "https://api.retellai.com/v2"

// RetellClient creates voice web calls against the Retell API.
type RetellClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewRetellClient(apiKey string) *RetellClient {
	return &RetellClient{
		apiKey:     apiKey,
		baseURL:    defaultRetellBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateWebCall registers a web call for the given agent, seeding the agent's
// prompt with the supplied dynamic variables.
func (c *RetellClient) CreateWebCall(ctx context.Context, agentID string, dynamicVars map[string]string) (map[string]any, error) {
	body := map[string]any{
		"agent_id":                    agentID,
		"retell_llm_dynamic_variables": dynamicVars,
	}
	var payload bytes.Buffer
	if err := json.NewEncoder(&payload).Encode(body); err != nil {
		return nil, fmt.Errorf("encode retell request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-web-call", &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retell request failed: %w", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode retell response: %w", err)
	}
	return out, nil
}
