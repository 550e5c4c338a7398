// Package crm holds the outbound HubSpot integration. Contact creation is
// best-effort: callers log failures and move on, the caller's own response
// never depends on the outcome.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"studio/models"
)

const defaultBaseURL = "https://api.hubapi.com"

// notifyTimeout bounds the synchronous contact-creation attempt so a slow
// CRM cannot hold up the lead response for long.
const notifyTimeout = 5 * time.Second

// HubSpot creates CRM contacts from submitted leads. A zero APIKey disables
// it entirely: Enabled reports false and no call is ever attempted. BaseURL
// and Client are exported so tests can point the notifier at a double.
type HubSpot struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewHubSpot(apiKey string) *HubSpot {
	return &HubSpot{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: notifyTimeout},
	}
}

// Enabled reports whether a CRM credential is configured. Safe on a nil
// receiver.
func (h *HubSpot) Enabled() bool {
	return h != nil && h.APIKey != ""
}

// CreateContact registers the lead as a HubSpot contact with the "lead"
// lifecycle stage. The response body is discarded; a non-2xx status is
// returned as an error so the caller can log it.
func (h *HubSpot) CreateContact(ctx context.Context, lead models.Lead) error {
	phone := ""
	if lead.Phone != nil {
		phone = *lead.Phone
	}
	notes := ""
	if lead.ProjectDetails != nil {
		notes = *lead.ProjectDetails
	}

	payload := map[string]map[string]string{
		"properties": {
			"email":          lead.Email,
			"firstname":      lead.Name,
			"phone":          phone,
			"lifecyclestage": "lead",
			"notes":          notes,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.BaseURL+"/crm/v3/objects/contacts", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build contact request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("hubspot returned status %d", resp.StatusCode)
	}

	return nil
}
