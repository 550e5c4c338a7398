package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/models"
)

func TestNewHubSpot(t *testing.T) {
	notifier := NewHubSpot("key")

	assert.Equal(t, "https://api.hubapi.com", notifier.BaseURL)
	assert.Equal(t, 5*time.Second, notifier.Client.Timeout)
}

func TestEnabled(t *testing.T) {
	var nilNotifier *HubSpot

	assert.False(t, nilNotifier.Enabled())
	assert.False(t, NewHubSpot("").Enabled())
	assert.True(t, NewHubSpot("key").Enabled())
}

func TestCreateContact_PayloadShape(t *testing.T) {
	var received map[string]map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	notifier := NewHubSpot("test-key")
	notifier.BaseURL = server.URL

	phone := "+1 555 0100"
	details := "Full home redesign"
	lead := models.Lead{
		Name:           "Ava Patel",
		Email:          "ava@example.com",
		Phone:          &phone,
		ProjectDetails: &details,
	}

	err := notifier.CreateContact(context.Background(), lead)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"email":          "ava@example.com",
		"firstname":      "Ava Patel",
		"phone":          "+1 555 0100",
		"lifecyclestage": "lead",
		"notes":          "Full home redesign",
	}, received["properties"])
}

func TestCreateContact_OptionalFieldsEmpty(t *testing.T) {
	var received map[string]map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	notifier := NewHubSpot("test-key")
	notifier.BaseURL = server.URL

	lead := models.Lead{Name: "Liam Chen", Email: "liam@example.com"}

	require.NoError(t, notifier.CreateContact(context.Background(), lead))
	assert.Equal(t, "", received["properties"]["phone"])
	assert.Equal(t, "", received["properties"]["notes"])
}

func TestCreateContact_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	notifier := NewHubSpot("bad-key")
	notifier.BaseURL = server.URL

	err := notifier.CreateContact(context.Background(), models.Lead{Name: "A", Email: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateContact_NetworkError(t *testing.T) {
	notifier := NewHubSpot("test-key")
	notifier.BaseURL = "http://127.0.0.1:0"

	err := notifier.CreateContact(context.Background(), models.Lead{Name: "A", Email: "a@example.com"})
	assert.Error(t, err)
}
