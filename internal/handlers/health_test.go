package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/", "")
	require.NoError(t, Greeting(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from Soul-Share-Volunteering server", rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/health", "")
	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"soul-share-server"}`, rec.Body.String())
}
