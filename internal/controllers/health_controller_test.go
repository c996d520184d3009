package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	h.ping = errors.New("no route to host")
	w = h.do(http.MethodGet, "/health", "")
	requireError(t, w, http.StatusServiceUnavailable, "database unavailable")
}
