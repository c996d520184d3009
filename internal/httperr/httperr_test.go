package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		InvalidID:     http.StatusBadRequest,
		MissingFields: http.StatusBadRequest,
		InvalidEnum:   http.StatusBadRequest,
		InvalidBody:   http.StatusBadRequest,
		HasDependents: http.StatusBadRequest,
		NotFound:      http.StatusNotFound,
		StoreFailure:  http.StatusInternalServerError,
	}
	for k, want := range cases {
		require.Equal(t, want, k.Status(), k.String())
	}
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cause := errors.New("connection reset")

	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", Absent("Brand not found"), http.StatusNotFound, `{"error":"Brand not found"}`},
		{"store failure hides cause", Store(cause, "Error fetching brands"), http.StatusInternalServerError, `{"error":"Error fetching brands"}`},
		{"plain error", cause, http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/brand", nil)

			Write(c, tc.err)

			require.Equal(t, tc.code, w.Code)
			require.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestStoreUnwrap(t *testing.T) {
	cause := errors.New("boom")
	require.ErrorIs(t, Store(cause, "Error creating brand"), cause)
}
