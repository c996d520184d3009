package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"fleet_logistics/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, ParseLevel("info"))
	require.Equal(t, logrus.WarnLevel, ParseLevel("WARN"))
	require.Equal(t, logrus.DebugLevel, ParseLevel("chatty"))
}

func TestSetup_SetsLevel(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	out := Setup(config.LogConfig{Level: "error", File: filepath.Join(t.TempDir(), "app.log")})
	require.NotNil(t, out)
	require.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	require.NotNil(t, GormLogger())
}

func TestRequestLogger_SkipsHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	r := gin.New()
	r.Use(RequestLogger(&buf))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/brand", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Zero(t, buf.Len())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brand", nil))
	require.Contains(t, buf.String(), "/brand")
}
