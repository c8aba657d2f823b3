package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/handler"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBlacklistRepository(ctrl)
	mockVerifier := mocks.NewMockTokenVerifier(ctrl)
	blacklistHandler := handler.NewBlacklistHandler(service.NewBlacklistService(mockRepo, time.Second))

	app := handler.NewApp("")
	handler.RegisterRoutes(app, blacklistHandler, mockVerifier)

	// Reject every token so protected handlers never reach the store.
	mockVerifier.EXPECT().Verify(gomock.Any()).Return(false).AnyTimes()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/blacklists"},
		{http.MethodGet, "/blacklists/test@example.com"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// TestRequireTokenMiddleware covers the auth gate in front of the blacklist routes.
func TestRequireTokenMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: a rejected request must never reach the store.
	mockRepo := mocks.NewMockBlacklistRepository(ctrl)
	mockVerifier := mocks.NewMockTokenVerifier(ctrl)
	blacklistHandler := handler.NewBlacklistHandler(service.NewBlacklistService(mockRepo, time.Second))

	app := handler.NewApp("")
	handler.RegisterRoutes(app, blacklistHandler, mockVerifier)

	body := `{"email":"test@example.com","app_uuid":"12345678-1234-5678-1234-567812345678"}`

	cases := []struct {
		name   string
		method string
		path   string
		header string
	}{
		{"create without auth header", http.MethodPost, "/blacklists", ""},
		{"create with wrong token", http.MethodPost, "/blacklists", "Bearer wrongToken"},
		{"check without auth header", http.MethodGet, "/blacklists/test@example.com", ""},
		{"check with wrong token", http.MethodGet, "/blacklists/test@example.com", "Bearer wrongToken"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockVerifier.EXPECT().Verify(tc.header).Return(false)

			req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(body)))
			req.Header.Set("Content-Type", "application/json")
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			status, decoded := doRequestRaw(t, app, req)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, map[string]any{"message": "Token ausente o inválido"}, decoded)
		})
	}

	t.Run("passes through with a valid token", func(t *testing.T) {
		mockVerifier.EXPECT().Verify("Bearer blackSecretToken").Return(true)
		mockRepo.EXPECT().FindFirstByEmail(gomock.Any(), "test@example.com").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/blacklists/test@example.com", nil)
		req.Header.Set("Authorization", "Bearer blackSecretToken")

		status, _ := doRequestRaw(t, app, req)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("health skips the gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)

		status, _ := doRequestRaw(t, app, req)
		assert.Equal(t, fiber.StatusOK, status)
	})
}

func TestNewApp_ProxyHeader(t *testing.T) {
	app := handler.NewApp("X-Forwarded-For")
	app.Get("/ip", func(c *fiber.Ctx) error {
		return c.SendString(c.IP())
	})

	cases := []struct {
		name     string
		header   string
		expected string
	}{
		{"single address", "203.0.113.7", "203.0.113.7"},
		{"forwarded chain keeps the client", "2001:db8:85a3::8a2e:370:7334, 198.51.100.23, 10.0.0.1", "2001:db8:85a3::8a2e:370:7334"},
		{"invalid entries are skipped", "unknown, 198.51.100.23", "198.51.100.23"},
		// The test connection's remote address is 0.0.0.0.
		{"garbage falls back to the remote address", "not-an-ip-at-all", "0.0.0.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.Header.Set("X-Forwarded-For", tc.header)

			resp, err := app.Test(req)
			require.NoError(t, err)

			buf := new(bytes.Buffer)
			_, err = buf.ReadFrom(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, buf.String())
			assert.LessOrEqual(t, buf.Len(), 45)
		})
	}
}

func TestNewApp_FiberErrorsUseSpanishMessages(t *testing.T) {
	app := handler.NewApp("")

	cases := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{"body too large", fiber.ErrRequestEntityTooLarge, fiber.StatusRequestEntityTooLarge, "El cuerpo de la solicitud es demasiado grande"},
		{"method not allowed", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "Método no permitido"},
		{"request timeout", fiber.ErrRequestTimeout, fiber.StatusRequestTimeout, "Tiempo de espera agotado"},
		{"bad request", fiber.ErrBadRequest, fiber.StatusBadRequest, "Solicitud inválida"},
		{"other client error", fiber.ErrTeapot, fiber.StatusTeapot, "Solicitud inválida"},
		{"server error", fiber.ErrBadGateway, fiber.StatusBadGateway, "Error interno del servidor"},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, "Error interno del servidor"},
	}

	for i, tc := range cases {
		err := tc.err
		app.Get(fmt.Sprintf("/fail/%d", i), func(c *fiber.Ctx) error { return err })
	}

	for i, tc := range cases {
		path := fmt.Sprintf("/fail/%d", i)
		t.Run(tc.name, func(t *testing.T) {
			status, decoded := doRequestRaw(t, app, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, tc.status, status)
			assert.Equal(t, map[string]any{"message": tc.expected}, decoded)
		})
	}
}

func doRequestRaw(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	return resp.StatusCode, decoded
}
