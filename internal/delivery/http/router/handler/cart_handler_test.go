package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cartsync/config"
	appmiddleware "cartsync/internal/delivery/http/middleware"
	"cartsync/internal/delivery/http/validator"
	"cartsync/internal/domain/entity"
	domainerrors "cartsync/internal/domain/errors"
	mockusecase "cartsync/internal/mocks/usecase"
	"cartsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSessionID = "session_1700000000123"
	testUserID    = "c56a4180-65aa-42ec-a945-5fd21dec0538"

	allowedOrigin  = "https://shop.example.com"
	fallbackOrigin = allowedOrigin
)

func testCORSConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{allowedOrigin, "http://localhost:3000"},
			DevDomain:      "vercel.app",
		},
	}
}

// newTestServer wires the handler into an Echo instance with the same
// middleware chain the real server uses, so responses carry the production
// wire shapes and CORS headers.
func newTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockCartUsecase) {
	t.Helper()

	uc := mockusecase.NewMockCartUsecase(t)
	logger := slog.New(slog.DiscardHandler)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(appmiddleware.NewRequestIDMiddleware(logger).Process)
	e.Pre(appmiddleware.NewCORSMiddleware(testCORSConfig()).Handle)

	h := NewCartHandler(uc, logger)
	e.GET("/cart", h.GetCart)
	e.POST("/cart", h.SaveCart)
	e.PUT("/cart", h.SaveCart)
	e.DELETE("/cart", h.DeleteCart)
	e.PATCH("/cart", h.MergeCarts)

	return e, uc
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Origin", allowedOrigin)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCart(items []entity.CartItem) *entity.Cart {
	sessionID := testSessionID

	return &entity.Cart{
		ID:        uuid.New(),
		SessionID: &sessionID,
		Items:     items,
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("returns the cart for a valid session", func(t *testing.T) {
		e, uc := newTestServer(t)

		cart := sessionCart([]entity.CartItem{{ID: "a", Name: "Widget", Price: 9.99, Quantity: 1}})
		uc.EXPECT().GetCart(mock.Anything, mock.MatchedBy(func(id usecase.Identity) bool {
			return id.SessionID != nil && *id.SessionID == testSessionID && id.UserID == nil
		})).Return(cart, nil)

		rec := doRequest(e, http.MethodGet, "/cart?session_id="+testSessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cart"`)
		assert.Contains(t, rec.Body.String(), `"id":"a"`)
		assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("returns a null cart when none exists", func(t *testing.T) {
		e, uc := newTestServer(t)

		uc.EXPECT().GetCart(mock.Anything, mock.Anything).Return(nil, nil)

		rec := doRequest(e, http.MethodGet, "/cart?session_id="+testSessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"cart":null}`, rec.Body.String())
	})

	t.Run("rejects a request with no identity", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodGet, "/cart", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"A session or user identifier is required"}`, rec.Body.String())
	})

	t.Run("rejects a malformed session ID", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodGet, "/cart?session_id=drop%20table", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid session identifier"}`, rec.Body.String())
	})

	t.Run("rejects a malformed user ID", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodGet, "/cart?user_id=not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid user identifier"}`, rec.Body.String())
	})

	t.Run("hides store failure details behind a generic 500", func(t *testing.T) {
		e, uc := newTestServer(t)

		uc.EXPECT().GetCart(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewStoreError(assert.AnError, "select failed"))

		rec := doRequest(e, http.MethodGet, "/cart?session_id="+testSessionID, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Unable to access cart storage"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "select failed")
	})
}

func TestCartHandler_SaveCart(t *testing.T) {
	t.Run("upserts items for a session", func(t *testing.T) {
		e, uc := newTestServer(t)

		saved := sessionCart([]entity.CartItem{{ID: "a", Name: "Widget", Price: 9.99, Quantity: 1}})
		uc.EXPECT().SaveCart(mock.Anything, mock.Anything, mock.MatchedBy(func(items []entity.CartItem) bool {
			return len(items) == 1 && items[0].ID == "a"
		})).Return(saved, nil)

		body := `{"items":[{"id":"a","name":"Widget","price":9.99,"quantity":1}]}`
		rec := doRequest(e, http.MethodPost, "/cart?session_id="+testSessionID, body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cart"`)
	})

	t.Run("accepts PUT with the same semantics", func(t *testing.T) {
		e, uc := newTestServer(t)

		saved := sessionCart([]entity.CartItem{})
		uc.EXPECT().SaveCart(mock.Anything, mock.Anything, mock.Anything).Return(saved, nil)

		rec := doRequest(e, http.MethodPut, "/cart?session_id="+testSessionID, `{"items":[]}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an unparseable body before any store access", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/cart?session_id="+testSessionID, `{"items":[{`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid cart data"}`, rec.Body.String())
	})

	t.Run("validates identity before reading the body", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/cart", `{"items":[]}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"A session or user identifier is required"}`, rec.Body.String())
	})
}

func TestCartHandler_DeleteCart(t *testing.T) {
	t.Run("acknowledges deletion", func(t *testing.T) {
		e, uc := newTestServer(t)

		uc.EXPECT().DeleteCart(mock.Anything, mock.Anything).Return(nil)

		rec := doRequest(e, http.MethodDelete, "/cart?user_id="+testUserID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("rejects a missing identity", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodDelete, "/cart", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_MergeCarts(t *testing.T) {
	t.Run("merges the session cart into the user cart", func(t *testing.T) {
		e, uc := newTestServer(t)

		userID := uuid.MustParse(testUserID)
		merged := &entity.Cart{
			ID:     uuid.New(),
			UserID: &userID,
			Items:  []entity.CartItem{{ID: "a", Name: "Widget", Price: 9.99, Quantity: 1}},
		}
		uc.EXPECT().MergeCarts(mock.Anything, testSessionID, userID).Return(merged, nil)

		body := `{"session_id":"` + testSessionID + `","user_id":"` + testUserID + `"}`
		rec := doRequest(e, http.MethodPatch, "/cart", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cart"`)
		assert.Contains(t, rec.Body.String(), testUserID)
	})

	t.Run("requires both identifiers", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPatch, "/cart", `{"session_id":"`+testSessionID+`"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"A session or user identifier is required"}`, rec.Body.String())
	})

	t.Run("rejects a malformed session ID", func(t *testing.T) {
		e, _ := newTestServer(t)

		body := `{"session_id":"nope","user_id":"` + testUserID + `"}`
		rec := doRequest(e, http.MethodPatch, "/cart", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid session identifier"}`, rec.Body.String())
	})

	t.Run("rejects a malformed user ID", func(t *testing.T) {
		e, _ := newTestServer(t)

		body := `{"session_id":"` + testSessionID + `","user_id":"1234"}`
		rec := doRequest(e, http.MethodPatch, "/cart", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid user identifier"}`, rec.Body.String())
	})
}

func TestCartHandler_Preflight(t *testing.T) {
	// The mock's expectation assertions double as the proof that OPTIONS never
	// reaches the use case layer.
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodOptions, "/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCartHandler_OriginFallback(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/cart", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// The mismatched header makes the browser block the response client-side.
	assert.Equal(t, fallbackOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCartHandler_MethodNotAllowed(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, "TRACE", "/cart", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}
