package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/cashback-settlement/internal/domain"
	domainmocks "github.com/avc/cashback-settlement/internal/domain/mocks"
	"github.com/avc/cashback-settlement/internal/money"
	"github.com/avc/cashback-settlement/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withPurchaseID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("purchaseID", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func samplePurchase() *domain.Purchase {
	return &domain.Purchase{
		ID:                  100,
		ConsumerID:          1,
		MerchantID:          2,
		ProductID:           10,
		Quantity:            2,
		TotalAmount:         money.MustParseAmount("100.00"),
		MerchantAmount:      money.MustParseAmount("90.00"),
		ConsumerCashback:    money.MustParseAmount("7.00"),
		PlatformFee:         money.MustParseAmount("3.00"),
		ConsumerReferrerFee: money.Zero(),
		MerchantReferrerFee: money.Zero(),
		Status:              domain.PurchaseStatusPending,
		CreatedAt:           time.Now(),
	}
}

func TestPurchasesHandler_CreatePurchase(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 10, Quantity: 2}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(samplePurchase(), nil).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":10,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.Purchase
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.ID)
		assert.Equal(t, domain.PurchaseStatusPending, result.Status)
	})

	t.Run("Idempotency key passed through", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 10, Quantity: 2, IdempotencyKey: "key-1"}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(samplePurchase(), nil).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":10,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"consumer_id":}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Self purchase", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 1, ProductID: 10, Quantity: 1}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(nil, domain.ErrSelfPurchase).Once()

		body := `{"consumer_id":1,"merchant_id":1,"product_id":10,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Product not found", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 999, Quantity: 1}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(nil, domain.ErrProductNotFound).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":999,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 10, Quantity: 100}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(nil, domain.ErrInsufficientStock).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":10,"quantity":100}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Duplicate request in flight", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 10, Quantity: 2, IdempotencyKey: "key-1"}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(nil, domain.ErrDuplicateRequest).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":10,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Policy misconfiguration", func(t *testing.T) {
		expected := domain.PurchaseRequest{ConsumerID: 1, MerchantID: 2, ProductID: 10, Quantity: 2}
		mockService.EXPECT().CreatePurchase(mock.Anything, expected).Return(nil, domain.ErrPolicyNotFound).Once()

		body := `{"consumer_id":1,"merchant_id":2,"product_id":10,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPurchasesHandler_GetPurchase(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetPurchase(mock.Anything, int64(100)).Return(samplePurchase(), nil).Once()

		req := withPurchaseID(httptest.NewRequest(http.MethodGet, "/api/purchases/100", nil), "100")
		w := httptest.NewRecorder()

		handler.GetPurchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Purchase
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.ID)
		assert.True(t, result.Breakdown().Sum().Equal(result.TotalAmount))
	})

	t.Run("Purchase not found", func(t *testing.T) {
		mockService.EXPECT().GetPurchase(mock.Anything, int64(999)).Return(nil, domain.ErrPurchaseNotFound).Once()

		req := withPurchaseID(httptest.NewRequest(http.MethodGet, "/api/purchases/999", nil), "999")
		w := httptest.NewRecorder()

		handler.GetPurchase(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		req := withPurchaseID(httptest.NewRequest(http.MethodGet, "/api/purchases/abc", nil), "abc")
		w := httptest.NewRecorder()

		handler.GetPurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurchasesHandler_TransitionPurchase(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	newRequest := func(body string) (*http.Request, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/purchases/100/transition", bytes.NewBufferString(body))
		return withPurchaseID(req, "100"), httptest.NewRecorder()
	}

	t.Run("Mark processing", func(t *testing.T) {
		processing := samplePurchase()
		processing.Status = domain.PurchaseStatusProcessing
		mockService.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(processing, nil).Once()

		req, w := newRequest(`{"event":"mark_processing"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Complete with tx hash", func(t *testing.T) {
		txHash := "0xabc"
		completed := samplePurchase()
		completed.Status = domain.PurchaseStatusCompleted
		completed.TxHash = &txHash
		mockService.EXPECT().Complete(mock.Anything, int64(100), &txHash).Return(completed, nil).Once()

		req, w := newRequest(`{"event":"complete","tx_hash":"0xabc"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Purchase
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, domain.PurchaseStatusCompleted, result.Status)
		require.NotNil(t, result.TxHash)
		assert.Equal(t, txHash, *result.TxHash)
	})

	t.Run("Fail with reason", func(t *testing.T) {
		failed := samplePurchase()
		failed.Status = domain.PurchaseStatusFailed
		mockService.EXPECT().Fail(mock.Anything, int64(100), "gateway rejected").Return(failed, nil).Once()

		req, w := newRequest(`{"event":"fail","reason":"gateway rejected"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Refund", func(t *testing.T) {
		refunded := samplePurchase()
		refunded.Status = domain.PurchaseStatusRefunded
		mockService.EXPECT().Refund(mock.Anything, int64(100)).Return(refunded, nil).Once()

		req, w := newRequest(`{"event":"refund"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown event", func(t *testing.T) {
		req, w := newRequest(`{"event":"explode"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Illegal transition", func(t *testing.T) {
		mockService.EXPECT().Refund(mock.Anything, int64(100)).Return(nil, domain.ErrInvalidTransition).Once()

		req, w := newRequest(`{"event":"refund"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Lost race", func(t *testing.T) {
		mockService.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(nil, domain.ErrConcurrencyConflict).Once()

		req, w := newRequest(`{"event":"mark_processing"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Purchase not found", func(t *testing.T) {
		mockService.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(nil, domain.ErrPurchaseNotFound).Once()

		req, w := newRequest(`{"event":"mark_processing"}`)
		handler.TransitionPurchase(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate("marketplace")
	require.NoError(t, err)

	middleware := AuthMiddleware(jwtManager)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service, ok := GetService(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "marketplace", service)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
