package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PurchasesHandler обрабатывает запросы жизненного цикла покупок
type PurchasesHandler struct {
	purchaseService domain.PurchaseService
	logger          *zap.Logger
}

// NewPurchasesHandler создает новый PurchasesHandler
func NewPurchasesHandler(purchaseService domain.PurchaseService, logger *zap.Logger) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// transitionRequest представляет тело запроса перехода статуса
type transitionRequest struct {
	Event  domain.TransitionEvent `json:"event"`
	TxHash *string                `json:"tx_hash,omitempty"`
	Reason string                 `json:"reason,omitempty"`
}

// CreatePurchase обрабатывает POST /api/purchases
func (h *PurchasesHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req domain.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	req.IdempotencyKey = r.Header.Get("Idempotency-Key")

	purchase, err := h.purchaseService.CreatePurchase(r.Context(), req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, purchase, h.logger)
}

// GetPurchase обрабатывает GET /api/purchases/{purchaseID}
func (h *PurchasesHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "purchaseID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	purchase, err := h.purchaseService.GetPurchase(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get purchase", zap.Int64("purchase_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, purchase, h.logger)
}

// TransitionPurchase обрабатывает POST /api/purchases/{purchaseID}/transition
func (h *PurchasesHandler) TransitionPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "purchaseID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var purchase *domain.Purchase
	switch req.Event {
	case domain.EventMarkProcessing:
		purchase, err = h.purchaseService.MarkProcessing(r.Context(), id)
	case domain.EventComplete:
		purchase, err = h.purchaseService.Complete(r.Context(), id, req.TxHash)
	case domain.EventFail:
		purchase, err = h.purchaseService.Fail(r.Context(), id, req.Reason)
	case domain.EventRefund:
		purchase, err = h.purchaseService.Refund(r.Context(), id)
	default:
		http.Error(w, "Unknown Event", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.writeTransitionError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, purchase, h.logger)
}

// writeCreateError сопоставляет ошибки создания покупки HTTP статусам
func (h *PurchasesHandler) writeCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrSelfPurchase):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrDuplicateRequest):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		// ErrPolicyNotFound и ErrInvalidBreakdown — фатальные ошибки
		// конфигурации, вызывающая сторона их не исправит
		h.logger.Error("failed to create purchase", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeTransitionError сопоставляет ошибки переходов HTTP статусам
func (h *PurchasesHandler) writeTransitionError(w http.ResponseWriter, id int64, err error) {
	switch {
	case errors.Is(err, domain.ErrPurchaseNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrConcurrencyConflict):
		// Вызывающая сторона может повторить со свежим состоянием
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("failed to transition purchase", zap.Int64("purchase_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeJSON сериализует ответ с заголовком Content-Type
func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
