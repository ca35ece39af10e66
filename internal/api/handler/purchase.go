// internal/api/handler/purchase.go
package handler

import (
	"log/slog"
	"net/http"

	"fintrack/internal/api/types"
	"fintrack/internal/domain"
	"fintrack/internal/service"
	"fintrack/internal/util"

	"github.com/shopspring/decimal"
)

// PurchaseHandler handles HTTP requests related to purchases.
type PurchaseHandler struct {
	base
	purchases service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchases service.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		base:      newBase(logger),
		purchases: purchases,
	}
}

// PurchaseRequest represents the request body for recording a purchase.
// UserID is accepted for compatibility and ignored; purchases always belong to the acting user.
type PurchaseRequest struct {
	UserID   *int64           `json:"userId,omitempty"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Category string           `json:"category" validate:"max=100"`
	Merchant string           `json:"merchant" validate:"max=200"`
}

// Record stores a purchase for the acting user.
// POST /purchase/record
func (h *PurchaseHandler) Record(w http.ResponseWriter, r *http.Request) {
	const op = "handler.purchase.Record"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	purchase, err := h.purchases.RecordPurchase(r.Context(), userID,
		domain.NewPurchase(userID, *req.Amount, req.Category, req.Merchant))
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusCreated, purchase)
}

// MyPurchases lists the acting user's purchases.
// GET /purchase/my-purchases
func (h *PurchaseHandler) MyPurchases(w http.ResponseWriter, r *http.Request) {
	const op = "handler.purchase.MyPurchases"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	purchases, err := h.purchases.ListPurchasesByUser(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, types.MyPurchasesResponse{
		UserID:        userID,
		PurchaseCount: len(purchases),
		Purchases:     purchases,
	})
}

// GetByID returns one purchase.
// GET /purchase/admin/{id}
func (h *PurchaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "handler.purchase.GetByID"

	id, err := idParam(r, "id")
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	purchase, err := h.purchases.GetPurchaseByID(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}
	if purchase == nil {
		h.respondWithError(w, r, op, util.ErrPurchaseNotFound)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, purchase)
}

// ListByUser lists any user's purchases.
// GET /purchase/admin/user/{userId}
func (h *PurchaseHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	const op = "handler.purchase.ListByUser"

	userID, err := idParam(r, "userId")
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	purchases, err := h.purchases.ListPurchasesByUser(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, purchases)
}
