package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/core/service"
)

type HTTPHandler struct {
	purchases *service.PurchaseService
	tickets   *service.TicketService
}

func NewHTTPHandler(purchases *service.PurchaseService, tickets *service.TicketService) *HTTPHandler {
	return &HTTPHandler{purchases: purchases, tickets: tickets}
}

// Register mounts the ticket routes on mux under /api/tickets.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tickets/availability/{id}", h.CheckAvailability)
	mux.HandleFunc("POST /api/tickets/purchase", h.Purchase)
	mux.HandleFunc("GET /api/tickets/", h.ListTickets)
	mux.HandleFunc("GET /api/tickets/{id}", h.GetTicket)
	mux.HandleFunc("PUT /api/tickets/{id}", h.UpdateTicket)
	mux.HandleFunc("GET /api/tickets/health", h.HealthCheck)
	mux.HandleFunc("GET /health", h.HealthCheck)
}

type purchaseHTTPRequest struct {
	TicketID string `json:"ticket_id"`
	Quantity int    `json:"quantity"`
}

type receiptJSON struct {
	PurchaseID         string  `json:"purchase_id"`
	TicketID           string  `json:"ticket_id"`
	TicketType         string  `json:"ticket_type"`
	QuantityPurchased  int     `json:"quantity_purchased"`
	UnitPrice          float64 `json:"unit_price"`
	TotalAmount        float64 `json:"total_amount"`
	RemainingAvailable int     `json:"remaining_available"`
}

type ticketViewJSON struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Price             float64 `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
	QuantitySold      int     `json:"quantity_sold"`
	Available         bool    `json:"available"`
	SoldOut           bool    `json:"sold_out"`
}

type updateHTTPRequest struct {
	Type  *string  `json:"type"`
	Price *float64 `json:"price"`
}

func (h *HTTPHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	avail, err := h.tickets.CheckAvailability(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ticket_id":          avail.TicketID,
		"available_quantity": avail.AvailableQuantity,
		"available":          avail.Available,
	})
}

func (h *HTTPHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	receipt, err := h.purchases.Purchase(r.Context(), domain.PurchaseRequest{
		TicketID: req.TicketID,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"purchase": receiptToJSON(receipt),
	})
}

func (h *HTTPHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	views, err := h.tickets.ListTickets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]ticketViewJSON, 0, len(views))
	for _, v := range views {
		out = append(out, viewToJSON(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	view, err := h.tickets.GetTicket(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToJSON(*view))
}

func (h *HTTPHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	upd := domain.TicketUpdate{Type: req.Type}
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		upd.Price = &p
	}

	view, err := h.tickets.UpdateTicket(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToJSON(*view))
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "ticket-inventory",
		"status":  "healthy",
	})
}

func receiptToJSON(rc *domain.Receipt) receiptJSON {
	return receiptJSON{
		PurchaseID:         rc.PurchaseID,
		TicketID:           rc.TicketID,
		TicketType:         rc.TicketType,
		QuantityPurchased:  rc.QuantityPurchased,
		UnitPrice:          rc.UnitPrice.InexactFloat64(),
		TotalAmount:        rc.TotalAmount.InexactFloat64(),
		RemainingAvailable: rc.RemainingAvailable,
	}
}

func viewToJSON(v domain.CatalogView) ticketViewJSON {
	return ticketViewJSON{
		ID:                v.ID,
		Type:              v.Type,
		Price:             v.Price.InexactFloat64(),
		QuantityAvailable: v.QuantityAvailable,
		QuantitySold:      v.QuantitySold,
		Available:         v.Available,
		SoldOut:           v.SoldOut,
	}
}

// writeError maps engine errors onto the HTTP surface. Validation and
// business rejections are 400, unknown ids 404, exhausted retry budgets
// 409 so the caller knows the purchase itself may still be retried.
func writeError(w http.ResponseWriter, err error) {
	var valErr *domain.ValidationError
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": valErr.Error()})
	case errors.As(err, &stockErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     stockErr.Error(),
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "ticket not found"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "purchase conflict, please retry"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
