package handlers

import (
	"context"
	"net/http"
	"time"

	"cleartrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetCurrentPrice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	ticker := chi.URLParam(r, "ticker")
	if ticker == "" {
		h.HandleErrors(w, utils.BadRequest("Missing ticker URL parameter"))
		return
	}

	price, err := h.PricesController.GetCurrentPrice(ctx, ticker)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, price, http.StatusOK)
}

// TriggerSnapshot runs the snapshot job inline; the request waits for the
// whole batch, sequential price lookups included.
func (h *Handler) TriggerSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	result, err := h.PricesController.TriggerSnapshot(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, http.StatusOK)
}
