package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/logger"
	"quickgig-backend/internal/realtime"
	"quickgig-backend/internal/service"
)

// EventsHandler streams notification payloads to the authenticated user over
// server-sent events. Events are re-validated against the viewer before
// anything is written: the channel is per-user, but the payload itself is
// the source of truth for who may see it.
type EventsHandler struct {
	broker *realtime.Broker
}

func NewEventsHandler(broker *realtime.Broker) *EventsHandler {
	return &EventsHandler{broker: broker}
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	viewerID := userIDFrom(r.Context())
	payloads := make(chan []byte, 16)

	unsubscribe, err := h.broker.Subscribe(r.Context(), viewerID, func(ev domain.Event) {
		payload, err := service.Route(ev, viewerID)
		if err != nil {
			logger.Warn("Dropping unroutable event", "kind", ev.Kind, "error", err)
			return
		}
		if payload == nil {
			// Not addressed to this viewer.
			return
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return
		}
		select {
		case payloads <- data:
		default:
			// Slow consumer; drop rather than block the broker.
		}
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case data := <-payloads:
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
