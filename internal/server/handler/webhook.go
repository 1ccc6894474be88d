package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xerrors"
	"github.com/garrettladley/creem/internal/xhttp"
	"github.com/garrettladley/creem/internal/xslog"
)

type Webhook struct {
	service webhook.Service
}

func NewWebhook(service webhook.Service) *Webhook {
	return &Webhook{service: service}
}

// HandleWebhook handles verified POST deliveries. Unrecognized event types
// are acknowledged like any other.
func (h *Webhook) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("Invalid request body"), xerrors.WithCause(err)))
		return
	}

	result, err := h.service.ProcessWebhook(ctx, body)
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrMissingEventType):
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("Event type missing")))
		case errors.Is(err, webhook.ErrInvalidPayload):
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("Invalid payload"), xerrors.WithCause(err)))
		default:
			xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("Failed to process webhook"), xerrors.WithCause(err)))
		}
		return
	}

	xslog.FromContext(ctx).DebugContext(ctx, "webhook acknowledged",
		xslog.EventType(result.EventType),
		slog.Bool("known", result.Known),
	)

	xhttp.WriteMessage(w, http.StatusOK, "Webhook processed")
}
