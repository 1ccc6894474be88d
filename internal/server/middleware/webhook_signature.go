package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xcontext"
	"github.com/garrettladley/creem/internal/xerrors"
	"github.com/garrettladley/creem/internal/xslog"
)

const (
	// PathValueProfile is the route wildcard naming the signing profile.
	PathValueProfile = "profile"

	maxWebhookBody = 1 << 20
)

type SignatureVerifier interface {
	Verify(profile string, body []byte, signature string) error
}

// VerifyWebhook authenticates the raw body against the signature in header
// before any processing. The body is restored for the next handler.
func VerifyWebhook(verifier SignatureVerifier, header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.PathValue(PathValueProfile)
			if name == "" {
				name = profile.DefaultProfile
			}

			ctx := xcontext.SetProfile(r.Context(), name)
			ctx = xslog.WithAttrs(ctx, xslog.Profile(name))
			logger := xslog.FromContext(ctx)

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
			if err != nil {
				logger.WarnContext(ctx, "failed to read webhook body", xslog.Error(err))
				xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("Invalid request body"), xerrors.WithCause(err)))
				return
			}

			err = verifier.Verify(name, body, r.Header.Get(header))
			switch {
			case err == nil:
			case errors.Is(err, webhook.ErrSecretNotConfigured):
				xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("Webhook secret not configured"), xerrors.WithCause(err)))
				return
			case errors.Is(err, webhook.ErrMissingSignature):
				xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("Missing signature"), xerrors.WithCause(err)))
				return
			case errors.Is(err, webhook.ErrInvalidSignature):
				xerrors.WriteError(ctx, w, xerrors.Forbidden(xerrors.WithMessage("Invalid signature"), xerrors.WithCause(err)))
				return
			default:
				xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithCause(err)))
				return
			}

			r = r.WithContext(ctx)
			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}
