package auth

import (
	"log/slog"
	"net/http"

	"github.com/naufalhakm/rekap-perjadin/internal"
	"github.com/naufalhakm/rekap-perjadin/internal/transport"
	"github.com/naufalhakm/rekap-perjadin/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

type sessionResponse struct {
	SessionID *string `json:"session_id"`
	Token     string  `json:"token,omitempty"`
}

// CreateSession performs the anonymous handshake. A degraded handshake
// still answers 200 with a null session id so the caller can proceed.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.Service.SignInAnonymously(r.Context())

	resp := sessionResponse{}
	if !sess.Null() {
		resp.SessionID = &sess.SessionID
		resp.Token = sess.Token
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// SessionMiddleware resolves the bearer token into a session id on the
// request context. Requests without a valid token pass through with the
// null identity; this is record stamping, not access control.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if sessionID := h.Service.SessionIDFromToken(token); sessionID != "" {
			ctx := internal.ContextWithSessionID(r.Context(), sessionID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
