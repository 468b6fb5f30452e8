package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionCookie = "board_session"

type Handler struct {
	Sessions       *SessionStore
	Log            *slog.Logger
	AllowedOrigins []string
}

func NewHandler(sessions *SessionStore, log *slog.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		Sessions:       sessions,
		Log:            log,
		AllowedOrigins: allowedOrigins,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.handleIndex)
	r.Post("/signup", h.handleSignup)
	r.Post("/unregister", h.handleUnregister)
	r.Post("/confirm", h.handleConfirm)

	r.Route("/api", func(r chi.Router) {
		if len(h.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   h.AllowedOrigins,
				AllowedMethods:   []string{http.MethodGet},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		r.Get("/board", h.handleBoard)
	})

	return r
}

// lookup возвращает сессию из cookie, если она ещё жива.
func (h *Handler) lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return h.Sessions.Get(c.Value)
}

// viewSession отдаёт сессию для запросов только на чтение. Браузеру без cookie
// достаётся временная сессия: её закрывает release, в хранилище она не попадает.
func (h *Handler) viewSession(r *http.Request) (s *Session, release func()) {
	if s, ok := h.lookup(r); ok {
		return s, func() {}
	}
	s = h.Sessions.Transient()
	return s, s.close
}

// session возвращает сессию из cookie или заводит новую; created сообщает о новой.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (s *Session, created bool) {
	if s, ok := h.lookup(r); ok {
		return s, false
	}

	s = h.Sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s, true
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = ErrInternal("internal error", err)
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
