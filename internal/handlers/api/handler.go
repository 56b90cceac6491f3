// Package api serves health and live chain introspection over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/chainbot/internal/models"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Config holds configuration for the HTTP handler
type Config struct {
	ChainService chain.Service
	Logger       *slog.Logger
}

// Handler serves the introspection endpoints
type Handler struct {
	chains chain.Service
	logger *slog.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ChainService == nil {
		return nil, errors.New("chain service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		chains: cfg.ChainService,
		logger: logger.With("component", "http"),
	}, nil
}

// Router builds the chi router with middleware and routes
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(chiMiddleware.Recoverer)

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the introspection routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/chains", func(r chi.Router) {
		r.Get("/", h.ListChains)
		r.Get("/{channelID}", h.GetChain)
	})
}

// Health reports that the process is serving and how many chains are live
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	out, err := h.chains.ListChains(r.Context())
	if err != nil {
		h.logger.Error("health check failed", "error", err)
		JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "degraded",
		})
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"chains": len(out.Chains),
	})
}

// ListChains returns every live chain
func (h *Handler) ListChains(w http.ResponseWriter, r *http.Request) {
	out, err := h.chains.ListChains(r.Context())
	if err != nil {
		h.logger.Error("failed to list chains", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list chains")
		return
	}

	views := make([]*chainView, 0, len(out.Chains))
	for _, c := range out.Chains {
		detail, err := h.chains.GetChain(r.Context(), &chain.GetChainInput{ChannelID: c.ChannelID})
		if errors.Is(err, chain.ErrChainNotFound) {
			// finished between the list and the lookup
			continue
		}
		if err != nil {
			h.logger.Error("failed to get chain", "channel_id", c.ChannelID, "error", err)
			Error(w, http.StatusInternalServerError, "failed to list chains")
			return
		}
		views = append(views, newChainView(detail))
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"chains": views,
	})
}

// GetChain returns the live chain of one channel
func (h *Handler) GetChain(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	out, err := h.chains.GetChain(r.Context(), &chain.GetChainInput{ChannelID: channelID})
	if err != nil {
		if errors.Is(err, chain.ErrChainNotFound) {
			Error(w, http.StatusNotFound, "chain not found")
			return
		}
		h.logger.Error("failed to get chain", "channel_id", channelID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to get chain")
		return
	}

	JSON(w, http.StatusOK, newChainView(out))
}

// requestLogger logs each request through slog
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chiMiddleware.GetReqID(r.Context()),
		)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

type userView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type trackingView struct {
	Current         int   `json:"current"`
	InactiveSeconds int64 `json:"inactive_seconds"`
}

type chainView struct {
	ChannelID        string        `json:"channel_id"`
	GuildID          string        `json:"guild_id,omitempty"`
	MessageID        string        `json:"message_id"`
	Kind             string        `json:"kind"`
	Status           string        `json:"status"`
	Organizer        userView      `json:"organizer"`
	EndTime          time.Time     `json:"end_time"`
	RemainingSeconds int64         `json:"remaining_seconds"`
	Joined           []userView    `json:"joined"`
	Declined         []userView    `json:"declined"`
	Tracking         *trackingView `json:"tracking,omitempty"`
}

func newChainView(out *chain.GetChainOutput) *chainView {
	c := out.Chain
	view := &chainView{
		ChannelID:        c.ChannelID,
		GuildID:          c.GuildID,
		MessageID:        c.MessageID,
		Kind:             string(c.Kind),
		Status:           string(c.Status),
		Organizer:        userView{ID: c.Organizer.ID, Name: c.Organizer.Name},
		EndTime:          c.EndTime.UTC(),
		RemainingSeconds: int64(out.Remaining / time.Second),
		Joined:           userViews(c.Participants.Joined()),
		Declined:         userViews(c.Participants.Declined()),
	}
	if out.Tracking != nil {
		view.Tracking = &trackingView{
			Current:         out.Tracking.Current,
			InactiveSeconds: int64(out.Tracking.Inactive / time.Second),
		}
	}
	return view
}

func userViews(users []models.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{ID: u.ID, Name: u.Name})
	}
	return views
}
