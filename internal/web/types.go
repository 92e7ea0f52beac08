package web

import (
	"time"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
)

// Handler bundles the dependencies for the SkillMap web pages.
type Handler struct {
	api        *backend.Client
	sessions   *session.Store
	cookieName string
	sessionTTL time.Duration
}

type Options struct {
	CookieName string
	SessionTTL time.Duration
}

func New(api *backend.Client, sessions *session.Store, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = "skillmap_session"
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	return &Handler{
		api:        api,
		sessions:   sessions,
		cookieName: opts.CookieName,
		sessionTTL: opts.SessionTTL,
	}
}
