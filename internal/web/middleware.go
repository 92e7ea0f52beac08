package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
)

const ctxSessionKey = "skillmap_session"

// withSession resolves the browser's session from the cookie, creating a
// fresh anonymous session when none exists.
func (h *Handler) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
			if found, err := h.sessions.Get(ctx, id); err == nil {
				sess = found
			} else if err != session.ErrNotFound {
				log.Printf("[warn] operation=load_session error=%v", err)
			}
		}

		if sess == nil {
			sess = h.sessions.New()
			if err := h.sessions.Save(ctx, sess); err != nil {
				log.Printf("[warn] operation=create_session error=%v", err)
			}
			h.setSessionCookie(c, sess.ID)
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// requireAuth gates protected routes. Anonymous requests are redirected to
// the login page with a warning and no backend call is made.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if _, ok := sess.UserID(); !ok {
			h.addFlash(c, flashWarning, "Faça login para acessar esta página.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentSession returns the session attached by withSession. Routes are
// always registered behind that middleware, so the value is present.
func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return &session.Session{}
}

// currentUserID returns the numeric user id of the logged-in user.
func currentUserID(c *gin.Context) (int, bool) {
	return currentSession(c).UserID()
}

func (h *Handler) setSessionCookie(c *gin.Context, id string) {
	c.SetCookie(h.cookieName, id, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
}
