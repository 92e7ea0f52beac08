package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
)

func (h *Handler) showLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"FormUsername": ""})
}

// login validates credentials against the backend and binds the user to a
// fresh session on success.
func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Error":        "Informe usuário e senha.",
			"FormUsername": form.Username,
		})
		return
	}

	result, err := h.api.CheckUser(c.Request.Context(), backend.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		status := backend.StatusOf(err)
		if status == http.StatusUnauthorized || status == http.StatusNotFound {
			h.render(c, http.StatusOK, "login.html", gin.H{
				"Error":        "Usuário ou senha inválidos.",
				"FormUsername": form.Username,
			})
			return
		}
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Error":        genericBackendMsg,
			"FormUsername": form.Username,
		})
		return
	}

	// Fresh session on login; the anonymous one is discarded.
	old := currentSession(c)
	_ = h.sessions.Delete(c.Request.Context(), old.ID)

	sess := h.sessions.New()
	sess.Set(session.KeyUserID, strconv.Itoa(result.UserID))
	sess.Set(session.KeyUsername, result.Username)
	if result.Token != "" {
		sess.Set(session.KeyAPIToken, result.Token)
	}
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Error":        genericBackendMsg,
			"FormUsername": form.Username,
		})
		return
	}
	h.setSessionCookie(c, sess.ID)
	c.Set(ctxSessionKey, sess)

	h.addFlash(c, flashSuccess, "Bem-vindo, "+result.Username+"!")
	h.redirect(c, "/")
}

// logout drops the session and returns to the index page.
func (h *Handler) logout(c *gin.Context) {
	sess := currentSession(c)
	// The cookie is cleared regardless; an orphan key expires by TTL.
	_ = h.sessions.Delete(c.Request.Context(), sess.ID)
	h.clearSessionCookie(c)

	fresh := h.sessions.New()
	_ = h.sessions.Save(c.Request.Context(), fresh)
	h.setSessionCookie(c, fresh.ID)
	c.Set(ctxSessionKey, fresh)

	h.addFlash(c, flashInfo, "Você saiu da sua conta.")
	h.redirect(c, "/")
}
