package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
)

// Flash levels mirror what the templates style on.
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashWarning = "warning"
	flashError   = "error"
)

// addFlash queues a one-shot message on the current session.
func (h *Handler) addFlash(c *gin.Context, level, message string) {
	sess := currentSession(c)
	if err := h.sessions.AddFlash(c.Request.Context(), sess.ID, session.Flash{Level: level, Message: message}); err != nil {
		log.Printf("[warn] operation=add_flash error=%v", err)
	}
}

// render draws an HTML template with the session context (flashes, username,
// auth state) merged into data.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	sess := currentSession(c)
	if data == nil {
		data = gin.H{}
	}

	flashes, err := h.sessions.PopFlashes(c.Request.Context(), sess.ID)
	if err != nil {
		log.Printf("[warn] operation=pop_flashes error=%v", err)
	}
	data["Flashes"] = flashes
	data["Username"] = sess.Username()
	_, data["Authenticated"] = sess.UserID()

	c.HTML(status, name, data)
}

// redirect sends the browser to another page after a completed action.
func (h *Handler) redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// failureKind buckets backend call errors into the uniform outcome policy:
// 404 not-found, 409 conflict, 422 validation, 403 forbidden, anything else
// (including transport errors) generic.
type failureKind int

const (
	failGeneric failureKind = iota
	failNotFound
	failConflict
	failValidation
	failForbidden
)

const genericBackendMsg = "Não foi possível contactar o servidor. Tente novamente."

// classify maps a backend error to its outcome bucket and a detail text for
// validation failures.
func classify(err error) (failureKind, string) {
	if errors.Is(err, backend.ErrUnreachable) {
		return failGeneric, ""
	}
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return failGeneric, ""
	}
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return failNotFound, apiErr.Detail
	case http.StatusConflict:
		return failConflict, apiErr.Detail
	case http.StatusUnprocessableEntity:
		return failValidation, apiErr.Detail
	case http.StatusForbidden:
		return failForbidden, apiErr.Detail
	}
	return failGeneric, ""
}
