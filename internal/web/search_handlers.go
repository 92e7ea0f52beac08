package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
)

// search forwards the free-text term and campus filters to the backend and
// renders the partitioned results.
func (h *Handler) search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	campuses := c.QueryArray("campus")

	data := gin.H{
		"Term":     term,
		"Selected": campuses,
		"Campuses": backend.AllCampuses(),
	}

	if term == "" && len(campuses) == 0 {
		h.render(c, http.StatusOK, "busca_habilidade.html", data)
		return
	}

	results, err := h.api.Search(c.Request.Context(), term, campuses)
	if err != nil {
		data["Error"] = genericBackendMsg
		h.render(c, http.StatusOK, "busca_habilidade.html", data)
		return
	}

	data["Usuarios"] = results.Usuarios
	data["Projetos"] = results.Projetos
	data["Searched"] = true
	h.render(c, http.StatusOK, "busca_habilidade.html", data)
}
