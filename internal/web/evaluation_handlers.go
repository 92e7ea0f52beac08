package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
)

// Outcome categories offered on the evaluation form.
var evaluationOutcomes = []string{
	"excelente",
	"bom",
	"regular",
	"insuficiente",
}

// gateEvaluation loads the project and checks that the user may evaluate it:
// owner or collaborator. When the collaborator fetch fails, only the owner
// passes the gate.
func (h *Handler) gateEvaluation(c *gin.Context) (*backend.Project, bool) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return nil, false
	}
	project, ok := h.fetchProject(c, projectID)
	if !ok {
		return nil, false
	}

	if !isOwner(c, project) && !isCollaborator(c, h.collaborators(c, projectID)) {
		h.addFlash(c, flashError, "Apenas participantes podem avaliar este projeto.")
		h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		return nil, false
	}
	return project, true
}

func (h *Handler) showEvaluate(c *gin.Context) {
	project, ok := h.gateEvaluation(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "avaliar_projeto.html", gin.H{
		"Project":  project,
		"Form":     evaluationForm{},
		"Outcomes": evaluationOutcomes,
	})
}

func (h *Handler) evaluate(c *gin.Context) {
	project, ok := h.gateEvaluation(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)
	detail := "/projetos/" + strconv.Itoa(project.ID)

	renderForm := func(errMsg string, form evaluationForm) {
		h.render(c, http.StatusOK, "avaliar_projeto.html", gin.H{
			"Error":    errMsg,
			"Project":  project,
			"Form":     form,
			"Outcomes": evaluationOutcomes,
		})
	}

	var form evaluationForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm("Preencha todas as notas e o resultado.", form)
		return
	}

	err := h.api.SubmitEvaluation(c.Request.Context(), project.ID, form.toEvaluation(project.ID, userID))
	if err != nil {
		switch kind, detailMsg := classify(err); kind {
		case failConflict:
			h.addFlash(c, flashWarning, "Você já avaliou este projeto.")
			h.redirect(c, detail)
		case failNotFound:
			h.addFlash(c, flashError, "Projeto não encontrado.")
			h.redirect(c, "/projetos")
		case failForbidden:
			h.addFlash(c, flashError, "Você não pode avaliar este projeto.")
			h.redirect(c, detail)
		case failValidation:
			if detailMsg == "" {
				detailMsg = "Notas inválidas."
			}
			renderForm(detailMsg, form)
		default:
			renderForm(genericBackendMsg, form)
		}
		return
	}

	h.addFlash(c, flashSuccess, "Avaliação registrada. Obrigado!")
	h.redirect(c, detail)
}
