package web

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/web/filters"
)

// parseProjectID reads the :projeto_id route parameter. A malformed value is
// treated like a missing project.
func (h *Handler) parseProjectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("projeto_id"))
	if err != nil {
		h.addFlash(c, flashError, "Projeto não encontrado.")
		h.redirect(c, "/projetos")
		return 0, false
	}
	return id, true
}

// fetchProject loads the project or resolves the request with a flash and a
// redirect to the listing, skipping any dependent calls. Soft-deleted
// projects are treated as absent.
func (h *Handler) fetchProject(c *gin.Context, id int) (*backend.Project, bool) {
	project, err := h.api.GetProject(c.Request.Context(), id)
	if err != nil {
		if kind, _ := classify(err); kind == failNotFound {
			h.addFlash(c, flashError, "Projeto não encontrado.")
		} else {
			h.addFlash(c, flashError, genericBackendMsg)
		}
		h.redirect(c, "/projetos")
		return nil, false
	}
	if project.Status == backend.StatusExcluido {
		h.addFlash(c, flashError, "Projeto não encontrado.")
		h.redirect(c, "/projetos")
		return nil, false
	}
	return project, true
}

// isOwner compares the project owner against the session user after numeric
// coercion of the session value.
func isOwner(c *gin.Context, project *backend.Project) bool {
	userID, ok := currentUserID(c)
	return ok && userID == project.ProponenteID
}

// collaborators fetches the membership list, degrading to empty on failure.
func (h *Handler) collaborators(c *gin.Context, projectID int) []backend.Collaboration {
	collabs, err := h.api.ListCollaborators(c.Request.Context(), projectID)
	if err != nil {
		return nil
	}
	return collabs
}

func isCollaborator(c *gin.Context, collabs []backend.Collaboration) bool {
	userID, ok := currentUserID(c)
	if !ok {
		return false
	}
	for _, collab := range collabs {
		if collab.UsuarioID == userID {
			return true
		}
	}
	return false
}

// listProjects shows all projects, newest first, hiding soft-deleted ones.
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.api.ListProjects(c.Request.Context())
	if err != nil {
		h.render(c, http.StatusOK, "lista_projetos.html", gin.H{
			"Error": genericBackendMsg,
		})
		return
	}

	visible := make([]backend.Project, 0, len(projects))
	for _, project := range projects {
		if project.Status != backend.StatusExcluido {
			visible = append(visible, project)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CriadoEm.After(visible[j].CriadoEm)
	})

	h.render(c, http.StatusOK, "lista_projetos.html", gin.H{
		"Projects": visible,
	})
}

// projectDetail shows a project with its owner and collaborators. Owner and
// collaborator fetches are enrichment only and degrade to absent.
func (h *Handler) projectDetail(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	project, ok := h.fetchProject(c, projectID)
	if !ok {
		return
	}

	var owner *backend.User
	if fetched, err := h.api.GetUser(c.Request.Context(), project.ProponenteID); err == nil {
		owner = fetched
	}

	collabs := h.collaborators(c, projectID)
	owned := isOwner(c, project)

	h.render(c, http.StatusOK, "projeto_detalhe.html", gin.H{
		"Project":       project,
		"Owner":         owner,
		"Collaborators": collabs,
		"CanEdit":       owned,
		"CanEvaluate":   owned || isCollaborator(c, collabs),
	})
}

func (h *Handler) showCreateProject(c *gin.Context) {
	h.render(c, http.StatusOK, "projeto_form.html", gin.H{
		"Form":     projectForm{},
		"Campuses": backend.AllCampuses(),
	})
}

func (h *Handler) createProject(c *gin.Context) {
	userID, _ := currentUserID(c)

	renderForm := func(errMsg string, form projectForm) {
		h.render(c, http.StatusOK, "projeto_form.html", gin.H{
			"Error":    errMsg,
			"Form":     form,
			"Campuses": backend.AllCampuses(),
		})
	}

	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm("Preencha título, propósito e campus.", form)
		return
	}
	campus := backend.Campus(form.Campus)
	if !campus.Valid() {
		renderForm("Campus inválido.", form)
		return
	}

	project, err := h.api.CreateProject(c.Request.Context(), backend.CreateProjectRequest{
		Titulo:                form.Titulo,
		Proposito:             form.Proposito,
		ProponenteID:          userID,
		HabilidadesRequeridas: filters.Split(form.Habilidades, ","),
		Campus:                campus,
	})
	if err != nil {
		switch kind, detail := classify(err); kind {
		case failValidation:
			if detail == "" {
				detail = "Dados inválidos."
			}
			renderForm(detail, form)
		default:
			renderForm(genericBackendMsg, form)
		}
		return
	}

	h.addFlash(c, flashSuccess, "Projeto criado.")
	h.redirect(c, "/projetos/"+strconv.Itoa(project.ID))
}

// showEditProject gates on ownership before rendering the edit form.
func (h *Handler) showEditProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	project, ok := h.fetchProject(c, projectID)
	if !ok {
		return
	}
	if !isOwner(c, project) {
		h.addFlash(c, flashError, "Apenas o proponente pode editar este projeto.")
		h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		return
	}

	names := make([]string, 0, len(project.HabilidadesRequeridas))
	for _, skill := range project.HabilidadesRequeridas {
		names = append(names, skill.Nome)
	}

	h.render(c, http.StatusOK, "projeto_editar.html", gin.H{
		"Project": project,
		"Form": projectForm{
			Titulo:      project.Titulo,
			Proposito:   project.Proposito,
			Campus:      string(project.Campus),
			Habilidades: strings.Join(names, ", "),
		},
		"Campuses": backend.AllCampuses(),
	})
}

func (h *Handler) editProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	project, ok := h.fetchProject(c, projectID)
	if !ok {
		return
	}
	if !isOwner(c, project) {
		h.addFlash(c, flashError, "Apenas o proponente pode editar este projeto.")
		h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		return
	}

	renderForm := func(errMsg string, form projectForm) {
		h.render(c, http.StatusOK, "projeto_editar.html", gin.H{
			"Error":    errMsg,
			"Project":  project,
			"Form":     form,
			"Campuses": backend.AllCampuses(),
		})
	}

	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm("Preencha título, propósito e campus.", form)
		return
	}

	_, err := h.api.UpdateProject(c.Request.Context(), projectID, backend.UpdateProjectRequest{
		Titulo:                &form.Titulo,
		Proposito:             &form.Proposito,
		HabilidadesRequeridas: filters.Split(form.Habilidades, ","),
	})
	if err != nil {
		switch kind, detail := classify(err); kind {
		case failNotFound:
			h.addFlash(c, flashError, "Projeto não encontrado.")
			h.redirect(c, "/projetos")
		case failForbidden:
			h.addFlash(c, flashError, "Você não tem permissão para editar este projeto.")
			h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		case failValidation:
			if detail == "" {
				detail = "Dados inválidos."
			}
			renderForm(detail, form)
		default:
			renderForm(genericBackendMsg, form)
		}
		return
	}

	h.addFlash(c, flashSuccess, "Projeto atualizado.")
	h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
}

// joinProject adds the logged-in user as a collaborator.
func (h *Handler) joinProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	var form joinForm
	_ = c.ShouldBind(&form)

	detail := "/projetos/" + strconv.Itoa(projectID)

	err := h.api.JoinProject(c.Request.Context(), projectID, backend.JoinRequest{
		UsuarioID: userID,
		Mensagem:  form.Mensagem,
	})
	if err != nil {
		switch kind, _ := classify(err); kind {
		case failNotFound:
			h.addFlash(c, flashError, "Projeto não encontrado.")
			h.redirect(c, "/projetos")
		case failConflict:
			h.addFlash(c, flashWarning, "Você já colabora neste projeto.")
			h.redirect(c, detail)
		case failForbidden:
			h.addFlash(c, flashError, "Você não pode colaborar neste projeto.")
			h.redirect(c, detail)
		default:
			h.addFlash(c, flashError, genericBackendMsg)
			h.redirect(c, detail)
		}
		return
	}

	h.addFlash(c, flashSuccess, "Agora você colabora neste projeto.")
	h.redirect(c, detail)
}

// leaveProject removes the logged-in user's collaboration record.
func (h *Handler) leaveProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	detail := "/projetos/" + strconv.Itoa(projectID)

	if err := h.api.LeaveProject(c.Request.Context(), projectID, userID); err != nil {
		switch kind, _ := classify(err); kind {
		case failNotFound:
			h.addFlash(c, flashInfo, "Você não colabora neste projeto.")
		default:
			h.addFlash(c, flashError, genericBackendMsg)
		}
		h.redirect(c, detail)
		return
	}

	h.addFlash(c, flashSuccess, "Você saiu do projeto.")
	h.redirect(c, detail)
}

// manageProject soft-deletes the project by patching its status. Owner only.
func (h *Handler) manageProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	project, ok := h.fetchProject(c, projectID)
	if !ok {
		return
	}
	if !isOwner(c, project) {
		h.addFlash(c, flashError, "Apenas o proponente pode gerenciar este projeto.")
		h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		return
	}

	status := backend.StatusExcluido
	if _, err := h.api.UpdateProject(c.Request.Context(), projectID, backend.UpdateProjectRequest{
		Status: &status,
	}); err != nil {
		switch kind, _ := classify(err); kind {
		case failNotFound:
			h.addFlash(c, flashError, "Projeto não encontrado.")
			h.redirect(c, "/projetos")
		default:
			h.addFlash(c, flashError, genericBackendMsg)
			h.redirect(c, "/projetos/"+strconv.Itoa(projectID))
		}
		return
	}

	h.addFlash(c, flashSuccess, "Projeto removido.")
	h.redirect(c, "/projetos")
}
