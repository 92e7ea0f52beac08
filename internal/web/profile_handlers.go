package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/web/filters"
)

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", nil)
}

func (h *Handler) comunidade(c *gin.Context) {
	h.render(c, http.StatusOK, "comunidade.html", nil)
}

func (h *Handler) showRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "cadastrar_perfil.html", gin.H{
		"Form":     registerForm{},
		"Campuses": backend.AllCampuses(),
	})
}

// register creates the user on the backend. Local shape checks (required
// fields, password confirmation) happen before any network call.
func (h *Handler) register(c *gin.Context) {
	renderForm := func(errMsg string, form registerForm) {
		h.render(c, http.StatusOK, "cadastrar_perfil.html", gin.H{
			"Error":    errMsg,
			"Form":     form,
			"Campuses": backend.AllCampuses(),
		})
	}

	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm("Preencha todos os campos obrigatórios.", form)
		return
	}
	if form.Password != form.PasswordConfirm {
		renderForm("As senhas não conferem.", form)
		return
	}
	campus := backend.Campus(form.Campus)
	if !campus.Valid() {
		renderForm("Campus inválido.", form)
		return
	}

	_, err := h.api.Register(c.Request.Context(), backend.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Nome:     form.Nome,
		Curso:    form.Curso,
		Campus:   campus,
	})
	if err != nil {
		switch kind, detail := classify(err); kind {
		case failConflict:
			renderForm("Este nome de usuário já está em uso.", form)
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

	h.addFlash(c, flashSuccess, "Cadastro realizado. Faça login para continuar.")
	h.redirect(c, "/login")
}

// showEditProfile pre-fills the form with the user's current data.
func (h *Handler) showEditProfile(c *gin.Context) {
	userID, _ := currentUserID(c)

	user, err := h.api.GetUser(c.Request.Context(), userID)
	if err != nil {
		if kind, _ := classify(err); kind == failNotFound {
			h.addFlash(c, flashError, "Perfil não encontrado.")
			h.redirect(c, "/")
			return
		}
		h.render(c, http.StatusOK, "editar_perfil.html", gin.H{
			"Error":    genericBackendMsg,
			"Form":     profileForm{},
			"Campuses": backend.AllCampuses(),
		})
		return
	}

	names := make([]string, 0, len(user.Habilidades))
	for _, skill := range user.Habilidades {
		names = append(names, skill.Nome)
	}

	h.render(c, http.StatusOK, "editar_perfil.html", gin.H{
		"Form": profileForm{
			Nome:        user.Nome,
			Curso:       user.Curso,
			Campus:      string(user.Campus),
			Habilidades: strings.Join(names, ", "),
		},
		"Campuses": backend.AllCampuses(),
	})
}

func (h *Handler) editProfile(c *gin.Context) {
	userID, _ := currentUserID(c)

	renderForm := func(errMsg string, form profileForm) {
		h.render(c, http.StatusOK, "editar_perfil.html", gin.H{
			"Error":    errMsg,
			"Form":     form,
			"Campuses": backend.AllCampuses(),
		})
	}

	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm("Preencha todos os campos obrigatórios.", form)
		return
	}
	campus := backend.Campus(form.Campus)
	if !campus.Valid() {
		renderForm("Campus inválido.", form)
		return
	}

	_, err := h.api.UpdateUser(c.Request.Context(), userID, backend.UpdateUserRequest{
		Nome:        &form.Nome,
		Curso:       &form.Curso,
		Campus:      &campus,
		Habilidades: filters.Split(form.Habilidades, ","),
	})
	if err != nil {
		switch kind, detail := classify(err); kind {
		case failNotFound:
			h.addFlash(c, flashError, "Perfil não encontrado.")
			h.redirect(c, "/")
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

	h.addFlash(c, flashSuccess, "Perfil atualizado.")
	h.redirect(c, "/perfil/"+strconv.Itoa(userID))
}

// viewProfile shows another user's public profile and their projects. A
// failed projects fetch degrades to an empty list.
func (h *Handler) viewProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("usuario_id"))
	if err != nil {
		h.addFlash(c, flashError, "Usuário não encontrado.")
		h.redirect(c, "/busca")
		return
	}

	user, err := h.api.GetUser(c.Request.Context(), userID)
	if err != nil {
		if kind, _ := classify(err); kind == failNotFound {
			h.addFlash(c, flashError, "Usuário não encontrado.")
		} else {
			h.addFlash(c, flashError, genericBackendMsg)
		}
		h.redirect(c, "/busca")
		return
	}

	projects, err := h.api.ListUserProjects(c.Request.Context(), userID)
	if err != nil {
		projects = nil
	}

	h.render(c, http.StatusOK, "perfil_usuario.html", gin.H{
		"User":     user,
		"Projects": projects,
	})
}
