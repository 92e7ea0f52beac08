package web

import "github.com/gin-gonic/gin"

// Register attaches all SkillMap routes to the engine. Static segments
// (/perfil/editar, /projetos/novo) take priority over the parameterized
// routes at the same level.
func (h *Handler) Register(r gin.IRouter) {
	r.Use(h.withSession())

	r.GET("/", h.index)
	r.GET("/comunidade", h.comunidade)
	r.GET("/busca", h.search)

	r.GET("/cadastro/perfil", h.showRegister)
	r.POST("/cadastro/perfil", h.register)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)

	r.GET("/perfil/:usuario_id", h.viewProfile)

	r.GET("/projetos", h.listProjects)
	r.GET("/projetos/:projeto_id", h.projectDetail)

	auth := h.requireAuth()
	r.GET("/perfil/editar", auth, h.showEditProfile)
	r.POST("/perfil/editar", auth, h.editProfile)
	r.GET("/projetos/novo", auth, h.showCreateProject)
	r.POST("/projetos/novo", auth, h.createProject)
	r.GET("/projetos/:projeto_id/editar", auth, h.showEditProject)
	r.POST("/projetos/:projeto_id/editar", auth, h.editProject)
	r.POST("/projetos/:projeto_id/participar", auth, h.joinProject)
	r.POST("/projetos/:projeto_id/sair", auth, h.leaveProject)
	r.POST("/projetos/:projeto_id/gerenciar", auth, h.manageProject)
	r.GET("/projetos/:projeto_id/avaliar", auth, h.showEvaluate)
	r.POST("/projetos/:projeto_id/avaliar", auth, h.evaluate)
}
