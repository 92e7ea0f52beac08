package web

import "github.com/skillmap-ufvjm/skillmap-web/internal/backend"

// Form shapes for the browser-facing pages. Only local shape checks happen
// here (required fields, password confirmation); everything else is the
// backend's call.

type registerForm struct {
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" binding:"required"`
	Nome            string `form:"nome"`
	Curso           string `form:"curso"`
	Campus          string `form:"campus" binding:"required"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type profileForm struct {
	Nome        string `form:"nome"`
	Curso       string `form:"curso"`
	Campus      string `form:"campus" binding:"required"`
	Habilidades string `form:"habilidades"`
}

type projectForm struct {
	Titulo      string `form:"titulo" binding:"required"`
	Proposito   string `form:"proposito" binding:"required"`
	Campus      string `form:"campus" binding:"required"`
	Habilidades string `form:"habilidades"`
}

type joinForm struct {
	Mensagem string `form:"mensagem"`
}

// evaluationForm carries the twenty 0-3 metric scores, the 0-5 overall score
// and the outcome. Ranges match the select widgets on the form.
type evaluationForm struct {
	Objetivo   int `form:"objetivo" binding:"min=0,max=3"`
	Escopo     int `form:"escopo" binding:"min=0,max=3"`
	Requisitos int `form:"requisitos" binding:"min=0,max=3"`

	Frequencia         int `form:"frequencia" binding:"min=0,max=3"`
	ClarezaComunicacao int `form:"clareza_comunicacao" binding:"min=0,max=3"`
	Feedback           int `form:"feedback" binding:"min=0,max=3"`

	Qualidade    int `form:"qualidade" binding:"min=0,max=3"`
	BoasPraticas int `form:"boas_praticas" binding:"min=0,max=3"`
	Documentacao int `form:"documentacao" binding:"min=0,max=3"`
	Testes       int `form:"testes" binding:"min=0,max=3"`

	Pontualidade int `form:"pontualidade" binding:"min=0,max=3"`
	GestaoTempo  int `form:"gestao_tempo" binding:"min=0,max=3"`

	Participacao   int `form:"participacao" binding:"min=0,max=3"`
	Respeito       int `form:"respeito" binding:"min=0,max=3"`
	DivisaoTarefas int `form:"divisao_tarefas" binding:"min=0,max=3"`

	Entrega    int `form:"entrega" binding:"min=0,max=3"`
	Impacto    int `form:"impacto" binding:"min=0,max=3"`
	Completude int `form:"completude" binding:"min=0,max=3"`

	NovosConhecimentos int `form:"novos_conhecimentos" binding:"min=0,max=3"`
	Crescimento        int `form:"crescimento" binding:"min=0,max=3"`

	NotaGeral  int    `form:"nota_geral" binding:"min=0,max=5"`
	Resultado  string `form:"resultado" binding:"required"`
	Comentario string `form:"comentario"`
}

func (f evaluationForm) toEvaluation(projectID, evaluatorID int) backend.Evaluation {
	return backend.Evaluation{
		ProjetoID:   projectID,
		AvaliadorID: evaluatorID,

		Objetivo:   f.Objetivo,
		Escopo:     f.Escopo,
		Requisitos: f.Requisitos,

		Frequencia:         f.Frequencia,
		ClarezaComunicacao: f.ClarezaComunicacao,
		Feedback:           f.Feedback,

		Qualidade:    f.Qualidade,
		BoasPraticas: f.BoasPraticas,
		Documentacao: f.Documentacao,
		Testes:       f.Testes,

		Pontualidade: f.Pontualidade,
		GestaoTempo:  f.GestaoTempo,

		Participacao:   f.Participacao,
		Respeito:       f.Respeito,
		DivisaoTarefas: f.DivisaoTarefas,

		Entrega:    f.Entrega,
		Impacto:    f.Impacto,
		Completude: f.Completude,

		NovosConhecimentos: f.NovosConhecimentos,
		Crescimento:        f.Crescimento,

		NotaGeral:  f.NotaGeral,
		Resultado:  f.Resultado,
		Comentario: f.Comentario,
	}
}
