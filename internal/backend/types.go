package backend

import "time"

// Campus is one of the four institutional location codes.
type Campus string

const (
	CampusDiamantina Campus = "DIA"
	CampusJanauba    Campus = "JAN"
	CampusUnai       Campus = "UNA"
	CampusMucuri     Campus = "MUC"
)

var campusLabels = map[Campus]string{
	CampusDiamantina: "Diamantina",
	CampusJanauba:    "Janaúba",
	CampusUnai:       "Unaí",
	CampusMucuri:     "Mucuri",
}

// AllCampuses lists the campus codes in display order.
func AllCampuses() []Campus {
	return []Campus{CampusDiamantina, CampusJanauba, CampusUnai, CampusMucuri}
}

func (c Campus) Label() string {
	if label, ok := campusLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Campus) Valid() bool {
	_, ok := campusLabels[c]
	return ok
}

// Project status values as reported by the backend.
const (
	StatusAberto      = "aberto"
	StatusEmAndamento = "em_andamento"
	StatusExcluido    = "excluido"
)

// User mirrors the backend's user JSON shape.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Nome        string  `json:"nome,omitempty"`
	Curso       string  `json:"curso,omitempty"`
	Campus      Campus  `json:"campus"`
	Habilidades []Skill `json:"habilidades,omitempty"`
}

// Skill is a named competence; uniqueness of Nome is enforced server-side.
type Skill struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// Project mirrors the backend's project JSON shape.
type Project struct {
	ID                    int       `json:"id"`
	Titulo                string    `json:"titulo"`
	Proposito             string    `json:"proposito"`
	ProponenteID          int       `json:"proponente_id"`
	Status                string    `json:"status"`
	CriadoEm              time.Time `json:"criado_em"`
	HabilidadesRequeridas []Skill   `json:"habilidades_requeridas,omitempty"`
	Campus                Campus    `json:"campus,omitempty"`
}

// Collaboration is a membership record; presence implies participation.
type Collaboration struct {
	UsuarioID int    `json:"usuario_id"`
	ProjetoID int    `json:"projeto_id"`
	Username  string `json:"username,omitempty"`
	Mensagem  string `json:"mensagem,omitempty"`
}

// Evaluation carries the twenty metric scores (0-3 each) grouped into seven
// categories, plus the overall score (0-5), outcome and free-text comment.
type Evaluation struct {
	ProjetoID   int `json:"projeto_id"`
	AvaliadorID int `json:"avaliador_id"`

	// Clareza e escopo
	Objetivo   int `json:"objetivo"`
	Escopo     int `json:"escopo"`
	Requisitos int `json:"requisitos"`

	// Comunicação
	Frequencia         int `json:"frequencia"`
	ClarezaComunicacao int `json:"clareza_comunicacao"`
	Feedback           int `json:"feedback"`

	// Técnica
	Qualidade    int `json:"qualidade"`
	BoasPraticas int `json:"boas_praticas"`
	Documentacao int `json:"documentacao"`
	Testes       int `json:"testes"`

	// Prazo
	Pontualidade int `json:"pontualidade"`
	GestaoTempo  int `json:"gestao_tempo"`

	// Colaboração
	Participacao   int `json:"participacao"`
	Respeito       int `json:"respeito"`
	DivisaoTarefas int `json:"divisao_tarefas"`

	// Resultado
	Entrega    int `json:"entrega"`
	Impacto    int `json:"impacto"`
	Completude int `json:"completude"`

	// Aprendizado
	NovosConhecimentos int `json:"novos_conhecimentos"`
	Crescimento        int `json:"crescimento"`

	NotaGeral  int    `json:"nota_geral"`
	Resultado  string `json:"resultado"`
	Comentario string `json:"comentario,omitempty"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nome     string `json:"nome,omitempty"`
	Curso    string `json:"curso,omitempty"`
	Campus   Campus `json:"campus"`
}

// Credentials is the payload for POST /auth/check-user.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is the response of a successful check-user call.
type AuthResult struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// UpdateUserRequest is the payload for PATCH /usuarios/{id}. Nil fields are
// omitted so the backend only touches what was submitted.
type UpdateUserRequest struct {
	Nome        *string  `json:"nome,omitempty"`
	Curso       *string  `json:"curso,omitempty"`
	Campus      *Campus  `json:"campus,omitempty"`
	Habilidades []string `json:"habilidades,omitempty"`
}

// CreateProjectRequest is the payload for POST /projetos/.
type CreateProjectRequest struct {
	Titulo                string   `json:"titulo"`
	Proposito             string   `json:"proposito"`
	ProponenteID          int      `json:"proponente_id"`
	HabilidadesRequeridas []string `json:"habilidades_requeridas,omitempty"`
	Campus                Campus   `json:"campus"`
}

// UpdateProjectRequest is the payload for PATCH /projetos/{id}.
type UpdateProjectRequest struct {
	Titulo                *string  `json:"titulo,omitempty"`
	Proposito             *string  `json:"proposito,omitempty"`
	Status                *string  `json:"status,omitempty"`
	HabilidadesRequeridas []string `json:"habilidades_requeridas,omitempty"`
}

// JoinRequest is the payload for POST /projetos/{id}/colaborar.
type JoinRequest struct {
	UsuarioID int    `json:"usuario_id"`
	Mensagem  string `json:"mensagem,omitempty"`
}

// SearchResultType discriminates heterogeneous search hits.
const (
	SearchTypeUser    = "usuario"
	SearchTypeProject = "projeto"
)

// SearchHit is one entry of the backend search response. Tipo is the explicit
// discriminant; older backends omit it and are handled by field presence.
type SearchHit struct {
	Tipo      string `json:"tipo,omitempty"`
	ID        int    `json:"id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Curso     string `json:"curso,omitempty"`
	Titulo    string `json:"titulo,omitempty"`
	Proposito string `json:"proposito,omitempty"`
	Campus    Campus `json:"campus,omitempty"`
}

// SearchResults partitions hits into users and projects.
type SearchResults struct {
	Usuarios []SearchHit
	Projetos []SearchHit
}

// IsUser reports whether the hit describes a user. The explicit discriminant
// wins; the email-vs-purpose field test only covers responses without one.
func (h SearchHit) IsUser() bool {
	switch h.Tipo {
	case SearchTypeUser:
		return true
	case SearchTypeProject:
		return false
	}
	return h.Email != "" && h.Proposito == ""
}
