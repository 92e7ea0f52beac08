package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultTimeout bounds every backend call. There are no retries; a timeout
// surfaces to the handler as ErrUnreachable.
const DefaultTimeout = 10 * time.Second

// Client handles communication with the SkillMap REST backend. One method per
// logical operation; all state lives on the backend side.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL. A zero timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do issues one backend call and decodes the JSON response into out (when out
// is non-nil). Transport failures come back wrapping ErrUnreachable; non-2xx
// statuses come back as *APIError with the backend's detail text.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, payload, out any) error {
	logger := NewLogger(ctx)

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
		logger.LogWarnf(operation, "backend returned status %d", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.LogError(operation, err)
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// readDetail extracts the backend's {"detail": "..."} message, if any.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}

// Register creates a new user via POST /auth/register.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUser validates credentials via POST /auth/check-user.
func (c *Client) CheckUser(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, "check_user", http.MethodPost, "/auth/check-user", nil, creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser fetches a user by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if err := c.do(ctx, "get_user", http.MethodGet, "/usuarios/"+strconv.Itoa(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches a user's editable profile fields.
func (c *Client) UpdateUser(ctx context.Context, id int, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, "update_user", http.MethodPatch, "/usuarios/"+strconv.Itoa(id), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListProjects fetches all projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, "list_projects", http.MethodGet, "/projetos/", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project via POST /projetos/.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(ctx, "create_project", http.MethodPost, "/projetos/", nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject fetches a project by ID.
func (c *Client) GetProject(ctx context.Context, id int) (*Project, error) {
	var project Project
	if err := c.do(ctx, "get_project", http.MethodGet, "/projetos/"+strconv.Itoa(id), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject patches a project. Soft deletion is an update setting status
// to StatusExcluido.
func (c *Client) UpdateProject(ctx context.Context, id int, req UpdateProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(ctx, "update_project", http.MethodPatch, "/projetos/"+strconv.Itoa(id), nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListCollaborators fetches a project's membership records.
func (c *Client) ListCollaborators(ctx context.Context, projectID int) ([]Collaboration, error) {
	var collabs []Collaboration
	path := "/projetos/" + strconv.Itoa(projectID) + "/colaboradores"
	if err := c.do(ctx, "list_collaborators", http.MethodGet, path, nil, nil, &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}

// JoinProject adds the user as a collaborator. The backend answers 409 when
// the user already collaborates.
func (c *Client) JoinProject(ctx context.Context, projectID int, req JoinRequest) error {
	path := "/projetos/" + strconv.Itoa(projectID) + "/colaborar"
	return c.do(ctx, "join_project", http.MethodPost, path, nil, req, nil)
}

// LeaveProject removes the user's collaboration record.
func (c *Client) LeaveProject(ctx context.Context, projectID, userID int) error {
	path := "/projetos/" + strconv.Itoa(projectID) + "/colaborar/" + strconv.Itoa(userID)
	return c.do(ctx, "leave_project", http.MethodDelete, path, nil, nil, nil)
}

// SubmitEvaluation posts an evaluation. The backend answers 409 when the user
// already evaluated this project.
func (c *Client) SubmitEvaluation(ctx context.Context, projectID int, eval Evaluation) error {
	path := "/projetos/" + strconv.Itoa(projectID) + "/avaliar"
	return c.do(ctx, "submit_evaluation", http.MethodPost, path, nil, eval, nil)
}

// ListEvaluations fetches a project's submitted evaluations.
func (c *Client) ListEvaluations(ctx context.Context, projectID int) ([]Evaluation, error) {
	var evals []Evaluation
	path := "/projetos/" + strconv.Itoa(projectID) + "/avaliacoes"
	if err := c.do(ctx, "list_evaluations", http.MethodGet, path, nil, nil, &evals); err != nil {
		return nil, err
	}
	return evals, nil
}

// ListUserProjects fetches the projects a user proposed or collaborates on.
func (c *Client) ListUserProjects(ctx context.Context, userID int) ([]Project, error) {
	var projects []Project
	path := "/projetos/usuario/" + strconv.Itoa(userID)
	if err := c.do(ctx, "list_user_projects", http.MethodGet, path, nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Search forwards the free-text term and campus filters to the search root
// and partitions the heterogeneous result into users and projects.
func (c *Client) Search(ctx context.Context, term string, campuses []string) (*SearchResults, error) {
	query := url.Values{}
	if term != "" {
		query.Set("q", term)
	}
	for _, campus := range campuses {
		query.Add("campus", campus)
	}

	var hits []SearchHit
	if err := c.do(ctx, "search", http.MethodGet, "/", query, nil, &hits); err != nil {
		return nil, err
	}

	results := &SearchResults{}
	for _, hit := range hits {
		if hit.IsUser() {
			results.Usuarios = append(results.Usuarios, hit)
		} else {
			results.Projetos = append(results.Projetos, hit)
		}
	}
	return results, nil
}
