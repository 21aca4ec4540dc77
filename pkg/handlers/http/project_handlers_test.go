package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/domain/project"
	handlers "github.com/alvilabs/portfolio-api/pkg/handlers/http"
)

type fakeProjectRepo struct {
	projects map[string]*project.Project
	err      error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*project.Project)}
}

func (r *fakeProjectRepo) List(_ context.Context) ([]project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) ListPublished(_ context.Context) ([]project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []project.Project
	for _, p := range r.projects {
		if p.Published {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.projects[slug]
	if !ok {
		return nil, domain.NewNotFoundError("project", slug)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) GetPublishedBySlug(_ context.Context, slug string) (*project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.projects[slug]
	if !ok || !p.Published {
		return nil, domain.NewNotFoundError("project", slug)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, p *project.Project) error {
	if r.err != nil {
		return r.err
	}
	if _, exists := r.projects[p.Slug]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.projects[p.Slug] = p
	return nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *project.Project) error {
	if r.err != nil {
		return r.err
	}
	if _, exists := r.projects[p.Slug]; !exists {
		return domain.NewNotFoundError("project", p.Slug)
	}
	r.projects[p.Slug] = p
	return nil
}

func (r *fakeProjectRepo) DeleteBySlug(_ context.Context, slug string) error {
	if r.err != nil {
		return r.err
	}
	if _, exists := r.projects[slug]; !exists {
		return domain.NewNotFoundError("project", slug)
	}
	delete(r.projects, slug)
	return nil
}

func newProjectApp(repo project.Repository) *fiber.App {
	app := fiber.New()
	logger := testLogger()

	app.Get("/api/v1/projects", handlers.NewListPublishedProjectsHandler(logger, repo).Handle)
	app.Get("/api/v1/projects/:slug", handlers.NewGetProjectHandler(logger, repo).Handle)
	app.Get("/api/v1/admin/projects", handlers.NewListProjectsHandler(logger, repo).Handle)
	app.Post("/api/v1/admin/projects", handlers.NewCreateProjectHandler(logger, repo).Handle)
	app.Put("/api/v1/admin/projects/:slug", handlers.NewUpdateProjectHandler(logger, repo).Handle)
	app.Delete("/api/v1/admin/projects/:slug", handlers.NewDeleteProjectHandler(logger, repo).Handle)
	return app
}

func validProjectBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Portfolio API",
		"slug":        "portfolio-api",
		"description": "A small backend for my portfolio.",
		"tools":       []string{"Go", "PostgreSQL"},
		"category":    "backend",
		"published":   true,
	}
}

func TestCreateProjectHandler_Success(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", validProjectBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created project.Project
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "portfolio-api", created.Slug)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, []string(created.Tools))
}

func TestCreateProjectHandler_DuplicateSlug(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", validProjectBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", validProjectBody())
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var decoded map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "Slug already exists", decoded["error"])
}

func TestCreateProjectHandler_CapsAndCleansTools(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	tools := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		tools = append(tools, "tool")
	}
	body := validProjectBody()
	body["tools"] = tools

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, repo.projects["portfolio-api"].Tools, 20)
}

func TestUpdateProjectHandler_SlugImmutable(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", validProjectBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := validProjectBody()
	body["slug"] = "renamed-project"
	resp = jsonRequest(t, app, http.MethodPut, "/api/v1/admin/projects/portfolio-api", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteProjectHandler_NotFound(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	resp := jsonRequest(t, app, http.MethodDelete, "/api/v1/admin/projects/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetProjectHandler_UnpublishedIsHidden(t *testing.T) {
	repo := newFakeProjectRepo()
	app := newProjectApp(repo)

	body := validProjectBody()
	body["published"] = false
	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/admin/projects", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = jsonRequest(t, app, http.MethodGet, "/api/v1/projects/portfolio-api", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = jsonRequest(t, app, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed []project.Project
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Empty(t, listed)

	// The admin listing still sees the draft.
	resp = jsonRequest(t, app, http.MethodGet, "/api/v1/admin/projects", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Len(t, listed, 1)
}
