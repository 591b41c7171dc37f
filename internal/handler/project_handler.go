package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"softdesk/internal/auth"
	"softdesk/internal/model"
	"softdesk/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,max=128"`
	Description string `json:"description" validate:"max=2048"`
	Type        string `json:"type" validate:"required,oneof=back-end front-end ios android"`
}

// UpdateProjectRequest represents a project update request.
type UpdateProjectRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=128"`
	Description *string `json:"description" validate:"omitempty,max=2048"`
	Type        *string `json:"type" validate:"omitempty,oneof=back-end front-end ios android"`
}

// ListProjects godoc
// @Summary List projects the actor contributes to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProjectResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context(), auth.ActorFromContext(c))
	if err != nil {
		return domainError(err)
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, toProjectResponse(&projects[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.Create(c.Request().Context(), auth.ActorFromContext(c), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        model.ProjectType(req.Type),
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// GetProject godoc
// @Summary Retrieve a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), auth.ActorFromContext(c), projectID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// UpdateProject godoc
// @Summary Update a project (author only)
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param request body UpdateProjectRequest true "Project changes"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Type != nil {
		projectType := model.ProjectType(*req.Type)
		in.Type = &projectType
	}

	project, err := h.projectService.Update(c.Request().Context(), auth.ActorFromContext(c), projectID, in)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// DeleteProject godoc
// @Summary Delete a project and all its issues and comments (author only)
// @Tags projects
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), auth.ActorFromContext(c), projectID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
