package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"softdesk/internal/auth"
	"softdesk/internal/model"
	"softdesk/internal/service"
)

// IssueHandler handles the issues sub-resource of a project.
type IssueHandler struct {
	issueService service.IssueService
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// CreateIssueRequest represents an issue creation request. Author and project
// are never client-supplied; they come from the actor and the URL.
type CreateIssueRequest struct {
	Title            string  `json:"title" validate:"required,max=128"`
	Description      string  `json:"description" validate:"max=2048"`
	Tag              string  `json:"tag" validate:"required,oneof=bug feature task"`
	Priority         string  `json:"priority" validate:"required,oneof=low medium high"`
	Status           string  `json:"status" validate:"omitempty,oneof='to do' 'in progress' finished"`
	AssigneeUsername *string `json:"assignee_username"`
}

// UpdateIssueRequest represents an issue update request. An empty
// assignee_username clears the assignee.
type UpdateIssueRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=128"`
	Description      *string `json:"description" validate:"omitempty,max=2048"`
	Tag              *string `json:"tag" validate:"omitempty,oneof=bug feature task"`
	Priority         *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status           *string `json:"status" validate:"omitempty,oneof='to do' 'in progress' finished"`
	AssigneeUsername *string `json:"assignee_username"`
}

// ListIssues godoc
// @Summary List a project's issues (contributors only)
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {array} IssueResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues [get]
func (h *IssueHandler) ListIssues(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	issues, err := h.issueService.List(c.Request().Context(), auth.ActorFromContext(c), projectID)
	if err != nil {
		return domainError(err)
	}

	resp := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		resp = append(resp, toIssueResponse(&issues[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateIssue godoc
// @Summary File an issue against a project (contributors only)
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param request body CreateIssueRequest true "Issue data"
// @Success 201 {object} IssueResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues [post]
func (h *IssueHandler) CreateIssue(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	var req CreateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.issueService.Create(c.Request().Context(), auth.ActorFromContext(c), projectID, service.CreateIssueInput{
		Title:            req.Title,
		Description:      req.Description,
		Tag:              model.IssueTag(req.Tag),
		Priority:         model.IssuePriority(req.Priority),
		Status:           model.IssueStatus(req.Status),
		AssigneeUsername: req.AssigneeUsername,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toIssueResponse(issue))
}

// GetIssue godoc
// @Summary Retrieve an issue (contributors only)
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Success 200 {object} IssueResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID} [get]
func (h *IssueHandler) GetIssue(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}
	issueID, err := pathID(c, "issueID")
	if err != nil {
		return err
	}

	issue, err := h.issueService.Get(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toIssueResponse(issue))
}

// UpdateIssue godoc
// @Summary Update an issue (issue author only)
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Param request body UpdateIssueRequest true "Issue changes"
// @Success 200 {object} IssueResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID} [put]
func (h *IssueHandler) UpdateIssue(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}
	issueID, err := pathID(c, "issueID")
	if err != nil {
		return err
	}

	var req UpdateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateIssueInput{
		Title:            req.Title,
		Description:      req.Description,
		AssigneeUsername: req.AssigneeUsername,
	}
	if req.Tag != nil {
		tag := model.IssueTag(*req.Tag)
		in.Tag = &tag
	}
	if req.Priority != nil {
		priority := model.IssuePriority(*req.Priority)
		in.Priority = &priority
	}
	if req.Status != nil {
		status := model.IssueStatus(*req.Status)
		in.Status = &status
	}

	issue, err := h.issueService.Update(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID, in)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toIssueResponse(issue))
}

// DeleteIssue godoc
// @Summary Delete an issue and its comments (issue author only)
// @Tags issues
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID} [delete]
func (h *IssueHandler) DeleteIssue(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}
	issueID, err := pathID(c, "issueID")
	if err != nil {
		return err
	}

	if err := h.issueService.Delete(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
