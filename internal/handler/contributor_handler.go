package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"softdesk/internal/auth"
	"softdesk/internal/service"
)

// ContributorHandler handles the contributors sub-resource of a project.
type ContributorHandler struct {
	membershipService service.MembershipService
}

// NewContributorHandler creates a new contributor handler.
func NewContributorHandler(membershipService service.MembershipService) *ContributorHandler {
	return &ContributorHandler{membershipService: membershipService}
}

// ContributorRequest names the user to add or remove.
type ContributorRequest struct {
	Username string `json:"username" validate:"required,max=150"`
}

// ListContributors godoc
// @Summary List project contributors
// @Tags contributors
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {array} ContributorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/users [get]
func (h *ContributorHandler) ListContributors(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	contributors, err := h.membershipService.List(c.Request().Context(), auth.ActorFromContext(c), projectID)
	if err != nil {
		return domainError(err)
	}

	resp := make([]ContributorResponse, 0, len(contributors))
	for i := range contributors {
		resp = append(resp, toContributorResponse(&contributors[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// AddContributor godoc
// @Summary Add a contributor by username (author only)
// @Tags contributors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param request body ContributorRequest true "Username to add"
// @Success 201 {object} ContributorResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /projects/{projectID}/users [post]
func (h *ContributorHandler) AddContributor(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	var req ContributorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contributor, err := h.membershipService.Invite(c.Request().Context(), auth.ActorFromContext(c), projectID, req.Username)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toContributorResponse(contributor))
}

// RemoveContributor godoc
// @Summary Remove a contributor by username (author only; the author can never be removed)
// @Tags contributors
// @Accept json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param request body ContributorRequest true "Username to remove"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/users [delete]
func (h *ContributorHandler) RemoveContributor(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	var req ContributorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.membershipService.Revoke(c.Request().Context(), auth.ActorFromContext(c), projectID, req.Username); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
