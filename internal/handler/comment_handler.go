package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"softdesk/internal/auth"
	"softdesk/internal/service"
)

// CommentHandler handles the comments sub-resource of an issue.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a comment create or update request.
type CommentRequest struct {
	Description string `json:"description" validate:"required,max=2048"`
}

// commentPath parses the three-level comment chain identifiers.
func commentPath(c echo.Context) (projectID, issueID, commentID uint, err error) {
	if projectID, err = pathID(c, "projectID"); err != nil {
		return
	}
	if issueID, err = pathID(c, "issueID"); err != nil {
		return
	}
	commentID, err = pathID(c, "commentID")
	return
}

// ListComments godoc
// @Summary List an issue's comments (contributors only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Success 200 {array} CommentResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID}/comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}
	issueID, err := pathID(c, "issueID")
	if err != nil {
		return err
	}

	comments, err := h.commentService.List(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID)
	if err != nil {
		return domainError(err)
	}

	resp := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, toCommentResponse(&comments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateComment godoc
// @Summary Comment on an issue (contributors only)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Param request body CommentRequest true "Comment data"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID}/comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}
	issueID, err := pathID(c, "issueID")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// GetComment godoc
// @Summary Retrieve a comment (contributors only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Param commentID path int true "Comment ID"
// @Success 200 {object} CommentResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID}/comments/{commentID} [get]
func (h *CommentHandler) GetComment(c echo.Context) error {
	projectID, issueID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Get(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID, commentID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// UpdateComment godoc
// @Summary Update a comment (comment author only)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Param commentID path int true "Comment ID"
// @Param request body CommentRequest true "Comment changes"
// @Success 200 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID}/comments/{commentID} [put]
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	projectID, issueID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID, commentID, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment godoc
// @Summary Delete a comment (comment author only)
// @Tags comments
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param issueID path int true "Issue ID"
// @Param commentID path int true "Comment ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{projectID}/issues/{issueID}/comments/{commentID} [delete]
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	projectID, issueID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), auth.ActorFromContext(c), projectID, issueID, commentID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
