package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"softdesk/internal/errors"
	"softdesk/internal/model"
)

// domainError translates a domain error into an echo HTTP error with the
// standardized response body.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// ProjectResponse is the canonical project representation.
type ProjectResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Author      string    `json:"author"`
	CreatedTime time.Time `json:"created_time"`
}

func toProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Type:        string(p.Type),
		Author:      p.Author.Username,
		CreatedTime: p.CreatedAt,
	}
}

// ContributorResponse is the canonical contributor representation.
type ContributorResponse struct {
	ID          uint      `json:"id"`
	User        string    `json:"user"`
	ProjectID   uint      `json:"project_id"`
	CreatedTime time.Time `json:"created_time"`
}

func toContributorResponse(c *model.Contributor) ContributorResponse {
	return ContributorResponse{
		ID:          c.ID,
		User:        c.User.Username,
		ProjectID:   c.ProjectID,
		CreatedTime: c.CreatedAt,
	}
}

// IssueResponse is the canonical issue representation.
type IssueResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Project     string    `json:"project"`
	Author      string    `json:"author"`
	Assignee    *string   `json:"assignee"`
	CreatedTime time.Time `json:"created_time"`
}

func toIssueResponse(i *model.Issue) IssueResponse {
	resp := IssueResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Tag:         string(i.Tag),
		Priority:    string(i.Priority),
		Status:      string(i.Status),
		Project:     i.Project.Title,
		Author:      i.Author.Username,
		CreatedTime: i.CreatedAt,
	}
	if i.Assignee != nil {
		username := i.Assignee.Username
		resp.Assignee = &username
	}
	return resp
}

// CommentResponse is the canonical comment representation.
type CommentResponse struct {
	ID          uint      `json:"id"`
	UUID        string    `json:"uuid"`
	Description string    `json:"description"`
	IssueID     uint      `json:"issue_id"`
	Author      string    `json:"author"`
	CreatedTime time.Time `json:"created_time"`
}

func toCommentResponse(cm *model.Comment) CommentResponse {
	return CommentResponse{
		ID:          cm.ID,
		UUID:        cm.UUID.String(),
		Description: cm.Description,
		IssueID:     cm.IssueID,
		Author:      cm.Author.Username,
		CreatedTime: cm.CreatedAt,
	}
}
