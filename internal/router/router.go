package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"softdesk/internal/auth"
	"softdesk/internal/config"
	"softdesk/internal/handler"
	"softdesk/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	contributorHandler *handler.ContributorHandler,
	issueHandler *handler.IssueHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes: account creation and token endpoints only.
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/login/refresh", authHandler.Refresh)
	api.POST("/logout", authHandler.Logout)

	// Secured routes: the JWT middleware verifies the signature, then the
	// actor middleware resolves the token to a user record so every
	// authorization decision receives an explicit actor.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), auth.ActorMiddleware(jwtService, users))

	secured.GET("/me", userHandler.Me)

	// User profiles
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Projects
	secured.GET("/projects", projectHandler.ListProjects)
	secured.POST("/projects", projectHandler.CreateProject)
	secured.GET("/projects/:projectID", projectHandler.GetProject)
	secured.PUT("/projects/:projectID", projectHandler.UpdateProject)
	secured.DELETE("/projects/:projectID", projectHandler.DeleteProject)

	// Contributors
	secured.GET("/projects/:projectID/users", contributorHandler.ListContributors)
	secured.POST("/projects/:projectID/users", contributorHandler.AddContributor)
	secured.DELETE("/projects/:projectID/users", contributorHandler.RemoveContributor)

	// Issues
	secured.GET("/projects/:projectID/issues", issueHandler.ListIssues)
	secured.POST("/projects/:projectID/issues", issueHandler.CreateIssue)
	secured.GET("/projects/:projectID/issues/:issueID", issueHandler.GetIssue)
	secured.PUT("/projects/:projectID/issues/:issueID", issueHandler.UpdateIssue)
	secured.DELETE("/projects/:projectID/issues/:issueID", issueHandler.DeleteIssue)

	// Comments
	secured.GET("/projects/:projectID/issues/:issueID/comments", commentHandler.ListComments)
	secured.POST("/projects/:projectID/issues/:issueID/comments", commentHandler.CreateComment)
	secured.GET("/projects/:projectID/issues/:issueID/comments/:commentID", commentHandler.GetComment)
	secured.PUT("/projects/:projectID/issues/:issueID/comments/:commentID", commentHandler.UpdateComment)
	secured.DELETE("/projects/:projectID/issues/:issueID/comments/:commentID", commentHandler.DeleteComment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
