package authController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authModel "github.com/plateful/recipe-box/internal/models/auth"
	"github.com/plateful/recipe-box/internal/services/identity"
	"github.com/plateful/recipe-box/internal/services/session"
	"github.com/plateful/recipe-box/pkg/tools/parseErrors"
)

type Controller struct {
	sessions *session.Store
}

// New creates a pointer to a Controller
func New(sessions *session.Store) *Controller {
	return &Controller{
		sessions: sessions,
	}
}

// Signup handles the request to create a new account
func (c *Controller) Signup(ctx *gin.Context) {
	var req authModel.SignupRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	sess, err := c.sessions.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(authErr))
			return
		}
		// Account exists but the profile write failed. The sign-up is not
		// rolled back, so the failure has to surface.
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	ctx.JSON(http.StatusOK, sessionResponse(sess))
}

// Login handles the request to authenticate an existing account
func (c *Controller) Login(ctx *gin.Context) {
	var req authModel.LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	sess, err := c.sessions.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(authErr))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	ctx.JSON(http.StatusOK, sessionResponse(sess))
}

// Logout handles the request to end the current session
func (c *Controller) Logout(ctx *gin.Context) {
	if err := c.sessions.SignOut(ctx); err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(authErr))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.GenericErrorResponse())
		return
	}

	ctx.JSON(http.StatusOK, "ok")
}

func sessionResponse(sess identity.Session) authModel.SessionResponse {
	return authModel.SessionResponse{
		UserID:      sess.Identity.UserID,
		Email:       sess.Identity.Email,
		AccessToken: sess.AccessToken,
		ExpiresAt:   sess.ExpiresAt,
	}
}
