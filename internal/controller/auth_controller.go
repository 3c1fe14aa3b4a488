package controller

import (
	"errors"
	"strings"
	"unicode/utf8"

	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
	IsRelease   bool
}

func NewAuthController(authService *service.AuthService, userService *service.UserService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
		IsRelease:   isRelease,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, user)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate and start a session
// @Description Verifies credentials and sets the HTTP-only session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.SetSessionCookie(ctx, token, c.IsRelease)
	util.Success(ctx, gin.H{"user": user})
}

// Logout godoc
// @Summary End the session
// @Description Clears the session cookie. Stateless tokens cannot be revoked
// @Description server-side; the cookie removal is the whole operation.
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.ClearSessionCookie(ctx, c.IsRelease)
	util.Success(ctx, gin.H{"message": "Logout successful"})
}

// Session godoc
// @Summary Return the identity behind the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	token, err := ctx.Cookie(util.SessionCookieName)
	if err != nil || token == "" {
		util.Unauthorized(ctx, "Not authenticated")
		return
	}

	claims, err := util.ParseSessionToken(token, c.AuthService.Cfg.JWTSecret())
	if err != nil {
		util.Unauthorized(ctx, "Invalid or expired token")
		return
	}

	util.Success(ctx, gin.H{"user": gin.H{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"name":  claims.Name,
	}})
}

// Profile godoc
// @Summary Current user profile with progress totals
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Unauthorized(ctx, "User no longer exists")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

const maxDisplayNameLength = 50

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// UpdateProfile godoc
// @Summary Update the current user's display name
// @Description The session user must match the userId in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProfileRequest true "profile payload"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/user/update-profile [post]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	// A user can only edit their own profile.
	if claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		util.BadRequest(ctx, "Name must not be empty")
		return
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		util.BadRequest(ctx, "Name must be 50 characters or fewer")
		return
	}

	user, err := c.UserService.UpdateName(claims.UserID, name)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Unauthorized(ctx, "User no longer exists")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user})
}
