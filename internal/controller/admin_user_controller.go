package controller

import (
	"errors"

	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminUserController struct {
	UserService *service.UserService
}

func NewAdminUserController(userService *service.UserService) *AdminUserController {
	return &AdminUserController{UserService: userService}
}

func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	skip, take := pagination(ctx)

	users, total, err := c.UserService.ListUsers(skip, take)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Skip:  skip,
		Take:  take,
	})
}

type UpdateRoleRequest struct {
	Role model.UserRole `json:"role" binding:"required,oneof=USER ADMIN"`
}

func (c *AdminUserController) UpdateUserRole(ctx *gin.Context) {
	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Admins cannot demote themselves; it would lock everyone out when the
	// last admin does it.
	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == ctx.Param("userId") && req.Role != model.RoleAdmin {
		util.BadRequest(ctx, "cannot change your own role")
		return
	}

	user, err := c.UserService.UpdateRole(ctx.Param("userId"), req.Role)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

func (c *AdminUserController) DeleteUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == ctx.Param("userId") {
		util.BadRequest(ctx, "cannot delete your own account")
		return
	}

	if err := c.UserService.DeleteUser(ctx.Param("userId")); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

type PromoteRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Secret string `json:"secret" binding:"required"`
}

// Promote godoc
// @Summary Promote a user to ADMIN with the bootstrap secret
// @Description Guarded by a shared secret instead of a session so the first
// @Description admin can be created on a fresh deployment.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body PromoteRequest true "promotion payload"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/promote [post]
func (c *AdminUserController) Promote(ctx *gin.Context) {
	var req PromoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.PromoteByEmail(req.Email, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidSecret):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}
