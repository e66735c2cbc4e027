package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// UserController handles user account operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers retrieves all user accounts
// @Summary Get all users
// @Description Retrieves a list of all user accounts
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, users)
}

// GetUserByID retrieves a user account by ID
// @Summary Get user details
// @Description Retrieves a user account by its ID
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "User")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, user)
}

// UpdateUser updates a user account
// @Summary Update a user
// @Description Updates a user's username and/or password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUserRequest true "Updated account information"
// @Success 200 {object} dto.APIResponse{data=models.User} "User updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Username already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "User")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid user data", err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, user)
}

// DeleteUser deletes a user account
// @Summary Delete a user
// @Description Deletes a user account by its ID
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "User")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "User deleted successfully"})
}
