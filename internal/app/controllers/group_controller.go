package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// GroupController handles group-related operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// CreateGroup handles group creation
// @Summary Create a new group
// @Description Creates a new group with its lesson schedule, optionally linked to a subject and to existing teachers and students
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group information"
// @Success 201 {object} dto.APIResponse{data=models.Group} "Group created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid group data", err)
		return
	}

	group, err := c.groupService.CreateGroup(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, group)
}

// GetAllGroups retrieves all groups
// @Summary Get all groups
// @Description Retrieves a list of all groups
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Group} "Groups retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [get]
func (c *GroupController) GetAllGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetAllGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, groups)
}

// GetGroupByID retrieves a group by ID
// @Summary Get group details
// @Description Retrieves a group by its ID
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Group} "Group retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid group ID format"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (c *GroupController) GetGroupByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Group")
	if !ok {
		return
	}

	group, err := c.groupService.GetGroupByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, group)
}

// GetGroupStudents retrieves the students assigned to a group
// @Summary Get a group's students
// @Description Retrieves the students assigned to a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id}/students [get]
func (c *GroupController) GetGroupStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Group")
	if !ok {
		return
	}

	students, err := c.groupService.GetGroupStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, students)
}

// GetGroupTeachers retrieves the teachers assigned to a group
// @Summary Get a group's teachers
// @Description Retrieves the teachers assigned to a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id}/teachers [get]
func (c *GroupController) GetGroupTeachers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Group")
	if !ok {
		return
	}

	teachers, err := c.groupService.GetGroupTeachers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, teachers)
}

// UpdateGroup updates an existing group
// @Summary Update a group
// @Description Updates a group; omitted fields keep their current values, omitted id lists keep the current associations
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Param request body dto.UpdateGroupRequest true "Updated group information"
// @Success 200 {object} dto.APIResponse{data=models.Group} "Group updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Group")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid group data", err)
		return
	}

	group, err := c.groupService.UpdateGroup(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete a group
// @Description Deletes a group by its ID
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Group deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid group ID format"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Group")
	if !ok {
		return
	}

	if err := c.groupService.DeleteGroup(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Group deleted successfully"})
}
