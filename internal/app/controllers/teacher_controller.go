package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher, optionally linked to a subject and to existing groups and students
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid teacher data", err)
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, teacher)
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Description Retrieves a list of all teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, teachers)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Description Retrieves a teacher by its ID
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID format"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Teacher")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, teacher)
}

// GetTeacherGroups retrieves the groups assigned to a teacher
// @Summary Get a teacher's groups
// @Description Retrieves the groups assigned to a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Group} "Groups retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/groups [get]
func (c *TeacherController) GetTeacherGroups(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Teacher")
	if !ok {
		return
	}

	groups, err := c.teacherService.GetTeacherGroups(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, groups)
}

// GetTeacherStudents retrieves the students assigned to a teacher
// @Summary Get a teacher's students
// @Description Retrieves the students assigned to a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/students [get]
func (c *TeacherController) GetTeacherStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Teacher")
	if !ok {
		return
	}

	students, err := c.teacherService.GetTeacherStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, students)
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Updates a teacher; omitted fields keep their current values, omitted id lists keep the current associations
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTeacherRequest true "Updated teacher information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Teacher")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid teacher data", err)
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, teacher)
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes a teacher by its ID
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID format"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Teacher")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Teacher deleted successfully"})
}
