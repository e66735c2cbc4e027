package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student, optionally linked to existing groups and teachers
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid student data", err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, student)
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves a list of all students
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student by its ID
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, student)
}

// GetStudentGroups retrieves the groups a student belongs to
// @Summary Get a student's groups
// @Description Retrieves the groups a student belongs to
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Group} "Groups retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/groups [get]
func (c *StudentController) GetStudentGroups(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	groups, err := c.studentService.GetStudentGroups(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, groups)
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Description Updates a student; omitted fields keep their current values, omitted id lists keep the current associations
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid student data", err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, student)
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student by its ID
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
