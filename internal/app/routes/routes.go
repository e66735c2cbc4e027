package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/controllers"
	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	subjectController *controllers.SubjectController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	groupController *controllers.GroupController,
	attendanceController *controllers.AttendanceController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:id", subjectController.GetSubjectByID)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PUT("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.GetAllTeachers)
			teachers.GET("/:id", teacherController.GetTeacherByID)
			teachers.GET("/:id/groups", teacherController.GetTeacherGroups)
			teachers.GET("/:id/students", teacherController.GetTeacherStudents)
			teachers.POST("", teacherController.CreateTeacher)
			teachers.PUT("/:id", teacherController.UpdateTeacher)
			teachers.DELETE("/:id", teacherController.DeleteTeacher)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/:id/groups", studentController.GetStudentGroups)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		groups := authenticated.Group("/groups")
		{
			groups.GET("", groupController.GetAllGroups)
			groups.GET("/:id", groupController.GetGroupByID)
			groups.GET("/:id/students", groupController.GetGroupStudents)
			groups.GET("/:id/teachers", groupController.GetGroupTeachers)
			groups.POST("", groupController.CreateGroup)
			groups.PUT("/:id", groupController.UpdateGroup)
			groups.DELETE("/:id", groupController.DeleteGroup)
		}

		// Attendance recording is open to both roles; the service checks the
		// teacher-group assignment itself
		attendances := authenticated.Group("/attendances")
		{
			attendances.POST("", attendanceController.RecordAttendance)
			attendances.GET("", attendanceController.GetAllAttendances)
			attendances.GET("/:id", attendanceController.GetAttendanceByID)
			attendances.PUT("/:id", attendanceController.UpdateAttendance)
			attendances.DELETE("/:id", attendanceController.DeleteAttendance)
		}

		payments := authenticated.Group("/payments")
		{
			payments.GET("", paymentController.GetAllPayments)
			payments.GET("/:id", paymentController.GetPaymentByID)
			payments.POST("", paymentController.CreatePayment)
			payments.PUT("/:id", paymentController.UpdatePayment)
			payments.DELETE("/:id", paymentController.DeletePayment)
		}

		// Admin-only routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admins := adminProtected.Group("/admins")
			{
				admins.GET("", adminController.GetAllAdmins)
				admins.GET("/:id", adminController.GetAdminByID)
				admins.POST("", adminController.CreateAdmin)
				admins.PUT("/:id", adminController.UpdateAdmin)
				admins.DELETE("/:id", adminController.DeleteAdmin)
			}

			users := adminProtected.Group("/users")
			{
				users.GET("", userController.GetAllUsers)
				users.GET("/:id", userController.GetUserByID)
				users.PUT("/:id", userController.UpdateUser)
				users.DELETE("/:id", userController.DeleteUser)
			}
		}
	}
}
