package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SubjectRepository    *SubjectRepository
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	GroupRepository      *GroupRepository
	PaymentRepository    *PaymentRepository
	AttendanceRepository *AttendanceRepository
	AdminRepository      *AdminRepository
	UserRepository       *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SubjectRepository:    NewSubjectRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		StudentRepository:    NewStudentRepository(db),
		GroupRepository:      NewGroupRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		AdminRepository:      NewAdminRepository(db),
		UserRepository:       NewUserRepository(db),
	}
}
