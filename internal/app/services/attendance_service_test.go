package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// fakeAttendanceStore is an in-memory AttendanceStore for service tests.
type fakeAttendanceStore struct {
	teachers map[int64]*models.Teacher
	groups   map[int64]*models.Group
	subjects map[int64]*models.Subject
	students map[int64]*models.Student

	groupTeachers map[[2]int64]bool // [groupID, teacherID]
	groupStudents map[[2]int64]bool // [studentID, groupID]

	created        []*models.Attendance
	createBatchErr error
}

func newFakeStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{
		teachers:      map[int64]*models.Teacher{},
		groups:        map[int64]*models.Group{},
		subjects:      map[int64]*models.Subject{},
		students:      map[int64]*models.Student{},
		groupTeachers: map[[2]int64]bool{},
		groupStudents: map[[2]int64]bool{},
	}
}

func (f *fakeAttendanceStore) FindTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	return f.teachers[id], nil
}

func (f *fakeAttendanceStore) FindGroupByID(_ context.Context, id int64) (*models.Group, error) {
	return f.groups[id], nil
}

func (f *fakeAttendanceStore) FindSubjectByID(_ context.Context, id int64) (*models.Subject, error) {
	return f.subjects[id], nil
}

func (f *fakeAttendanceStore) FindStudentByID(_ context.Context, id int64) (*models.Student, error) {
	return f.students[id], nil
}

func (f *fakeAttendanceStore) IsGroupAssignedToTeacher(_ context.Context, groupID, teacherID int64) (bool, error) {
	return f.groupTeachers[[2]int64{groupID, teacherID}], nil
}

func (f *fakeAttendanceStore) IsStudentInGroup(_ context.Context, studentID, groupID int64) (bool, error) {
	return f.groupStudents[[2]int64{studentID, groupID}], nil
}

func (f *fakeAttendanceStore) CreateBatch(_ context.Context, records []*models.Attendance) error {
	if f.createBatchErr != nil {
		return f.createBatchErr
	}
	f.created = append(f.created, records...)
	return nil
}

func (f *fakeAttendanceStore) GetByID(_ context.Context, id int64) (*models.Attendance, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) GetAll(_ context.Context) ([]*models.Attendance, error) {
	return f.created, nil
}

func (f *fakeAttendanceStore) Update(_ context.Context, _ *models.Attendance) error { return nil }

func (f *fakeAttendanceStore) Delete(_ context.Context, _ int64) error { return nil }

func int64Ptr(v int64) *int64 { return &v }

// populateSchoolGraph sets up one teacher (1) assigned to subject Math (10)
// and group Math-A1 (2), with students 3 and 4 in the group. Student 5 exists
// but is not a group member.
func populateSchoolGraph(f *fakeAttendanceStore) {
	f.subjects[10] = &models.Subject{ID: 10, Name: "Math"}
	f.teachers[1] = &models.Teacher{ID: 1, FirstName: "Aziz", LastName: "Karimov", SubjectID: int64Ptr(10)}
	f.groups[2] = &models.Group{
		ID:         2,
		Name:       "Math-A1",
		LessonTime: "15:00",
		LessonDays: []string{"monday", "thursday"},
		SubjectID:  int64Ptr(10),
	}
	f.students[3] = &models.Student{ID: 3, FirstName: "Laylo", LastName: "Tosheva"}
	f.students[4] = &models.Student{ID: 4, FirstName: "Bobur", LastName: "Aliyev"}
	f.students[5] = &models.Student{ID: 5, FirstName: "Nilufar", LastName: "Usmonova"}
	f.groupTeachers[[2]int64{2, 1}] = true
	f.groupStudents[[2]int64{3, 2}] = true
	f.groupStudents[[2]int64{4, 2}] = true
}

func newTestService(store AttendanceStore, strict bool, now time.Time) *attendanceServiceImpl {
	svc := NewAttendanceService(store, strict).(*attendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecordBatch(t *testing.T) {
	now := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)

	validReq := func() *dto.RecordAttendanceRequest {
		return &dto.RecordAttendanceRequest{
			TeacherID: 1,
			GroupID:   2,
			Attendance: []dto.AttendanceMark{
				{StudentID: 3, Status: models.AttendancePresent},
				{StudentID: 4, Status: models.AttendanceLate},
			},
		}
	}

	tests := []struct {
		name    string
		setup   func(f *fakeAttendanceStore)
		req     *dto.RecordAttendanceRequest
		wantErr error
	}{
		{
			name: "unknown teacher",
			req: &dto.RecordAttendanceRequest{
				TeacherID:  99,
				GroupID:    2,
				Attendance: []dto.AttendanceMark{{StudentID: 3, Status: models.AttendancePresent}},
			},
			wantErr: apperrors.ErrTeacherNotFound,
		},
		{
			name: "unknown group",
			req: &dto.RecordAttendanceRequest{
				TeacherID:  1,
				GroupID:    99,
				Attendance: []dto.AttendanceMark{{StudentID: 3, Status: models.AttendancePresent}},
			},
			wantErr: apperrors.ErrGroupNotFound,
		},
		{
			name: "group not assigned to teacher",
			setup: func(f *fakeAttendanceStore) {
				delete(f.groupTeachers, [2]int64{2, 1})
			},
			req:     validReq(),
			wantErr: apperrors.ErrGroupNotAssignedToTeacher,
		},
		{
			name: "group has no subject",
			setup: func(f *fakeAttendanceStore) {
				f.groups[2].SubjectID = nil
			},
			req:     validReq(),
			wantErr: apperrors.ErrSubjectNotFound,
		},
		{
			name: "group subject does not exist",
			setup: func(f *fakeAttendanceStore) {
				f.groups[2].SubjectID = int64Ptr(77)
			},
			req:     validReq(),
			wantErr: apperrors.ErrSubjectNotFound,
		},
		{
			name: "teacher has no subject",
			setup: func(f *fakeAttendanceStore) {
				f.teachers[1].SubjectID = nil
			},
			req:     validReq(),
			wantErr: apperrors.ErrSubjectMismatch,
		},
		{
			name: "teacher teaches a different subject",
			setup: func(f *fakeAttendanceStore) {
				f.subjects[11] = &models.Subject{ID: 11, Name: "English"}
				f.teachers[1].SubjectID = int64Ptr(11)
			},
			req:     validReq(),
			wantErr: apperrors.ErrSubjectMismatch,
		},
		{
			name: "unknown status",
			req: &dto.RecordAttendanceRequest{
				TeacherID:  1,
				GroupID:    2,
				Attendance: []dto.AttendanceMark{{StudentID: 3, Status: "vanished"}},
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "unknown student",
			req: &dto.RecordAttendanceRequest{
				TeacherID:  1,
				GroupID:    2,
				Attendance: []dto.AttendanceMark{{StudentID: 99, Status: models.AttendancePresent}},
			},
			wantErr: apperrors.ErrStudentNotFound,
		},
		{
			name: "student not in group",
			req: &dto.RecordAttendanceRequest{
				TeacherID:  1,
				GroupID:    2,
				Attendance: []dto.AttendanceMark{{StudentID: 5, Status: models.AttendancePresent}},
			},
			wantErr: apperrors.ErrStudentNotInGroup,
		},
		{
			name: "duplicate batch for the day",
			setup: func(f *fakeAttendanceStore) {
				f.createBatchErr = apperrors.ErrDuplicateAttendance
			},
			req:     validReq(),
			wantErr: apperrors.ErrDuplicateAttendance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			populateSchoolGraph(store)
			if tt.setup != nil {
				tt.setup(store)
			}
			svc := newTestService(store, true, now)

			_, err := svc.RecordBatch(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RecordBatch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(store.created) != 0 {
				t.Errorf("RecordBatch() wrote %d records, want 0", len(store.created))
			}
		})
	}
}

func TestRecordBatchSuccess(t *testing.T) {
	now := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)
	store := newFakeStore()
	populateSchoolGraph(store)
	svc := newTestService(store, true, now)

	summary, err := svc.RecordBatch(context.Background(), &dto.RecordAttendanceRequest{
		TeacherID: 1,
		GroupID:   2,
		Attendance: []dto.AttendanceMark{
			{StudentID: 3, Status: models.AttendancePresent},
			{StudentID: 4, Status: models.AttendanceLate},
		},
	})
	if err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}

	if summary.TeacherName != "Aziz Karimov" {
		t.Errorf("TeacherName = %q, want %q", summary.TeacherName, "Aziz Karimov")
	}
	if summary.GroupName != "Math-A1" {
		t.Errorf("GroupName = %q, want %q", summary.GroupName, "Math-A1")
	}
	if summary.SubjectName != "Math" {
		t.Errorf("SubjectName = %q, want %q", summary.SubjectName, "Math")
	}
	if summary.Date != "2024-03-01" {
		t.Errorf("Date = %q, want %q", summary.Date, "2024-03-01")
	}
	if summary.LessonTime != "15:00" {
		t.Errorf("LessonTime = %q, want %q", summary.LessonTime, "15:00")
	}
	if len(summary.Students) != 2 {
		t.Fatalf("len(Students) = %d, want 2", len(summary.Students))
	}
	if summary.Students[0].StudentName != "Laylo Tosheva" || summary.Students[0].Status != models.AttendancePresent {
		t.Errorf("Students[0] = %+v, want Laylo Tosheva present", summary.Students[0])
	}
	if summary.Students[1].StudentName != "Bobur Aliyev" || summary.Students[1].Status != models.AttendanceLate {
		t.Errorf("Students[1] = %+v, want Bobur Aliyev late", summary.Students[1])
	}

	if len(store.created) != 2 {
		t.Fatalf("wrote %d records, want 2", len(store.created))
	}
	wantDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, rec := range store.created {
		if rec.TeacherID != 1 || rec.GroupID != 2 || rec.SubjectID != 10 {
			t.Errorf("record %d has wrong foreign keys: %+v", i, rec)
		}
		if !rec.Date.Equal(wantDate) {
			t.Errorf("record %d date = %v, want %v", i, rec.Date, wantDate)
		}
	}
	if store.created[0].StudentID != 3 || store.created[1].StudentID != 4 {
		t.Errorf("records out of submission order: %d, %d",
			store.created[0].StudentID, store.created[1].StudentID)
	}
}

func TestRecordBatchLenientSkipsUnknownStudents(t *testing.T) {
	now := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)
	store := newFakeStore()
	populateSchoolGraph(store)
	svc := newTestService(store, false, now)

	summary, err := svc.RecordBatch(context.Background(), &dto.RecordAttendanceRequest{
		TeacherID: 1,
		GroupID:   2,
		Attendance: []dto.AttendanceMark{
			{StudentID: 99, Status: models.AttendanceAbsent},
			{StudentID: 3, Status: models.AttendancePresent},
		},
	})
	if err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}
	if len(summary.Students) != 1 {
		t.Fatalf("len(Students) = %d, want 1", len(summary.Students))
	}
	if summary.Students[0].StudentName != "Laylo Tosheva" {
		t.Errorf("Students[0].StudentName = %q, want %q", summary.Students[0].StudentName, "Laylo Tosheva")
	}
	if len(store.created) != 1 {
		t.Errorf("wrote %d records, want 1", len(store.created))
	}
}

func TestRecordBatchLenientAllUnknownWritesNothing(t *testing.T) {
	now := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)
	store := newFakeStore()
	populateSchoolGraph(store)
	store.createBatchErr = errors.New("CreateBatch must not be called for an empty batch")
	svc := newTestService(store, false, now)

	summary, err := svc.RecordBatch(context.Background(), &dto.RecordAttendanceRequest{
		TeacherID:  1,
		GroupID:    2,
		Attendance: []dto.AttendanceMark{{StudentID: 99, Status: models.AttendanceAbsent}},
	})
	if err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}
	if len(summary.Students) != 0 {
		t.Errorf("len(Students) = %d, want 0", len(summary.Students))
	}
}

func TestUpdateAttendance(t *testing.T) {
	now := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)
	late := models.AttendanceLate
	badStatus := models.AttendanceStatus("vanished")
	newDate := "2024-03-04"
	badDate := "04-03-2024"

	tests := []struct {
		name    string
		id      int64
		req     *dto.UpdateAttendanceRequest
		wantErr error
	}{
		{name: "unknown record", id: 99, req: &dto.UpdateAttendanceRequest{Status: &late}, wantErr: apperrors.ErrAttendanceNotFound},
		{name: "invalid id", id: 0, req: &dto.UpdateAttendanceRequest{Status: &late}, wantErr: apperrors.ErrValidationFailed},
		{name: "invalid status", id: 7, req: &dto.UpdateAttendanceRequest{Status: &badStatus}, wantErr: apperrors.ErrValidationFailed},
		{name: "invalid date", id: 7, req: &dto.UpdateAttendanceRequest{Date: &badDate}, wantErr: apperrors.ErrValidationFailed},
		{name: "status and date", id: 7, req: &dto.UpdateAttendanceRequest{Status: &late, Date: &newDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.created = []*models.Attendance{{
				ID: 7, TeacherID: 1, StudentID: 3, GroupID: 2, SubjectID: 10,
				Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Status: models.AttendancePresent,
			}}
			svc := newTestService(store, true, now)

			record, err := svc.UpdateAttendance(context.Background(), tt.id, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateAttendance() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if record.Status != models.AttendanceLate {
				t.Errorf("Status = %q, want %q", record.Status, models.AttendanceLate)
			}
			if got := record.Date.Format("2006-01-02"); got != newDate {
				t.Errorf("Date = %q, want %q", got, newDate)
			}
		})
	}
}
