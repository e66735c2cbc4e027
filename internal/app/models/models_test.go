package models

import "testing"

func TestAttendanceStatusValid(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{AttendancePresent, true},
		{AttendanceAbsent, true},
		{AttendanceLate, true},
		{AttendanceStatus(""), false},
		{AttendanceStatus("Present"), false},
		{AttendanceStatus("vanished"), false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("AttendanceStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRoleTypeValid(t *testing.T) {
	tests := []struct {
		role RoleType
		want bool
	}{
		{RoleAdmin, true},
		{RoleTeacher, true},
		{RoleType(""), false},
		{RoleType("student"), false},
	}
	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("RoleType(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestFullName(t *testing.T) {
	teacher := &Teacher{FirstName: "Aziz", LastName: "Karimov"}
	if got := teacher.FullName(); got != "Aziz Karimov" {
		t.Errorf("Teacher.FullName() = %q, want %q", got, "Aziz Karimov")
	}

	student := &Student{FirstName: "Laylo", LastName: "Tosheva"}
	if got := student.FullName(); got != "Laylo Tosheva" {
		t.Errorf("Student.FullName() = %q, want %q", got, "Laylo Tosheva")
	}
}
