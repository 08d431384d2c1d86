// file: internals/features/academics/access/service/access_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"tahfizku_backend/internals/constants"
)

func TestDecideCourseOwnershipAdminAlwaysAllowed(t *testing.T) {
	admin := uuid.New()
	other := uuid.New()

	if !DecideCourseOwnership(constants.RoleAdmin, admin, &other) {
		t.Fatal("admin must pass for a course owned by someone else")
	}
	if !DecideCourseOwnership(constants.RoleAdmin, admin, nil) {
		t.Fatal("admin must pass for an unassigned course")
	}
}

func TestDecideCourseOwnershipTeacherOwnCourseOnly(t *testing.T) {
	teacher := uuid.New()
	other := uuid.New()

	if !DecideCourseOwnership(constants.RoleTeacher, teacher, &teacher) {
		t.Fatal("teacher must pass for their own course")
	}
	if DecideCourseOwnership(constants.RoleTeacher, teacher, &other) {
		t.Fatal("teacher must be denied for another teacher's course")
	}
	if DecideCourseOwnership(constants.RoleTeacher, teacher, nil) {
		t.Fatal("teacher must be denied for an unassigned course")
	}
}

func TestDecideCourseOwnershipStudentAlwaysDenied(t *testing.T) {
	student := uuid.New()

	if DecideCourseOwnership(constants.RoleStudent, student, &student) {
		t.Fatal("students never own courses, even when IDs collide")
	}
	if DecideCourseOwnership("", student, &student) {
		t.Fatal("unknown role must be denied")
	}
	if DecideCourseOwnership("superadmin", student, &student) {
		t.Fatal("unrecognized role strings must be denied")
	}
}
