// file: internals/features/academics/access/service/access_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "tahfizku_backend/internals/features/academics/courses/model"
	enrollModel "tahfizku_backend/internals/features/academics/enrollments/model"
	"tahfizku_backend/internals/constants"
)

// DecideCourseOwnership is the pure ownership rule shared by every course
// operation. Admins pass unconditionally, teachers pass only when the course
// is assigned to them, students never pass. An unassigned course (nil teacher)
// denies every teacher.
func DecideCourseOwnership(role string, userID uuid.UUID, courseTeacherID *uuid.UUID) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleTeacher:
		return courseTeacherID != nil && *courseTeacherID == userID
	default:
		return false
	}
}

// CheckCourseOwnership loads the course and applies DecideCourseOwnership.
// Any lookup failure denies access; callers must treat false as 403.
func CheckCourseOwnership(db *gorm.DB, userID uuid.UUID, role string, courseID uuid.UUID) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if role != constants.RoleTeacher {
		return false
	}

	var course courseModel.CourseModel
	if err := db.Select("course_id", "course_teacher_id").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		return false
	}
	return DecideCourseOwnership(role, userID, course.CourseTeacherID)
}

// CheckStudentEnrollment reports whether the student has an active enrollment
// in the course. Lookup failures deny.
func CheckStudentEnrollment(db *gorm.DB, studentID, courseID uuid.UUID) bool {
	var exists bool
	err := db.Raw(`
		SELECT EXISTS (
			SELECT 1 FROM enrollments
			WHERE enrollment_student_id = ?
			  AND enrollment_course_id = ?
			  AND enrollment_is_active = TRUE
			  AND enrollment_deleted_at IS NULL
		)`, studentID, courseID).Scan(&exists).Error
	if err != nil {
		return false
	}
	return exists
}

// GetUserCourses returns the courses visible to the caller: all courses for
// admins, owned courses for teachers, actively-enrolled courses for students
// (via their student profile).
func GetUserCourses(db *gorm.DB, userID uuid.UUID, role string) ([]courseModel.CourseModel, error) {
	var rows []courseModel.CourseModel

	switch role {
	case constants.RoleAdmin:
		if err := db.Order("course_created_at DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
	case constants.RoleTeacher:
		if err := db.Where("course_teacher_id = ?", userID).
			Order("course_created_at DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
	case constants.RoleStudent:
		studentID, err := StudentIDForUser(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []courseModel.CourseModel{}, nil
			}
			return nil, err
		}
		sub := db.Model(&enrollModel.EnrollmentModel{}).
			Select("enrollment_course_id").
			Where("enrollment_student_id = ? AND enrollment_is_active = TRUE", studentID)
		if err := db.Where("course_id IN (?)", sub).
			Order("course_created_at DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
	default:
		return []courseModel.CourseModel{}, nil
	}

	return rows, nil
}

// StudentIDForUser resolves the student profile linked to a user account.
func StudentIDForUser(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var studentID uuid.UUID
	err := db.Raw(`
		SELECT student_id FROM students
		WHERE student_user_id = ? AND student_deleted_at IS NULL
		LIMIT 1`, userID).Scan(&studentID).Error
	if err != nil {
		return uuid.Nil, err
	}
	if studentID == uuid.Nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return studentID, nil
}
