// file: internals/features/academics/enrollments/service/enroll.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "tahfizku_backend/internals/features/academics/courses/model"
	"tahfizku_backend/internals/features/academics/enrollments/model"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseInactive   = errors.New("course is not active")
	ErrCourseFull       = errors.New("course is at capacity")
	ErrAlreadyEnrolled  = errors.New("student already enrolled")
	ErrEnrollmentAbsent = errors.New("enrollment not found")
)

// EnrollStudent enrolls a student into a course inside the given transaction.
// The course row is locked so the capacity check and the write cannot race
// with a concurrent enrollment.
func EnrollStudent(tx *gorm.DB, studentID, courseID uuid.UUID) (*model.EnrollmentModel, error) {
	var course courseModel.CourseModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if !course.CourseIsActive {
		return nil, ErrCourseInactive
	}

	var existing model.EnrollmentModel
	err := tx.First(&existing,
		"enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).Error
	switch {
	case err == nil:
		if existing.EnrollmentIsActive {
			return nil, ErrAlreadyEnrolled
		}
		// Reactivating still consumes a seat.
		if err := checkCapacity(tx, &course); err != nil {
			return nil, err
		}
		updates := map[string]interface{}{
			"enrollment_is_active":   true,
			"enrollment_enrolled_at": time.Now(),
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := checkCapacity(tx, &course); err != nil {
			return nil, err
		}
		row := model.EnrollmentModel{
			EnrollmentStudentID:  studentID,
			EnrollmentCourseID:   courseID,
			EnrollmentIsActive:   true,
			EnrollmentEnrolledAt: time.Now(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	default:
		return nil, err
	}
}

// DeactivateEnrollment cancels an active enrollment without deleting the row.
func DeactivateEnrollment(tx *gorm.DB, studentID, courseID uuid.UUID) error {
	res := tx.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_is_active = TRUE",
			studentID, courseID).
		Update("enrollment_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEnrollmentAbsent
	}
	return nil
}

func checkCapacity(tx *gorm.DB, course *courseModel.CourseModel) error {
	n, err := CountActiveEnrollments(tx, course.CourseID)
	if err != nil {
		return err
	}
	if !HasCapacity(n, course.CourseMaxStudents) {
		return ErrCourseFull
	}
	return nil
}

// StatusForEnrollError maps enrollment errors onto HTTP status codes so the
// controllers stay thin.
func StatusForEnrollError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return fiber.StatusNotFound, "Course not found"
	case errors.Is(err, ErrCourseInactive):
		return fiber.StatusUnprocessableEntity, "Course is not active"
	case errors.Is(err, ErrCourseFull):
		return fiber.StatusConflict, "Course is at capacity"
	case errors.Is(err, ErrAlreadyEnrolled):
		return fiber.StatusConflict, "Student already enrolled in this course"
	case errors.Is(err, ErrEnrollmentAbsent):
		return fiber.StatusNotFound, "Active enrollment not found"
	default:
		return fiber.StatusInternalServerError, "Failed to process enrollment"
	}
}
