// file: internals/features/academics/enrollments/service/capacity.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/enrollments/model"
)

// HasCapacity is the pure capacity rule: maxStudents == 0 means unlimited,
// otherwise the active count must stay below the limit.
func HasCapacity(activeCount int64, maxStudents int) bool {
	if maxStudents <= 0 {
		return true
	}
	return activeCount < int64(maxStudents)
}

// CountActiveEnrollments counts active enrollments for a course. Intended to
// run inside the enrolling transaction so the capacity check and the insert
// see the same snapshot.
func CountActiveEnrollments(tx *gorm.DB, courseID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.EnrollmentModel{}).
		Where("enrollment_course_id = ? AND enrollment_is_active = TRUE", courseID).
		Count(&n).Error
	return n, err
}
