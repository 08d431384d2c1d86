// file: internals/features/grades/report/service/collect.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectRawSums pulls the five per-category raw sums for one
// (student, course) pair. Missing rows contribute zero via COALESCE, so a
// brand-new student aggregates to zero rather than erroring.
func CollectRawSums(db *gorm.DB, studentID, courseID uuid.UUID) (RawSums, error) {
	var raw RawSums

	err := db.Raw(`
		SELECT
			COALESCE((SELECT SUM(daily_grade_memorization + daily_grade_review)
				FROM daily_grades
				WHERE daily_grade_student_id = @student AND daily_grade_course_id = @course), 0) AS daily,
			COALESCE((SELECT SUM(weekly_grade_value)
				FROM weekly_grades
				WHERE weekly_grade_student_id = @student AND weekly_grade_course_id = @course), 0) AS weekly,
			COALESCE((SELECT SUM(monthly_grade_quran_forgetfulness + monthly_grade_quran_major_mistakes
					+ monthly_grade_quran_minor_mistakes + monthly_grade_tajweed_theory)
				FROM monthly_grades
				WHERE monthly_grade_student_id = @student AND monthly_grade_course_id = @course), 0) AS monthly,
			COALESCE((SELECT SUM(behavior_grade_daily_score)
				FROM behavior_grades
				WHERE behavior_grade_student_id = @student AND behavior_grade_course_id = @course), 0) AS behavior,
			COALESCE((SELECT SUM(final_exam_quran_test + final_exam_tajweed_test)
				FROM final_exams
				WHERE final_exam_student_id = @student AND final_exam_course_id = @course), 0) AS final
	`, map[string]interface{}{"student": studentID, "course": courseID}).Scan(&raw).Error

	return raw, err
}
