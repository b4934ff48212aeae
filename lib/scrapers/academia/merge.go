package academia

// Merge combines the three parsed sections into one StudentRecord. Pure
// and deterministic: identical inputs yield identical records, no I/O.
func Merge(info StudentInfo, attendance AttendanceReport, marks map[string]CourseMarks) StudentRecord {
	if attendance.Courses == nil {
		attendance.Courses = map[string]CourseAttendance{}
	}
	if marks == nil {
		marks = map[string]CourseMarks{}
	}
	return StudentRecord{
		StudentInfo: info,
		Attendance:  attendance,
		Marks:       marks,
		Summary:     Summary{},
	}
}
