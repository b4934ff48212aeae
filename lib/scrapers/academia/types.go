package academia

// Credentials are supplied externally, used once to establish a session
// and never persisted or logged.
type Credentials struct {
	Identifier string
	Secret     string
}

type StudentInfo struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	Program            string `json:"program"`
	Department         string `json:"department"`
	Specialization     string `json:"specialization"`
	Semester           string `json:"semester"`
	Feedback           string `json:"feedback"`
	PhotoUrl           string `json:"photo_url"`
	EnrollmentStatus   string `json:"enrollment_status"`
	EnrollmentDate     string `json:"enrollment_date"`
}

type CourseAttendance struct {
	CourseTitle          string  `json:"course_title"`
	Category             string  `json:"category"`
	FacultyName          string  `json:"faculty_name"`
	Slot                 string  `json:"slot"`
	RoomNo               string  `json:"room_no"`
	HoursConducted       int     `json:"hours_conducted"`
	HoursAbsent          int     `json:"hours_absent"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type AttendanceReport struct {
	// keyed by course code, uniqueness is guaranteed by the portal's
	// course listing
	Courses             map[string]CourseAttendance `json:"courses"`
	OverallAttendance   float64                     `json:"overall_attendance"`
	TotalHoursConducted int                         `json:"total_hours_conducted"`
	TotalHoursAbsent    int                         `json:"total_hours_absent"`
}

type TestScore struct {
	TestName      string  `json:"test_name"`
	ObtainedMarks float64 `json:"obtained_marks"`
	MaxMarks      float64 `json:"max_marks"`
	Percentage    float64 `json:"percentage"`
}

type CourseMarks struct {
	CourseType string `json:"course_type"`
	// zero recorded tests still yields an empty list, never an absent
	// course entry
	Tests []TestScore `json:"tests"`
}

// Summary is reserved for cross-cutting computation that does not exist
// yet. It always marshals to an empty object, keep the field rather than
// removing it.
type Summary struct{}

type StudentRecord struct {
	StudentInfo StudentInfo            `json:"student_info"`
	Attendance  AttendanceReport       `json:"attendance"`
	Marks       map[string]CourseMarks `json:"marks"`
	Summary     Summary                `json:"summary"`
}
