package academia

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendancePercentage(t *testing.T) {
	cases := []struct {
		conducted int
		absent    int
		expected  float64
	}{
		{12, 0, 100.0},
		{22, 1, 95.45},
		{17, 1, 94.12},
		{10, 10, 0.0},
		// defined fallback instead of a division by zero
		{0, 0, 0.0},
	}
	for _, c := range cases {
		got := attendancePercentage(c.conducted, c.absent)
		require.Equal(t, c.expected, got, "conducted=%d absent=%d", c.conducted, c.absent)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 100.0)
	}
}

func TestCourseKey(t *testing.T) {
	require.Equal(t, "21CSC301TRegular", courseKey([]string{"21CSC301T", "Regular"}))
	require.Equal(t, "21MAB204TArrear", courseKey([]string{"21MAB204T", "Arrear"}))
	// unknown registration types leave the raw code untouched
	require.Equal(t, "21CSC301T", courseKey([]string{"21CSC301T", "Audit"}))
	require.Equal(t, "21CSC301T", courseKey([]string{"21CSC301T"}))
	require.Equal(t, "", courseKey(nil))
}

func TestParseAttendance(t *testing.T) {
	report, err := ParseAttendance(docFromHtml(t, portalSnapshotHtml))
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, report.Courses, 3)

	automata, ok := report.Courses["21CSC301TRegular"]
	require.True(t, ok, "expected regular course key with suffix")
	require.Equal(t, "Formal Language and Automata", automata.CourseTitle)
	require.Equal(t, "Theory", automata.Category)
	require.Equal(t, "Dr. K. Raman", automata.FacultyName)
	require.Equal(t, "A", automata.Slot)
	require.Equal(t, "TP401", automata.RoomNo)
	require.Equal(t, 12, automata.HoursConducted)
	require.Equal(t, 0, automata.HoursAbsent)
	require.Equal(t, 100.0, automata.AttendancePercentage)

	networks := report.Courses["21CSC302JRegular"]
	require.Equal(t, 95.45, networks.AttendancePercentage)

	arrear, ok := report.Courses["21MAB204TArrear"]
	require.True(t, ok, "expected arrear course key with suffix")
	require.Equal(t, 94.12, arrear.AttendancePercentage)

	require.Equal(t, 51, report.TotalHoursConducted)
	require.Equal(t, 2, report.TotalHoursAbsent)
	// ratio of the summed hours, not an average of percentages
	require.Equal(t, 96.08, report.OverallAttendance)
}

func TestParseAttendanceMalformedHours(t *testing.T) {
	doc := docFromHtml(t, `
		<table>
			<tr>
				<td>Course Code</td><td>Course Title</td><td>Category</td>
				<td>Faculty Name</td><td>Slot</td><td>Room No</td>
				<td>Hours Conducted</td><td>Hours Absent</td><td>Attn %</td>
			</tr>
			<tr>
				<td>21CSC301T<br>Regular</td><td>X</td><td>T</td>
				<td>F</td><td>A</td><td>R</td>
				<td>twelve</td><td>0</td><td>100.00</td>
			</tr>
		</table>`)

	_, err := ParseAttendance(doc)
	require.ErrorIs(t, err, ErrParse)
}

func TestParseAttendanceNoTable(t *testing.T) {
	_, err := ParseAttendance(docFromHtml(t, `<table><tr><td>unrelated</td></tr></table>`))
	require.ErrorIs(t, err, ErrParse)
}
