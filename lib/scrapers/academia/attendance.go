package academia

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"academia-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// registrationTypeSuffix classifies the registration-type line the portal
// renders under the raw course code. This mapping is versioned data: when
// the portal grows a new registration type, add it here.
var registrationTypeSuffix = map[string]string{
	"regular": "Regular",
	"arrear":  "Arrear",
}

// courseKey derives the output key for a course cell: the raw code on the
// first line, concatenated with the classified registration-type suffix
// when one is present.
func courseKey(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	code := lines[0]
	if len(lines) > 1 {
		suffix, ok := registrationTypeSuffix[strings.ToLower(lines[1])]
		if ok {
			return code + suffix
		}
	}
	return code
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// attendancePercentage computes 100 * (conducted - absent) / conducted,
// rounded to two decimals. Zero conducted hours yields 0.0 by policy, the
// same fallback every percentage in this package uses.
func attendancePercentage(conducted, absent int) float64 {
	if conducted <= 0 {
		return 0.0
	}
	return round2(100 * float64(conducted-absent) / float64(conducted))
}

// ParseAttendance extracts one CourseAttendance per course row and
// derives the overall summary from the summed hours, not from averaging
// the per-course percentages.
func ParseAttendance(doc *goquery.Document) (AttendanceReport, error) {
	report := AttendanceReport{
		Courses: map[string]CourseAttendance{},
	}

	table := findAttendanceTable(doc)
	if table == nil {
		return report, fmt.Errorf("%w: attendance table not found", ErrParse)
	}

	var rowErr error
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		// row 0 is the header
		if i == 0 {
			return true
		}
		cells := row.Find("td")
		// spacer rows carry fewer cells
		if cells.Length() < 9 {
			return true
		}

		key := courseKey(htmlutil.Lines(cells.Eq(0)))
		if key == "" {
			return true
		}

		conducted, err := strconv.Atoi(htmlutil.CleanText(cells.Eq(6)))
		if err != nil {
			rowErr = fmt.Errorf("%w: hours conducted for %s: %v", ErrParse, key, err)
			return false
		}
		absent, err := strconv.Atoi(htmlutil.CleanText(cells.Eq(7)))
		if err != nil {
			rowErr = fmt.Errorf("%w: hours absent for %s: %v", ErrParse, key, err)
			return false
		}

		report.Courses[key] = CourseAttendance{
			CourseTitle:          htmlutil.CleanText(cells.Eq(1)),
			Category:             htmlutil.CleanText(cells.Eq(2)),
			FacultyName:          htmlutil.CleanText(cells.Eq(3)),
			Slot:                 htmlutil.CleanText(cells.Eq(4)),
			RoomNo:               htmlutil.CleanText(cells.Eq(5)),
			HoursConducted:       conducted,
			HoursAbsent:          absent,
			AttendancePercentage: attendancePercentage(conducted, absent),
		}
		report.TotalHoursConducted += conducted
		report.TotalHoursAbsent += absent
		return true
	})
	if rowErr != nil {
		return AttendanceReport{Courses: map[string]CourseAttendance{}}, rowErr
	}

	report.OverallAttendance = attendancePercentage(
		report.TotalHoursConducted,
		report.TotalHoursAbsent,
	)
	return report, nil
}

func findAttendanceTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := strings.ToLower(htmlutil.CleanText(table.Find("tr").First()))
		if strings.Contains(header, "hours conducted") {
			found = table
			return false
		}
		return true
	})
	return found
}
