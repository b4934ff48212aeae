package academia

import (
	"fmt"
	"strings"

	"academia-backend/lib/htmlutil"
	"academia-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// canonical keys for the labels the profile table carries. matched
// fuzzily so minor portal wording drift does not break the run.
var profileLabels = []string{
	"registration_number",
	"name",
	"program",
	"department",
	"specialization",
	"semester",
	"feedback",
	"photo_id",
	"enrollment_status_/_doe",
}

// ParseProfile extracts the student's personal information from the
// rendered profile table. Missing fields stay empty strings, only a
// missing table fails the run.
func ParseProfile(doc *goquery.Document) (StudentInfo, error) {
	table := findProfileTable(doc)
	if table == nil {
		return StudentInfo{}, fmt.Errorf("%w: profile table not found", ErrParse)
	}

	info := StudentInfo{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		label := textutil.NormalizeLabel(htmlutil.CleanText(cells.First()))
		key := textutil.CanonicalLabel(label, profileLabels)
		value := cells.Eq(1)

		switch key {
		case "registration_number":
			info.RegistrationNumber = htmlutil.CleanText(value)
		case "name":
			info.Name = htmlutil.CleanText(value)
		case "program":
			info.Program = htmlutil.CleanText(value)
		case "department":
			info.Department = htmlutil.CleanText(value)
		case "specialization":
			info.Specialization = htmlutil.CleanText(value)
		case "semester":
			info.Semester = htmlutil.CleanText(value)
		case "feedback":
			info.Feedback = htmlutil.CleanText(value)
		case "photo_id":
			info.PhotoUrl = value.Find("img").AttrOr("src", "")
		case "enrollment_status_/_doe":
			info.EnrollmentStatus, info.EnrollmentDate = splitEnrollment(htmlutil.CleanText(value))
		}
	})

	return info, nil
}

// the portal packs "<status> / <date of enrollment>" into one cell
func splitEnrollment(value string) (status, date string) {
	status, date, found := strings.Cut(value, " / ")
	if !found {
		return value, ""
	}
	return status, date
}

// the profile table is the one carrying a registration-number row, its
// position in the page is not load-bearing
func findProfileTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		match := false
		table.Find("tr td:first-child").EachWithBreak(func(_ int, td *goquery.Selection) bool {
			label := textutil.NormalizeLabel(htmlutil.CleanText(td))
			if label == "registration_number" {
				match = true
				return false
			}
			return true
		})
		if match {
			found = table
			return false
		}
		return true
	})
	return found
}
