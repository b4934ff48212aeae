package academia

import (
	"strings"
	"testing"

	"academia-backend/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFromHtml(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParseProfile(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/academia")
	defer cleanup()

	info, err := ParseProfile(docFromHtml(t, portalSnapshotHtml))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "RA2111003010042", info.RegistrationNumber)
	require.Equal(t, "ARJUN MENON", info.Name)
	// "Programme" must still land on the program field
	require.Equal(t, "B.Tech", info.Program)
	require.Equal(t, "Computer Science and Engineering", info.Department)
	require.Equal(t, "Artificial Intelligence", info.Specialization)
	require.Equal(t, "5", info.Semester)
	require.Equal(t, "Not Submitted", info.Feedback)
	require.Equal(t, "https://portal.example/photo/42.jpg", info.PhotoUrl)
	require.Equal(t, "Active", info.EnrollmentStatus)
	require.Equal(t, "02-Aug-2021", info.EnrollmentDate)
}

func TestParseProfileMissingFields(t *testing.T) {
	doc := docFromHtml(t, `
		<table>
			<tr><td>Registration Number:</td><td>RA21</td></tr>
			<tr><td>Name:</td><td>A STUDENT</td></tr>
		</table>`)

	info, err := ParseProfile(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "RA21", info.RegistrationNumber)
	require.Equal(t, "A STUDENT", info.Name)
	// absent labels stay empty instead of failing the run
	require.Equal(t, "", info.Program)
	require.Equal(t, "", info.PhotoUrl)
	require.Equal(t, "", info.EnrollmentDate)
}

func TestParseProfileEnrollmentWithoutDate(t *testing.T) {
	doc := docFromHtml(t, `
		<table>
			<tr><td>Registration Number:</td><td>RA21</td></tr>
			<tr><td>Enrollment Status / DOE:</td><td>Active</td></tr>
		</table>`)

	info, err := ParseProfile(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Active", info.EnrollmentStatus)
	require.Equal(t, "", info.EnrollmentDate)
}

func TestParseProfileNoTable(t *testing.T) {
	_, err := ParseProfile(docFromHtml(t, `<div>nothing here</div>`))
	require.ErrorIs(t, err, ErrParse)
}
