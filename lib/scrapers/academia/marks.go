package academia

import (
	"fmt"
	"strconv"
	"strings"

	"academia-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// marksPercentage computes 100 * obtained / max rounded to two decimals,
// with the same 0.0 fallback as attendance when max is zero.
func marksPercentage(obtained, max float64) float64 {
	if max <= 0 {
		return 0.0
	}
	return round2(100 * obtained / max)
}

// ParseMarks extracts internal test scores per course. A course with no
// recorded tests still appears in the result with an empty test list.
// Test cells the portal left blank or marked absent are skipped.
func ParseMarks(doc *goquery.Document) (map[string]CourseMarks, error) {
	marks := map[string]CourseMarks{}

	table := findMarksTable(doc)
	if table == nil {
		return marks, fmt.Errorf("%w: marks table not found", ErrParse)
	}

	// only iterate the table's own rows, each course row nests its own
	// test table whose rows must not be mistaken for courses
	rows := table.ChildrenFiltered("tbody").ChildrenFiltered("tr")
	if rows.Length() == 0 {
		rows = table.ChildrenFiltered("tr")
	}
	rows.Each(func(i int, row *goquery.Selection) {
		// row 0 is the header
		if i == 0 {
			return
		}
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 3 {
			return
		}

		key := courseKey(htmlutil.Lines(cells.Eq(0)))
		if key == "" {
			return
		}

		course := CourseMarks{
			CourseType: htmlutil.CleanText(cells.Eq(1)),
			Tests:      []TestScore{},
		}

		cells.Eq(2).Find("table font").Each(func(_ int, cell *goquery.Selection) {
			test, ok := parseTestCell(cell)
			if ok {
				course.Tests = append(course.Tests, test)
			}
		})

		marks[key] = course
	})

	return marks, nil
}

// a test cell renders as <font><strong>NAME/MAX</strong><br>OBTAINED</font>
func parseTestCell(cell *goquery.Selection) (TestScore, bool) {
	heading := htmlutil.CleanText(cell.Find("strong"))
	name, maxStr, found := strings.Cut(heading, "/")
	if !found {
		return TestScore{}, false
	}

	max, err := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err != nil {
		return TestScore{}, false
	}

	lines := htmlutil.Lines(cell)
	if len(lines) < 2 {
		// no score recorded yet
		return TestScore{}, false
	}
	obtained, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	if err != nil {
		// absent markers and the like
		return TestScore{}, false
	}

	return TestScore{
		TestName:      strings.TrimSpace(name),
		ObtainedMarks: obtained,
		MaxMarks:      max,
		Percentage:    marksPercentage(obtained, max),
	}, true
}

func findMarksTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := strings.ToLower(htmlutil.CleanText(table.Find("tr").First()))
		if strings.Contains(header, "test performance") {
			found = table
			return false
		}
		return true
	})
	return found
}
