package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func selection(t *testing.T, html, selector string) *goquery.Selection {
	// the HTML5 parser drops stray <td>/<tr> tags, so give the
	// fragments a table to live in before parsing
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + html + "</table>"))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find(selector)
}

func TestCleanText(t *testing.T) {
	sel := selection(t, `<td>  Computer   Science
		and Engineering </td>`, "td")
	require.Equal(t, "Computer Science and Engineering", CleanText(sel))
}

func TestLines(t *testing.T) {
	sel := selection(t, `<td>21CSC301T<br>Regular</td>`, "td")
	require.Equal(t, []string{"21CSC301T", "Regular"}, Lines(sel))

	sel = selection(t, "<td>one\ntwo\n\n  three  </td>", "td")
	require.Equal(t, []string{"one", "two", "three"}, Lines(sel))

	sel = selection(t, `<td><font><strong>FT-I/25.00</strong><br>22.50</font></td>`, "td")
	require.Equal(t, []string{"FT-I/25.00", "22.50"}, Lines(sel))

	require.Empty(t, Lines(selection(t, `<td>   </td>`, "td")))
}

func TestCellTexts(t *testing.T) {
	sel := selection(t, `<tr><td>a</td><td> b </td><td>c<br>d</td></tr>`, "tr")
	require.Equal(t, []string{"a", "b", "cd"}, CellTexts(sel))
}
