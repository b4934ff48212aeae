package academia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academia-backend/lib/browser"
	"academia-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// fakePage plays the portal from canned state, so the pipeline runs
// without a browser. The sign-in frame is the page itself, which is all
// the login flow needs.
type fakePage struct {
	html       string
	landed     bool
	loginError bool

	navigations []string
	fills       []string
	clicks      []string
}

var _ browser.Page = (*fakePage)(nil)

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	p.navigations = append(p.navigations, url)
	return nil
}

func (p *fakePage) Frame(ctx context.Context, selector string) (browser.Page, error) {
	return p, nil
}

func (p *fakePage) Fill(ctx context.Context, selector, text string) error {
	p.fills = append(p.fills, selector)
	return nil
}

func (p *fakePage) Click(ctx context.Context, selector string) error {
	p.clicks = append(p.clicks, selector)
	return nil
}

func (p *fakePage) Has(ctx context.Context, selector string) (bool, error) {
	if selector == landingSelector {
		return p.landed, nil
	}
	return p.loginError, nil
}

func (p *fakePage) HTML(ctx context.Context, selector string) (string, error) {
	return p.html, nil
}

func (p *fakePage) Close() error { return nil }

func portalServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrape(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/academia")
	defer cleanup()

	server := portalServer(t)
	page := &fakePage{
		html:   portalSnapshotHtml,
		landed: true,
	}

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: server.URL,
		Page:    page,
	})
	require.NoError(t, err)

	record, err := Scrape(context.Background(), client, Credentials{
		Identifier: "ra2111003010042@srmist.edu.in",
		Secret:     "hunter2",
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	require.Equal(t, "RA2111003010042", record.StudentInfo.RegistrationNumber)
	require.Len(t, record.Attendance.Courses, 3)
	require.Equal(t, 96.08, record.Attendance.OverallAttendance)
	require.Len(t, record.Marks, 2)

	require.Equal(t, []string{server.URL}, page.navigations)
	require.Equal(t, []string{loginIdSelector, loginPasswordSelector}, page.fills)

	// three fetches against one rendered view open the menu exactly once
	tabClicks := 0
	for _, sel := range page.clicks {
		if sel == "#tab_My_Time_Table_Attendance" {
			tabClicks++
		}
	}
	require.Equal(t, 1, tabClicks)
}

func TestScrapeRejectedCredentials(t *testing.T) {
	server := portalServer(t)
	page := &fakePage{
		html:       portalSnapshotHtml,
		landed:     false,
		loginError: true,
	}

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: server.URL,
		Page:    page,
	})
	require.NoError(t, err)

	record, err := Scrape(context.Background(), client, Credentials{
		Identifier: "someone@srmist.edu.in",
		Secret:     "wrong",
	})
	require.ErrorIs(t, err, ErrAuthentication)
	// a failed run never yields a partial record
	require.Nil(t, record)
}

func TestScrapeLoginNeverLands(t *testing.T) {
	server := portalServer(t)
	page := &fakePage{html: portalSnapshotHtml}

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: server.URL,
		Page:    page,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	record, err := Scrape(ctx, client, Credentials{
		Identifier: "someone@srmist.edu.in",
		Secret:     "hunter2",
	})
	require.ErrorIs(t, err, ErrNavigationTimeout)
	require.Nil(t, record)
}

func TestScrapePortalUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: server.URL,
		Page:    &fakePage{},
	})
	require.NoError(t, err)

	_, err = Scrape(context.Background(), client, Credentials{
		Identifier: "someone@srmist.edu.in",
		Secret:     "hunter2",
	})
	require.ErrorIs(t, err, ErrNetwork)
}

func TestScrapePortalErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: server.URL,
		Page:    &fakePage{},
	})
	require.NoError(t, err)

	_, err = Scrape(context.Background(), client, Credentials{
		Identifier: "someone@srmist.edu.in",
		Secret:     "hunter2",
	})
	require.ErrorIs(t, err, ErrNetwork)
}
