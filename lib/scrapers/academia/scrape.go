package academia

import (
	"context"
	"log/slog"

	"academia-backend/lib/browser"

	"go.opentelemetry.io/otel/codes"
)

// pipeline states, in visiting order. Failed absorbs every unrecoverable
// error, no state is revisited.
type pipelineState string

const (
	stateIdle               pipelineState = "idle"
	stateAuthenticating     pipelineState = "authenticating"
	stateFetchingProfile    pipelineState = "fetching_profile"
	stateFetchingAttendance pipelineState = "fetching_attendance"
	stateFetchingMarks      pipelineState = "fetching_marks"
	stateMerging            pipelineState = "merging"
	stateDone               pipelineState = "done"
	stateFailed             pipelineState = "failed"
)

// Scrape runs the whole pipeline once over an existing session: login,
// the three page fetches in sequence, then the merge. On any error the
// run fails as a whole, a partial record is never returned.
func Scrape(ctx context.Context, client *Client, creds Credentials) (*StudentRecord, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	state := stateIdle
	advance := func(next pipelineState) {
		state = next
		slog.DebugContext(ctx, "pipeline state", "state", string(next))
		span.AddEvent(string(next))
	}
	fail := func(err error) error {
		slog.WarnContext(ctx, "pipeline failed", "state", string(state), "err", err)
		advance(stateFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	advance(stateAuthenticating)
	err := client.Login(ctx, creds.Identifier, creds.Secret)
	if err != nil {
		return nil, fail(err)
	}

	advance(stateFetchingProfile)
	doc, err := client.Navigate(ctx, TargetProfile)
	if err != nil {
		return nil, fail(err)
	}
	info, err := ParseProfile(doc)
	if err != nil {
		return nil, fail(err)
	}

	advance(stateFetchingAttendance)
	doc, err = client.Navigate(ctx, TargetAttendance)
	if err != nil {
		return nil, fail(err)
	}
	attendance, err := ParseAttendance(doc)
	if err != nil {
		return nil, fail(err)
	}

	advance(stateFetchingMarks)
	doc, err = client.Navigate(ctx, TargetMarks)
	if err != nil {
		return nil, fail(err)
	}
	marks, err := ParseMarks(doc)
	if err != nil {
		return nil, fail(err)
	}

	advance(stateMerging)
	record := Merge(info, attendance, marks)

	advance(stateDone)
	return &record, nil
}

type RunOptions struct {
	BaseUrl string
	Browser browser.Options
}

// Run launches a fresh browser, performs one scrape, and releases every
// browser resource on the way out, abnormal exits included.
func Run(ctx context.Context, opts RunOptions, creds Credentials) (*StudentRecord, error) {
	b, err := browser.Launch(ctx, opts.Browser)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	page, err := b.NewPage(ctx)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	client, err := NewClient(ctx, ClientOptions{
		BaseUrl: opts.BaseUrl,
		Page:    page,
	})
	if err != nil {
		return nil, err
	}

	return Scrape(ctx, client, creds)
}
