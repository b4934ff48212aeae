package academia

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Target names a logical portal page the pipeline can fetch.
type Target string

const (
	TargetProfile    Target = "profile"
	TargetAttendance Target = "attendance"
	TargetMarks      Target = "marks"
)

type menuAction struct {
	// menu tab and entry to click, in order
	Tab  string
	Item string
	// container that signals the page's dynamic content has settled
	Ready string
	// identity of the rendered portal view. targets sharing a view skip
	// the redundant menu clicks and only re-read the rendered HTML.
	View string
}

// portalMenu is the versioned target-to-menu mapping for the current
// portal layout. The portal renders the profile, attendance and marks
// tables in a single view today, a future layout change is a data update
// here rather than a code change.
var portalMenu = map[Target]menuAction{
	TargetProfile: {
		Tab:   "#tab_My_Time_Table_Attendance",
		Item:  "#My_Attendance",
		Ready: "div.mainDiv",
		View:  "attendance",
	},
	TargetAttendance: {
		Tab:   "#tab_My_Time_Table_Attendance",
		Item:  "#My_Attendance",
		Ready: "div.mainDiv",
		View:  "attendance",
	},
	TargetMarks: {
		Tab:   "#tab_My_Time_Table_Attendance",
		Item:  "#My_Attendance",
		Ready: "div.mainDiv",
		View:  "attendance",
	},
}

// Navigate drives the authenticated session to the portal page backing
// `target`, waits until its dynamic content settles, and returns the
// rendered document. Mutates the session's current-page state: callers
// must complete one navigation before issuing the next.
func (c *Client) Navigate(ctx context.Context, target Target) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:Navigate")
	defer span.End()
	span.SetAttributes(attribute.String("target", string(target)))

	action, ok := portalMenu[target]
	if !ok {
		err := fmt.Errorf("unknown navigation target %q", target)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if c.currentView != action.View {
		err := c.page.Click(ctx, action.Tab)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to open menu tab")
			return nil, fmt.Errorf("%w: menu tab for %s: %v", ErrNavigationTimeout, target, err)
		}
		err = c.page.Click(ctx, action.Item)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to open menu entry")
			return nil, fmt.Errorf("%w: menu entry for %s: %v", ErrNavigationTimeout, target, err)
		}
		c.currentView = action.View
	}

	html, err := c.page.HTML(ctx, action.Ready)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "page content never settled")
		return nil, fmt.Errorf("%w: content of %s never settled: %v", ErrNavigationTimeout, target, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}
