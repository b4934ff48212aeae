package academia

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"academia-backend/lib/browser"
	"academia-backend/lib/restyutil"
	"academia-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/academia")

const DefaultBaseUrl = "https://academia.srmist.edu.in"

// portal-specific selectors for the login flow. the sign-in form is
// hosted inside an iframe and asks for the identifier and secret in two
// steps.
const (
	loginFrameSelector    = "iframe.siginiframe"
	loginIdSelector       = "input#login_id"
	loginNextSelector     = "#nextbtn"
	loginPasswordSelector = "input#password"
	// present on the post-login landing page only
	landingSelector = "#tab_My_Time_Table_Attendance"
)

// the sign-in frame renders credential errors in either of these nodes
// depending on which step rejected the input
var loginErrorSelectors = []string{"#errorMsg", "div.fielderror"}

const loginWait = 30 * time.Second
const loginPollInterval = 500 * time.Millisecond

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response dumps on clients
// created after this call.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}

// Client owns one authenticated portal session. It is not safe for
// concurrent use: navigations mutate the shared page state, so callers
// must finish one navigation before issuing the next.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	page browser.Page
	// the portal view the page currently renders, see navigate.go
	currentView string
}

type ClientOptions struct {
	BaseUrl string
	Page    browser.Page
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	rawUrl := opts.BaseUrl
	if rawUrl == "" {
		rawUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(rawUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/academia/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
		page:    opts.Page,
	}
	return c, nil
}

// preflight distinguishes an unreachable portal from a slow login before
// a browser navigation is ever attempted.
func (c *Client) preflight(ctx context.Context) error {
	res, err := c.Http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if res.IsError() {
		return fmt.Errorf("%w: portal answered with status %d", ErrNetwork, res.StatusCode())
	}
	return nil
}

// Login drives the portal's two-step sign-in form and waits for the
// post-login landing marker. One attempt, no retries.
func (c *Client) Login(ctx context.Context, identifier, secret string) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	err := c.preflight(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "preflight failed")
		return err
	}

	err = c.page.Navigate(ctx, c.BaseUrl.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open the portal")
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	frame, err := c.page.Frame(ctx, loginFrameSelector)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sign-in frame never appeared")
		return fmt.Errorf("%w: sign-in frame never appeared", ErrNavigationTimeout)
	}

	err = c.submitCredentials(ctx, frame, identifier, secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to submit credentials")
		return err
	}

	err = c.waitForLanding(ctx, frame)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (c *Client) submitCredentials(ctx context.Context, frame browser.Page, identifier, secret string) error {
	err := frame.Fill(ctx, loginIdSelector, identifier)
	if err != nil {
		return fmt.Errorf("%w: identifier field: %v", ErrNavigationTimeout, err)
	}
	err = frame.Click(ctx, loginNextSelector)
	if err != nil {
		return fmt.Errorf("%w: identifier submit: %v", ErrNavigationTimeout, err)
	}
	err = frame.Fill(ctx, loginPasswordSelector, secret)
	if err != nil {
		return fmt.Errorf("%w: secret field: %v", ErrNavigationTimeout, err)
	}
	err = frame.Click(ctx, loginNextSelector)
	if err != nil {
		return fmt.Errorf("%w: secret submit: %v", ErrNavigationTimeout, err)
	}
	return nil
}

// polls until the landing marker renders, the sign-in frame reports a
// credential error, or the wait budget runs out.
func (c *Client) waitForLanding(ctx context.Context, frame browser.Page) error {
	ctx, cancel := context.WithTimeout(ctx, loginWait)
	defer cancel()

	ticker := time.NewTicker(loginPollInterval)
	defer ticker.Stop()

	for {
		landed, err := c.page.Has(ctx, landingSelector)
		if err == nil && landed {
			return nil
		}

		for _, sel := range loginErrorSelectors {
			rejected, err := frame.Has(ctx, sel)
			if err == nil && rejected {
				return ErrAuthentication
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: no landing marker after login", ErrNavigationTimeout)
		case <-ticker.C:
		}
	}
}
