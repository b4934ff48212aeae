// Package browser wraps the headless browser engine behind a narrow
// surface. The scraping pipeline only ever talks to Page, so everything
// above this package can be exercised against canned HTML snapshots.
package browser

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type Options struct {
	// path to a chromium binary, empty lets the launcher resolve one
	Bin      string
	Headless bool
}

type Browser struct {
	rod *rod.Browser
}

func Launch(ctx context.Context, opts Options) (*Browser, error) {
	l := launcher.New().Headless(opts.Headless)
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}

	controlUrl, err := l.Launch()
	if err != nil {
		return nil, err
	}

	b := rod.New().ControlURL(controlUrl).Context(ctx)
	err = b.Connect()
	if err != nil {
		return nil, err
	}

	return &Browser{rod: b}, nil
}

func (b *Browser) NewPage(ctx context.Context) (Page, error) {
	page, err := b.rod.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
	})
	if err != nil {
		return nil, err
	}
	return rodPage{page: page.Context(ctx)}, nil
}

func (b *Browser) Close() error {
	return b.rod.Close()
}

// Page is the automation capability the pipeline depends on. Every call
// blocks until the engine settles or the context expires.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// Frame descends into an iframe matched by selector.
	Frame(ctx context.Context, selector string) (Page, error)
	Fill(ctx context.Context, selector, text string) error
	Click(ctx context.Context, selector string) error
	Has(ctx context.Context, selector string) (bool, error)
	// HTML waits for the element matched by selector and returns its
	// rendered markup.
	HTML(ctx context.Context, selector string) (string, error)
	Close() error
}

type rodPage struct {
	page *rod.Page
}

func (p rodPage) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)
	err := page.Navigate(url)
	if err != nil {
		return err
	}
	return page.WaitLoad()
}

func (p rodPage) Frame(ctx context.Context, selector string) (Page, error) {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return nil, err
	}
	frame, err := el.Frame()
	if err != nil {
		return nil, err
	}
	return rodPage{page: frame}, nil
}

func (p rodPage) Fill(ctx context.Context, selector, text string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	err = el.WaitVisible()
	if err != nil {
		return err
	}
	return el.Input(text)
}

func (p rodPage) Click(ctx context.Context, selector string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	err = el.WaitVisible()
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (p rodPage) Has(ctx context.Context, selector string) (bool, error) {
	has, _, err := p.page.Context(ctx).Has(selector)
	return has, err
}

func (p rodPage) HTML(ctx context.Context, selector string) (string, error) {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return "", err
	}
	err = el.ScrollIntoView()
	if err != nil {
		return "", err
	}
	return el.HTML()
}

func (p rodPage) Close() error {
	return p.page.Close()
}
