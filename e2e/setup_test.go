// Package e2e contains the Playwright end-to-end tests for the four
// challenge pages. The challenge app is served in-process; the browser is
// the only external dependency.
//
// Install browsers first:
//
//	go run github.com/playwright-community/playwright-go/cmd/playwright install chromium
package e2e

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"login_challenges/domain/interfaces"
	"login_challenges/infrastructure/browser"
	"login_challenges/infrastructure/webapp"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var (
	pw              *playwright.Playwright
	browserInstance playwright.Browser
	appServer       *httptest.Server
	logger          *logrus.Logger
)

// TestMain hosts the challenge app and launches one shared browser. Tests
// still get isolated page sessions, each from its own browser context.
func TestMain(m *testing.M) {
	logger = logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	appServer = httptest.NewServer(webapp.Handler())

	var err error
	pw, err = playwright.Run()
	if err == nil {
		browserInstance, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(os.Getenv("HEADLESS") != "false"),
		})
		if err != nil {
			pw.Stop()
			pw = nil
		}
	}

	code := m.Run()

	if browserInstance != nil {
		browserInstance.Close()
	}
	if pw != nil {
		pw.Stop()
	}
	appServer.Close()
	os.Exit(code)
}

// newSession - fresh browser context, page and driver for one test. The
// context is closed with the test, so no page state survives into another
// scenario.
func newSession(t *testing.T) (interfaces.Driver, playwright.Page) {
	t.Helper()

	if browserInstance == nil {
		t.Skip("Playwright browser not available (run: go run github.com/playwright-community/playwright-go/cmd/playwright install chromium)")
	}

	browserCtx, err := browserInstance.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { browserCtx.Close() })

	page, err := browserCtx.NewPage()
	require.NoError(t, err)

	return browser.NewDriver(page, appServer.URL, logger), page
}

// newShortWaitSession - like newSession with a tight wait budget, for tests
// that provoke timeouts on purpose.
func newShortWaitSession(t *testing.T, timeout time.Duration) (interfaces.Driver, playwright.Page) {
	t.Helper()

	if browserInstance == nil {
		t.Skip("Playwright browser not available (run: go run github.com/playwright-community/playwright-go/cmd/playwright install chromium)")
	}

	browserCtx, err := browserInstance.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { browserCtx.Close() })

	page, err := browserCtx.NewPage()
	require.NoError(t, err)

	return browser.NewDriverWithTimeout(page, appServer.URL, logger, timeout), page
}
