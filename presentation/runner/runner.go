package runner

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"login_challenges/application/scenarios"
	"login_challenges/domain/entities"
	"login_challenges/domain/interfaces"
	"login_challenges/infrastructure/browser"
	"login_challenges/infrastructure/storage"
	"login_challenges/infrastructure/webapp"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Runner executes all challenge scenarios once and writes a run report.
// Each scenario gets its own browser context, so page state never leaks
// between them.
type Runner struct {
	logger      *logrus.Logger
	baseURL     string
	headless    bool
	timeout     time.Duration
	reportStore interfaces.ReportStore
}

// NewRunner - builds a runner from .env / environment variables.
// BASE_URL targets an already deployed challenge app; when empty the
// embedded app is served on a loopback port for the duration of the run.
func NewRunner() (*Runner, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	timeout := 10 * time.Second
	if raw := os.Getenv("WAIT_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid WAIT_TIMEOUT_MS %q: %w", raw, err)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	return &Runner{
		logger:      logger,
		baseURL:     os.Getenv("BASE_URL"),
		headless:    os.Getenv("HEADLESS") != "false",
		timeout:     timeout,
		reportStore: storage.NewReportStore(os.Getenv("REPORT_PATH")),
	}, nil
}

// Run - executes the four scenarios sequentially, saves the report and
// returns an error when any scenario failed.
func (r *Runner) Run(ctx context.Context) error {
	baseURL := r.baseURL
	if baseURL == "" {
		server, err := webapp.Start(r.logger)
		if err != nil {
			return fmt.Errorf("failed to start challenge app: %w", err)
		}
		defer server.Close()
		baseURL = server.URL()
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browserInstance, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(r.headless),
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browserInstance.Close()

	report := &entities.RunReport{StartedAt: time.Now()}
	for _, scenario := range scenarios.All() {
		result := r.runScenario(ctx, browserInstance, baseURL, scenario)
		report.Results = append(report.Results, result)

		entry := r.logger.WithFields(logrus.Fields{
			"scenario": result.Name,
			"duration": result.Duration.Round(time.Millisecond),
		})
		if result.Passed {
			entry.Info("scenario passed")
		} else {
			entry.WithField("failure_kind", result.FailureKind).
				Error("scenario failed: " + result.Error)
		}
	}

	if err := r.reportStore.SaveReport(report); err != nil {
		r.logger.WithError(err).Warn("failed to save run report")
	}

	if !report.Passed() {
		return fmt.Errorf("scenarios failed: %v", report.Failures())
	}
	return nil
}

// runScenario - runs one scenario in a fresh browser context. The context
// is the page session boundary: it is torn down whether the scenario passed
// or not.
func (r *Runner) runScenario(ctx context.Context, browserInstance playwright.Browser, baseURL string, scenario scenarios.Scenario) entities.ScenarioResult {
	start := time.Now()
	result := entities.ScenarioResult{Name: scenario.Name}

	browserCtx, err := browserInstance.NewContext()
	if err != nil {
		result.Error = fmt.Errorf("failed to create browser context: %w", err).Error()
		result.Duration = time.Since(start)
		return result
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		result.Error = fmt.Errorf("failed to create page: %w", err).Error()
		result.Duration = time.Since(start)
		return result
	}

	driver := browser.NewDriverWithTimeout(page, baseURL, r.logger, r.timeout)
	if err := scenario.Run(ctx, driver); err != nil {
		result.Error = err.Error()
		kind := browser.KindOf(err)
		if kind == "" {
			kind = "assertion_failure"
		}
		result.FailureKind = string(kind)
	} else {
		result.Passed = true
	}

	result.Duration = time.Since(start)
	return result
}
