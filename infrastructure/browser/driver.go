package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"login_challenges/domain/entities"
	"login_challenges/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const (
	defaultWaitTimeout  = 10 * time.Second
	defaultPollInterval = 100 * time.Millisecond
)

// settleAnimationsJS awaits the finished-promise of every animation running
// on the element or its descendants. Cancelled animations are not failures:
// an animation aborted by a later one simply stops being pending. The wait
// is raced against budgetMs because a finished-promise can stay open
// forever (infinite iteration count); either way a false result makes the
// caller re-check, so animations started in the meantime are seen too.
const settleAnimationsJS = `(el, budgetMs) => {
	const pending = el.getAnimations({ subtree: true })
		.filter(a => a.playState === 'running' || a.playState === 'paused');
	if (pending.length === 0) {
		return true;
	}
	const settled = Promise.all(pending.map(a => a.finished.catch(() => {}))).then(() => false);
	const expired = new Promise(resolve => setTimeout(() => resolve(false), budgetMs));
	return Promise.race([settled, expired]);
}`

type driver struct {
	page     playwright.Page
	baseURL  string
	logger   *logrus.Logger
	timeout  time.Duration
	interval time.Duration
}

// NewDriver - creates a readiness-gated driver bound to one page session.
// targetIdentifiers passed to Navigate resolve against baseURL.
func NewDriver(page playwright.Page, baseURL string, logger *logrus.Logger) interfaces.Driver {
	return &driver{
		page:     page,
		baseURL:  baseURL,
		logger:   logger,
		timeout:  defaultWaitTimeout,
		interval: defaultPollInterval,
	}
}

// NewDriverWithTimeout - like NewDriver with an overridden default wait budget.
func NewDriverWithTimeout(page playwright.Page, baseURL string, logger *logrus.Logger, timeout time.Duration) interfaces.Driver {
	d := NewDriver(page, baseURL, logger).(*driver)
	d.timeout = timeout
	return d
}

// Navigate - opens /<target>.html and blocks until the location matches it.
// Both phases share one wait budget, so the primitive never takes longer
// than the configured timeout.
func (d *driver) Navigate(ctx context.Context, target string) error {
	url := d.baseURL + "/" + target + ".html"
	deadline := time.Now().Add(d.timeout)

	d.logger.WithField("url", url).Debug("navigating")

	if _, err := d.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return &StepError{Kind: FailureNavigationTimeout, Selector: url, Err: err}
		}
		return fmt.Errorf("failed to open %q: %w", url, err)
	}

	if err := d.page.WaitForURL(url, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(remainingMs(deadline)),
	}); err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return &StepError{
				Kind:     FailureNavigationTimeout,
				Selector: url,
				Detail:   fmt.Sprintf("location is still %s", d.page.URL()),
				Err:      err,
			}
		}
		return fmt.Errorf("failed to await location %q: %w", url, err)
	}

	return nil
}

// FillField - writes value into the field. The field must already exist;
// callers precede this with a visibility wait when it may be late.
func (d *driver) FillField(ctx context.Context, selector string, value string) error {
	locator := d.page.Locator(selector)

	count, err := locator.Count()
	if err != nil {
		return fmt.Errorf("failed to locate %q: %w", selector, err)
	}
	if count == 0 {
		return &StepError{Kind: FailureElementNotFound, Selector: selector}
	}

	if err := locator.Clear(playwright.LocatorClearOptions{
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return fmt.Errorf("failed to clear %q: %w", selector, err)
	}
	if err := locator.Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return fmt.Errorf("failed to fill %q: %w", selector, err)
	}

	return nil
}

// Click - waits for the element to be visible, then clicks it.
func (d *driver) Click(ctx context.Context, selector string) error {
	locator := d.page.Locator(selector)

	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return &StepError{Kind: FailureVisibilityTimeout, Selector: selector, Err: err}
	}

	if err := locator.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}

	return nil
}

// WaitVisibleAndEnabled - polls until the element is attached, visible and
// not disabled. The two conditions are separate: a control can be rendered
// before a delayed initialization routine clears its disabled state. Both
// phases share one wait budget.
func (d *driver) WaitVisibleAndEnabled(ctx context.Context, selector string) error {
	locator := d.page.Locator(selector)
	deadline := time.Now().Add(d.timeout)

	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return &StepError{Kind: FailureVisibilityTimeout, Selector: selector, Err: err}
	}

	err := d.pollUntil(ctx, time.Until(deadline), func() (bool, error) {
		disabled, err := locator.IsDisabled(playwright.LocatorIsDisabledOptions{
			Timeout: playwright.Float(d.intervalMs()),
		})
		if err != nil {
			if errors.Is(err, playwright.ErrTimeout) {
				// element went away between polls, keep waiting for it
				return false, nil
			}
			return false, fmt.Errorf("failed to check disabled state of %q: %w", selector, err)
		}
		return !disabled, nil
	})
	if err != nil {
		return d.wrapPollErr(err, FailureVisibilityTimeout, selector, "element is still disabled")
	}

	return nil
}

// WaitAnimationSettled - blocks until no animation is pending on the element
// or its descendants. Each pass awaits the finished-promises of the
// animations seen, then re-checks in case a completion handler started new
// ones.
func (d *driver) WaitAnimationSettled(ctx context.Context, selector string) error {
	locator := d.page.Locator(selector)

	count, err := locator.Count()
	if err != nil {
		return fmt.Errorf("failed to locate %q: %w", selector, err)
	}
	if count == 0 {
		return &StepError{Kind: FailureElementNotFound, Selector: selector}
	}

	deadline := time.Now().Add(d.timeout)
	err = d.pollUntil(ctx, d.timeout, func() (bool, error) {
		result, err := locator.Evaluate(settleAnimationsJS, remainingMs(deadline), playwright.LocatorEvaluateOptions{
			Timeout: playwright.Float(remainingMs(deadline)),
		})
		if err != nil {
			if errors.Is(err, playwright.ErrTimeout) {
				// element went away between polls, keep waiting for it
				return false, nil
			}
			return false, fmt.Errorf("failed to inspect animations on %q: %w", selector, err)
		}
		settled, ok := result.(bool)
		return ok && settled, nil
	})
	if err != nil {
		return d.wrapPollErr(err, FailureAnimationWaitTimeout, selector, "animations still running")
	}

	return nil
}

// WaitAttributeEquals - polls until the attribute matches expected exactly.
func (d *driver) WaitAttributeEquals(ctx context.Context, selector, attribute, expected string) error {
	locator := d.page.Locator(selector)

	var last string
	err := d.pollUntil(ctx, d.timeout, func() (bool, error) {
		value, err := locator.GetAttribute(attribute, playwright.LocatorGetAttributeOptions{
			Timeout: playwright.Float(d.intervalMs()),
		})
		if err != nil {
			// element not resolvable yet counts as not-ready, the poll
			// budget bounds how long that may last
			return false, nil
		}
		last = value
		return value == expected, nil
	})
	if err != nil {
		detail := fmt.Sprintf("attribute %q is %q, want %q", attribute, last, expected)
		return d.wrapPollErr(err, FailureAttributeTimeout, selector, detail)
	}

	return nil
}

// WaitGlobalFlag - polls the page's global scope until the named value is
// boolean true. Models the application declaring itself ready outside the
// DOM. Read-only observation: the poll never writes page state.
func (d *driver) WaitGlobalFlag(ctx context.Context, flag string) error {
	err := d.pollUntil(ctx, d.timeout, func() (bool, error) {
		result, err := d.page.Evaluate("flag => window[flag] === true", flag)
		if err != nil {
			return false, fmt.Errorf("failed to read global flag %q: %w", flag, err)
		}
		ready, ok := result.(bool)
		return ok && ready, nil
	})
	if err != nil {
		return d.wrapPollErr(err, FailureFlagTimeout, flag, "flag never became true")
	}

	return nil
}

// RetryableSubmit - clicks submit and waits AttemptTimeout for the
// confirmation element. A dropped attempt is expected, not an error: the
// loop sleeps the next escalating interval and clicks again until the
// policy's overall timeout is exhausted.
func (d *driver) RetryableSubmit(ctx context.Context, submitSelector, confirmSelector string, policy entities.RetryPolicy) error {
	deadline := time.Now().Add(policy.Timeout)
	confirm := d.page.Locator(confirmSelector)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.page.Locator(submitSelector).Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(float64(policy.AttemptTimeout.Milliseconds())),
		}); err != nil {
			return d.submitClickError(submitSelector, err)
		}

		err := confirm.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(float64(policy.AttemptTimeout.Milliseconds())),
		})
		if err == nil {
			if attempt > 0 {
				d.logger.WithFields(logrus.Fields{
					"selector": confirmSelector,
					"attempts": attempt + 1,
				}).Debug("confirmation appeared after retries")
			}
			return nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return &StepError{
				Kind:     FailureRetryExhausted,
				Selector: confirmSelector,
				Detail:   fmt.Sprintf("no confirmation after %d attempts in %s", attempt+1, policy.Timeout),
			}
		}

		delay := policy.IntervalAt(attempt)
		if delay > remaining {
			delay = remaining
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// WaitHidden - polls until the element is detached or not visible. Used to
// let a transient banner fully disappear before the next iteration asserts
// on the same selector.
func (d *driver) WaitHidden(ctx context.Context, selector string) error {
	locator := d.page.Locator(selector)

	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(d.timeoutMs()),
	}); err != nil {
		return &StepError{
			Kind:     FailureVisibilityTimeout,
			Selector: selector,
			Detail:   "element is still visible",
			Err:      err,
		}
	}

	return nil
}

// TextContent - returns the element's text content.
func (d *driver) TextContent(ctx context.Context, selector string) (string, error) {
	locator := d.page.Locator(selector)

	count, err := locator.Count()
	if err != nil {
		return "", fmt.Errorf("failed to locate %q: %w", selector, err)
	}
	if count == 0 {
		return "", &StepError{Kind: FailureElementNotFound, Selector: selector}
	}

	text, err := locator.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(d.timeoutMs()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read text of %q: %w", selector, err)
	}

	return text, nil
}

// IsVisible - reports current visibility without waiting.
func (d *driver) IsVisible(ctx context.Context, selector string) (bool, error) {
	visible, err := d.page.Locator(selector).IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to check visibility of %q: %w", selector, err)
	}
	return visible, nil
}

// pollUntil - evaluates predicate at the driver's poll interval until it
// reports true, the budget elapses, or ctx is cancelled. The predicate must
// be idempotent: it runs an unbounded number of times.
func (d *driver) pollUntil(ctx context.Context, budget time.Duration, predicate func() (bool, error)) error {
	deadline := time.Now().Add(budget)

	for {
		ok, err := predicate()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		if time.Now().After(deadline) {
			return errPollTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.interval):
		}
	}
}

// wrapPollErr - converts a pollUntil failure into the caller's typed step
// error; predicate errors and context cancellation pass through unchanged.
func (d *driver) wrapPollErr(err error, kind FailureKind, selector, detail string) error {
	if errors.Is(err, errPollTimeout) {
		return &StepError{Kind: kind, Selector: selector, Detail: detail, Err: err}
	}
	return err
}

// submitClickError - classifies a failed submit click. A click timing out
// on an element that exists means the element was not clickable, which is a
// different condition than the element being absent.
func (d *driver) submitClickError(selector string, err error) error {
	kind := FailureElementNotFound
	detail := "submit control not found"
	if count, countErr := d.page.Locator(selector).Count(); countErr == nil && count > 0 {
		kind = FailureVisibilityTimeout
		detail = "submit control not clickable"
	}
	return &StepError{Kind: kind, Selector: selector, Detail: detail, Err: err}
}

func (d *driver) timeoutMs() float64 {
	return float64(d.timeout.Milliseconds())
}

func (d *driver) intervalMs() float64 {
	return float64(d.interval.Milliseconds())
}

// remainingMs - milliseconds left until deadline for a playwright call's
// Timeout option, clamped to at least 1ms because zero would disable the
// timeout entirely.
func remainingMs(deadline time.Time) float64 {
	remaining := time.Until(deadline)
	if remaining < time.Millisecond {
		remaining = time.Millisecond
	}
	return float64(remaining.Milliseconds())
}
