package interfaces

import (
	"context"

	"login_challenges/domain/entities"
)

// Driver defines the readiness-gated interaction primitives scenarios are
// built from. Every wait primitive polls an application state signal and
// fails with a typed timeout instead of sleeping for a fixed duration.
// One Driver is bound to exactly one page session.
type Driver interface {
	// Navigate opens the page for target (served at /<target>.html) and
	// blocks until the browser location matches it exactly
	Navigate(ctx context.Context, target string) error

	// FillField writes value into the field; fails if the field does not
	// exist. Callers wait for visibility first when the field may be late
	FillField(ctx context.Context, selector string, value string) error

	// Click waits for the element to be visible, then clicks it
	Click(ctx context.Context, selector string) error

	// WaitVisibleAndEnabled polls until the element is attached, visible
	// and no longer disabled
	WaitVisibleAndEnabled(ctx context.Context, selector string) error

	// WaitAnimationSettled blocks until no animation is running on the
	// element or its descendants
	WaitAnimationSettled(ctx context.Context, selector string) error

	// WaitAttributeEquals polls until the element's attribute matches
	// expected exactly
	WaitAttributeEquals(ctx context.Context, selector, attribute, expected string) error

	// WaitGlobalFlag polls the page's global scope until the named value
	// is boolean true
	WaitGlobalFlag(ctx context.Context, flag string) error

	// RetryableSubmit clicks submit and waits briefly for the confirmation
	// element, retrying with escalating delays until the policy's overall
	// timeout runs out
	RetryableSubmit(ctx context.Context, submitSelector, confirmSelector string, policy entities.RetryPolicy) error

	// WaitHidden polls until the element is detached or not visible
	WaitHidden(ctx context.Context, selector string) error

	// TextContent returns the element's text; fails if it does not exist
	TextContent(ctx context.Context, selector string) (string, error)

	// IsVisible reports current visibility without waiting
	IsVisible(ctx context.Context, selector string) (bool, error)
}
