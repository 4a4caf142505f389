package scenarios

import (
	"context"
	"fmt"
	"strings"

	"login_challenges/domain/entities"
	"login_challenges/domain/interfaces"
)

// Scenario is one independently executable end-to-end flow. Each run is
// bound to exactly one page session; scenarios never share page state, so
// they are safe to execute in parallel against separate sessions.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, driver interfaces.Driver) error
}

// All - the four challenge scenarios in page order.
func All() []Scenario {
	return []Scenario{
		{Name: "challenge1_repeated_login", Run: RepeatedLogin},
		{Name: "challenge2_animated_dashboard", Run: AnimatedDashboard},
		{Name: "challenge3_forgot_password", Run: ForgotPassword},
		{Name: "challenge4_readiness_flag", Run: ReadinessFlagLogin},
	}
}

// RepeatedLogin - challenge 1. Logs in three times with generated
// credentials. The success banner text must carry the exact credentials of
// the current iteration, and the banner must be gone again before the next
// iteration submits, otherwise a stale banner could satisfy the next
// assertion.
func RepeatedLogin(ctx context.Context, driver interfaces.Driver) error {
	if err := driver.Navigate(ctx, "challenge1"); err != nil {
		return fmt.Errorf("open challenge 1: %w", err)
	}

	for i := 1; i <= 3; i++ {
		cred := entities.CredentialAt(i)

		if err := driver.WaitVisibleAndEnabled(ctx, SelectorSubmitButton); err != nil {
			return fmt.Errorf("iteration %d: wait login form: %w", i, err)
		}
		if err := driver.FillField(ctx, SelectorEmailInput, cred.Email); err != nil {
			return fmt.Errorf("iteration %d: fill email: %w", i, err)
		}
		if err := driver.FillField(ctx, SelectorPasswordInput, cred.Password); err != nil {
			return fmt.Errorf("iteration %d: fill password: %w", i, err)
		}
		if err := driver.Click(ctx, SelectorSubmitButton); err != nil {
			return fmt.Errorf("iteration %d: submit: %w", i, err)
		}

		if err := driver.WaitVisibleAndEnabled(ctx, SelectorSuccessMessage); err != nil {
			return fmt.Errorf("iteration %d: wait success banner: %w", i, err)
		}
		text, err := driver.TextContent(ctx, SelectorSuccessMessage)
		if err != nil {
			return fmt.Errorf("iteration %d: read success banner: %w", i, err)
		}
		if err := assertContains(text, "Email: "+cred.Email, "success banner"); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := assertContains(text, "Password: "+cred.Password, "success banner"); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}

		if err := driver.WaitHidden(ctx, SelectorSuccessMessage); err != nil {
			return fmt.Errorf("iteration %d: wait banner gone: %w", i, err)
		}
	}

	return nil
}

// AnimatedDashboard - challenge 2. The submit control slides in disabled
// and its click handler is attached from an animation-completion callback,
// so the scenario settles animations before clicking. The menu may only be
// opened once the component has flipped data-initialized to "true".
func AnimatedDashboard(ctx context.Context, driver interfaces.Driver) error {
	if err := driver.Navigate(ctx, "challenge2"); err != nil {
		return fmt.Errorf("open challenge 2: %w", err)
	}

	if err := driver.WaitVisibleAndEnabled(ctx, SelectorSubmitButton); err != nil {
		return fmt.Errorf("wait submit enabled: %w", err)
	}
	if err := driver.WaitAnimationSettled(ctx, SelectorSubmitButton); err != nil {
		return fmt.Errorf("settle submit animation: %w", err)
	}

	cred := entities.CredentialAt(1)
	if err := driver.FillField(ctx, SelectorEmailInput, cred.Email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	if err := driver.FillField(ctx, SelectorPasswordInput, cred.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := driver.Click(ctx, SelectorSubmitButton); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	if err := driver.WaitVisibleAndEnabled(ctx, SelectorDashboard); err != nil {
		return fmt.Errorf("wait dashboard: %w", err)
	}
	if err := driver.WaitAnimationSettled(ctx, SelectorDashboard); err != nil {
		return fmt.Errorf("settle dashboard animation: %w", err)
	}
	if err := driver.WaitAttributeEquals(ctx, SelectorMenuButton, "data-initialized", "true"); err != nil {
		return fmt.Errorf("wait menu initialized: %w", err)
	}

	if err := driver.Click(ctx, SelectorMenuButton); err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorMenuDropdown); err != nil {
		return fmt.Errorf("wait menu dropdown: %w", err)
	}
	if err := driver.WaitAnimationSettled(ctx, SelectorMenuDropdown); err != nil {
		return fmt.Errorf("settle dropdown animation: %w", err)
	}

	if err := driver.Click(ctx, SelectorLogoutButton); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := driver.WaitHidden(ctx, SelectorDashboard); err != nil {
		return fmt.Errorf("wait dashboard gone: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorSubmitButton); err != nil {
		return fmt.Errorf("wait login form back: %w", err)
	}

	return nil
}

// ForgotPassword - challenge 3. Walks the multi-step reset flow. The
// "Reset Password" name is shared by a heading and a button, the role-scoped
// selectors keep the two apart.
func ForgotPassword(ctx context.Context, driver interfaces.Driver) error {
	if err := driver.Navigate(ctx, "challenge3"); err != nil {
		return fmt.Errorf("open challenge 3: %w", err)
	}

	if err := driver.Click(ctx, SelectorForgotPasswordLink); err != nil {
		return fmt.Errorf("open reset flow: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorResetHeading); err != nil {
		return fmt.Errorf("wait reset heading: %w", err)
	}

	cred := entities.CredentialAt(1)
	if err := driver.FillField(ctx, SelectorResetEmailInput, cred.Email); err != nil {
		return fmt.Errorf("fill reset email: %w", err)
	}
	if err := driver.Click(ctx, SelectorResetButton); err != nil {
		return fmt.Errorf("request reset: %w", err)
	}

	if err := driver.WaitVisibleAndEnabled(ctx, SelectorSuccessPanel); err != nil {
		return fmt.Errorf("wait success panel: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorSentHeading); err != nil {
		return fmt.Errorf("wait sent heading: %w", err)
	}
	message, err := driver.TextContent(ctx, SelectorResetMessage)
	if err != nil {
		return fmt.Errorf("read reset message: %w", err)
	}
	if err := assertContains(message, cred.Email, "reset message"); err != nil {
		return err
	}

	if err := driver.Click(ctx, SelectorBackToLoginButton); err != nil {
		return fmt.Errorf("back to login: %w", err)
	}
	if err := driver.WaitHidden(ctx, SelectorSuccessPanel); err != nil {
		return fmt.Errorf("wait success panel gone: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorEmailInput); err != nil {
		return fmt.Errorf("wait login form back: %w", err)
	}

	return nil
}

// ReadinessFlagLogin - challenge 4. Waits for the app's global readiness
// flag, then submits through the bounded retry loop because the backend
// may still drop the first clicks.
func ReadinessFlagLogin(ctx context.Context, driver interfaces.Driver) error {
	if err := driver.Navigate(ctx, "challenge4"); err != nil {
		return fmt.Errorf("open challenge 4: %w", err)
	}

	if err := driver.WaitGlobalFlag(ctx, AppReadyFlag); err != nil {
		return fmt.Errorf("wait app ready: %w", err)
	}

	cred := entities.CredentialAt(1)
	if err := driver.FillField(ctx, SelectorEmailInput, cred.Email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	if err := driver.FillField(ctx, SelectorPasswordInput, cred.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}

	if err := driver.RetryableSubmit(ctx, SelectorSubmitButton, SelectorProfileContainer, entities.DefaultSubmitRetryPolicy()); err != nil {
		return fmt.Errorf("submit with retries: %w", err)
	}

	if err := driver.Click(ctx, SelectorProfileButton); err != nil {
		return fmt.Errorf("open profile menu: %w", err)
	}
	if err := driver.Click(ctx, SelectorProfileLogout); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if err := driver.WaitHidden(ctx, SelectorProfileContainer); err != nil {
		return fmt.Errorf("wait profile gone: %w", err)
	}
	if err := driver.WaitVisibleAndEnabled(ctx, SelectorEmailInput); err != nil {
		return fmt.Errorf("wait login form back: %w", err)
	}

	return nil
}

// assertContains - scenario-level content assertion, kept apart from the
// driver's wait failures so a report can tell a readiness timeout from a
// wrong-content failure.
func assertContains(text, want, what string) error {
	if !strings.Contains(text, want) {
		return fmt.Errorf("%s mismatch: %q does not contain %q", what, text, want)
	}
	return nil
}
