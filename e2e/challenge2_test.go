package e2e

import (
	"context"
	"testing"

	"login_challenges/application/scenarios"
	"login_challenges/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatedDashboardScenario(t *testing.T) {
	t.Parallel()
	driver, _ := newSession(t)

	require.NoError(t, scenarios.AnimatedDashboard(context.Background(), driver))
}

// TestSubmitClickedOnlyAfterAnimationsSettle verifies that once the wait
// primitives let a click through, no animation is still running on the
// submit control.
func TestSubmitClickedOnlyAfterAnimationsSettle(t *testing.T) {
	t.Parallel()
	driver, page := newSession(t)
	ctx := context.Background()

	require.NoError(t, driver.Navigate(ctx, "challenge2"))
	require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorSubmitButton))
	require.NoError(t, driver.WaitAnimationSettled(ctx, scenarios.SelectorSubmitButton))

	result, err := page.Locator(scenarios.SelectorSubmitButton).Evaluate(
		`el => el.getAnimations({ subtree: true }).filter(a => a.playState === 'running').length === 0`, nil)
	require.NoError(t, err)
	assert.Equal(t, true, result, "submit control still has running animations at click time")

	cred := entities.CredentialAt(1)
	require.NoError(t, driver.FillField(ctx, scenarios.SelectorEmailInput, cred.Email))
	require.NoError(t, driver.FillField(ctx, scenarios.SelectorPasswordInput, cred.Password))
	require.NoError(t, driver.Click(ctx, scenarios.SelectorSubmitButton))
	require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorDashboard))
}

// TestMenuInitializedBeforeOpen asserts the data-initialized attribute
// reads "true" before the menu is ever clicked, and that the click then
// actually opens the dropdown.
func TestMenuInitializedBeforeOpen(t *testing.T) {
	t.Parallel()
	driver, page := newSession(t)
	ctx := context.Background()

	require.NoError(t, driver.Navigate(ctx, "challenge2"))
	require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorSubmitButton))
	require.NoError(t, driver.WaitAnimationSettled(ctx, scenarios.SelectorSubmitButton))

	cred := entities.CredentialAt(1)
	require.NoError(t, driver.FillField(ctx, scenarios.SelectorEmailInput, cred.Email))
	require.NoError(t, driver.FillField(ctx, scenarios.SelectorPasswordInput, cred.Password))
	require.NoError(t, driver.Click(ctx, scenarios.SelectorSubmitButton))

	require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorDashboard))
	require.NoError(t, driver.WaitAttributeEquals(ctx, scenarios.SelectorMenuButton, "data-initialized", "true"))

	attr, err := page.Locator(scenarios.SelectorMenuButton).GetAttribute("data-initialized")
	require.NoError(t, err)
	assert.Equal(t, "true", attr)

	require.NoError(t, driver.Click(ctx, scenarios.SelectorMenuButton))
	require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorMenuDropdown))
}

// TestLogoutRestoresLoginForm covers the round trip: after logout the
// login entry control is visible again and the dashboard is gone.
func TestLogoutRestoresLoginForm(t *testing.T) {
	t.Parallel()
	driver, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, scenarios.AnimatedDashboard(ctx, driver))

	visible, err := driver.IsVisible(ctx, scenarios.SelectorSubmitButton)
	require.NoError(t, err)
	assert.True(t, visible, "login submit should be visible after logout")

	dashboardVisible, err := driver.IsVisible(ctx, scenarios.SelectorDashboard)
	require.NoError(t, err)
	assert.False(t, dashboardVisible, "dashboard should be hidden after logout")
}
