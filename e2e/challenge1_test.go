package e2e

import (
	"context"
	"testing"

	"login_challenges/application/scenarios"
	"login_challenges/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatedLoginScenario(t *testing.T) {
	t.Parallel()
	driver, _ := newSession(t)

	require.NoError(t, scenarios.RepeatedLogin(context.Background(), driver))
}

// TestSuccessBannerCarriesSubmittedCredentials walks two iterations by hand
// and checks that the banner for the second shows exactly the second pair,
// and that the first banner is gone before the second submit happens.
func TestSuccessBannerCarriesSubmittedCredentials(t *testing.T) {
	t.Parallel()
	driver, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, driver.Navigate(ctx, "challenge1"))

	for i := 1; i <= 2; i++ {
		cred := entities.CredentialAt(i)

		if i > 1 {
			visible, err := driver.IsVisible(ctx, scenarios.SelectorSuccessMessage)
			require.NoError(t, err)
			assert.False(t, visible, "previous banner must be hidden before iteration %d submits", i)
		}

		require.NoError(t, driver.FillField(ctx, scenarios.SelectorEmailInput, cred.Email))
		require.NoError(t, driver.FillField(ctx, scenarios.SelectorPasswordInput, cred.Password))
		require.NoError(t, driver.Click(ctx, scenarios.SelectorSubmitButton))

		require.NoError(t, driver.WaitVisibleAndEnabled(ctx, scenarios.SelectorSuccessMessage))
		text, err := driver.TextContent(ctx, scenarios.SelectorSuccessMessage)
		require.NoError(t, err)

		assert.Contains(t, text, "Email: "+cred.Email)
		assert.Contains(t, text, "Password: "+cred.Password)
		if i == 2 {
			assert.Contains(t, text, "Email: test2@example.com")
			assert.Contains(t, text, "Password: password2")
		}

		require.NoError(t, driver.WaitHidden(ctx, scenarios.SelectorSuccessMessage))
	}
}
