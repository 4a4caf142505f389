package scenarios

// Selectors for the challenge pages. The table is read-only and shared by
// every scenario, including ones running in parallel.

// Login form, common to all four pages
const (
	SelectorEmailInput    = "#email"
	SelectorPasswordInput = "#password"
	SelectorSubmitButton  = "#submitButton"
)

// Challenge 1: delayed success message
const SelectorSuccessMessage = "#successMessage"

// Challenge 2: animated dashboard
const (
	SelectorDashboard    = "#dashboard"
	SelectorMenuButton   = "#menuButton"
	SelectorMenuDropdown = "#menuDropdown"
	SelectorLogoutButton = "#logoutButton"
)

// Challenge 3: forgot password flow. The page reuses the accessible name
// "Reset Password" for a heading and a button, so both lookups are scoped
// by role.
const (
	SelectorForgotPasswordLink = `role=link[name="Forgot Password?"]`
	SelectorResetHeading       = `role=heading[name="Reset Password"]`
	SelectorResetButton        = `role=button[name="Reset Password"]`
	SelectorResetEmailInput    = "#resetEmail"
	SelectorSuccessPanel       = "#successPanel"
	SelectorSentHeading        = `role=heading[name="Reset Link Sent"]`
	SelectorResetMessage       = "#resetMessage"
	SelectorBackToLoginButton  = "#backToLoginButton"
)

// Challenge 4: readiness flag and retried submit. The logout control has no
// id of its own, it is identified by its text within the profile menu.
const (
	SelectorProfileContainer = "#profileContainer"
	SelectorProfileButton    = "#profileButton"
	SelectorProfileLogout    = "#profileMenu >> text=Logout"

	AppReadyFlag = "isAppReady"
)
