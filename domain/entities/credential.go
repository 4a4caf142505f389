package entities

import "fmt"

// Credential is one email/password pair used for a single login attempt.
type Credential struct {
	Email    string
	Password string
}

// CredentialAt - generates the credential pair for iteration index n.
// The sequence is deterministic so repeated runs submit identical data.
func CredentialAt(n int) Credential {
	return Credential{
		Email:    fmt.Sprintf("test%d@example.com", n),
		Password: fmt.Sprintf("password%d", n),
	}
}
