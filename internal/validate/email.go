package validate

import (
	emailverifier "github.com/AfterShip/email-verifier"
)

var verifier = emailverifier.NewVerifier()

// EmailSyntax reports whether the address is syntactically a valid email.
func EmailSyntax(email string) bool {
	return verifier.ParseAddress(email).Valid
}

// Email reports whether the address is syntactically valid AND does not
// belong to a known disposable-mail domain. Signup requires both checks;
// forgot-password only requires EmailSyntax.
func Email(email string) bool {
	syntax := verifier.ParseAddress(email)
	if !syntax.Valid {
		return false
	}
	return !verifier.IsDisposable(syntax.Domain)
}
