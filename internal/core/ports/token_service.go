package ports

import "github.com/skillsetu/marketplace-api/internal/core/domain"

// TokenService issues and verifies signed, expiring identity assertions.
// Verification is purely cryptographic: it never consults the user store,
// so a user deleted after issuance stays authenticated until expiry.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}
