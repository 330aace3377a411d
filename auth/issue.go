package auth

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claim names the service relies on.
const (
	ClaimSubject         = "sub"
	ClaimOrgID           = "org_id"
	ClaimScopes          = "scopes"
	ClaimConfidentiality = "confidentiality_levels"
	ClaimExpiry          = "exp"
	ClaimNotBefore       = "nbf"
	ClaimIssuedAt        = "iat"
	ClaimIssuer          = "iss"
)

// SubjectKind selects the issuer tag baked into an issued token.
type SubjectKind string

const (
	SubjectStandard     SubjectKind = "standard"
	SubjectAdmin        SubjectKind = "admin"
	SubjectOrganization SubjectKind = "organization"
)

// Issuer tags per subject kind.
const (
	issuerStandard     = "ragstack"
	issuerAdmin        = "ragstack-admin"
	issuerOrganization = "ragstack-org"
)

var (
	errIdentityEmpty      = errors.New("identity is required")
	errSecretEmpty        = errors.New("secret is required")
	errUnknownSubjectKind = errors.New("unknown subject kind")
)

// IssueOption adjusts optional claims of an issued token.
type IssueOption func(builder *jwt.Builder)

// WithNotBefore sets the nbf claim on the issued token.
func WithNotBefore(t time.Time) IssueOption {
	return func(b *jwt.Builder) {
		b.NotBefore(t)
	}
}

// IssueToken builds and signs a token with iat = now, exp = now +
// validity, the given scopes and confidentiality levels, and an issuer
// tag derived from the subject kind. Signing is symmetric (HS256) with
// the given shared secret.
//
// This is a test and bootstrap utility, not a trust boundary:
// production tokens are issued by the remote service, and nothing in
// this client verifies signatures locally.
func IssueToken(
	kind SubjectKind,
	identity string,
	secret string,
	validity time.Duration,
	scopes []string,
	confidentialityLevels []string,
	opts ...IssueOption,
) (string, error) {
	if identity == "" {
		return "", errIdentityEmpty
	}
	if secret == "" {
		return "", errSecretEmpty
	}

	issuer, err := issuerFor(kind)
	if err != nil {
		return "", err
	}

	now := time.Now()
	builder := jwt.NewBuilder().
		Issuer(issuer).
		Subject(identity).
		IssuedAt(now).
		Expiration(now.Add(validity)).
		Claim(ClaimScopes, scopes).
		Claim(ClaimConfidentiality, confidentialityLevels)

	if kind == SubjectOrganization {
		builder = builder.Claim(ClaimOrgID, identity)
	}

	for _, opt := range opts {
		opt(builder)
	}

	token, err := builder.Build()
	if err != nil {
		return "", newAuthenticationError("building token claims", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secret)))
	if err != nil {
		return "", newAuthenticationError("signing token", err)
	}
	return string(signed), nil
}

func issuerFor(kind SubjectKind) (string, error) {
	switch kind {
	case SubjectStandard:
		return issuerStandard, nil
	case SubjectAdmin:
		return issuerAdmin, nil
	case SubjectOrganization:
		return issuerOrganization, nil
	default:
		return "", errUnknownSubjectKind
	}
}
