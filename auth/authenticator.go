package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Authenticator holds one bearer token for the lifetime of a client
// instance and answers local questions about it: the authorization
// header, the decoded claims, and whether the validity window covers
// the current time. No operation contacts the remote service.
//
// The token string is immutable; every query re-decodes it from
// scratch so validity is always evaluated against the current
// wall-clock time, never a cached result. An Authenticator is safe
// for concurrent use.
type Authenticator struct {
	token string
}

// New constructs an Authenticator after a structural check: the token
// must be non-empty and split into exactly three non-empty
// dot-separated segments. The signature is not verified locally; the
// client does not hold the service's signing key, so cryptographic
// verification is the service's job on every call.
//
// Failures match ErrAuthentication via errors.Is.
func New(token string) (*Authenticator, error) {
	if token == "" {
		return nil, newAuthenticationError("token is empty", nil)
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, newAuthenticationError("token must have exactly three segments", nil)
	}
	for _, segment := range segments {
		if segment == "" {
			return nil, newAuthenticationError("token has an empty segment", nil)
		}
	}

	return &Authenticator{token: token}, nil
}

// Headers returns the headers to attach to every outbound request.
func (a *Authenticator) Headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + a.token}
}

// Token returns the raw token string.
func (a *Authenticator) Token() string {
	return a.token
}

// TenantID returns the tenant identifier from the claim set: the
// org_id claim when present, otherwise the subject. Returns an empty
// string when the claim set carries neither.
func (a *Authenticator) TenantID() (string, error) {
	claims, err := a.Claims()
	if err != nil {
		return "", err
	}

	if org, ok := claims[ClaimOrgID].(string); ok && org != "" {
		return org, nil
	}
	if sub, ok := claims[ClaimSubject].(string); ok {
		return sub, nil
	}
	return "", nil
}

// Claims returns the full decoded claim set. Fails with an
// ErrAuthentication error when the payload segment is not valid
// base64url-encoded JSON.
func (a *Authenticator) Claims() (map[string]any, error) {
	return a.decodeClaims()
}

// IsValid reports whether the token's validity window covers the
// current time. It never fails: an undecodable claim set, an exp in
// the past, or an nbf in the future all yield false. Tokens without
// exp or nbf claims are treated as valid indefinitely.
func (a *Authenticator) IsValid() bool {
	claims, err := a.decodeClaims()
	if err != nil {
		return false
	}

	now := time.Now().Unix()
	if exp, ok := numericClaim(claims, ClaimExpiry); ok && exp < now {
		return false
	}
	if nbf, ok := numericClaim(claims, ClaimNotBefore); ok && nbf > now {
		return false
	}
	return true
}

// Scopes returns the scopes claim, or nil when absent.
func (a *Authenticator) Scopes() ([]string, error) {
	claims, err := a.decodeClaims()
	if err != nil {
		return nil, err
	}
	return stringSliceClaim(claims, ClaimScopes), nil
}

// ConfidentialityLevels returns the confidentiality levels claim, or
// nil when absent.
func (a *Authenticator) ConfidentialityLevels() ([]string, error) {
	claims, err := a.decodeClaims()
	if err != nil {
		return nil, err
	}
	return stringSliceClaim(claims, ClaimConfidentiality), nil
}

// decodeClaims decodes the payload segment. The header and signature
// segments are treated as opaque; only the middle segment is ever
// inspected by this package.
func (a *Authenticator) decodeClaims() (map[string]any, error) {
	segments := strings.Split(a.token, ".")

	payload, err := decodeBase64URL(segments[1])
	if err != nil {
		return nil, newAuthenticationError("claims segment is not valid base64url", err)
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, newAuthenticationError("claims segment is not valid JSON", err)
	}
	return claims, nil
}

// decodeBase64URL accepts both raw (unpadded) and padded base64url,
// since both occur in the wild.
func decodeBase64URL(s string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(s)
}

// numericClaim reads an epoch-seconds claim. JSON numbers decode as
// float64; issued tokens may also carry them as json.Number.
func numericClaim(claims map[string]any, name string) (int64, bool) {
	switch v := claims[name].(type) {
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func stringSliceClaim(claims map[string]any, name string) []string {
	raw, ok := claims[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
