/*
Package auth manages bearer tokens for the RAG service client.

An Authenticator wraps a single immutable token string. Construction
performs only a structural check (three non-empty dot-separated
segments); signature verification is deliberately left to the remote
service, which holds the signing key. All claim queries decode the
payload segment on demand, so validity checks always reflect the
current wall-clock time.

IssueToken mints HS256-signed tokens for tests and bootstrap flows.
*/
package auth
