// Package clientip extracts the originating client address from an HTTP
// request, honoring the usual proxy headers before falling back to the
// connection's remote address. The result feeds the session fingerprint, so
// the extraction order must stay stable across a deployment.
package clientip
