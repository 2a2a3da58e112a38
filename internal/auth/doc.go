// Package auth implements credential verification, signed-token issuance,
// and the request-level token gate for the portal.
package auth
