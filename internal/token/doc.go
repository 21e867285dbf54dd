// Package token issues ES256 signed JSON Web Tokens for the App Store Connect API.
//
// An Issuer holds one P-256 private key for its whole lifetime and produces compact
// JWS strings of the form base64url(header).base64url(claims).base64url(signature).
// Issuers are immutable after construction and safe for concurrent use.
package token
