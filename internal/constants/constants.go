package constants

import "time"

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// TokenValidity is how long an issued bearer token stays valid.
// There is no refresh mechanism; clients re-authenticate after expiry.
const TokenValidity = 7 * 24 * time.Hour

// Upload limits
const (
	MaxCertificateSize = 300 * 1024       // 300 KB, PDF only
	MaxResourceSize    = 10 * 1024 * 1024 // 10 MB
)

// Upload directories, relative to the upload root. Files are served
// back under the same paths.
const (
	CertificateDir = "uploads/certificates"
	ResourceDir    = "uploads/recursos"
)
