// Package common contains wire-level constants shared by the storefront
// client and the catalog stub endpoint.
package common

// RequestIDHeaderName carries the per-attempt request id on outbound
// requests; the stub echoes it back.
const RequestIDHeaderName = "X-Request-Id"

// CategoryPath is the catalog endpoint path relative to the API base URL.
const CategoryPath = "/business/category"

// Envelope discriminator values of the "code" field.
const (
	CodeData   = "1"
	CodeNoData = "0"
)

// MaxResponseBytes bounds how much of a response body is read.
const MaxResponseBytes = 8 << 20
