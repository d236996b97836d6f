// File: utils/constants.go
package utils

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "requestId"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// AdminSessionPrefix is the prefix used for Redis admin session keys.
const AdminSessionPrefix = "adminSession:"

// DateLayout is the ISO calendar date used by forms and messages.
const DateLayout = "2006-01-02"
