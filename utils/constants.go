// File: utils/constants.go
package utils

// ProcessedEventPrefix is the prefix used for Redis keys of webhook events
// whose payment has already been recorded.
const ProcessedEventPrefix = "webhook:processed:"

// Context keys set by the identity middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// RoleAdmin is the role claim allowed to run administrative actions.
const RoleAdmin = "admin"
