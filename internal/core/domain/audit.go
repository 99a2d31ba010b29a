package domain

import "time"

// AuthAction identifies the account operation an audit entry refers to.
type AuthAction string

const (
	ActionSignUp         AuthAction = "sign_up"
	ActionLogin          AuthAction = "login"
	ActionPasswordChange AuthAction = "password_change"
	ActionDelete         AuthAction = "delete"
)

const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
)

// AuthEvent records a single security-relevant account operation. Events are
// written asynchronously to the audit trail; they never block a request.
type AuthEvent struct {
	Login     string
	Action    AuthAction
	Outcome   string
	Timestamp time.Time
}
