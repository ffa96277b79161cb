package domain

import "time"

// AuthAction identifies what the actor attempted.
type AuthAction string

const (
	ActionLogin  AuthAction = "login"
	ActionLogout AuthAction = "logout"
)

// AuthOutcome records how the attempt ended.
type AuthOutcome string

const (
	OutcomeSuccess AuthOutcome = "success"
	OutcomeDenied  AuthOutcome = "denied"
)

// AuthEvent is one entry in the authentication audit trail. Events are
// recorded best-effort and must never block or fail a login.
type AuthEvent struct {
	ID         uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	ActorEmail string      `json:"actor_email" gorm:"index;not null"`
	Action     AuthAction  `json:"action" gorm:"type:varchar(16);not null"`
	Outcome    AuthOutcome `json:"outcome" gorm:"type:varchar(16);not null"`
	At         time.Time   `json:"at" gorm:"not null"`
}
