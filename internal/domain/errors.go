package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Mission errors
	ErrMsgMissionNotFound   = "mission not found"
	ErrMsgMissionIncomplete = "mission is not complete"
	ErrMsgAlreadyClaimed    = "mission reward already claimed for this window"
	ErrMsgClaimPending      = "a claim for this mission is already in progress"
	ErrMsgUnknownSource     = "unknown activity source"

	// Raffle errors
	ErrMsgRaffleNotFound      = "raffle not found"
	ErrMsgRaffleNotActive     = "raffle is not active"
	ErrMsgRaffleAlreadyDrawn  = "raffle has already been drawn"
	ErrMsgAlreadyEntered      = "already entered this raffle"
	ErrMsgNoParticipants      = "raffle has no participants"
	ErrMsgInvalidWinnersCount = "winners count must be at least 1"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgDeadlockDetected  = "deadlock detected"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Mission errors
	ErrMissionNotFound   = errors.New(ErrMsgMissionNotFound)
	ErrMissionIncomplete = errors.New(ErrMsgMissionIncomplete)
	ErrAlreadyClaimed    = errors.New(ErrMsgAlreadyClaimed)
	ErrClaimPending      = errors.New(ErrMsgClaimPending)
	ErrUnknownSource     = errors.New(ErrMsgUnknownSource)

	// Raffle errors
	ErrRaffleNotFound      = errors.New(ErrMsgRaffleNotFound)
	ErrRaffleNotActive     = errors.New(ErrMsgRaffleNotActive)
	ErrRaffleAlreadyDrawn  = errors.New(ErrMsgRaffleAlreadyDrawn)
	ErrAlreadyEntered      = errors.New(ErrMsgAlreadyEntered)
	ErrNoParticipants      = errors.New(ErrMsgNoParticipants)
	ErrInvalidWinnersCount = errors.New(ErrMsgInvalidWinnersCount)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
