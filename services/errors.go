package services

import "errors"

// Errors shared across services and mapped to HTTP in the handlers package.
var (
	ErrSlotNotFound   = errors.New("bracket slot not found")
	ErrNoMatchForSlot = errors.New("no match has been scheduled for this slot yet")

	ErrForfeitTeamNotSelected = errors.New("select the forfeiting team first")
	ErrForfeitTeamNotInSlot   = errors.New("selected team is not part of this matchup")
	ErrNoForfeitInProgress    = errors.New("no forfeit selection in progress")

	ErrNothingToSave = errors.New("no schedule changes to save")

	ErrForbiddenOperation = errors.New("operation not allowed for the current user")
)
