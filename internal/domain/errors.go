package domain

import "errors"

var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrInvalidUrgency    = errors.New("invalid urgency level")
	ErrInvalidClinicTime = errors.New("invalid clinic time")
	ErrLocationRequired  = errors.New("location required")
	ErrDonorNameRequired = errors.New("donor name required")
	ErrBloodTypeRequired = errors.New("blood type required")
	ErrSlotNotOffered    = errors.New("slot was not offered for this booking")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAuthRequired      = errors.New("authentication required")
	ErrInvalidID         = errors.New("invalid id")
)
