package domain

import "errors"

// ErrCourtTaken is returned by a calendar store when a conditional write finds an overlapping event
var ErrCourtTaken = errors.New("court is already booked for the requested time")
