package constants

import "time"

// Numeric range upper bounds (inclusive) per difficulty
const (
	EasyMax   = 100
	MediumMax = 1000
	HardMax   = 5000
)

// Attempt caps per difficulty for attempts mode
const (
	EasyAttempts   = 10
	MediumAttempts = 15
	HardAttempts   = 25
)

// Time mode
const (
	// TimeLimit is the wall-clock budget for a time mode game
	TimeLimit = 25 * time.Second
)

// Application
const (
	AppName    = "Number Guesser"
	AppVersion = "V1.1"
)
