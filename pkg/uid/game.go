package uid

import "github.com/google/uuid"

// GenerateMatchID returns a random id used to tag the log lines of one match.
func GenerateMatchID() string {
	return uuid.NewString()
}
