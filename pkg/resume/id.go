package resume

import "time"

const idLayout = "20060102_150405"

// Clock returns the current time; tests substitute fixed values.
type Clock func() time.Time

// NewID formats t in its own location as resume_YYYYMMDD_HHMMSS.
// Two calls within the same second return the same id.
func NewID(t time.Time) string {
	return "resume_" + t.Format(idLayout)
}
