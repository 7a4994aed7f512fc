package ids

import "github.com/segmentio/ksuid"

// New returns a sortable 27-character identifier for users and sessions.
func New() string {
	return ksuid.New().String()
}
