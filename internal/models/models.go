package models

import (
	"strings"

	"github.com/google/uuid"
)

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Cause{},
		&CauseHero{},
		&ContactSubmission{},
		&Registration{},
		&ForumUser{},
		&ForumPost{},
		&ForumReply{},
		&Mentor{},
		&VideoLecture{},
		&Paper{},
		&Ticket{},
	}
}

func newID() string {
	return uuid.NewString()
}

func ensureID(id *string) {
	if strings.TrimSpace(*id) == "" {
		*id = newID()
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
