package domain

import "time"

// HotReason is a private note on why the author finds their partner
// attractive. Visible only to the author.
type HotReason struct {
	ID        int64
	Reason    string
	AuthorID  int64
	CreatedAt time.Time
}
