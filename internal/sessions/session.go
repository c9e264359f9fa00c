package sessions

import "time"

// Session is the ephemeral record behind an issued admin token. Sessions are
// never persisted across process restarts unless the Redis repository is in
// use; restart invalidates everything held in memory.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
