package domain

import "time"

// Notice is an announcement posted by an administrator. Readable by anyone,
// writable by admins only.
type Notice struct {
	ID        int64     `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MailJob is a single outbound email handed to the mail dispatcher.
type MailJob struct {
	To       string
	Subject  string
	HTMLBody string
}
