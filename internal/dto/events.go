package dto

// Domain events published to the message broker. Delivery is best-effort; a
// missing broker must never fail the originating request.

const (
	EventUserVerified = "user.verified"
	EventJobPosted    = "job.posted"
)

type UserVerifiedEvent struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	VerifiedAt string `json:"verified_at"`
}

type JobPostedEvent struct {
	JobID    uint   `json:"job_id"`
	PosterID uint   `json:"poster_id"`
	Title    string `json:"title"`
	Matches  int    `json:"matches"`
	PostedAt string `json:"posted_at"`
}
