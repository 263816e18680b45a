package ports

import "context"

// JobPostedEvent carries the details announced when a job post is created.
type JobPostedEvent struct {
	JobPostID   string `json:"jobPostId"`
	CRID        string `json:"crid"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Shift       string `json:"shift"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Broadcaster announces newly created job posts to interested subscribers.
type Broadcaster interface {
	BroadcastJobPosted(ctx context.Context, event JobPostedEvent) error
}
