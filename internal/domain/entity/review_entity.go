package entity

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewHidden   ReviewStatus = "HIDDEN"
)

type Review struct {
	ID      int64        `json:"id"`
	UserID  int64        `json:"userId"`
	Rating  int          `json:"rating"`
	Content string       `json:"content"`
	Status  ReviewStatus `json:"status"`
	User    *User        `json:"user,omitempty"`
	Audit
}
