package models

// ProjectStatus is the closed set of project states
type ProjectStatus string

const (
	ProjectOpen      ProjectStatus = "Open"
	ProjectAwarded   ProjectStatus = "Awarded"
	ProjectClosed    ProjectStatus = "Closed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// Valid reports whether the status is a known project status
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOpen, ProjectAwarded, ProjectClosed, ProjectCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the project may move to the target status.
// A project only ever leaves Open; Awarded, Closed and Cancelled are final.
func (s ProjectStatus) CanTransitionTo(target ProjectStatus) bool {
	switch s {
	case ProjectOpen:
		return target == ProjectAwarded || target == ProjectClosed || target == ProjectCancelled
	case ProjectAwarded, ProjectClosed, ProjectCancelled:
		return false
	}
	return false
}

// AcceptsBids reports whether bids may still be created or edited against a
// project in this status
func (s ProjectStatus) AcceptsBids() bool {
	return s == ProjectOpen
}

// BidStatus is the closed set of bid states
type BidStatus string

const (
	BidSubmitted   BidStatus = "Submitted"
	BidUnderReview BidStatus = "Under Review"
	BidAccepted    BidStatus = "Accepted"
	BidRejected    BidStatus = "Rejected"
	BidWithdrawn   BidStatus = "Withdrawn"
)

// Valid reports whether the status is a known bid status
func (s BidStatus) Valid() bool {
	switch s {
	case BidSubmitted, BidUnderReview, BidAccepted, BidRejected, BidWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether the bid permits no further edits. Accepted and
// Rejected are reached only through an award; Withdrawn through the
// contractor's explicit action.
func (s BidStatus) Terminal() bool {
	switch s {
	case BidAccepted, BidRejected, BidWithdrawn:
		return true
	case BidSubmitted, BidUnderReview:
		return false
	}
	return false
}

// Editable reports whether the owning contractor may still change the bid
func (s BidStatus) Editable() bool {
	return s == BidSubmitted || s == BidUnderReview
}
