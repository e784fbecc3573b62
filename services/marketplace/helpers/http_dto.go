package helpers

import (
	"time"

	model "bid-portal/internal/models"
)

// Request DTOs. The award request keeps the externally-observed camelCase
// key names; everything else follows this service's snake_case convention.

type ProjectRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Budget      float64   `json:"budget" binding:"required,gt=0"`
	BidDeadline time.Time `json:"bid_deadline" binding:"required"`
	CategoryIDs []string  `json:"category_ids"`
}

type SubmitBidRequest struct {
	ProjectID            string              `json:"project_id" binding:"required"`
	FinalContractPrice   float64             `json:"final_contract_price" binding:"required,gt=0"`
	CompletionDays       int                 `json:"completion_days" binding:"required,gte=1"`
	Proposal             string              `json:"proposal"`
	Terms                model.ContractTerms `json:"terms"`
	ContractorSignatures []model.Signature   `json:"contractor_signatures"`
}

type EditBidRequest struct {
	FinalContractPrice   float64             `json:"final_contract_price" binding:"required,gt=0"`
	CompletionDays       int                 `json:"completion_days" binding:"required,gte=1"`
	Proposal             string              `json:"proposal"`
	Terms                model.ContractTerms `json:"terms"`
	ContractorSignatures []model.Signature   `json:"contractor_signatures"`
}

type AwardBidRequest struct {
	BidID          string          `json:"bidId" binding:"required"`
	OwnerActorID   string          `json:"ownerActorId" binding:"required"`
	AcceptanceInfo model.Signature `json:"acceptanceInfo" binding:"required"`
}
