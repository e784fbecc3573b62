package models

import "time"

// UserRole distinguishes project owners from bidding contractors
type UserRole string

const (
	RoleOwner      UserRole = "Owner"
	RoleContractor UserRole = "Contractor"
)

// Valid reports whether the role is one of the known roles
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleContractor:
		return true
	}
	return false
}

// User represents a registered participant of the marketplace
type User struct {
	UserID        string   `json:"user_id"`
	Role          UserRole `json:"role"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	CompanyName   string   `json:"company_name,omitempty"`
	LicenseNumber string   `json:"license_number,omitempty"` // contractors only
}

// Category is static reference data, many-to-many with Project
type Category struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Project represents a construction project posted by an owner
type Project struct {
	ProjectID   string        `json:"project_id"`
	OwnerID     string        `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Budget      float64       `json:"budget"`
	BidDeadline time.Time     `json:"bid_deadline"`
	Status      ProjectStatus `json:"status"`
	CategoryIDs []string      `json:"category_ids"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Signature is one signature line on the contract document
type Signature struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Empty reports whether the signature carries no information at all
func (s Signature) Empty() bool {
	return s.Name == "" && s.Title == "" && s.Date == ""
}

// ContractTerms holds the contract-document fields of a bid. Only the
// expanded bid form is modeled; the earlier flat {amount, days} shape is
// not supported.
type ContractTerms struct {
	ContractorName    string `json:"contractor_name"`
	ContractorAddress string `json:"contractor_address"`
	ContractorCity    string `json:"contractor_city"`
	ContractorState   string `json:"contractor_state"`
	ContractorZip     string `json:"contractor_zip"`
	ContractorLicense string `json:"contractor_license"`

	OwnerName    string `json:"owner_name"`
	OwnerAddress string `json:"owner_address"`
	OwnerCity    string `json:"owner_city"`
	OwnerState   string `json:"owner_state"`
	OwnerZip     string `json:"owner_zip"`

	LenderName    string `json:"lender_name"`
	LenderAddress string `json:"lender_address"`
	LenderCity    string `json:"lender_city"`
	LenderState   string `json:"lender_state"`
	LenderZip     string `json:"lender_zip"`

	ProjectNumber      string `json:"project_number"`
	ProjectAddress     string `json:"project_address"`
	ProjectCity        string `json:"project_city"`
	ProjectState       string `json:"project_state"`
	ProjectZip         string `json:"project_zip"`
	ProjectDescription string `json:"project_description"`

	OtherContractDocs string `json:"other_contract_docs"`
	WorkInvolved      string `json:"work_involved"`

	CommencementType  string `json:"commencement_type"` // notice, acceptance or other
	CommencementDays  int    `json:"commencement_days"`
	CommencementOther string `json:"commencement_other"`
	CompletionType    string `json:"completion_type"` // days or other
	CompletionOther   string `json:"completion_other"`

	ProgressRetentionPercent float64 `json:"progress_retention_percent"`
	ProgressRetentionDays    int     `json:"progress_retention_days"`
	FinalPaymentDays         int     `json:"final_payment_days"`
	TerminationDate          string  `json:"termination_date"`
	ProposalDate             string  `json:"proposal_date"`
	WarrantyYears            int     `json:"warranty_years"`
	AdditionalProvisions     string  `json:"additional_provisions"`
}

// Bid represents a contractor's bid on a project
type Bid struct {
	BidID        string    `json:"bid_id"`
	ProjectID    string    `json:"project_id"`
	ContractorID string    `json:"contractor_id"`
	Status       BidStatus `json:"status"`

	FinalContractPrice float64 `json:"final_contract_price"`
	CompletionDays     int     `json:"completion_days"`
	Proposal           string  `json:"proposal"`

	Terms                ContractTerms `json:"terms"`
	ContractorSignatures []Signature   `json:"contractor_signatures"`
	OwnerSignatures      []Signature   `json:"owner_signatures"`

	DateSubmitted time.Time `json:"date_submitted"`
}

// Active reports whether the bid still counts against the one-active-bid-
// per-contractor rule, i.e. it has not been withdrawn.
func (b Bid) Active() bool {
	return b.Status != BidWithdrawn
}
