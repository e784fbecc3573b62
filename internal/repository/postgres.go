package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo is the Postgres-backed implementation of MarketplaceDB
type PostgresRepo struct {
	DB *pgxpool.Pool
}

// NewPostgresRepo creates a new PostgresRepo instance
func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

const bidColumns = `id, project_id, contractor_id, status, final_contract_price, completion_days,
	proposal, terms, contractor_signatures, owner_signatures, date_submitted`

// GetUser returns a user by ID
func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	query := `SELECT id, role, name, email, address, phone, company_name, license_number
	          FROM users WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(
		&user.UserID, &user.Role, &user.Name, &user.Email,
		&user.Address, &user.Phone, &user.CompanyName, &user.LicenseNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biderrors.ErrNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w: %v", userID, biderrors.ErrTransport, err)
	}
	return user, nil
}

// ListCategories returns all reference categories
func (r *PostgresRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %v", biderrors.ErrTransport, err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("list categories: %w: %v", biderrors.ErrTransport, err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateProject stores a new project and its category links in one transaction
func (r *PostgresRepo) CreateProject(ctx context.Context, project model.Project) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `INSERT INTO projects (id, owner_id, title, description, location, budget, bid_deadline, status, created_at)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(ctx, insertQuery,
		project.ProjectID, project.OwnerID, project.Title, project.Description,
		project.Location, project.Budget, project.BidDeadline, project.Status, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("create project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	if err := replaceProjectCategories(ctx, tx, project.ProjectID, project.CategoryIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("create project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	return nil
}

// GetProject returns a project by ID
func (r *PostgresRepo) GetProject(ctx context.Context, projectID string) (model.Project, error) {
	return getProject(ctx, r.DB, projectID)
}

// pgx.Tx and *pgxpool.Pool both satisfy this; project reads work inside and
// outside a transaction.
type queryRunner interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getProject(ctx context.Context, q queryRunner, projectID string) (model.Project, error) {
	var project model.Project
	query := `SELECT id, owner_id, title, description, location, budget, bid_deadline, status, created_at
	          FROM projects WHERE id = $1`
	err := q.QueryRow(ctx, query, projectID).Scan(
		&project.ProjectID, &project.OwnerID, &project.Title, &project.Description,
		&project.Location, &project.Budget, &project.BidDeadline, &project.Status, &project.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Project{}, fmt.Errorf("get project %s: %w", projectID, biderrors.ErrNotFound)
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("get project %s: %w: %v", projectID, biderrors.ErrTransport, err)
	}

	rows, err := q.Query(ctx, `SELECT category_id FROM project_categories WHERE project_id = $1 ORDER BY category_id`, projectID)
	if err != nil {
		return model.Project{}, fmt.Errorf("get project %s categories: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return model.Project{}, fmt.Errorf("get project %s categories: %w: %v", projectID, biderrors.ErrTransport, err)
		}
		project.CategoryIDs = append(project.CategoryIDs, id)
	}
	return project, rows.Err()
}

// UpdateProject replaces the project row and its category links
func (r *PostgresRepo) UpdateProject(ctx context.Context, project model.Project) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("update project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `UPDATE projects
	                SET title = $1, description = $2, location = $3, budget = $4, bid_deadline = $5, status = $6
	                WHERE id = $7`
	tag, err := tx.Exec(ctx, updateQuery,
		project.Title, project.Description, project.Location,
		project.Budget, project.BidDeadline, project.Status, project.ProjectID)
	if err != nil {
		return fmt.Errorf("update project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update project %s: %w", project.ProjectID, biderrors.ErrNotFound)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM project_categories WHERE project_id = $1`, project.ProjectID); err != nil {
		return fmt.Errorf("update project %s categories: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	if err := replaceProjectCategories(ctx, tx, project.ProjectID, project.CategoryIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("update project %s: %w: %v", project.ProjectID, biderrors.ErrTransport, err)
	}
	return nil
}

// DeleteProject withdraws every active bid on the project, then removes the
// project and its bid rows in the same transaction. Nothing is left pointing
// at a missing project.
func (r *PostgresRepo) DeleteProject(ctx context.Context, projectID string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete project %s: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE bids SET status = $1 WHERE project_id = $2 AND status NOT IN ($3, $4, $5)`,
		model.BidWithdrawn, projectID, model.BidAccepted, model.BidRejected, model.BidWithdrawn); err != nil {
		return fmt.Errorf("delete project %s: withdraw bids: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM bids WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete project %s: remove bids: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM project_categories WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete project %s: remove categories: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("delete project %s: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete project %s: %w", projectID, biderrors.ErrNotFound)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete project %s: %w: %v", projectID, biderrors.ErrTransport, err)
	}
	return nil
}

// ListProjects returns projects, optionally filtered by category
func (r *PostgresRepo) ListProjects(ctx context.Context, categoryIDs []string) ([]model.Project, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if len(categoryIDs) > 0 {
		query := `SELECT DISTINCT p.id FROM projects p
		          JOIN project_categories pc ON pc.project_id = p.id
		          WHERE pc.category_id = ANY($1)
		          ORDER BY p.id`
		rows, err = r.DB.Query(ctx, query, categoryIDs)
	} else {
		rows, err = r.DB.Query(ctx, `SELECT id FROM projects ORDER BY created_at, id`)
	}
	if err != nil {
		return nil, fmt.Errorf("list projects: %w: %v", biderrors.ErrTransport, err)
	}
	return r.collectProjects(ctx, rows)
}

// ListProjectsByOwner returns all projects posted by one owner
func (r *PostgresRepo) ListProjectsByOwner(ctx context.Context, ownerID string) ([]model.Project, error) {
	rows, err := r.DB.Query(ctx, `SELECT id FROM projects WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects for owner %s: %w: %v", ownerID, biderrors.ErrTransport, err)
	}
	return r.collectProjects(ctx, rows)
}

func (r *PostgresRepo) collectProjects(ctx context.Context, rows pgx.Rows) ([]model.Project, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("list projects: %w: %v", biderrors.ErrTransport, err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w: %v", biderrors.ErrTransport, err)
	}

	projects := make([]model.Project, 0, len(ids))
	for _, id := range ids {
		project, err := getProject(ctx, r.DB, id)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// CreateBid stores a new bid
func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	terms, contractorSigs, ownerSigs, err := marshalBidDocuments(bid)
	if err != nil {
		return fmt.Errorf("create bid %s: %w", bid.BidID, err)
	}
	insertQuery := `INSERT INTO bids (` + bidColumns + `)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.DB.Exec(ctx, insertQuery,
		bid.BidID, bid.ProjectID, bid.ContractorID, bid.Status,
		bid.FinalContractPrice, bid.CompletionDays, bid.Proposal,
		terms, contractorSigs, ownerSigs, bid.DateSubmitted)
	if err != nil {
		return fmt.Errorf("create bid %s: %w: %v", bid.BidID, biderrors.ErrTransport, err)
	}
	return nil
}

// GetBid returns a bid by ID
func (r *PostgresRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, bidID)
	bid, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}
	return bid, nil
}

// UpdateBid replaces a stored bid
func (r *PostgresRepo) UpdateBid(ctx context.Context, bid model.Bid) error {
	terms, contractorSigs, ownerSigs, err := marshalBidDocuments(bid)
	if err != nil {
		return fmt.Errorf("update bid %s: %w", bid.BidID, err)
	}
	updateQuery := `UPDATE bids
	                SET status = $1, final_contract_price = $2, completion_days = $3, proposal = $4,
	                    terms = $5, contractor_signatures = $6, owner_signatures = $7
	                WHERE id = $8`
	tag, err := r.DB.Exec(ctx, updateQuery,
		bid.Status, bid.FinalContractPrice, bid.CompletionDays, bid.Proposal,
		terms, contractorSigs, ownerSigs, bid.BidID)
	if err != nil {
		return fmt.Errorf("update bid %s: %w: %v", bid.BidID, biderrors.ErrTransport, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update bid %s: %w", bid.BidID, biderrors.ErrNotFound)
	}
	return nil
}

// ListBidsByProject returns a project's bids in submission order
func (r *PostgresRepo) ListBidsByProject(ctx context.Context, projectID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE project_id = $1 ORDER BY date_submitted, id`
	return r.queryBids(ctx, query, projectID)
}

// ListBidsByContractor returns all bids placed by one contractor
func (r *PostgresRepo) ListBidsByContractor(ctx context.Context, contractorID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE contractor_id = $1 ORDER BY date_submitted, id`
	return r.queryBids(ctx, query, contractorID)
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, arg any) ([]model.Bid, error) {
	rows, err := r.DB.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w: %v", biderrors.ErrTransport, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("list bids: %w: %v", biderrors.ErrTransport, err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// GetActiveBid returns the contractor's non-withdrawn bid on a project
func (r *PostgresRepo) GetActiveBid(ctx context.Context, projectID, contractorID string) (model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids
	          WHERE project_id = $1 AND contractor_id = $2 AND status <> $3
	          LIMIT 1`
	row := r.DB.QueryRow(ctx, query, projectID, contractorID, model.BidWithdrawn)
	bid, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("active bid for contractor %s on project %s: %w",
			contractorID, projectID, biderrors.ErrNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("active bid for contractor %s: %w: %v", contractorID, biderrors.ErrTransport, err)
	}
	return bid, nil
}

// AwardBid performs the award as a single transaction. The project row is the
// serialization point: the conditional UPDATE flips Open -> Awarded and a zero
// affected-row count means another award already committed, so the caller gets
// ErrAlreadyAwarded and the transaction rolls back untouched.
func (r *PostgresRepo) AwardBid(ctx context.Context, projectID, bidID string, ownerSignatures []model.Signature) (model.Project, model.Bid, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE projects SET status = $1 WHERE id = $2 AND status = $3`,
		model.ProjectAwarded, projectID, model.ProjectOpen)
	if err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists); err != nil {
			return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
		}
		if !exists {
			return model.Project{}, model.Bid{}, fmt.Errorf("award bid on project %s: %w", projectID, biderrors.ErrNotFound)
		}
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w", bidID, biderrors.ErrAlreadyAwarded)
	}

	if _, err := tx.Exec(ctx, `UPDATE bids SET status = $1 WHERE project_id = $2 AND id <> $3 AND status <> $4`,
		model.BidRejected, projectID, bidID, model.BidWithdrawn); err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: reject competitors: %w: %v", bidID, biderrors.ErrTransport, err)
	}

	sigs, err := json.Marshal(ownerSignatures)
	if err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: encode signatures: %w", bidID, err)
	}
	tag, err = tx.Exec(ctx, `UPDATE bids SET status = $1, owner_signatures = $2 WHERE id = $3 AND project_id = $4 AND status <> $5`,
		model.BidAccepted, sigs, bidID, projectID, model.BidWithdrawn)
	if err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bids WHERE id = $1 AND project_id = $2)`, bidID, projectID).Scan(&exists); err != nil {
			return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
		}
		if exists {
			return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w - bid is withdrawn", bidID, biderrors.ErrInvalidState)
		}
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w", bidID, biderrors.ErrNotFound)
	}

	project, err := getProject(ctx, tx, projectID)
	if err != nil {
		return model.Project{}, model.Bid{}, err
	}
	row := tx.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, bidID)
	bid, err := scanBid(row)
	if err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w: %v", bidID, biderrors.ErrTransport, err)
	}
	return project, bid, nil
}

func replaceProjectCategories(ctx context.Context, tx pgx.Tx, projectID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		_, err := tx.Exec(ctx, `INSERT INTO project_categories (project_id, category_id) VALUES ($1, $2)`,
			projectID, categoryID)
		if err != nil {
			return fmt.Errorf("link project %s to category %s: %w: %v", projectID, categoryID, biderrors.ErrTransport, err)
		}
	}
	return nil
}

func marshalBidDocuments(bid model.Bid) (terms, contractorSigs, ownerSigs []byte, err error) {
	if terms, err = json.Marshal(bid.Terms); err != nil {
		return nil, nil, nil, fmt.Errorf("encode terms: %w", err)
	}
	if contractorSigs, err = json.Marshal(bid.ContractorSignatures); err != nil {
		return nil, nil, nil, fmt.Errorf("encode contractor signatures: %w", err)
	}
	if ownerSigs, err = json.Marshal(bid.OwnerSignatures); err != nil {
		return nil, nil, nil, fmt.Errorf("encode owner signatures: %w", err)
	}
	return terms, contractorSigs, ownerSigs, nil
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var (
		bid            model.Bid
		terms          []byte
		contractorSigs []byte
		ownerSigs      []byte
	)
	err := row.Scan(&bid.BidID, &bid.ProjectID, &bid.ContractorID, &bid.Status,
		&bid.FinalContractPrice, &bid.CompletionDays, &bid.Proposal,
		&terms, &contractorSigs, &ownerSigs, &bid.DateSubmitted)
	if err != nil {
		return model.Bid{}, err
	}
	if err := json.Unmarshal(terms, &bid.Terms); err != nil {
		return model.Bid{}, fmt.Errorf("decode terms: %w", err)
	}
	if err := json.Unmarshal(contractorSigs, &bid.ContractorSignatures); err != nil {
		return model.Bid{}, fmt.Errorf("decode contractor signatures: %w", err)
	}
	if err := json.Unmarshal(ownerSigs, &bid.OwnerSignatures); err != nil {
		return model.Bid{}, fmt.Errorf("decode owner signatures: %w", err)
	}
	return bid, nil
}
