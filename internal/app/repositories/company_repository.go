package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// CompanyRepository handles company role-record database operations
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// Create inserts a company row keyed to a profile
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO companies (id, profile_id, company_name, industry, contact_person, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		company.ID, company.ProfileID, company.CompanyName, company.Industry,
		company.ContactPerson, company.Phone).Scan(&company.CreatedAt, &company.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating company record: %w", err)
	}
	return nil
}

// GetByProfileID retrieves a company record by its profile id
func (r *CompanyRepository) GetByProfileID(ctx context.Context, profileID string) (*models.Company, error) {
	company := &models.Company{}
	err := r.db.QueryRow(ctx, `
		SELECT id, profile_id, company_name, industry, contact_person, phone, created_at, updated_at
		FROM companies
		WHERE profile_id = $1`,
		profileID).Scan(
		&company.ID, &company.ProfileID, &company.CompanyName, &company.Industry,
		&company.ContactPerson, &company.Phone, &company.CreatedAt, &company.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error fetching company record: %w", err)
	}
	return company, nil
}

// DeleteByProfileID removes a company row during registration rollback
func (r *CompanyRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("error deleting company record: %w", err)
	}
	return nil
}

// GetByID retrieves a company record by its own id
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	company := &models.Company{}
	err := r.db.QueryRow(ctx, `
		SELECT id, profile_id, company_name, industry, contact_person, phone, created_at, updated_at
		FROM companies
		WHERE id = $1`,
		id).Scan(
		&company.ID, &company.ProfileID, &company.CompanyName, &company.Industry,
		&company.ContactPerson, &company.Phone, &company.CreatedAt, &company.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error fetching company record: %w", err)
	}
	return company, nil
}
