package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vendorgrid/internal/model"
	"vendorgrid/internal/repository"

	"gorm.io/gorm"
)

// --- Vendor DTOs ---

type CreateVendorRequest struct {
	Name         string `json:"name" binding:"required"`
	TaxID        string `json:"tax_id" binding:"required"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
}

// UpdateVendorRequest uses pointer fields so "not supplied" is distinct from
// "explicitly cleared". Only non-nil fields are forwarded to storage.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	TaxID        *string `json:"tax_id"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email"`
}

type VendorResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SearchVendorsParams struct {
	Name         string
	TaxID        string
	Address      string
	ContactEmail string
}

type VendorPage struct {
	Items      []VendorResponse `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// --- Interface ---

type VendorService interface {
	GetVendorByID(ctx context.Context, id uint) (VendorResponse, error)
	GetAllVendors(ctx context.Context) ([]VendorResponse, error)
	SearchVendorsPaged(ctx context.Context, params SearchVendorsParams, page, pageSize int) (VendorPage, error)
	CreateVendor(ctx context.Context, req CreateVendorRequest) (VendorResponse, error)
	UpdateVendor(ctx context.Context, id uint, req UpdateVendorRequest) (VendorResponse, error)
	DeleteVendor(ctx context.Context, id uint) (bool, error)
	ExportVendorsCSV(vendors []VendorResponse) (string, error)
	ImportVendorsCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

// --- Implementation ---

type vendorService struct {
	vendorRepo repository.VendorRepository
	txManager  repository.TransactionManager
}

func NewVendorService(vendorRepo repository.VendorRepository, txManager repository.TransactionManager) VendorService {
	return &vendorService{vendorRepo: vendorRepo, txManager: txManager}
}

func (s *vendorService) GetVendorByID(ctx context.Context, id uint) (VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return VendorResponse{}, fmt.Errorf("failed to fetch vendor: %w", err)
	}
	if vendor == nil {
		return VendorResponse{}, ErrVendorNotFound
	}
	return toVendorResponse(*vendor), nil
}

func (s *vendorService) GetAllVendors(ctx context.Context) ([]VendorResponse, error) {
	vendors, err := s.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendors: %w", err)
	}

	res := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		res = append(res, toVendorResponse(v))
	}
	return res, nil
}

// SearchVendorsPaged clamps page to >= 1 and pageSize to [1,100] rather than
// rejecting out-of-range input, then delegates filtering and counting to the
// repository. TotalPages is ceil(total / pageSize).
func (s *vendorService) SearchVendorsPaged(ctx context.Context, params SearchVendorsParams, page, pageSize int) (VendorPage, error) {
	page, pageSize = clampPage(page, pageSize)

	vendors, total, err := s.vendorRepo.Search(ctx, repository.SearchFilter{
		Name:         params.Name,
		TaxID:        params.TaxID,
		Address:      params.Address,
		ContactEmail: params.ContactEmail,
	}, page, pageSize)
	if err != nil {
		return VendorPage{}, fmt.Errorf("failed to search vendors: %w", err)
	}

	items := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, toVendorResponse(v))
	}

	return VendorPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// CreateVendor enforces tax_id uniqueness twice: a repository pre-check for
// the common case, and conversion of the storage unique-constraint rejection
// for the race where two creates with the same tax_id arrive concurrently.
func (s *vendorService) CreateVendor(ctx context.Context, req CreateVendorRequest) (VendorResponse, error) {
	name := strings.TrimSpace(req.Name)
	taxID := strings.TrimSpace(req.TaxID)
	if name == "" {
		return VendorResponse{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if taxID == "" {
		return VendorResponse{}, fmt.Errorf("%w: tax_id is required", ErrValidation)
	}

	existing, err := s.vendorRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return VendorResponse{}, fmt.Errorf("failed to check tax ID: %w", err)
	}
	if existing != nil {
		return VendorResponse{}, fmt.Errorf("tax ID %q: %w", taxID, ErrDuplicateTaxID)
	}

	vendor := &model.Vendor{
		Name:         name,
		TaxID:        taxID,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return VendorResponse{}, fmt.Errorf("tax ID %q: %w", taxID, ErrDuplicateTaxID)
		}
		return VendorResponse{}, fmt.Errorf("failed to create vendor: %w", err)
	}

	return toVendorResponse(*vendor), nil
}

// UpdateVendor applies a partial update. A tax_id change is re-checked
// against all other vendors; keeping the current tax_id is always allowed.
func (s *vendorService) UpdateVendor(ctx context.Context, id uint, req UpdateVendorRequest) (VendorResponse, error) {
	var updated *model.Vendor

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.vendorRepo.FindByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch vendor: %w", err)
		}
		if existing == nil {
			return ErrVendorNotFound
		}

		fields := map[string]interface{}{}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: name cannot be empty", ErrValidation)
			}
			fields["name"] = name
		}
		if req.TaxID != nil {
			taxID := strings.TrimSpace(*req.TaxID)
			if taxID == "" {
				return fmt.Errorf("%w: tax_id cannot be empty", ErrValidation)
			}
			if taxID != existing.TaxID {
				conflict, err := s.vendorRepo.FindByTaxID(txCtx, taxID)
				if err != nil {
					return fmt.Errorf("failed to check tax ID: %w", err)
				}
				if conflict != nil && conflict.ID != id {
					return fmt.Errorf("tax ID %q: %w", taxID, ErrDuplicateTaxID)
				}
			}
			fields["tax_id"] = taxID
		}
		if req.Address != nil {
			fields["address"] = *req.Address
		}
		if req.ContactEmail != nil {
			fields["contact_email"] = *req.ContactEmail
		}

		if len(fields) == 0 {
			updated = existing
			return nil
		}

		updated, err = s.vendorRepo.Update(txCtx, id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("tax ID: %w", ErrDuplicateTaxID)
			}
			return fmt.Errorf("failed to update vendor: %w", err)
		}
		if updated == nil {
			return ErrVendorNotFound
		}
		return nil
	})
	if err != nil {
		return VendorResponse{}, err
	}

	return toVendorResponse(*updated), nil
}

// DeleteVendor removes the vendor physically. Deleting an id that does not
// exist reports false without an error.
func (s *vendorService) DeleteVendor(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.vendorRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete vendor: %w", err)
	}
	return deleted, nil
}

// --- Helpers ---

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	} else if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func toVendorResponse(v model.Vendor) VendorResponse {
	return VendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		TaxID:        v.TaxID,
		Address:      v.Address,
		ContactEmail: v.ContactEmail,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
