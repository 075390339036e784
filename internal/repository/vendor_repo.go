package repository

import (
	"context"
	"errors"
	"strings"

	"vendorgrid/internal/model"

	"gorm.io/gorm"
)

// SearchFilter holds optional substring filters for vendor search.
// Supplied filters are combined with OR: a vendor matches if any field matches.
type SearchFilter struct {
	Name         string
	TaxID        string
	Address      string
	ContactEmail string
}

type VendorRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Vendor, error)
	FindByTaxID(ctx context.Context, taxID string) (*model.Vendor, error)
	FindAll(ctx context.Context) ([]model.Vendor, error)
	Create(ctx context.Context, vendor *model.Vendor) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Vendor, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Search(ctx context.Context, filter SearchFilter, page, pageSize int) ([]model.Vendor, int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	err := GetDB(ctx, r.db).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByTaxID(ctx context.Context, taxID string) (*model.Vendor, error) {
	var vendor model.Vendor
	err := GetDB(ctx, r.db).First(&vendor, "tax_id = ?", taxID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindAll(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Create inserts a new vendor. A tax_id collision surfaces as
// gorm.ErrDuplicatedKey for the service layer to convert.
func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	return GetDB(ctx, r.db).Create(vendor).Error
}

// Update applies only the given fields and returns the refreshed row,
// or (nil, nil) if no vendor exists at that id. GORM bumps updated_at.
func (r *vendorRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Vendor, error) {
	db := GetDB(ctx, r.db)

	res := db.Model(&model.Vendor{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var vendor model.Vendor
	if err := db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Vendor{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Search performs case-insensitive substring matching on each supplied
// filter, OR-combined. No filters means every vendor matches. Results are
// ordered by ascending id so pagination stays stable, and the returned
// count is taken before the page window is applied.
func (r *vendorRepository) Search(ctx context.Context, filter SearchFilter, page, pageSize int) ([]model.Vendor, int64, error) {
	var conds []string
	var args []interface{}

	addCond := func(column, value string) {
		if value == "" {
			return
		}
		conds = append(conds, "LOWER("+column+") LIKE ?")
		args = append(args, "%"+strings.ToLower(value)+"%")
	}
	addCond("name", filter.Name)
	addCond("tax_id", filter.TaxID)
	addCond("address", filter.Address)
	addCond("contact_email", filter.ContactEmail)

	db := GetDB(ctx, r.db)
	where := strings.Join(conds, " OR ")

	countQuery := db.Model(&model.Vendor{})
	if where != "" {
		countQuery = countQuery.Where(where, args...)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := db.Model(&model.Vendor{})
	if where != "" {
		fetchQuery = fetchQuery.Where(where, args...)
	}

	var vendors []model.Vendor
	offset := (page - 1) * pageSize
	if err := fetchQuery.Order("id ASC").Offset(offset).Limit(pageSize).Find(&vendors).Error; err != nil {
		return nil, 0, err
	}

	return vendors, total, nil
}
