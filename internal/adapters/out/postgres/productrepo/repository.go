package productrepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a new product. A duplicate name yields errs.ErrObjectAlreadyExists.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: product named %s", errs.ErrObjectAlreadyExists, dto.Name)
		}
		return err
	}

	return nil
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAllByID loads every requested product that exists in one query.
// Rows are locked FOR UPDATE, so inside a transaction concurrent orders for
// the same products queue behind this one. The id ordering keeps lock
// acquisition order stable across transactions.
func (r *GormProductRepository) FindAllByID(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// UpdateQuantity applies every update against the version it was computed
// from. The first stale or missing row aborts with errs.VersionIsInvalidError;
// callers run this inside a unit of work so earlier writes roll back with it.
func (r *GormProductRepository) UpdateQuantity(
	ctx context.Context,
	updates []product.QuantityUpdate,
) ([]*product.Product, error) {
	if len(updates) == 0 {
		return []*product.Product{}, nil
	}

	db := r.db.WithContext(ctx)
	raw := make([]uuid.UUID, 0, len(updates))
	for _, u := range updates {
		if u.Quantity < 0 {
			return nil, errs.NewValueIsOutOfRangeError("quantity", u.Quantity, 0, "unbounded")
		}

		result := db.Model(&ProductDTO{}).
			Where("id = ? AND version = ?", u.ID.Bytes(), u.Version).
			Updates(map[string]any{
				"quantity": u.Quantity,
				"version":  gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			if pgerr.IsCheckViolation(result.Error) {
				return nil, errs.NewValueIsOutOfRangeErrorWithCause("quantity", u.Quantity, 0, "unbounded", result.Error)
			}
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, errs.NewVersionIsInvalidError(fmt.Sprintf("product %s at version %d", u.ID, u.Version))
		}

		raw = append(raw, u.ID.Bytes())
	}

	var dtos []ProductDTO
	if err := db.Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ProductDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	ordered := make([]ProductDTO, 0, len(updates))
	for _, id := range raw {
		ordered = append(ordered, byID[id])
	}

	return toDomainList(ordered)
}
