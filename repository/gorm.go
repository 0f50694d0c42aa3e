package repository

import (
	"context"
	"errors"

	"cardoctor-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServices implements ServiceRepository on a gorm handle.
type GormServices struct {
	db *gorm.DB
}

func NewGormServices(db *gorm.DB) *GormServices { return &GormServices{db: db} }

var _ ServiceRepository = (*GormServices)(nil)

func (r *GormServices) List(ctx context.Context) ([]models.ServiceSummary, error) {
	var services []models.ServiceSummary
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Select("id", "service_id", "title", "price", "img").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServices) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceDetail, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Select("title", "price", "img").
		First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.ServiceDetail{Title: service.Title, Price: service.Price, Img: service.Img}, nil
}

func (r *GormServices) FindByFingerprint(ctx context.Context, serviceID, title string, price float64) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND title = ? AND price = ?", serviceID, title, price).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// Create inserts a new service. Callers run FindByFingerprint first; the
// check and the insert are two statements, so two concurrent identical
// creations can still both land. That window is accepted.
func (r *GormServices) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GormOrders implements OrderRepository on a gorm handle.
type GormOrders struct {
	db *gorm.DB
}

func NewGormOrders(db *gorm.DB) *GormOrders { return &GormOrders{db: db} }

var _ OrderRepository = (*GormOrders)(nil)

func (r *GormOrders) ListByEmail(ctx context.Context, email string) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrders) Create(ctx context.Context, o *models.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormOrders) SetStatus(ctx context.Context, id uuid.UUID, status string) (models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.UpdateResult{}, result.Error
	}
	return models.UpdateResult{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

func (r *GormOrders) Delete(ctx context.Context, id uuid.UUID) (models.DeleteResult, error) {
	result := r.db.WithContext(ctx).Delete(&models.ServiceOrder{}, "id = ?", id)
	if result.Error != nil {
		return models.DeleteResult{}, result.Error
	}
	return models.DeleteResult{DeletedCount: result.RowsAffected}, nil
}

func (r *GormOrders) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
