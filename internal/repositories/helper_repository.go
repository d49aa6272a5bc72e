package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskhive_backend/internal/models"
)

var (
	ErrHelperNotFound      = errors.New("helper not found")
	ErrHelperAlreadyExists = errors.New("helper already exists")
)

type HelperRepository interface {
	Create(helper *models.Helper) error
	FindByID(id string) (*models.Helper, error)
	FindByIDs(ids []string) ([]models.Helper, error)
	FindByLogin(login string) (*models.Helper, error)
	FindAll() ([]models.Helper, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	Update(helper *models.Helper) error

	// IncrementRatingCounters atomically adjusts the aggregate rating
	// counters, avoiding lost updates under concurrent reviews.
	IncrementRatingCounters(id string, ratedDelta, ratingDelta int) error
}

type HelperRepositoryImpl struct {
	db *gorm.DB
}

func NewHelperRepository(db *gorm.DB) HelperRepository {
	return &HelperRepositoryImpl{db: db}
}

func (r *HelperRepositoryImpl) Create(helper *models.Helper) error {
	return r.db.Create(helper).Error
}

func (r *HelperRepositoryImpl) FindByID(id string) (*models.Helper, error) {
	var helper models.Helper
	err := r.db.First(&helper, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelperNotFound
		}
		return nil, err
	}
	return &helper, nil
}

// FindByIDs loads the helpers for a bounded reference set fetched at the
// start of a cascade.
func (r *HelperRepositoryImpl) FindByIDs(ids []string) ([]models.Helper, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var helpers []models.Helper
	err := r.db.Where("id IN ?", ids).Find(&helpers).Error
	return helpers, err
}

// FindByLogin resolves either a username or an email address.
func (r *HelperRepositoryImpl) FindByLogin(login string) (*models.Helper, error) {
	var helper models.Helper
	err := r.db.Where("username = ? OR email = ?", login, login).First(&helper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelperNotFound
		}
		return nil, err
	}
	return &helper, nil
}

func (r *HelperRepositoryImpl) FindAll() ([]models.Helper, error) {
	var helpers []models.Helper
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&helpers).Error
	return helpers, err
}

func (r *HelperRepositoryImpl) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Helper{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *HelperRepositoryImpl) Update(helper *models.Helper) error {
	return r.db.Save(helper).Error
}

func (r *HelperRepositoryImpl) IncrementRatingCounters(id string, ratedDelta, ratingDelta int) error {
	return r.db.Model(&models.Helper{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"total_people_rated": gorm.Expr("total_people_rated + ?", ratedDelta),
			"total_rating":       gorm.Expr("total_rating + ?", ratingDelta),
		}).Error
}
