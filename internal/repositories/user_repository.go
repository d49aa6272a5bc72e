package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskhive_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByLogin(login string) (*models.User, error)
	FindAll() ([]models.User, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	Update(user *models.User) error

	// IncrementRatingCounters atomically adjusts the aggregate rating
	// counters, avoiding lost updates under concurrent reviews.
	IncrementRatingCounters(id string, ratedDelta, ratingDelta int) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByLogin resolves either a username or an email address.
func (r *UserRepositoryImpl) FindByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) IncrementRatingCounters(id string, ratedDelta, ratingDelta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"total_helper_rated": gorm.Expr("total_helper_rated + ?", ratedDelta),
			"total_rating":       gorm.Expr("total_rating + ?", ratingDelta),
		}).Error
}
