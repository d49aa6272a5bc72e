package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskhive_backend/internal/models"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this task")
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindAll(limit, offset int) ([]models.Review, error)
	CountAll() (int64, error)
	FindByHelper(helperID string) ([]models.Review, error)
	FindByUser(userID string) ([]models.Review, error)
	FindByTask(taskID string) ([]models.Review, error)
	FindByTaskAndReviewer(taskID string, reviewerRole models.Role) (*models.Review, error)
	Update(review *models.Review) error
	Delete(id string) error
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	// One review per (task, reviewer side).
	var existing models.Review
	err := r.db.Where("task_id = ? AND reviewer_role = ?", review.TaskID, review.ReviewerRole).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindAll(limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) FindByHelper(helperID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("helper_id = ?", helperID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByTask(taskID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("task_id = ?", taskID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByTaskAndReviewer(taskID string, reviewerRole models.Role) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("task_id = ? AND reviewer_role = ?", taskID, reviewerRole).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Review{}, "id = ?", id).Error
}
