package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskhive_backend/internal/models"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	OwnerID    string
	CategoryID string
	Status     models.TaskStatus
}

type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id string) (*models.Task, error)
	FindAll(filter TaskFilter) ([]models.Task, error)
	FindByOwner(ownerID string) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id string) error
}

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindAll(filter TaskFilter) ([]models.Task, error) {
	q := r.db.Model(&models.Task{})
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var tasks []models.Task
	err := q.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// FindByOwner loads the bounded set of tasks owned by a user, fetched once
// at the start of an account-deletion cascade.
func (r *TaskRepositoryImpl) FindByOwner(ownerID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("owner_id = ?", ownerID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// --- Categories ---

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	FindAll() ([]models.Category, error)
	Count() (int64, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
