package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhive_backend/internal/auth"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services"
)

// testEnv wires the full service stack against an isolated in-memory
// database so every test exercises real persistence.
type testEnv struct {
	db *gorm.DB

	userRepo         repositories.UserRepository
	helperRepo       repositories.HelperRepository
	taskRepo         repositories.TaskRepository
	categoryRepo     repositories.CategoryRepository
	reviewRepo       repositories.ReviewRepository
	refreshTokenRepo repositories.RefreshTokenRepository

	taskService   *services.TaskService
	userService   *services.UserService
	helperService *services.HelperService
	reviewService *services.ReviewService
	authService   *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Helper{},
		&models.Category{},
		&models.Task{},
		&models.Review{},
		&models.RefreshToken{},
	))

	env := &testEnv{
		db:               db,
		userRepo:         repositories.NewUserRepository(db),
		helperRepo:       repositories.NewHelperRepository(db),
		taskRepo:         repositories.NewTaskRepository(db),
		categoryRepo:     repositories.NewCategoryRepository(db),
		reviewRepo:       repositories.NewReviewRepository(db),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
	}

	env.taskService = services.NewTaskService(env.taskRepo, env.helperRepo, env.userRepo, env.categoryRepo)
	env.userService = services.NewUserService(env.userRepo, env.taskRepo, env.taskService, nil)
	env.helperService = services.NewHelperService(env.helperRepo, env.taskRepo, nil)
	env.reviewService = services.NewReviewService(env.reviewRepo, env.userRepo, env.helperRepo, env.taskRepo)
	env.authService = services.NewAuthService(env.userRepo, env.helperRepo, env.refreshTokenRepo)

	return env
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test " + username,
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, env.userRepo.Create(user))
	return user
}

func (env *testEnv) createHelper(t *testing.T, username string) *models.Helper {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	helper := &models.Helper{
		Name:         "Test " + username,
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
		Availability: true,
		IsActive:     true,
	}
	require.NoError(t, env.helperRepo.Create(helper))
	return helper
}

func (env *testEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, env.categoryRepo.Create(category))
	return category
}

func (env *testEnv) createTask(t *testing.T, ownerID, categoryID string) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:       "Fix the fence",
		Description: "The back fence lost two boards in the storm.",
		CategoryID:  categoryID,
		Location:    *models.NewPoint(43.238949, 76.889709),
		Status:      models.TaskStatusNew,
		OwnerID:     ownerID,
		Budget:      50,
	}
	require.NoError(t, env.taskRepo.Create(task))
	return task
}

func (env *testEnv) reloadTask(t *testing.T, id string) *models.Task {
	t.Helper()
	task, err := env.taskRepo.FindByID(id)
	require.NoError(t, err)
	return task
}

func (env *testEnv) reloadHelper(t *testing.T, id string) *models.Helper {
	t.Helper()
	helper, err := env.helperRepo.FindByID(id)
	require.NoError(t, err)
	return helper
}

func (env *testEnv) reloadUser(t *testing.T, id string) *models.User {
	t.Helper()
	user, err := env.userRepo.FindByID(id)
	require.NoError(t, err)
	return user
}
