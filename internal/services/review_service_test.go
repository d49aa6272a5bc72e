package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive_backend/internal/models"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

func TestReviewService_UserReviewsHelper(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Home Improvement")
	task := env.createTask(t, user.ID, category.ID)

	resp, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID,
		TaskID:     task.ID,
		Rating:     4,
		ReviewText: "Quick and tidy.",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, helper.ID, resp.HelperID)
	assert.Equal(t, string(models.RoleUser), resp.ReviewerRole)
	assert.Equal(t, string(models.RoleHelper), resp.RevieweeRole)

	// The helper's counters moved, the user's did not.
	gotHelper := env.reloadHelper(t, helper.ID)
	assert.Equal(t, 1, gotHelper.TotalPeopleRated)
	assert.Equal(t, 4, gotHelper.TotalRating)

	gotUser := env.reloadUser(t, user.ID)
	assert.Equal(t, 0, gotUser.TotalHelperRated)
	assert.Equal(t, 0, gotUser.TotalRating)
}

func TestReviewService_HelperReviewsUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Pet Care")
	task := env.createTask(t, user.ID, category.ID)

	_, err := env.reviewService.CreateReview(helper.ID, models.RoleHelper, &dto.CreateReviewRequest{
		RevieweeID: user.ID,
		TaskID:     task.ID,
		Rating:     5,
	})
	require.NoError(t, err)

	gotUser := env.reloadUser(t, user.ID)
	assert.Equal(t, 1, gotUser.TotalHelperRated)
	assert.Equal(t, 5, gotUser.TotalRating)

	gotHelper := env.reloadHelper(t, helper.ID)
	assert.Equal(t, 0, gotHelper.TotalPeopleRated)
	assert.Equal(t, 0, gotHelper.TotalRating)
}

func TestReviewService_OneReviewPerTaskAndRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Tech Support")
	task := env.createTask(t, user.ID, category.ID)

	req := &dto.CreateReviewRequest{RevieweeID: helper.ID, TaskID: task.ID, Rating: 3}
	_, err := env.reviewService.CreateReview(user.ID, models.RoleUser, req)
	require.NoError(t, err)

	_, err = env.reviewService.CreateReview(user.ID, models.RoleUser, req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)

	// The counters were not double-applied.
	gotHelper := env.reloadHelper(t, helper.ID)
	assert.Equal(t, 1, gotHelper.TotalPeopleRated)
	assert.Equal(t, 3, gotHelper.TotalRating)

	// The opposite role can still review the same task.
	_, err = env.reviewService.CreateReview(helper.ID, models.RoleHelper, &dto.CreateReviewRequest{
		RevieweeID: user.ID,
		TaskID:     task.ID,
		Rating:     5,
	})
	require.NoError(t, err)
}

func TestReviewService_UpdateAppliesDelta(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Event Help")
	task := env.createTask(t, user.ID, category.ID)

	created, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID,
		TaskID:     task.ID,
		Rating:     2,
	})
	require.NoError(t, err)

	newRating := 5
	updated, err := env.reviewService.UpdateReview(user.ID, created.ID, &dto.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	// Rated count unchanged, total moved by the delta.
	gotHelper := env.reloadHelper(t, helper.ID)
	assert.Equal(t, 1, gotHelper.TotalPeopleRated)
	assert.Equal(t, 5, gotHelper.TotalRating)
}

func TestReviewService_UpdateByStrangerForbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	stranger := env.createUser(t, "stranger")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Others")
	task := env.createTask(t, user.ID, category.ID)

	created, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID,
		TaskID:     task.ID,
		Rating:     4,
	})
	require.NoError(t, err)

	newRating := 1
	_, err = env.reviewService.UpdateReview(stranger.ID, created.ID, &dto.UpdateReviewRequest{Rating: &newRating})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestReviewService_DeleteReversesCounters(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Yard & Garden Care")
	task := env.createTask(t, user.ID, category.ID)

	created, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID,
		TaskID:     task.ID,
		Rating:     5,
	})
	require.NoError(t, err)

	rating := 3
	_, err = env.reviewService.UpdateReview(user.ID, created.ID, &dto.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 3, env.reloadHelper(t, helper.ID).TotalRating)

	require.NoError(t, env.reviewService.DeleteReview(user.ID, created.ID))

	_, err = env.reviewRepo.FindByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrReviewNotFound)

	// Create followed by delete leaves the counters where they started.
	gotHelper := env.reloadHelper(t, helper.ID)
	assert.Equal(t, 0, gotHelper.TotalPeopleRated)
	assert.Equal(t, 0, gotHelper.TotalRating)
}

func TestReviewService_DeleteByCounterpart(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	stranger := env.createUser(t, "stranger")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Tech Support")
	task := env.createTask(t, user.ID, category.ID)

	created, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID,
		TaskID:     task.ID,
		Rating:     4,
	})
	require.NoError(t, err)

	err = env.reviewService.DeleteReview(stranger.ID, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// The reviewed helper may remove a review about itself.
	require.NoError(t, env.reviewService.DeleteReview(helper.ID, created.ID))
}

func TestReviewService_RatingBounds(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Others")
	task := env.createTask(t, user.ID, category.ID)

	for _, rating := range []int{0, 6, -1} {
		_, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
			RevieweeID: helper.ID,
			TaskID:     task.ID,
			Rating:     rating,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_ListByParty(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.createUser(t, "poster")
	helper := env.createHelper(t, "fixer")
	category := env.createCategory(t, "Errands & Delivery")
	taskA := env.createTask(t, user.ID, category.ID)
	taskB := env.createTask(t, user.ID, category.ID)

	_, err := env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID, TaskID: taskA.ID, Rating: 4,
	})
	require.NoError(t, err)
	_, err = env.reviewService.CreateReview(user.ID, models.RoleUser, &dto.CreateReviewRequest{
		RevieweeID: helper.ID, TaskID: taskB.ID, Rating: 5,
	})
	require.NoError(t, err)
	_, err = env.reviewService.CreateReview(helper.ID, models.RoleHelper, &dto.CreateReviewRequest{
		RevieweeID: user.ID, TaskID: taskA.ID, Rating: 5,
	})
	require.NoError(t, err)

	byHelper, err := env.reviewService.ListHelperReviews(helper.ID)
	require.NoError(t, err)
	assert.Len(t, byHelper, 3)

	byTask, err := env.reviewService.ListTaskReviews(taskA.ID)
	require.NoError(t, err)
	assert.Len(t, byTask, 2)

	page, err := env.reviewService.ListReviews(2, 0)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 2)
	assert.EqualValues(t, 3, page.Total)
}
