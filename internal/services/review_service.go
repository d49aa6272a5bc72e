package services

import (
	"errors"

	"taskhive_backend/internal/models"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

// ReviewService maintains the review ledger and the aggregate rating
// counters on the reviewed party. Counters always target the reviewee:
// a helper reviewing a user moves the user's counters, and vice versa.
// Average rating is derived as total_rating / rated_count by readers.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
	helperRepo repositories.HelperRepository
	taskRepo   repositories.TaskRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	helperRepo repositories.HelperRepository,
	taskRepo repositories.TaskRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		helperRepo: helperRepo,
		taskRepo:   taskRepo,
	}
}

// CreateReview records a review written by actorID in its actorRole about
// the counterpart named in the request. One review per (task, reviewer
// role) pair; the duplicate check rides on the repository's uniqueness
// guarantee rather than a racy read-then-write.
func (s *ReviewService) CreateReview(actorID string, actorRole models.Role, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	var userID, helperID string
	switch actorRole {
	case models.RoleHelper:
		helperID = actorID
		userID = req.RevieweeID
	case models.RoleUser:
		userID = actorID
		helperID = req.RevieweeID
	default:
		return nil, apperrors.NewBadRequestError("Unknown reviewer role")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, apperrors.ErrNotFound(err, "review", "User not found")
	}
	if _, err := s.helperRepo.FindByID(helperID); err != nil {
		return nil, apperrors.ErrNotFound(err, "review", "Helper not found")
	}
	if _, err := s.taskRepo.FindByID(req.TaskID); err != nil {
		return nil, apperrors.ErrNotFound(err, "review", "Task not found")
	}

	review := &models.Review{
		UserID:       userID,
		TaskID:       req.TaskID,
		HelperID:     helperID,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
		ReviewerRole: actorRole,
		RevieweeRole: actorRole.Complement(),
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrConflict("review", "You have already reviewed this task")
		}
		return nil, err
	}

	if err := s.applyCounterDelta(review, 1, review.Rating); err != nil {
		return nil, apperrors.ErrCascadeFailed(err, "review", "Failed to update rating counters")
	}

	return buildReviewResponse(review), nil
}

func (s *ReviewService) GetReview(reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "review", "Review not found")
	}
	return buildReviewResponse(review), nil
}

func (s *ReviewService) ListReviews(limit, offset int) (*dto.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.FindAll(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.reviewRepo.CountAll()
	if err != nil {
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews: buildReviewResponses(reviews),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *ReviewService) ListHelperReviews(helperID string) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByHelper(helperID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviews), nil
}

func (s *ReviewService) ListUserReviews(userID string) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviews), nil
}

func (s *ReviewService) ListTaskReviews(taskID string) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByTask(taskID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviews), nil
}

// UpdateReview lets the author change rating or text. A rating change
// applies only the delta to the reviewee's total, leaving the rated count
// untouched.
func (s *ReviewService) UpdateReview(actorID string, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "review", "Review not found")
	}

	if reviewAuthorID(review) != actorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperrors.ErrInvalidRating
		}
		delta := *req.Rating - review.Rating
		if delta != 0 {
			if err := s.applyCounterDelta(review, 0, delta); err != nil {
				return nil, apperrors.ErrCascadeFailed(err, "review", "Failed to update rating counters")
			}
		}
		review.Rating = *req.Rating
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return buildReviewResponse(review), nil
}

// DeleteReview removes the review and reverses its contribution to the
// reviewee's counters. Either party of the review may delete it.
func (s *ReviewService) DeleteReview(actorID string, reviewID string) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return apperrors.ErrNotFound(err, "review", "Review not found")
	}

	if actorID != review.UserID && actorID != review.HelperID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return err
	}

	if err := s.applyCounterDelta(review, -1, -review.Rating); err != nil {
		return apperrors.ErrCascadeFailed(err, "review", "Failed to update rating counters")
	}
	return nil
}

// applyCounterDelta adjusts the reviewee's aggregate counters. The target
// side is derived from the reviewer role, so create, update and delete all
// move the same pair of counters for a given review.
func (s *ReviewService) applyCounterDelta(review *models.Review, ratedDelta, ratingDelta int) error {
	if review.ReviewerRole == models.RoleHelper {
		return s.userRepo.IncrementRatingCounters(review.UserID, ratedDelta, ratingDelta)
	}
	return s.helperRepo.IncrementRatingCounters(review.HelperID, ratedDelta, ratingDelta)
}

func reviewAuthorID(review *models.Review) string {
	if review.ReviewerRole == models.RoleHelper {
		return review.HelperID
	}
	return review.UserID
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:           review.ID,
		UserID:       review.UserID,
		TaskID:       review.TaskID,
		HelperID:     review.HelperID,
		Rating:       review.Rating,
		ReviewText:   review.ReviewText,
		ReviewerRole: string(review.ReviewerRole),
		RevieweeRole: string(review.RevieweeRole),
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

func buildReviewResponses(reviews []models.Review) []*dto.ReviewResponse {
	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return responses
}
