package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/artistly/internal/modules/artist/domain"
	identity "github.com/saransh1220/artistly/internal/modules/identity/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	"go.uber.org/zap"
)

// ImageStore persists profile images. StoreProfileImage returns the public URL.
type ImageStore interface {
	StoreProfileImage(ctx context.Context, artistID string, src io.Reader) (string, error)
	RemoveImage(ctx context.Context, url string) error
}

// Service covers onboarding, the public browse listing and artist review.
type Service struct {
	repo   *storageapp.Repository[domain.Artist]
	images ImageStore
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewService(repo *storageapp.Repository[domain.Artist], images ImageStore, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		images: images,
		logger: logger.With(zap.String("component", "artist")),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Catalog returns the reference data for filters and the onboarding wizard.
func (s *Service) Catalog() domain.Catalog {
	return domain.DefaultCatalog()
}

// ValidateStep checks one onboarding wizard step without persisting anything.
func (s *Service) ValidateStep(step int, sub domain.Submission) error {
	return sub.ValidateStep(step)
}

// Onboard validates every wizard step and stores a pending application.
func (s *Service) Onboard(ctx context.Context, sub domain.Submission) (domain.Artist, error) {
	if err := sub.Validate(); err != nil {
		return domain.Artist{}, err
	}
	artist := sub.NewArtist(s.newID(), s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	if err := s.repo.Add(ctx, artist); err != nil {
		return domain.Artist{}, fmt.Errorf("store application: %w", err)
	}
	s.logger.Info("artist application submitted", zap.String("artist_id", artist.ID))
	return artist, nil
}

// Browse lists approved artists matching filter.
func (s *Service) Browse(filter domain.Filter) []domain.Artist {
	approved := make([]domain.Artist, 0)
	for _, a := range s.repo.List() {
		if a.Status == domain.StatusApproved {
			approved = append(approved, a)
		}
	}
	return filter.Apply(approved)
}

// Find returns one artist. Anonymous viewers and plain users only see approved
// artists; artists also see their own record.
func (s *Service) Find(viewer *identity.Session, id string) (domain.Artist, error) {
	a, ok := s.repo.Get(id)
	if !ok {
		return domain.Artist{}, domain.ErrArtistNotFound
	}
	if a.Status == domain.StatusApproved || canSeeAll(viewer) || owns(viewer, a) {
		return a, nil
	}
	return domain.Artist{}, domain.ErrArtistNotFound
}

// List returns every artist whatever its status.
func (s *Service) List(viewer identity.Session) ([]domain.Artist, error) {
	if err := identity.Authorize(viewer, identity.ActionViewAllRecords); err != nil {
		return nil, err
	}
	return s.repo.List(), nil
}

func (s *Service) Approve(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error) {
	return s.review(ctx, viewer, id, domain.StatusApproved)
}

func (s *Service) Reject(ctx context.Context, viewer identity.Session, id string) (domain.Artist, error) {
	return s.review(ctx, viewer, id, domain.StatusRejected)
}

func (s *Service) review(ctx context.Context, viewer identity.Session, id string, to domain.Status) (domain.Artist, error) {
	if err := identity.Authorize(viewer, identity.ActionReviewArtists); err != nil {
		return domain.Artist{}, err
	}
	updated, err := s.update(ctx, id, func(a *domain.Artist) error { return a.Review(to) })
	if err != nil {
		return domain.Artist{}, err
	}
	s.logger.Info("artist reviewed", zap.String("artist_id", id), zap.String("status", string(to)), zap.String("by", viewer.ID))
	return updated, nil
}

// Delete removes an artist record permanently.
func (s *Service) Delete(ctx context.Context, viewer identity.Session, id string) error {
	if err := identity.Authorize(viewer, identity.ActionDeleteArtists); err != nil {
		return err
	}
	prev, _ := s.repo.Get(id)
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrArtistNotFound
	}
	s.logger.Info("artist deleted", zap.String("artist_id", id), zap.String("by", viewer.ID))
	s.removeImage(ctx, prev.ProfileImage)
	return nil
}

// SetAvailability toggles whether the artist accepts bookings. Allowed for the
// artist owning the record and for reviewers.
func (s *Service) SetAvailability(ctx context.Context, viewer identity.Session, id string, available bool) (domain.Artist, error) {
	if err := s.authorizeEdit(viewer, id); err != nil {
		return domain.Artist{}, err
	}
	return s.update(ctx, id, func(a *domain.Artist) error {
		a.Availability = available
		return nil
	})
}

// UploadProfileImage stores a new profile picture and records its URL.
func (s *Service) UploadProfileImage(ctx context.Context, viewer identity.Session, id string, src io.Reader) (domain.Artist, error) {
	if err := s.authorizeEdit(viewer, id); err != nil {
		return domain.Artist{}, err
	}
	if s.images == nil {
		return domain.Artist{}, errors.New("image storage not configured")
	}
	url, err := s.images.StoreProfileImage(ctx, id, src)
	if err != nil {
		return domain.Artist{}, err
	}
	var prev string
	updated, err := s.update(ctx, id, func(a *domain.Artist) error {
		prev = a.ProfileImage
		a.ProfileImage = url
		return nil
	})
	if err != nil {
		s.removeImage(ctx, url)
		return domain.Artist{}, err
	}
	s.removeImage(ctx, prev)
	return updated, nil
}

// removeImage drops a replaced picture. Failures only cost storage, so they are logged.
func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" || s.images == nil {
		return
	}
	if err := s.images.RemoveImage(ctx, url); err != nil {
		s.logger.Warn("failed to remove profile image", zap.String("url", url), zap.Error(err))
	}
}

// SeedDemoCatalog stores the demo artists when no artist collection exists.
func (s *Service) SeedDemoCatalog(ctx context.Context) error {
	stored, err := s.repo.Stored(ctx)
	if err != nil || stored {
		return err
	}
	for _, a := range domain.DemoArtists() {
		if err := s.repo.Add(ctx, a); err != nil {
			return err
		}
	}
	s.logger.Info("seeded demo artists", zap.Int("count", len(domain.DemoArtists())))
	return nil
}

func (s *Service) authorizeEdit(viewer identity.Session, id string) error {
	if viewer.Role.Can(identity.ActionReviewArtists) {
		return nil
	}
	a, ok := s.repo.Get(id)
	if !ok {
		return domain.ErrArtistNotFound
	}
	if !viewer.Role.Can(identity.ActionEditOwnProfile) || !owns(&viewer, a) {
		return identity.ErrForbidden
	}
	return nil
}

func (s *Service) update(ctx context.Context, id string, apply func(*domain.Artist) error) (domain.Artist, error) {
	found, err := s.repo.Update(ctx, id, apply)
	if err != nil {
		return domain.Artist{}, err
	}
	if !found {
		return domain.Artist{}, domain.ErrArtistNotFound
	}
	updated, _ := s.repo.Get(id)
	return updated, nil
}

func canSeeAll(viewer *identity.Session) bool {
	return viewer != nil && viewer.Role.Can(identity.ActionViewAllRecords)
}

func owns(viewer *identity.Session, a domain.Artist) bool {
	return viewer != nil && viewer.Role == identity.RoleArtist && viewer.Email != "" && viewer.Email == a.Email
}
