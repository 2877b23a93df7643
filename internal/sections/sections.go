// Package sections implements the section editor commit flow: a submitted
// draft is validated as a whole, then committed to the selected resume with
// full-replace semantics. A failed validation performs no store mutation.
package sections

import (
	"context"

	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/internal/validation"
	"resumeforge/pkg/models"
)

// Service wires the section editors to the resume store.
type Service struct {
	store  *store.Store
	logger logging.Logger
}

// NewService creates the section editor service.
func NewService(s *store.Store) *Service {
	return &Service{
		store:  s,
		logger: logging.GetGlobalLogger(),
	}
}

// SubmitContactInfo validates and commits the contact section. The returned
// bool is false when the store had no selected resume and the commit was a
// silent no-op.
func (s *Service) SubmitContactInfo(ctx context.Context, info models.ContactInfo) (bool, error) {
	if err := validation.ContactInfo(info); err != nil {
		return false, err
	}

	applied := s.store.UpdateContactInfo(ctx, info)
	if !applied {
		s.logger.Debug("Contact submit ignored: no resume selected")
	}
	return applied, nil
}

// SubmitWorkExperience validates the whole draft list and replaces the
// selected resume's work experience collection. Existing entries are dropped
// and the submitted ones re-added with fresh ids; identifier churn across
// saves is the accepted contract.
func (s *Service) SubmitWorkExperience(ctx context.Context, entries []models.WorkExperience) (bool, error) {
	if err := validation.WorkExperiences(entries); err != nil {
		return false, err
	}

	applied := s.store.ReplaceWorkExperience(ctx, entries)
	if !applied {
		s.logger.Debug("Work experience submit ignored: no resume selected")
	}
	return applied, nil
}

// SubmitEducation validates and full-replaces the education collection.
func (s *Service) SubmitEducation(ctx context.Context, entries []models.Education) (bool, error) {
	if err := validation.EducationEntries(entries); err != nil {
		return false, err
	}

	applied := s.store.ReplaceEducation(ctx, entries)
	if !applied {
		s.logger.Debug("Education submit ignored: no resume selected")
	}
	return applied, nil
}

// SubmitSkills validates and full-replaces the skills collection.
func (s *Service) SubmitSkills(ctx context.Context, entries []models.Skill) (bool, error) {
	if err := validation.Skills(entries); err != nil {
		return false, err
	}

	applied := s.store.ReplaceSkills(ctx, entries)
	if !applied {
		s.logger.Debug("Skills submit ignored: no resume selected")
	}
	return applied, nil
}
