package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Store is the single source of truth for resume documents. It holds the
// resume collection and the selection cursor, and rewrites the persisted
// snapshot after every accepted mutation.
//
// All sub-entity mutators target the currently selected resume and silently
// do nothing when no resume is selected. That matches the observed client
// contract; callers that need to know whether a mutation applied use the
// boolean returns.
type Store struct {
	mu        sync.RWMutex
	resumes   []models.Resume
	selected  string
	persister Persister
	logger    logging.Logger

	// Injectable for tests
	now   func() time.Time
	newID func() string
}

// New creates a store backed by the given persister. Call Load before
// serving traffic.
func New(persister Persister) *Store {
	return &Store{
		persister: persister,
		logger:    logging.GetGlobalLogger(),
		now:       time.Now,
		newID:     utils.GenerateEntryID,
	}
}

// Load restores state from the persister. A missing snapshot leaves the
// store empty; a snapshot with an unknown schema version is an error.
func (s *Store) Load(ctx context.Context) error {
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("store load failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot == nil {
		s.resumes = nil
		s.selected = ""
		return nil
	}

	s.resumes = snapshot.Resumes
	s.selected = snapshot.SelectedResumeID

	s.logger.Info("Resume store loaded", map[string]interface{}{
		"resumes":  len(s.resumes),
		"selected": s.selected,
	})
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	resumes := make([]models.Resume, len(s.resumes))
	for i, r := range s.resumes {
		resumes[i] = r.Clone()
	}
	return Snapshot{
		Version:          SchemaVersion,
		Resumes:          resumes,
		SelectedResumeID: s.selected,
		SavedAt:          s.now(),
	}
}

// persistLocked rewrites the snapshot. Persistence failures are logged and
// do not roll back the in-memory state; the store stays consistent.
func (s *Store) persistLocked(ctx context.Context) {
	snapshot := s.snapshotLocked()
	if err := s.persister.Save(ctx, &snapshot); err != nil {
		s.logger.Error("Failed to persist resume store", map[string]interface{}{
			"error":   err.Error(),
			"resumes": len(snapshot.Resumes),
		})
	}
}

// touch refreshes LastUpdated, keeping it strictly monotonic per resume.
func (s *Store) touch(r *models.Resume) {
	now := s.now()
	if !now.After(r.LastUpdated) {
		now = r.LastUpdated.Add(time.Nanosecond)
	}
	r.LastUpdated = now
}

func (s *Store) findLocked(id string) *models.Resume {
	for i := range s.resumes {
		if s.resumes[i].ID == id {
			return &s.resumes[i]
		}
	}
	return nil
}

func (s *Store) selectedLocked() *models.Resume {
	if s.selected == "" {
		return nil
	}
	return s.findLocked(s.selected)
}

// CreateResume allocates a new empty resume, appends it and selects it.
func (s *Store) CreateResume(ctx context.Context) models.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := models.Resume{
		ID:             s.newID(),
		ContactInfo:    models.ContactInfo{},
		WorkExperience: []models.WorkExperience{},
		Education:      []models.Education{},
		Skills:         []models.Skill{},
		LastUpdated:    s.now(),
	}
	s.resumes = append(s.resumes, resume)
	s.selected = resume.ID
	s.persistLocked(ctx)

	s.logger.Info("Resume created", map[string]interface{}{"resume_id": resume.ID})
	return resume.Clone()
}

// ListResumes returns copies of every resume in insertion order.
func (s *Store) ListResumes() []models.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resume, len(s.resumes))
	for i, r := range s.resumes {
		out[i] = r.Clone()
	}
	return out
}

// GetResume returns a copy of the resume with the given id.
func (s *Store) GetResume(id string) (models.Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r := s.findLocked(id); r != nil {
		return r.Clone(), true
	}
	return models.Resume{}, false
}

// UpdateResume replaces top-level fields on the matching resume. Missing ids
// are a silent no-op.
func (s *Store) UpdateResume(ctx context.Context, id string, patch models.ResumePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.findLocked(id)
	if resume == nil {
		return false
	}

	if patch.ContactInfo != nil {
		resume.ContactInfo = *patch.ContactInfo
	}
	s.touch(resume)
	s.persistLocked(ctx)
	return true
}

// DeleteResume removes the resume; deleting the selected resume clears the
// selection cursor. Unrelated cover letters are never cascaded (none are
// stored).
func (s *Store) DeleteResume(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.resumes {
		if s.resumes[i].ID == id {
			s.resumes = append(s.resumes[:i], s.resumes[i+1:]...)
			if s.selected == id {
				s.selected = ""
			}
			s.persistLocked(ctx)
			s.logger.Info("Resume deleted", map[string]interface{}{"resume_id": id})
			return true
		}
	}
	return false
}

// SetSelectedResumeID moves the selection cursor. The id is taken verbatim
// with no existence check: that is the observed contract, documented in the
// design notes as an accepted open question.
func (s *Store) SetSelectedResumeID(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = id
	s.persistLocked(ctx)
}

// SelectedResumeID returns the selection cursor, empty when nothing is
// selected.
func (s *Store) SelectedResumeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SelectedResume returns a copy of the selected resume, if any.
func (s *Store) SelectedResume() (models.Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r := s.selectedLocked(); r != nil {
		return r.Clone(), true
	}
	return models.Resume{}, false
}

// UpdateContactInfo replaces the selected resume's contact info wholesale.
func (s *Store) UpdateContactInfo(ctx context.Context, info models.ContactInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	resume.ContactInfo = info
	s.touch(resume)
	s.persistLocked(ctx)
	return true
}

// AddWorkExperience appends the entry to the selected resume with a freshly
// generated id. Any id on the input is discarded.
func (s *Store) AddWorkExperience(ctx context.Context, entry models.WorkExperience) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return "", false
	}

	entry.ID = s.newID()
	resume.WorkExperience = append(resume.WorkExperience, entry.Clone())
	s.touch(resume)
	s.persistLocked(ctx)
	return entry.ID, true
}

// UpdateWorkExperience merges partial fields into the matching entry.
func (s *Store) UpdateWorkExperience(ctx context.Context, id string, patch models.WorkExperiencePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.WorkExperience {
		if resume.WorkExperience[i].ID != id {
			continue
		}
		entry := &resume.WorkExperience[i]
		if patch.Company != nil {
			entry.Company = *patch.Company
		}
		if patch.Position != nil {
			entry.Position = *patch.Position
		}
		if patch.Location != nil {
			entry.Location = *patch.Location
		}
		if patch.StartDate != nil {
			entry.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			entry.EndDate = *patch.EndDate
		}
		if patch.Current != nil {
			entry.Current = *patch.Current
		}
		if patch.Description != nil {
			entry.Description = append([]string(nil), (*patch.Description)...)
		}
		s.touch(resume)
		s.persistLocked(ctx)
		return true
	}
	return false
}

// RemoveWorkExperience filters out the matching entry.
func (s *Store) RemoveWorkExperience(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.WorkExperience {
		if resume.WorkExperience[i].ID == id {
			resume.WorkExperience = append(resume.WorkExperience[:i], resume.WorkExperience[i+1:]...)
			s.touch(resume)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// ReplaceWorkExperience implements the section editor's full-replace commit:
// the existing collection is dropped and every submitted entry re-added with
// a fresh id. Prior entry identifiers are intentionally not preserved.
func (s *Store) ReplaceWorkExperience(ctx context.Context, entries []models.WorkExperience) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	replaced := make([]models.WorkExperience, 0, len(entries))
	for _, entry := range entries {
		entry.ID = s.newID()
		replaced = append(replaced, entry.Clone())
	}
	resume.WorkExperience = replaced
	s.touch(resume)
	s.persistLocked(ctx)
	return true
}

// AddEducation appends the entry to the selected resume with a generated id.
func (s *Store) AddEducation(ctx context.Context, entry models.Education) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return "", false
	}

	entry.ID = s.newID()
	resume.Education = append(resume.Education, entry.Clone())
	s.touch(resume)
	s.persistLocked(ctx)
	return entry.ID, true
}

// UpdateEducation merges partial fields into the matching entry.
func (s *Store) UpdateEducation(ctx context.Context, id string, patch models.EducationPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.Education {
		if resume.Education[i].ID != id {
			continue
		}
		entry := &resume.Education[i]
		if patch.Institution != nil {
			entry.Institution = *patch.Institution
		}
		if patch.Degree != nil {
			entry.Degree = *patch.Degree
		}
		if patch.Field != nil {
			entry.Field = *patch.Field
		}
		if patch.Location != nil {
			entry.Location = *patch.Location
		}
		if patch.StartDate != nil {
			entry.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			entry.EndDate = *patch.EndDate
		}
		if patch.GPA != nil {
			gpa := *patch.GPA
			entry.GPA = &gpa
		}
		s.touch(resume)
		s.persistLocked(ctx)
		return true
	}
	return false
}

// RemoveEducation filters out the matching entry.
func (s *Store) RemoveEducation(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.Education {
		if resume.Education[i].ID == id {
			resume.Education = append(resume.Education[:i], resume.Education[i+1:]...)
			s.touch(resume)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// ReplaceEducation is the education editor's full-replace commit.
func (s *Store) ReplaceEducation(ctx context.Context, entries []models.Education) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	replaced := make([]models.Education, 0, len(entries))
	for _, entry := range entries {
		entry.ID = s.newID()
		replaced = append(replaced, entry.Clone())
	}
	resume.Education = replaced
	s.touch(resume)
	s.persistLocked(ctx)
	return true
}

// AddSkill appends the entry to the selected resume with a generated id.
func (s *Store) AddSkill(ctx context.Context, entry models.Skill) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return "", false
	}

	entry.ID = s.newID()
	resume.Skills = append(resume.Skills, entry)
	s.touch(resume)
	s.persistLocked(ctx)
	return entry.ID, true
}

// UpdateSkill merges partial fields into the matching entry.
func (s *Store) UpdateSkill(ctx context.Context, id string, patch models.SkillPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.Skills {
		if resume.Skills[i].ID != id {
			continue
		}
		entry := &resume.Skills[i]
		if patch.Name != nil {
			entry.Name = *patch.Name
		}
		if patch.Level != nil {
			entry.Level = *patch.Level
		}
		if patch.Category != nil {
			entry.Category = *patch.Category
		}
		s.touch(resume)
		s.persistLocked(ctx)
		return true
	}
	return false
}

// RemoveSkill filters out the matching entry.
func (s *Store) RemoveSkill(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	for i := range resume.Skills {
		if resume.Skills[i].ID == id {
			resume.Skills = append(resume.Skills[:i], resume.Skills[i+1:]...)
			s.touch(resume)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// ReplaceSkills is the skills editor's full-replace commit.
func (s *Store) ReplaceSkills(ctx context.Context, entries []models.Skill) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := s.selectedLocked()
	if resume == nil {
		return false
	}

	replaced := make([]models.Skill, 0, len(entries))
	for _, entry := range entries {
		entry.ID = s.newID()
		replaced = append(replaced, entry)
	}
	resume.Skills = replaced
	s.touch(resume)
	s.persistLocked(ctx)
	return true
}
