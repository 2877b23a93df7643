package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()

	persister := NewMemoryPersister()
	s := New(persister)

	// Deterministic ids for assertions
	counter := 0
	s.newID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	return s, persister
}

func validExperience() models.WorkExperience {
	return models.WorkExperience{
		Company:     "Acme Corp",
		Position:    "Engineer",
		Location:    "Remote",
		StartDate:   "2022-01",
		EndDate:     "2023-06",
		Description: []string{"Built things"},
	}
}

func TestCreateResume_SelectsAndPersists(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()

	resume := s.CreateResume(ctx)

	assert.NotEmpty(t, resume.ID)
	assert.Equal(t, resume.ID, s.SelectedResumeID())
	assert.Equal(t, 1, persister.SaveCount())

	selected, ok := s.SelectedResume()
	require.True(t, ok)
	assert.Equal(t, resume.ID, selected.ID)
}

func TestMutators_NoOpWithoutSelection(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()

	assert.False(t, s.UpdateContactInfo(ctx, models.ContactInfo{FullName: "Jane Doe"}))

	_, ok := s.AddWorkExperience(ctx, validExperience())
	assert.False(t, ok)

	assert.False(t, s.ReplaceSkills(ctx, []models.Skill{{Name: "Go", Level: models.SkillLevelExpert, Category: "Languages"}}))

	// Nothing changed, nothing persisted
	assert.Empty(t, s.ListResumes())
	assert.Equal(t, 0, persister.SaveCount())
}

func TestAddRemoveSkill(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.CreateResume(ctx)

	id, ok := s.AddSkill(ctx, models.Skill{Name: "Go", Level: models.SkillLevelExpert, Category: "Languages"})
	require.True(t, ok)

	selected, _ := s.SelectedResume()
	require.Len(t, selected.Skills, 1)
	assert.Equal(t, id, selected.Skills[0].ID)

	assert.True(t, s.RemoveSkill(ctx, id))
	selected, _ = s.SelectedResume()
	assert.Empty(t, selected.Skills)

	// Removing a missing id reports false and leaves the collection alone
	assert.False(t, s.RemoveSkill(ctx, "nope"))
	selected, _ = s.SelectedResume()
	assert.Empty(t, selected.Skills)
}

func TestAddWorkExperience_GeneratesID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.CreateResume(ctx)

	entry := validExperience()
	entry.ID = "client-supplied"

	id, ok := s.AddWorkExperience(ctx, entry)
	require.True(t, ok)
	assert.NotEqual(t, "client-supplied", id)

	selected, _ := s.SelectedResume()
	require.Len(t, selected.WorkExperience, 1)
	assert.Equal(t, id, selected.WorkExperience[0].ID)
	assert.Equal(t, "Acme Corp", selected.WorkExperience[0].Company)
}

func TestReplaceWorkExperience_AssignsFreshIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.CreateResume(ctx)

	firstID, _ := s.AddWorkExperience(ctx, validExperience())

	replacement := validExperience()
	replacement.ID = firstID
	replacement.Company = "Globex"

	require.True(t, s.ReplaceWorkExperience(ctx, []models.WorkExperience{replacement}))

	selected, _ := s.SelectedResume()
	require.Len(t, selected.WorkExperience, 1)
	assert.Equal(t, "Globex", selected.WorkExperience[0].Company)
	assert.NotEqual(t, firstID, selected.WorkExperience[0].ID)
}

func TestLastUpdated_StrictlyMonotonic(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Frozen clock: every touch must still advance LastUpdated
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	resume := s.CreateResume(ctx)
	first := resume.LastUpdated

	require.True(t, s.UpdateContactInfo(ctx, models.ContactInfo{FullName: "Jane Doe"}))
	selected, _ := s.SelectedResume()
	assert.True(t, selected.LastUpdated.After(first))

	second := selected.LastUpdated
	_, ok := s.AddSkill(ctx, models.Skill{Name: "Go", Level: models.SkillLevelExpert, Category: "Languages"})
	require.True(t, ok)
	selected, _ = s.SelectedResume()
	assert.True(t, selected.LastUpdated.After(second))
}

func TestDeleteResume_SelectionHandling(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := s.CreateResume(ctx)
	second := s.CreateResume(ctx)
	require.Equal(t, second.ID, s.SelectedResumeID())

	// Deleting an unselected resume keeps the cursor
	require.True(t, s.DeleteResume(ctx, first.ID))
	assert.Equal(t, second.ID, s.SelectedResumeID())

	// Deleting the selected resume clears it
	require.True(t, s.DeleteResume(ctx, second.ID))
	assert.Empty(t, s.SelectedResumeID())

	_, ok := s.SelectedResume()
	assert.False(t, ok)
}

func TestSetSelectedResumeID_Verbatim(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// No existence check: the cursor may point at a missing resume
	s.SetSelectedResumeID(ctx, "ghost")
	assert.Equal(t, "ghost", s.SelectedResumeID())

	_, ok := s.SelectedResume()
	assert.False(t, ok)

	// Mutators treat a dangling cursor as no selection
	assert.False(t, s.UpdateContactInfo(ctx, models.ContactInfo{FullName: "Jane Doe"}))
}

func TestLoad_RoundTrip(t *testing.T) {
	persister := NewMemoryPersister()
	ctx := context.Background()

	s := New(persister)
	resume := s.CreateResume(ctx)
	require.True(t, s.UpdateContactInfo(ctx, models.ContactInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234567",
		Location: "Berlin",
	}))

	// A fresh store over the same persister sees the saved state
	restored := New(persister)
	require.NoError(t, restored.Load(ctx))

	assert.Equal(t, resume.ID, restored.SelectedResumeID())
	selected, ok := restored.SelectedResume()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", selected.ContactInfo.FullName)
}

func TestLoad_RejectsUnknownSchemaVersion(t *testing.T) {
	persister := NewMemoryPersister()
	ctx := context.Background()

	persister.snapshot = &Snapshot{Version: SchemaVersion + 1}

	s := New(persister)
	err := s.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot version")
}

func TestListResumes_ReturnsCopies(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.CreateResume(ctx)
	_, ok := s.AddWorkExperience(ctx, validExperience())
	require.True(t, ok)

	list := s.ListResumes()
	require.Len(t, list, 1)
	list[0].WorkExperience[0].Company = "Mutated"

	selected, _ := s.SelectedResume()
	assert.Equal(t, "Acme Corp", selected.WorkExperience[0].Company)
}
