package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/repository"
	"github.com/alexanderramin/skillswap/internal/testutil"
)

func newProfileService(t *testing.T) (ProfileService, repository.TeacherRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	teachers := repository.NewSQLiteTeacherRepo(database)
	return NewProfileService(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteSkillListRepo(database),
		teachers,
		testutil.NewTestUoW(database),
	), teachers
}

func TestProfile_GetMissingReturnsBlank(t *testing.T) {
	svc, _ := newProfileService(t)

	p, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Profile{UserID: "u1"}, p)
}

func TestProfile_UpdateTrims(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, &domain.Profile{UserID: "u1", DisplayName: "  Maya ", Bio: "Designer "}))
	p, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Maya", p.DisplayName)
	assert.Equal(t, "Designer", p.Bio)

	assert.ErrorIs(t, svc.Update(ctx, &domain.Profile{}), domain.ErrValidation)
}

func TestProfile_AddAndRemoveSkills(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	_, err := svc.AddSkill(ctx, "u1", domain.SkillTeach, "Go")
	require.NoError(t, err)
	lists, err := svc.AddSkill(ctx, "u1", domain.SkillLearn, " Piano ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, lists.Teach)
	assert.Equal(t, []string{"Piano"}, lists.Learn)

	_, err = svc.AddSkill(ctx, "u1", domain.SkillTeach, "go")
	assert.ErrorIs(t, err, ErrSkillExists)

	_, err = svc.AddSkill(ctx, "u1", domain.SkillTeach, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddSkill(ctx, "u1", domain.SkillKind("hobby"), "Chess")
	assert.ErrorIs(t, err, domain.ErrValidation)

	lists, err = svc.RemoveSkill(ctx, "u1", domain.SkillTeach, "GO")
	require.NoError(t, err)
	assert.Empty(t, lists.Teach)
	assert.Equal(t, []string{"Piano"}, lists.Learn)

	_, err = svc.RemoveSkill(ctx, "u1", domain.SkillTeach, "Go")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfile_AvailableSkillsAndMentorContext(t *testing.T) {
	svc, teachers := newProfileService(t)
	ctx := context.Background()

	require.NoError(t, teachers.Create(ctx, testutil.NewTestTeacher("A", testutil.WithSkills("Python", "go"))))
	require.NoError(t, teachers.Create(ctx, testutil.NewTestTeacher("B", testutil.WithSkills("Go", "Figma"))))

	available, err := svc.AvailableSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Figma", "go", "Python"}, available)

	require.NoError(t, svc.Update(ctx, &domain.Profile{UserID: "u1", DisplayName: "Maya"}))
	_, err = svc.AddSkill(ctx, "u1", domain.SkillLearn, "Python")
	require.NoError(t, err)

	uc, err := svc.MentorContext(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Maya", uc.Profile.DisplayName)
	assert.Equal(t, []string{"Python"}, uc.Skills.Learn)
	assert.Empty(t, uc.Skills.Teach)
	assert.Equal(t, available, uc.AvailableSkills)
}
