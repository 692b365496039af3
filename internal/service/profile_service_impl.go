package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/mentor"
	"github.com/alexanderramin/skillswap/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	skills   repository.SkillListRepo
	teachers repository.TeacherRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(
	profiles repository.ProfileRepo,
	skills repository.SkillListRepo,
	teachers repository.TeacherRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		profiles: profiles,
		skills:   skills,
		teachers: teachers,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Get returns a blank profile for users who never saved one.
func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Profile{UserID: userID}, nil
	}
	return p, err
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) error {
	if strings.TrimSpace(p.UserID) == "" {
		return &domain.MissingFieldError{Fields: []string{"user_id"}}
	}
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Bio = strings.TrimSpace(p.Bio)
	p.Location = strings.TrimSpace(p.Location)
	p.AvatarURL = strings.TrimSpace(p.AvatarURL)
	return s.profiles.Upsert(ctx, p)
}

func (s *profileService) Skills(ctx context.Context, userID string) (*domain.SkillLists, error) {
	return loadSkillLists(ctx, s.skills, userID)
}

func loadSkillLists(ctx context.Context, repo repository.SkillListRepo, userID string) (*domain.SkillLists, error) {
	teach, err := repo.Get(ctx, userID, domain.SkillTeach)
	if err != nil {
		return nil, err
	}
	learn, err := repo.Get(ctx, userID, domain.SkillLearn)
	if err != nil {
		return nil, err
	}
	return &domain.SkillLists{Teach: teach, Learn: learn}, nil
}

// AddSkill appends name to the kind list. Names compare case-insensitively.
func (s *profileService) AddSkill(ctx context.Context, userID string, kind domain.SkillKind, name string) (*domain.SkillLists, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.MissingFieldError{Fields: []string{"name"}}
	}
	return s.editSkills(ctx, "add-skill", userID, kind, func(list []string) ([]string, error) {
		if indexFold(list, name) >= 0 {
			return nil, fmt.Errorf("%s %q: %w", kind, name, ErrSkillExists)
		}
		return append(list, name), nil
	})
}

// RemoveSkill drops name from the kind list; a missing name is ErrNotFound.
func (s *profileService) RemoveSkill(ctx context.Context, userID string, kind domain.SkillKind, name string) (*domain.SkillLists, error) {
	name = strings.TrimSpace(name)
	return s.editSkills(ctx, "remove-skill", userID, kind, func(list []string) ([]string, error) {
		i := indexFold(list, name)
		if i < 0 {
			return nil, fmt.Errorf("%s %q: %w", kind, name, repository.ErrNotFound)
		}
		return slices.Delete(list, i, i+1), nil
	})
}

func (s *profileService) editSkills(
	ctx context.Context,
	useCase, userID string,
	kind domain.SkillKind,
	edit func([]string) ([]string, error),
) (lists *domain.SkillLists, err error) {
	startedAt := timeNow()
	fields := map[string]any{"kind": kind}
	defer func() { observe(ctx, s.observer, useCase, startedAt, fields, err) }()

	if _, err = domain.ParseSkillKind(string(kind)); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSkills := repository.NewSQLiteSkillListRepo(tx)
		list, err := txSkills.Get(ctx, userID, kind)
		if err != nil {
			return err
		}
		list, err = edit(list)
		if err != nil {
			return err
		}
		if err := txSkills.Put(ctx, userID, kind, list); err != nil {
			return err
		}
		lists, err = loadSkillLists(ctx, txSkills, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// AvailableSkills is the sorted union of every directory teacher's skills.
func (s *profileService) AvailableSkills(ctx context.Context) ([]string, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	var all []string
	for _, t := range teachers {
		all = append(all, t.Skills...)
	}
	out := domain.CleanSkills(all)
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out, nil
}

func (s *profileService) MentorContext(ctx context.Context, userID string) (*mentor.UserContext, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	lists, err := s.Skills(ctx, userID)
	if err != nil {
		return nil, err
	}
	available, err := s.AvailableSkills(ctx)
	if err != nil {
		return nil, err
	}
	return &mentor.UserContext{Profile: *p, Skills: *lists, AvailableSkills: available}, nil
}

func indexFold(list []string, name string) int {
	return slices.IndexFunc(list, func(s string) bool { return strings.EqualFold(s, name) })
}
