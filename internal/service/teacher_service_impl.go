package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/repository"
)

type teacherService struct {
	teachers repository.TeacherRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewTeacherService(teachers repository.TeacherRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TeacherService {
	return &teacherService{
		teachers: teachers,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *teacherService) List(ctx context.Context) ([]*domain.Teacher, error) {
	return s.teachers.List(ctx)
}

// Search ranks teachers by fuzzy match of query against their name and
// skills; a plain substring hit in the bio also qualifies. skill then keeps
// only teachers with a skill containing it. Empty arguments don't filter.
func (s *teacherService) Search(ctx context.Context, query, skill string) ([]*domain.Teacher, error) {
	all, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := all
	if q := strings.TrimSpace(query); q != "" {
		ranked = rankTeachers(all, q)
	}

	out := make([]*domain.Teacher, 0, len(ranked))
	for _, t := range ranked {
		if t.HasSkill(skill) {
			out = append(out, t)
		}
	}
	return out, nil
}

// teacherFields flattens every searchable name and skill into one fuzzy source.
type teacherFields struct {
	text  []string
	owner []int
}

func (f teacherFields) String(i int) string { return f.text[i] }
func (f teacherFields) Len() int            { return len(f.text) }

func rankTeachers(teachers []*domain.Teacher, query string) []*domain.Teacher {
	var src teacherFields
	for i, t := range teachers {
		src.text = append(src.text, t.Name)
		src.owner = append(src.owner, i)
		for _, sk := range t.Skills {
			src.text = append(src.text, sk)
			src.owner = append(src.owner, i)
		}
	}

	const bioOnly = -1 << 30
	best := make(map[int]int, len(teachers))
	for _, m := range fuzzy.FindFrom(query, src) {
		idx := src.owner[m.Index]
		if cur, ok := best[idx]; !ok || m.Score > cur {
			best[idx] = m.Score
		}
	}
	lower := strings.ToLower(query)
	for i, t := range teachers {
		if _, ok := best[i]; !ok && strings.Contains(strings.ToLower(t.Bio), lower) {
			best[i] = bioOnly
		}
	}

	idxs := make([]int, 0, len(best))
	for i := range best {
		idxs = append(idxs, i)
	}
	sort.Slice(idxs, func(a, b int) bool {
		if best[idxs[a]] != best[idxs[b]] {
			return best[idxs[a]] > best[idxs[b]]
		}
		return idxs[a] < idxs[b]
	})

	out := make([]*domain.Teacher, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, teachers[i])
	}
	return out
}

// EnsureSeeded fills an empty directory with the sample teachers and
// returns how many were inserted.
func (s *teacherService) EnsureSeeded(ctx context.Context) (int, error) {
	n, err := s.teachers.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seeds := sampleTeachers(s.now().UTC())
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTeachers := repository.NewSQLiteTeacherRepo(tx)
		for _, t := range seeds {
			if err := txTeachers.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seeding teachers: %w", err)
	}
	return len(seeds), nil
}

func (s *teacherService) Become(ctx context.Context, userID, name string, app domain.TeacherApplication) (t *domain.Teacher, err error) {
	startedAt := timeNow()
	fields := map[string]any{"skills": len(app.Skills)}
	defer func() { observe(ctx, s.observer, "become-teacher", startedAt, fields, err) }()

	if err = app.Validate(); err != nil {
		return nil, err
	}
	t = domain.NewTeacherFromApplication(uuid.New().String(), userID, name, app, s.now().UTC().Truncate(time.Second))
	if err = s.teachers.Create(ctx, t); err != nil {
		return nil, err
	}
	fields["teacher_id"] = t.ID
	return t, nil
}

func sampleTeachers(now time.Time) []*domain.Teacher {
	avatar := func(seed string) string {
		return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
	}
	return []*domain.Teacher{
		{
			ID:           uuid.New().String(),
			Name:         "Sarah Chen",
			Avatar:       avatar("sarah"),
			Skills:       []string{"React", "JavaScript", "TypeScript"},
			Rating:       4.9,
			ReviewCount:  127,
			HourlyRate:   45,
			Location:     "San Francisco, CA",
			Availability: "Available now",
			Bio:          "Full-stack developer with 8 years of experience. Passionate about teaching modern web development.",
			Experience:   "8 years",
			ResponseTime: "< 1 hour",
			CreatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Name:         "Michael Rodriguez",
			Avatar:       avatar("michael"),
			Skills:       []string{"Python", "Machine Learning", "Data Science"},
			Rating:       4.8,
			ReviewCount:  89,
			HourlyRate:   60,
			Location:     "New York, NY",
			Availability: "Available weekends",
			Bio:          "Data scientist and ML engineer. Love helping others break into the field of AI and data science.",
			Experience:   "6 years",
			ResponseTime: "< 2 hours",
			CreatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Name:         "Emily Johnson",
			Avatar:       avatar("emily"),
			Skills:       []string{"UI/UX Design", "Figma", "Adobe Creative Suite"},
			Rating:       4.7,
			ReviewCount:  156,
			HourlyRate:   40,
			Location:     "Austin, TX",
			Availability: "Available evenings",
			Bio:          "Senior UX designer with a passion for creating intuitive and beautiful user experiences.",
			Experience:   "10 years",
			ResponseTime: "< 30 minutes",
			CreatedAt:    now,
		},
	}
}
