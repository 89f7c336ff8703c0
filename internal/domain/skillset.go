package domain

import "context"

// SkillSet holds the technology ids an account possesses, keyed for O(1)
// membership tests.
type SkillSet map[int64]struct{}

func NewSkillSet(ids []int64) SkillSet {
	s := make(SkillSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Covers reports whether every required technology id is present in the set.
// An empty requirement list is vacuously covered, including by an empty set;
// an empty set covers nothing else.
func (s SkillSet) Covers(required []int64) bool {
	for _, id := range required {
		if _, ok := s[id]; !ok {
			return false
		}
	}
	return true
}

// SkillRepository manages the account->technology pivot rows.
type SkillRepository interface {
	GetIDsByAccount(ctx context.Context, accountID string) ([]int64, error)
	GetByAccount(ctx context.Context, accountID string) ([]Technology, error)
	Replace(ctx context.Context, accountID string, technologyIDs []int64) error
}

type SkillUsecase interface {
	GetSkills(ctx context.Context, accountID string) ([]Technology, error)
	ReplaceSkills(ctx context.Context, accountID string, technologyIDs []int64) ([]Technology, error)
}
