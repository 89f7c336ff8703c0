package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSkillSetCovers(t *testing.T) {
	t.Run("Should cover when every requirement is held", func(t *testing.T) {
		s := domain.NewSkillSet([]int64{1, 2})
		assert.True(t, s.Covers([]int64{1, 2}))
	})

	t.Run("Should not cover when any requirement is missing", func(t *testing.T) {
		s := domain.NewSkillSet([]int64{1, 2})
		assert.False(t, s.Covers([]int64{1, 2, 3}))
	})

	t.Run("Should treat no requirements as vacuously covered", func(t *testing.T) {
		s := domain.NewSkillSet([]int64{1, 2})
		assert.True(t, s.Covers(nil))
		assert.True(t, s.Covers([]int64{}))
	})

	t.Run("Should let an empty set cover only empty requirements", func(t *testing.T) {
		s := domain.NewSkillSet(nil)
		assert.True(t, s.Covers(nil))
		assert.False(t, s.Covers([]int64{1}))
	})

	t.Run("Should extra skills not hurt coverage", func(t *testing.T) {
		s := domain.NewSkillSet([]int64{1, 2, 3, 4})
		assert.True(t, s.Covers([]int64{2, 4}))
	})

	t.Run("Should tolerate duplicate ids in the input", func(t *testing.T) {
		s := domain.NewSkillSet([]int64{1, 1, 2})
		assert.True(t, s.Covers([]int64{1, 2}))
		assert.True(t, s.Covers([]int64{2, 2}))
	})
}
