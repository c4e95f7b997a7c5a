package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_EarnBadgeIsIdempotent(t *testing.T) {
	p := &Player{ID: "p"}

	assert.True(t, p.EarnBadge(BadgeFirstWin))
	assert.False(t, p.EarnBadge(BadgeFirstWin))
	assert.True(t, p.EarnBadge(BadgeGoldenBoot))

	assert.Equal(t, []BadgeType{BadgeFirstWin, BadgeGoldenBoot}, p.Badges)
	assert.True(t, p.HasBadge(BadgeGoldenBoot))
	assert.False(t, p.HasBadge(BadgeHighRoller))
}

func TestBadgeDefinitions_CoverEveryBadge(t *testing.T) {
	for _, b := range []BadgeType{
		BadgeFirstWin, BadgeHighRoller, BadgeSmartInvestor,
		BadgeMasterDetective, BadgeBridgeMaster, BadgeGoldenBoot,
	} {
		def, ok := BadgeDefinitions[b]
		assert.True(t, ok, b)
		assert.NotEmpty(t, def.Icon, b)
	}
	assert.Len(t, GameCards, 4)
}
