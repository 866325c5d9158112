package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

func TestGetSubscription(t *testing.T) {
	tier, err := GetSubscription("FREE")
	require.NoError(t, err)
	assert.Equal(t, Free, tier.Name)
	assert.Equal(t, 5, tier.MaxLevels)
}

func TestGetSubscriptionCaseInsensitive(t *testing.T) {
	for _, name := range []string{"free", "Free", "fReE", "tier_1", "tier_infinity"} {
		t.Run(name, func(t *testing.T) {
			_, err := GetSubscription(name)
			require.NoError(t, err)
		})
	}
}

func TestGetSubscriptionUnknown(t *testing.T) {
	_, err := GetSubscription("PLATINUM")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNoExistingSubscription))
}

func TestTierEqualityByName(t *testing.T) {
	a, err := GetSubscription("tier_1")
	require.NoError(t, err)
	b, err := GetSubscription("TIER_1")
	require.NoError(t, err)
	assert.Equal(t, a, b, "Same tier name must yield interchangeable descriptors")
}

func TestTierInfinityUnbounded(t *testing.T) {
	tier, err := GetSubscription(TierInfinity)
	require.NoError(t, err)
	assert.Equal(t, Unlimited, tier.MaxLevels)
	for _, c := range models.Categories() {
		assert.Equal(t, Unlimited, tier.LimitFor(c))
	}
}

func TestLimitFor(t *testing.T) {
	tier, err := GetSubscription(Free)
	require.NoError(t, err)
	for _, c := range models.Categories() {
		assert.Equal(t, 10, tier.LimitFor(c))
	}
}
