package rules

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/check"

	"mesa-auction/internal/core/domain"
)

func TestQualityAdjustedBid(t *testing.T) {
	tests := []struct {
		name     string
		raw      uint64
		quality  uint64
		expected uint64
	}{
		{"default quality is not boosted", 100_000, 500, 100_000},
		{"threshold itself is not boosted", 100_000, 700, 100_000},
		{"one above threshold is boosted", 100_000, 701, 150_000},
		{"high quality", 100_000, 800, 150_000},
		{"odd amount floors", 3, 900, 4},
		{"one unit floors to one", 1, 900, 1},
		{"zero stays zero", 0, 900, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &domain.AdvertiserProfile{QualityScore: tt.quality}
			check.Equal(t, tt.expected, QualityAdjustedBid(tt.raw, profile))
		})
	}
}

func TestQualityAdjustedBid_MissingProfileUsesDefault(t *testing.T) {
	check.Equal(t, uint64(140_000), QualityAdjustedBid(140_000, nil))
}

func TestQualityAdjustedBid_Saturates(t *testing.T) {
	profile := &domain.AdvertiserProfile{QualityScore: 1000}
	check.Equal(t, uint64(math.MaxUint64), QualityAdjustedBid(math.MaxUint64, profile))
}

func TestQualityAdjustedBid_LowerRawCanOutrank(t *testing.T) {
	strong := &domain.AdvertiserProfile{QualityScore: 800}
	weak := &domain.AdvertiserProfile{QualityScore: domain.DefaultQualityScore}

	check.True(t, QualityAdjustedBid(100_000, strong) > QualityAdjustedBid(140_000, weak))
}

func TestQualityMultiplier(t *testing.T) {
	check.Equal(t, "1", QualityMultiplier(700).String())
	check.Equal(t, "1.5", QualityMultiplier(701).String())
}
