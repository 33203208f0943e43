package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	f := Fields{
		"name":   "  Jordan  ",
		"count":  42,
		"amount": 2.5,
		"flag":   true,
		"empty":  nil,
	}

	assert.Equal(t, "Jordan", f.Str("name"))
	assert.Equal(t, "42", f.Str("count"))
	assert.Equal(t, "2.5", f.Str("amount"))
	assert.Equal(t, "true", f.Str("flag"))
	assert.Equal(t, "", f.Str("empty"))
	assert.Equal(t, "", f.Str("missing"))
}

func TestHasAndIs(t *testing.T) {
	f := Fields{"plan": "VC", "blank": "   "}

	assert.True(t, f.Has("plan"))
	assert.False(t, f.Has("blank"))
	assert.False(t, f.Has("missing"))

	assert.True(t, f.Is("plan", "vc"))
	assert.False(t, f.Is("plan", "angel"))
}

func TestContains(t *testing.T) {
	f := Fields{"estate_goal": "Asset Protection and tax planning"}

	assert.False(t, f.Contains("estate_goal", "asset_protection"))
	assert.True(t, f.Contains("estate_goal", "asset protection"))
	assert.True(t, f.ContainsAny("estate_goal", "nothing", "tax"))
	assert.False(t, f.ContainsAny("estate_goal", "succession", "special"))
}

func TestTruthy(t *testing.T) {
	assert.True(t, Fields{"own_business": "yes"}.Truthy("own_business"))
	assert.True(t, Fields{"own_business": "1"}.Truthy("own_business"))
	assert.True(t, Fields{"own_business": true}.Truthy("own_business"))
	assert.False(t, Fields{"own_business": "no"}.Truthy("own_business"))
	assert.False(t, Fields{}.Truthy("own_business"))
}

func TestNum(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"plain integer", "2500000", 2_500_000},
		{"comma separated", "12,500,000", 12_500_000},
		{"dollar sign", "$750,000", 750_000},
		{"millions suffix", "2.5m", 2_500_000},
		{"thousands suffix", "500k+", 500_000},
		{"over prefix", "over25m", 25_000_000},
		{"under prefix", "under 1m", 1_000_000},
		{"range keeps lower bound", "5m-25m", 5_000_000},
		{"native float", 1500.0, 1500},
		{"native int", 1500, 1500},
		{"garbage", "call me", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Fields{"v": tc.value}
			assert.Equal(t, tc.want, f.Num("v"))
		})
	}
}

func TestClone(t *testing.T) {
	f := Fields{"a": 1}
	c := f.Clone()
	c["a"] = 2

	assert.Equal(t, 1, f["a"])
	assert.Equal(t, 2, c["a"])
}
