package domain_test

import (
	"testing"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig_Form(t *testing.T) {
	raw := map[string]any{
		"fields": []any{
			map[string]any{"name": "email", "type": "email", "label": "Email", "required": true},
			map[string]any{"name": "name", "type": "text", "label": "Full Name"},
		},
	}

	got, err := domain.DecodeConfig(domain.StepForm, raw)
	require.NoError(t, err)

	cfg := got.(*domain.FormConfig)
	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, "email", cfg.Fields[0].Name)
	assert.True(t, cfg.Fields[0].Required)
	assert.False(t, cfg.Fields[1].Required)
}

func TestDecodeConfig_Pricing(t *testing.T) {
	raw := map[string]any{
		"plans": []any{
			map[string]any{"name": "Basic", "price": "$9.99", "features": []any{"5 matches/day"}},
		},
	}

	got, err := domain.DecodeConfig(domain.StepPricing, raw)
	require.NoError(t, err)

	cfg := got.(*domain.PricingConfig)
	require.Len(t, cfg.Plans, 1)
	assert.Equal(t, "$9.99", cfg.Plans[0].Price)
	assert.Equal(t, []string{"5 matches/day"}, cfg.Plans[0].Features)
}

func TestDecodeConfig_Redirect(t *testing.T) {
	got, err := domain.DecodeConfig(domain.StepRedirect, map[string]any{
		"redirectUrl": "https://example.com/welcome",
		"message":     "All done",
	})
	require.NoError(t, err)

	cfg := got.(*domain.RedirectConfig)
	assert.Equal(t, "https://example.com/welcome", cfg.RedirectURL)
	assert.Equal(t, "All done", cfg.Message)
}

func TestDecodeConfig_NilNormalizesToEmpty(t *testing.T) {
	got, err := domain.DecodeConfig(domain.StepVideo, nil)
	require.NoError(t, err)

	cfg := got.(*domain.VideoConfig)
	assert.Empty(t, cfg.VideoURL)
	assert.Empty(t, cfg.Options)
}

func TestDecodeConfig_UnknownKeysIgnored(t *testing.T) {
	got, err := domain.DecodeConfig(domain.StepTimer, map[string]any{
		"duration": 300,
		"legacy":   "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, 300, got.(*domain.TimerConfig).Duration)
}

func TestDecodeConfig_UnknownType(t *testing.T) {
	_, err := domain.DecodeConfig(domain.StepType("hologram"), nil)
	assert.Error(t, err)
}

func TestStepTypeCatalog(t *testing.T) {
	types := domain.Types()
	assert.Len(t, types, 20)

	info, ok := domain.StepVideo.Info()
	require.True(t, ok)
	assert.Equal(t, "Video Step", info.Name)

	assert.True(t, domain.StepMap.Valid())
	assert.False(t, domain.StepType("hologram").Valid())
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Video Step", domain.StepVideo.DefaultTitle())
	assert.Equal(t, "Pricing Step", domain.StepPricing.DefaultTitle())
}
