package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxdevs/app/domain"
)

func TestOnboardingProgress_Advance(t *testing.T) {
	t.Run("walks the card-payment path", func(t *testing.T) {
		p := domain.NewOnboardingProgress()

		require.NoError(t, p.Advance(domain.StageCompanyCreated))
		require.NoError(t, p.Advance(domain.StagePlanSelection))
		require.NoError(t, p.Advance(domain.StagePaymentPending))
		require.NoError(t, p.Advance(domain.StagePlanConfirmed))
		assert.True(t, p.Terminal())
	})

	t.Run("trial activation skips payment", func(t *testing.T) {
		p := domain.NewOnboardingProgress()

		require.NoError(t, p.Advance(domain.StageCompanyCreated))
		require.NoError(t, p.Advance(domain.StagePlanSelection))
		require.NoError(t, p.Advance(domain.StagePlanConfirmed))
		assert.True(t, p.Terminal())
	})

	t.Run("cancelled payment returns to plan selection", func(t *testing.T) {
		p := domain.NewOnboardingProgress()

		require.NoError(t, p.Advance(domain.StageCompanyCreated))
		require.NoError(t, p.Advance(domain.StagePlanSelection))
		require.NoError(t, p.Advance(domain.StagePaymentPending))
		require.NoError(t, p.Advance(domain.StagePlanSelection))
		assert.False(t, p.Terminal())
	})

	t.Run("rejects jumps outside the wizard graph", func(t *testing.T) {
		tests := []struct {
			name string
			from domain.OnboardingStage
			to   domain.OnboardingStage
		}{
			{"company form straight to plans", domain.StageCompanyForm, domain.StagePlanSelection},
			{"company form straight to payment", domain.StageCompanyForm, domain.StagePaymentPending},
			{"backwards to company form", domain.StagePlanSelection, domain.StageCompanyForm},
			{"confirmed is terminal", domain.StagePlanConfirmed, domain.StagePlanSelection},
			{"self transition", domain.StagePlanSelection, domain.StagePlanSelection},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := &domain.OnboardingProgress{Stage: tt.from}
				err := p.Advance(tt.to)
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, tt.from, p.Stage)
			})
		}
	})
}

func TestOnboardingProgress_SetDraft(t *testing.T) {
	p := domain.NewOnboardingProgress()

	require.NoError(t, p.SetDraft("  Acme Ltd  ", "Finance"))
	assert.Equal(t, "Acme Ltd", p.CompanyDraft.Name)

	assert.Error(t, p.SetDraft("", "Finance"))
	assert.Error(t, p.SetDraft("Acme Ltd", ""))
}
