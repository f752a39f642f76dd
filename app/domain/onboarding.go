package domain

import (
	"fmt"
	"strings"
)

// OnboardingStage identifies a step of the onboarding wizard.
type OnboardingStage string

const (
	StageCompanyForm    OnboardingStage = "company_form"
	StageCompanyCreated OnboardingStage = "company_created"
	StagePlanSelection  OnboardingStage = "plan_selection"
	StagePaymentPending OnboardingStage = "payment_pending"
	StagePlanConfirmed  OnboardingStage = "plan_confirmed"
)

// CompanyDraft holds the company details pending server confirmation.
type CompanyDraft struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Industry string `json:"industry" validate:"required"`
}

// OnboardingProgress is the ephemeral wizard state. It is never persisted:
// backgrounding the app discards it and there is no resume-from-crash
// guarantee.
type OnboardingProgress struct {
	Stage        OnboardingStage
	CompanyDraft CompanyDraft
	SelectedPlan *Plan
}

// NewOnboardingProgress creates wizard state at the first step.
func NewOnboardingProgress() *OnboardingProgress {
	return &OnboardingProgress{Stage: StageCompanyForm}
}

// Availability is the result of a company-name availability check. The
// tagged enum replaces the original nullable-boolean encoding so "still
// checking" can never be confused with "available".
type Availability int

const (
	AvailabilityChecking Availability = iota
	AvailabilityAvailable
	AvailabilityTaken
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityTaken:
		return "taken"
	default:
		return "checking"
	}
}

// validTransitions enumerates the linear wizard graph.
var validTransitions = map[OnboardingStage][]OnboardingStage{
	StageCompanyForm:    {StageCompanyCreated},
	StageCompanyCreated: {StagePlanSelection},
	StagePlanSelection:  {StagePaymentPending, StagePlanConfirmed},
	StagePaymentPending: {StagePlanConfirmed, StagePlanSelection},
	StagePlanConfirmed:  {},
}

// Advance moves the wizard to the next stage, rejecting transitions outside
// the wizard graph. A failed remote call never calls Advance, so the stage
// stays put until the user retries.
func (p *OnboardingProgress) Advance(next OnboardingStage) error {
	for _, allowed := range validTransitions[p.Stage] {
		if allowed == next {
			p.Stage = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Stage, next)
}

// SetDraft records the pending company details.
func (p *OnboardingProgress) SetDraft(name, industry string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("company name is required")
	}
	if strings.TrimSpace(industry) == "" {
		return fmt.Errorf("industry is required")
	}
	p.CompanyDraft = CompanyDraft{Name: name, Industry: industry}
	return nil
}

// Terminal reports whether the wizard has reached its final stage.
func (p *OnboardingProgress) Terminal() bool {
	return p.Stage == StagePlanConfirmed
}
