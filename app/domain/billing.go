package domain

import "time"

// BillingPeriod is a plan's billing cadence.
type BillingPeriod string

const (
	BillingMonthly   BillingPeriod = "monthly"
	BillingQuarterly BillingPeriod = "quarterly"
	BillingAnnual    BillingPeriod = "annual"
)

// Plan is a billing tier definition owned by the billing service.
type Plan struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Industry      string        `json:"industry,omitempty"`
	MaxUsers      int           `json:"max_users"`
	MaxBranches   int           `json:"max_branches"`
	Price         string        `json:"price"`
	BillingPeriod BillingPeriod `json:"billing_period"`
	TierLevel     string        `json:"tier_level,omitempty"`
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionCanceled  SubscriptionStatus = "canceled"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Subscription binds a tenant to a plan.
type Subscription struct {
	ID            string             `json:"id"`
	Plan          Plan               `json:"plan"`
	Status        SubscriptionStatus `json:"status"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	RemainingDays int                `json:"remaining_days"`
	AutoRenew     bool               `json:"auto_renew,omitempty"`
}

// PageMeta is the pagination envelope the services return for list
// endpoints. Next and Previous are opaque URLs; the client only tests them
// for presence.
type PageMeta struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// Page holds exactly the currently displayed page of a server-owned
// collection. Fetching another page replaces it wholesale.
type Page[T any] struct {
	Items []T
	Meta  PageMeta
}

// HasNext reports whether a further page exists.
func (p Page[T]) HasNext() bool { return p.Meta.Next != "" }

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool { return p.Meta.Previous != "" }
