package domain_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"fluxdevs/app/domain"
)

func TestParsePaymentCallback(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  domain.PaymentResult
	}{
		{
			name:  "explicit success",
			query: url.Values{"status": {"success"}, "reference": {"ref-1"}},
			want:  domain.PaymentResult{Status: domain.PaymentSuccess, Reference: "ref-1"},
		},
		{
			name:  "failed",
			query: url.Values{"status": {"failed"}, "reference": {"ref-2"}},
			want:  domain.PaymentResult{Status: domain.PaymentFailed, Reference: "ref-2"},
		},
		{
			name:  "cancelled, case-insensitive",
			query: url.Values{"status": {"Cancelled"}},
			want:  domain.PaymentResult{Status: domain.PaymentCancelled},
		},
		{
			name:  "missing status defaults to success",
			query: url.Values{"reference": {"ref-3"}},
			want:  domain.PaymentResult{Status: domain.PaymentSuccess, Reference: "ref-3"},
		},
		{
			name:  "unknown status reads as processing",
			query: url.Values{"status": {"abandoned"}},
			want:  domain.PaymentResult{Status: domain.PaymentProcessing},
		},
		{
			name:  "trxref stands in for reference",
			query: url.Values{"status": {"success"}, "trxref": {"trx-4"}},
			want:  domain.PaymentResult{Status: domain.PaymentSuccess, Reference: "trx-4"},
		},
		{
			name:  "reference wins over trxref",
			query: url.Values{"reference": {"ref-5"}, "trxref": {"trx-5"}},
			want:  domain.PaymentResult{Status: domain.PaymentSuccess, Reference: "ref-5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParsePaymentCallback(tt.query))
		})
	}
}
