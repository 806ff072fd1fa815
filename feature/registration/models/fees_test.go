package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeeTier(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{name: "member comma separator", amount: "100,000", want: true},
		{name: "member dot separator", amount: "100.000", want: true},
		{name: "member with currency suffix", amount: "100,000 VND", want: true},
		{name: "non member", amount: "200,000", want: false},
		{name: "non member dot separator", amount: "200.000", want: false},
		{name: "leading group only", amount: "1,000,000", want: false},
		{name: "free text", amount: "I do not know", want: false},
		{name: "empty", amount: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFeeTier(tt.amount))
		})
	}
}

func TestPaymentAmount(t *testing.T) {
	assert.Equal(t, "100,000", PaymentAmount(true))
	assert.Equal(t, "200,000", PaymentAmount(false))
}
