package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/internal/domains/event/model"
)

func TestDependents_Describe(t *testing.T) {
	tests := []struct {
		name string
		deps model.Dependents
		want string
	}{
		{
			name: "everything attached",
			deps: model.Dependents{EventServices: 2, Payments: 1, Reviews: 3, HasInvoice: true},
			want: "2 booked service(s), 1 payment(s), 3 review(s), an invoice",
		},
		{
			name: "services only",
			deps: model.Dependents{EventServices: 2},
			want: "2 booked service(s)",
		},
		{
			name: "payments without invoice",
			deps: model.Dependents{Payments: 1},
			want: "1 payment(s)",
		},
		{
			name: "invoice only",
			deps: model.Dependents{HasInvoice: true},
			want: "an invoice",
		},
		{
			name: "nothing attached",
			deps: model.Dependents{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deps.Describe())
		})
	}
}

func TestDependents_Any(t *testing.T) {
	assert.False(t, model.Dependents{}.Any())
	assert.True(t, model.Dependents{Reviews: 1}.Any())
	assert.True(t, model.Dependents{HasInvoice: true}.Any())
}
