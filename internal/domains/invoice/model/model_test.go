package model_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"venue/internal/domains/invoice/model"
)

func TestNewInvoiceNumber(t *testing.T) {
	issued := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	number := model.NewInvoiceNumber(issued)

	assert.Regexp(t, regexp.MustCompile(`^INV-20260115-[0-9a-f]{8}$`), number)
}

func TestNewInvoiceNumber_Unique(t *testing.T) {
	issued := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	first := model.NewInvoiceNumber(issued)
	second := model.NewInvoiceNumber(issued)

	assert.NotEqual(t, first, second)
}
