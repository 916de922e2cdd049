package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageName(t *testing.T) {
	at := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "lead_7_20260831_140509.pdf", storageName("lead", 7, "contract.pdf", at))
	assert.Equal(t, "order_12_20260831_140509.xlsx", storageName("order", 12, "packing list.xlsx", at))

	// no extension on the original leaves the derived name bare
	assert.Equal(t, "lead_7_20260831_140509", storageName("lead", 7, "README", at))
}

func TestAttachDocumentRejectsUnknownEntityType(t *testing.T) {
	svc := &DocumentService{}

	_, _, err := svc.AttachDocument(context.Background(), "customer", 1, "a.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidEntityType)
}

func TestListDocumentsRejectsUnknownEntityType(t *testing.T) {
	svc := &DocumentService{}

	_, err := svc.ListDocuments(context.Background(), "invoice", 1)
	assert.ErrorIs(t, err, ErrInvalidEntityType)
}
