package service

import (
	"testing"
	"time"

	"trackflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRequestDefaultsStageToNew(t *testing.T) {
	req := &LeadRequest{
		Name:            "Acme",
		Contact:         "a@x.com",
		Company:         "Acme Co",
		ProductInterest: "Widget",
	}

	lead, err := req.toLead()
	require.NoError(t, err)
	assert.Equal(t, models.LeadStageNew, lead.Stage)
	assert.Equal(t, "Acme", lead.Name)
	assert.Nil(t, lead.FollowUpDate)
	assert.Nil(t, lead.Notes)
}

func TestLeadRequestKeepsSuppliedStage(t *testing.T) {
	notes := "called twice"
	followUp := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	req := &LeadRequest{
		Name:            "Acme",
		Contact:         "a@x.com",
		Company:         "Acme Co",
		ProductInterest: "Widget",
		Stage:           models.LeadStageWon,
		FollowUpDate:    &followUp,
		Notes:           &notes,
	}

	lead, err := req.toLead()
	require.NoError(t, err)
	assert.Equal(t, models.LeadStageWon, lead.Stage)
	assert.Equal(t, &followUp, lead.FollowUpDate)
	assert.Equal(t, &notes, lead.Notes)
}

func TestLeadRequestRejectsUnknownStage(t *testing.T) {
	req := &LeadRequest{
		Name:            "Acme",
		Contact:         "a@x.com",
		Company:         "Acme Co",
		ProductInterest: "Widget",
		Stage:           "Closed",
	}

	_, err := req.toLead()
	assert.ErrorIs(t, err, ErrInvalidStage)
}
