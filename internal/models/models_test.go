package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLeadStage(t *testing.T) {
	for _, stage := range []string{
		LeadStageNew, LeadStageContacted, LeadStageQualified,
		LeadStageProposalSent, LeadStageWon, LeadStageLost,
	} {
		assert.True(t, ValidLeadStage(stage), stage)
	}

	assert.False(t, ValidLeadStage(""))
	assert.False(t, ValidLeadStage("won"))
	assert.False(t, ValidLeadStage("Order Received"))
}

func TestValidOrderStage(t *testing.T) {
	for _, stage := range []string{
		OrderStageReceived, OrderStageInDevelopment,
		OrderStageReadyToDispatch, OrderStageDispatched,
	} {
		assert.True(t, ValidOrderStage(stage), stage)
	}

	assert.False(t, ValidOrderStage(""))
	assert.False(t, ValidOrderStage("New"))
}

func TestValidEntityType(t *testing.T) {
	assert.True(t, ValidEntityType(EntityTypeLead))
	assert.True(t, ValidEntityType(EntityTypeOrder))
	assert.False(t, ValidEntityType("reminder"))
	assert.False(t, ValidEntityType(""))
}
