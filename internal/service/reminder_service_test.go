package service

import (
	"testing"

	"trackflow/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMarksCompleted(t *testing.T) {
	done := true
	notDone := false

	assert.True(t, marksCompleted(&models.ReminderUpdate{IsCompleted: &done}))
	assert.False(t, marksCompleted(&models.ReminderUpdate{IsCompleted: &notDone}))

	// an update that leaves is_completed alone counts nothing
	assert.False(t, marksCompleted(&models.ReminderUpdate{}))
}
