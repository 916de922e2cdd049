package service

import (
	"context"
	"testing"

	"trackflow/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRejectsUnknownStage(t *testing.T) {
	svc := &OrderService{}

	req := &CreateOrderRequest{LeadID: 1, Stage: "Shipped"}
	_, err := svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestUpdateOrderRejectsUnknownStage(t *testing.T) {
	svc := &OrderService{}

	bad := "Shipped"
	_, err := svc.UpdateOrder(context.Background(), 1, &models.OrderUpdate{Stage: &bad})
	assert.ErrorIs(t, err, ErrInvalidStage)
}
