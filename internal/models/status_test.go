package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStages(t *testing.T) {
	// Every (current, target) pair: completed before, active at, pending after.
	for cur, current := range DeliveryOptions {
		stages := DeliveryStages(current)
		assert.Len(t, stages, len(DeliveryOptions))
		for target, stage := range stages {
			assert.Equal(t, DeliveryOptions[target], stage.Option)
			switch {
			case target < cur:
				assert.Equal(t, StageCompleted, stage.State, "current=%q target=%q", current, stage.Option)
			case target == cur:
				assert.Equal(t, StageActive, stage.State, "current=%q target=%q", current, stage.Option)
			default:
				assert.Equal(t, StagePending, stage.State, "current=%q target=%q", current, stage.Option)
			}
		}
	}
}

func TestDeliveryStagesUnknownCurrent(t *testing.T) {
	for _, stage := range DeliveryStages("not a real option") {
		assert.Equal(t, StagePending, stage.State)
	}
}

func TestStageStateString(t *testing.T) {
	assert.Equal(t, "completed", StageCompleted.String())
	assert.Equal(t, "active", StageActive.String())
	assert.Equal(t, "pending", StagePending.String())
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusDeliveredConfirmed.Terminal())
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered} {
		assert.False(t, s.Terminal(), "%s should not be terminal", s)
	}
}

func TestEditableStatusesExcludeTerminal(t *testing.T) {
	editable := EditableStatuses()
	assert.Len(t, editable, len(OrderStatuses)-2)
	assert.NotContains(t, editable, StatusCancelled)
	assert.NotContains(t, editable, StatusDeliveredConfirmed)
}

func TestStatusValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("Lost In Transit").Valid())
}

func TestValidDeliveryOption(t *testing.T) {
	for _, o := range DeliveryOptions {
		assert.True(t, ValidDeliveryOption(o))
	}
	assert.False(t, ValidDeliveryOption("Option 6 - teleport"))
	assert.False(t, ValidDeliveryOption(""))
}
