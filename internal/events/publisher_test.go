package events

import (
	"encoding/json"
	"testing"

	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilPublisherIsNoop(t *testing.T) {
	var p *Publisher

	err := p.PublishOrderUpdate(OrderEvent{OrderID: 1, OrderStatus: models.StatusShipped})
	assert.NoError(t, err)
	p.Close()
}

func TestOrderEventWireFormat(t *testing.T) {
	ev := OrderEvent{
		OrderID:        7,
		OrderStatus:    models.StatusShipped,
		DeliveryOption: models.DeliveryOptions[2],
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, float64(7), got["orderId"])
	assert.Equal(t, "Shipped", got["orderStatus"])
	assert.Equal(t, models.DeliveryOptions[2], got["deliveryOption"])
}
