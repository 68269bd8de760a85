package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKafkaMessageClassification(t *testing.T) {
	testCases := []struct {
		name     string
		msg      KafkaMessage
		kind     string
		creation bool
		field    string
	}{
		{"order placed", KafkaMessage{Type: EventOrderPlaced, Status: "pending"}, KindOrder, true, "order_pending"},
		{"order status", KafkaMessage{Type: EventOrderStatusChanged, Status: "ready"}, KindOrder, false, "order_ready"},
		{"reservation created", KafkaMessage{Type: EventReservationCreated, Status: "pending"}, KindReservation, true, "reservation_pending"},
		{"reservation status", KafkaMessage{Type: EventReservationStatusChanged, Status: "confirmed"}, KindReservation, false, "reservation_confirmed"},
		{"missing status", KafkaMessage{Type: EventOrderStatusChanged}, KindOrder, false, "order_unknown"},
		{"foreign event", KafkaMessage{Type: "menu_item_created", Status: "pending"}, "", false, "_pending"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.kind, testCase.msg.Kind())
			assert.Equal(t, testCase.creation, testCase.msg.IsCreation())
			assert.Equal(t, testCase.field, testCase.msg.CounterField())
		})
	}
}
