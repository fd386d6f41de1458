package simulation_test

import (
	"testing"

	"shipping/internal/core/application/simulation"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingSimulatorStatuses(t *testing.T) {
	simulator := simulation.NewTrackingSimulator()

	assert.Equal(t, []string{
		"delivered",
		"exception",
		"in_transit",
		"out_for_delivery",
		"returned",
		"shipped",
	}, simulator.Statuses())
}

func TestTrackingSimulatorResolve(t *testing.T) {
	simulator := simulation.NewTrackingSimulator()

	t.Run("enumerated keys resolve", func(t *testing.T) {
		cases := map[string]shipment.Status{
			"shipped":          shipment.Shipped,
			"in_transit":       shipment.InTransit,
			"out_for_delivery": shipment.OutForDelivery,
			"delivered":        shipment.Delivered,
			"exception":        shipment.Exception,
			"returned":         shipment.Returned,
		}

		for key, want := range cases {
			got, err := simulator.Resolve(key)
			require.NoError(t, err, key)
			assert.Equal(t, want, got)
		}
	})

	t.Run("arbitrary strings rejected", func(t *testing.T) {
		for _, key := range []string{"", "teleported", "DELIVERED", "pending", "created"} {
			_, err := simulator.Resolve(key)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, key)
		}
	})
}
