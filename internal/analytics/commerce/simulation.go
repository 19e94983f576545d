package commerce

import (
	"time"

	"analytics-demo/internal/sim"
)

// SimulationProfile returns the background schedule for the commerce domain:
// independently timed per-activity jobs, a comprehensive sweep every minute,
// and a sales-event burst every three minutes.
func (m *Metrics) SimulationProfile() sim.Profile {
	return sim.Profile{
		Domain: "commerce",
		Jobs: []sim.Job{
			{Name: "orders", Interval: 12 * time.Second, MinCalls: 1, MaxCalls: 5, Run: m.SimulateOrderProcessing},
			{Name: "payments", Interval: 8 * time.Second, MinCalls: 1, MaxCalls: 4, Run: m.SimulatePaymentProcessing},
			{Name: "products", Interval: 5 * time.Second, MinCalls: 2, MaxCalls: 9, Run: m.SimulateProductActivity},
			{Name: "cart", Interval: 7 * time.Second, MinCalls: 1, MaxCalls: 6, Run: m.SimulateCartActivity},
			{Name: "database", Interval: 4 * time.Second, MinCalls: 2, MaxCalls: 7, Run: m.SimulateDatabaseActivity},
			{Name: "regions", Interval: 9 * time.Second, MinCalls: 3, MaxCalls: 10, Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Interval: 6 * time.Second, MinCalls: 2, MaxCalls: 7, Run: m.SimulateEndpointActivity},
		},
		Sweep: []sim.Activity{
			{Name: "orders", Run: m.SimulateOrderProcessing},
			{Name: "payments", Run: m.SimulatePaymentProcessing},
			{Name: "products", Run: m.SimulateProductActivity},
			{Name: "cart", Run: m.SimulateCartActivity},
			{Name: "database", Run: m.SimulateDatabaseActivity},
			{Name: "regions", Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Run: m.SimulateEndpointActivity},
		},
		SweepInterval: time.Minute,
		Burst: []sim.WeightedActivity{
			{Name: "orders", Weight: 0.25, Run: m.SimulateOrderProcessing},
			{Name: "payments", Weight: 0.20, Run: m.SimulatePaymentProcessing},
			{Name: "products", Weight: 0.25, Run: m.SimulateProductActivity},
			{Name: "cart", Weight: 0.15, Run: m.SimulateCartActivity},
			{Name: "endpoints", Weight: 0.15, Run: m.SimulateEndpointActivity},
		},
		BurstInterval: 3 * time.Minute,
		BurstMin:      20,
		BurstMax:      50,
		BurstPauseMin: 5 * time.Millisecond,
		BurstPauseMax: 30 * time.Millisecond,
	}
}
