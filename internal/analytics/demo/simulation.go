package demo

import (
	"time"

	"analytics-demo/internal/sim"
)

// SimulationProfile returns the background schedule for the base variant.
func (m *Metrics) SimulationProfile() sim.Profile {
	return sim.Profile{
		Domain: "demo",
		Jobs: []sim.Job{
			{Name: "activity", Interval: 5 * time.Second, MinCalls: 1, MaxCalls: 5, Run: m.SimulateUserActivity},
			{Name: "orders", Interval: 10 * time.Second, MinCalls: 1, MaxCalls: 4, Run: m.SimulateOrderProcessing},
			{Name: "database", Interval: 3 * time.Second, MinCalls: 2, MaxCalls: 7, Run: m.SimulateDatabaseActivity},
			{Name: "regions", Interval: 7 * time.Second, MinCalls: 3, MaxCalls: 8, Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Interval: 8 * time.Second, MinCalls: 2, MaxCalls: 6, Run: m.SimulateEndpointActivity},
			{Name: "registrations", Interval: 30 * time.Second, MinCalls: 0, MaxCalls: 4, Run: m.RecordRegistration},
		},
		Sweep: []sim.Activity{
			{Name: "activity", Run: m.SimulateUserActivity},
			{Name: "orders", Run: m.SimulateOrderProcessing},
			{Name: "database", Run: m.SimulateDatabaseActivity},
			{Name: "regions", Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Run: m.SimulateEndpointActivity},
		},
		SweepInterval: time.Minute,
		Burst: []sim.WeightedActivity{
			{Name: "activity", Weight: 0.30, Run: m.SimulateUserActivity},
			{Name: "orders", Weight: 0.20, Run: m.SimulateOrderProcessing},
			{Name: "database", Weight: 0.20, Run: m.SimulateDatabaseActivity},
			{Name: "regions", Weight: 0.15, Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Weight: 0.15, Run: m.SimulateEndpointActivity},
		},
		BurstInterval: 2 * time.Minute,
		BurstMin:      10,
		BurstMax:      25,
		BurstPauseMin: 10 * time.Millisecond,
		BurstPauseMax: 50 * time.Millisecond,
	}
}
