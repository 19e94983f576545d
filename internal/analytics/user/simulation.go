package user

import (
	"time"

	"analytics-demo/internal/sim"
)

// SimulationProfile returns the background schedule for the user domain.
func (m *Metrics) SimulationProfile() sim.Profile {
	return sim.Profile{
		Domain: "user",
		Jobs: []sim.Job{
			{Name: "activity", Interval: 4 * time.Second, MinCalls: 2, MaxCalls: 6, Run: m.SimulateUserActivity},
			{Name: "registrations", Interval: 25 * time.Second, MinCalls: 0, MaxCalls: 5, Run: m.RecordRegistration},
			{Name: "logins", Interval: 15 * time.Second, MinCalls: 1, MaxCalls: 6, Run: m.RecordLogin},
			{Name: "sessions", Interval: 20 * time.Second, MinCalls: 1, MaxCalls: 4, Run: m.RecordSession},
			{Name: "regions", Interval: 8 * time.Second, MinCalls: 2, MaxCalls: 8, Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Interval: 6 * time.Second, MinCalls: 1, MaxCalls: 5, Run: m.SimulateEndpointActivity},
		},
		Sweep: []sim.Activity{
			{Name: "activity", Run: m.SimulateUserActivity},
			{Name: "registrations", Run: m.RecordRegistration},
			{Name: "logins", Run: m.RecordLogin},
			{Name: "sessions", Run: m.RecordSession},
			{Name: "regions", Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Run: m.SimulateEndpointActivity},
		},
		SweepInterval: time.Minute,
		Burst: []sim.WeightedActivity{
			{Name: "activity", Weight: 0.30, Run: m.SimulateUserActivity},
			{Name: "logins", Weight: 0.20, Run: m.RecordLogin},
			{Name: "sessions", Weight: 0.20, Run: m.RecordSession},
			{Name: "regions", Weight: 0.15, Run: m.SimulateRegionalActivity},
			{Name: "endpoints", Weight: 0.15, Run: m.SimulateEndpointActivity},
		},
		BurstInterval: 150 * time.Second,
		BurstMin:      15,
		BurstMax:      35,
		BurstPauseMin: 10 * time.Millisecond,
		BurstPauseMax: 50 * time.Millisecond,
	}
}
