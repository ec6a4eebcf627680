package simulation

import "testing"

var neutralProfile = BoatPerformanceProfile{Upwind: 1, Downwind: 1, Maneuverability: 1}

func TestToPosition_MidFleetBaseline(t *testing.T) {
	s := ScenarioSample{CurrentMultiplier: 1}

	if got := toPosition(s, neutralProfile, 20, 0); got != 10 {
		t.Errorf("Expected neutral sample to land at fleet midpoint 10, got %d", got)
	}
}

func TestToPosition_TacticalBonusImproves(t *testing.T) {
	wrong := ScenarioSample{CurrentMultiplier: 1, TacticalCorrectness: false}
	right := ScenarioSample{CurrentMultiplier: 1, TacticalCorrectness: true}

	posWrong := toPosition(wrong, neutralProfile, 20, 0)
	posRight := toPosition(right, neutralProfile, 20, 0)

	if posWrong != 10 || posRight != 8 {
		t.Errorf("Expected correct call to gain the fixed 2-position bonus (10 -> 8), got %d -> %d", posWrong, posRight)
	}
}

func TestToPosition_ClampNeverSkipped(t *testing.T) {
	huge := ScenarioSample{CurrentMultiplier: 1, LuckDelta: 1000}
	tiny := ScenarioSample{CurrentMultiplier: 1, LuckDelta: -1000}

	if got := toPosition(huge, neutralProfile, 20, 0); got != 20 {
		t.Errorf("Expected clamp to fleet size 20, got %d", got)
	}
	if got := toPosition(tiny, neutralProfile, 20, 0); got != 1 {
		t.Errorf("Expected clamp to 1, got %d", got)
	}
}

func TestToPosition_SingleBoatFleet(t *testing.T) {
	samples := []ScenarioSample{
		{CurrentMultiplier: 1},
		{WindShiftDegrees: 15, CurrentMultiplier: 1.2, LuckDelta: 5},
		{WindShiftDegrees: -15, CurrentMultiplier: 0.8, TacticalCorrectness: true, LuckDelta: -5},
	}

	for _, s := range samples {
		if got := toPosition(s, neutralProfile, 1, 0); got != 1 {
			t.Errorf("Expected position 1 in a single-boat fleet, got %d for %+v", got, s)
		}
	}
}

func TestToPosition_ProfileDampensWindPenalty(t *testing.T) {
	s := ScenarioSample{WindShiftDegrees: 15, CurrentMultiplier: 1}

	stock := toPosition(s, neutralProfile, 20, 0)
	fast := toPosition(s, BoatPerformanceProfile{Upwind: 2, Downwind: 1, Maneuverability: 1}, 20, 0)

	if stock != 12 {
		t.Errorf("Expected stock boat at 12 under a full adverse shift, got %d", stock)
	}
	if fast != 11 {
		t.Errorf("Expected strong upwind boat at 11 under the same shift, got %d", fast)
	}
}

func TestToPosition_Pure(t *testing.T) {
	s := ScenarioSample{WindShiftDegrees: 7.3, CurrentMultiplier: 1.08, TacticalCorrectness: true, LuckDelta: -0.4}

	first := toPosition(s, neutralProfile, 20, 0)
	for i := 0; i < 10; i++ {
		if got := toPosition(s, neutralProfile, 20, 0); got != first {
			t.Fatalf("Mapper is not a pure function: %d vs %d", got, first)
		}
	}
}

func TestToPosition_BiasShiftsScore(t *testing.T) {
	s := ScenarioSample{CurrentMultiplier: 1}

	if got := toPosition(s, neutralProfile, 20, -2); got != 8 {
		t.Errorf("Expected -2 bias to land at 8, got %d", got)
	}
	if got := toPosition(s, neutralProfile, 20, 2); got != 12 {
		t.Errorf("Expected +2 bias to land at 12, got %d", got)
	}
}
