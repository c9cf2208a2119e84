package config

import "testing"

func TestRampStepsAfterThreshold(t *testing.T) {
	r := NewRamp(DefaultGameConfig().Difficulty)

	for i := 0; i < 3; i++ {
		if r.Spawned() {
			t.Fatalf("spawn %d ramped early", i+1)
		}
	}
	if r.Interval() != 30 || r.SinceRamp() != 3 {
		t.Fatalf("before threshold: interval %d since %d", r.Interval(), r.SinceRamp())
	}

	if !r.Spawned() {
		t.Fatal("fourth spawn should ramp")
	}
	if r.Interval() != 29 {
		t.Errorf("Interval() = %d, expected 29", r.Interval())
	}
	if r.SinceRamp() != 0 {
		t.Errorf("SinceRamp() = %d, expected 0", r.SinceRamp())
	}
	if r.Speed() != 10 {
		t.Errorf("Speed() = %d, expected 10 (29 is not a multiple of 4)", r.Speed())
	}
}

func TestRampSpeedEveryFourthInterval(t *testing.T) {
	r := NewRamp(DefaultGameConfig().Difficulty)

	// 30 -> 28 takes two ramp steps; 28 % 4 == 0 raises speed.
	for i := 0; i < 8; i++ {
		r.Spawned()
	}
	if r.Interval() != 28 || r.Speed() != 11 {
		t.Errorf("after 8 spawns: interval %d speed %d, expected 28 and 11", r.Interval(), r.Speed())
	}
}

func TestRampSaturates(t *testing.T) {
	r := NewRamp(DefaultGameConfig().Difficulty)

	prevInterval, prevSpeed := r.Interval(), r.Speed()
	for i := 0; i < 1000; i++ {
		r.Spawned()
		if r.Interval() > prevInterval || r.Speed() < prevSpeed {
			t.Fatalf("spawn %d: difficulty went backwards", i)
		}
		prevInterval, prevSpeed = r.Interval(), r.Speed()
	}

	if r.Interval() != 4 {
		t.Errorf("Interval() = %d, expected floor 4", r.Interval())
	}
	// Multiples of 4 between 28 and 4 inclusive: 28,24,...,4 = 7 steps.
	if r.Speed() != 17 {
		t.Errorf("Speed() = %d, expected 17", r.Speed())
	}
}

func TestRampSpeedCeiling(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty
	cfg.MaxSpeed = 12
	r := NewRamp(cfg)
	for i := 0; i < 1000; i++ {
		r.Spawned()
	}
	if r.Speed() != 12 {
		t.Errorf("Speed() = %d, expected ceiling 12", r.Speed())
	}
}

func TestRampReset(t *testing.T) {
	r := NewRamp(DefaultGameConfig().Difficulty)
	for i := 0; i < 50; i++ {
		r.Spawned()
	}
	r.Reset()
	if r.Interval() != 30 || r.Speed() != 10 || r.SinceRamp() != 0 {
		t.Errorf("after Reset: interval %d speed %d since %d", r.Interval(), r.Speed(), r.SinceRamp())
	}
}

func TestRampCountdown(t *testing.T) {
	r := NewRamp(DefaultGameConfig().Difficulty)
	tests := []struct {
		roll     int
		expected int
	}{
		{0, 25},
		{5, 30},
		{9, 34},
		{10, 25},
		{69, 34},
		{-3, 28},
	}
	for _, tc := range tests {
		if got := r.Countdown(tc.roll); got != tc.expected {
			t.Errorf("Countdown(%d) = %d, expected %d", tc.roll, got, tc.expected)
		}
	}
}
