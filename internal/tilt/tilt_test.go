package tilt

import "testing"

func TestQuantizerTier(t *testing.T) {
	q := DefaultQuantizer()
	tests := []struct {
		sample   int
		expected Tier
		velocity int
	}{
		{0, Neutral, 0},
		{125, Neutral, 0},
		{-125, Neutral, 0},
		{126, SlowRight, 15},
		{-126, SlowLeft, -15},
		{300, SlowRight, 15},
		{-300, SlowLeft, -15},
		{301, MediumRight, 20},
		{-600, MediumLeft, -20},
		{601, FastRight, 25},
		{800, FastRight, 25},
		{-800, FastLeft, -25},
		{801, StrongRight, 30},
		{-801, StrongLeft, -30},
		{-5000, StrongLeft, -30},
	}
	for _, tc := range tests {
		if got := q.Tier(tc.sample); got != tc.expected {
			t.Errorf("Tier(%d) = %v, expected %v", tc.sample, got, tc.expected)
		}
		if got := q.Velocity(tc.sample); got != tc.velocity {
			t.Errorf("Velocity(%d) = %d, expected %d", tc.sample, got, tc.velocity)
		}
	}
}

func TestEverySampleHasOneTier(t *testing.T) {
	q := DefaultQuantizer()
	prev := q.Tier(-1200)
	for a := -1199; a <= 1200; a++ {
		cur := q.Tier(a)
		if cur < StrongLeft || cur > StrongRight {
			t.Fatalf("Tier(%d) = %d out of range", a, cur)
		}
		if cur < prev {
			t.Fatalf("tiers not monotonic at %d: %v after %v", a, cur, prev)
		}
		if q.Tier(-a) != -cur {
			t.Fatalf("Tier(%d) = %v is not the mirror of Tier(%d) = %v", -a, q.Tier(-a), a, cur)
		}
		prev = cur
	}
}

func TestTierNames(t *testing.T) {
	names := map[Tier]string{
		StrongLeft:  "strong-left",
		Neutral:     "neutral",
		MediumRight: "medium-right",
		Tier(42):    "unknown",
	}
	for tier, want := range names {
		if tier.String() != want {
			t.Errorf("Tier(%d).String() = %q, expected %q", int(tier), tier.String(), want)
		}
	}
}

func TestSampleRoundTrips(t *testing.T) {
	q := DefaultQuantizer()
	for tier := StrongLeft; tier <= StrongRight; tier++ {
		if got := q.Tier(q.Sample(tier)); got != tier {
			t.Errorf("Tier(Sample(%v)) = %v", tier, got)
		}
	}
}

func TestSampleOutOfRangeTier(t *testing.T) {
	q := DefaultQuantizer()
	if got := q.Tier(q.Sample(Tier(7))); got != StrongRight {
		t.Errorf("Tier(Sample(7)) = %v, expected %v", got, StrongRight)
	}
	if got := q.Tier(q.Sample(Tier(-9))); got != StrongLeft {
		t.Errorf("Tier(Sample(-9)) = %v, expected %v", got, StrongLeft)
	}
}

func TestScript(t *testing.T) {
	s := NewScript(10, -400, 900)
	for _, want := range []int{10, -400, 900, 900, 900} {
		if got := s.ReadTilt(); got != want {
			t.Errorf("ReadTilt() = %d, expected %d", got, want)
		}
	}
	if NewScript().ReadTilt() != 0 {
		t.Error("empty script should read neutral")
	}
}

func TestStatic(t *testing.T) {
	var r Reader = Static(-700)
	if r.ReadTilt() != -700 {
		t.Error("Static should return its value")
	}
}

func TestKeyboard(t *testing.T) {
	q := DefaultQuantizer()
	k := NewKeyboard(q)

	if k.Tier() != Neutral || k.ReadTilt() != 0 {
		t.Fatal("keyboard should start neutral")
	}

	k.Left()
	k.Left()
	if k.Tier() != MediumLeft {
		t.Errorf("Tier() = %v after two Left, expected medium-left", k.Tier())
	}
	if q.Velocity(k.ReadTilt()) != -20 {
		t.Errorf("velocity = %d, expected -20", q.Velocity(k.ReadTilt()))
	}

	for i := 0; i < 10; i++ {
		k.Right()
	}
	if k.Tier() != StrongRight {
		t.Errorf("Tier() = %v, expected strong-right (clamped)", k.Tier())
	}

	k.Center()
	if k.Tier() != Neutral {
		t.Error("Center() should return to neutral")
	}
}
