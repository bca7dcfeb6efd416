package engine

import (
	"testing"
	"time"
)

func TestDriverTicksOncePerStep(t *testing.T) {
	s := startedSession(t, corridorLayout, calmSettings(), &scriptedRand{})
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(clock, 120*time.Millisecond, 0)

	if _, ticked := d.Advance(s); ticked {
		t.Fatal("first Advance should only record the clock")
	}

	clock.Advance(50 * time.Millisecond)
	if _, ticked := d.Advance(s); ticked {
		t.Fatal("ticked before a full step elapsed")
	}

	clock.Advance(80 * time.Millisecond)
	res, ticked := d.Advance(s)
	if !ticked || res.Tick != 1 {
		t.Fatalf("expected tick 1, got ticked=%v tick=%d", ticked, res.Tick)
	}
	if _, ticked := d.Advance(s); ticked {
		t.Error("accumulator should reset after a tick")
	}
}

func TestDriverClampsLongStalls(t *testing.T) {
	settings := calmSettings()
	settings.ItemInterval = 10 * time.Second
	s := startedSession(t, corridorLayout, settings, &scriptedRand{})
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(clock, 100*time.Millisecond, 200*time.Millisecond)

	d.Advance(s)
	clock.Advance(30 * time.Second)
	if _, ticked := d.Advance(s); !ticked {
		t.Fatal("expected a tick after a stall")
	}

	if s.itemTimer != 200*time.Millisecond {
		t.Errorf("expected the stall clamped to 200ms, item timer at %v", s.itemTimer)
	}
}

func TestDriverResyncDropsPausedTime(t *testing.T) {
	s := startedSession(t, corridorLayout, calmSettings(), &scriptedRand{})
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(clock, 100*time.Millisecond, 0)

	d.Advance(s)
	clock.Advance(90 * time.Millisecond)
	d.Advance(s)

	d.Resync()
	clock.Advance(time.Minute)
	if _, ticked := d.Advance(s); ticked {
		t.Fatal("Advance after Resync should only record the clock")
	}
	if s.tick != 0 {
		t.Errorf("expected no ticks, got %d", s.tick)
	}

	clock.Advance(100 * time.Millisecond)
	if _, ticked := d.Advance(s); !ticked {
		t.Error("expected a tick one step after resync")
	}
}

func TestDriverIgnoresClockGoingBackwards(t *testing.T) {
	s := startedSession(t, corridorLayout, calmSettings(), &scriptedRand{})
	clock := NewManualClock(time.Unix(100, 0))
	d := NewDriver(clock, 100*time.Millisecond, 0)

	d.Advance(s)
	clock.Advance(-time.Second)
	if _, ticked := d.Advance(s); ticked {
		t.Fatal("a backwards clock should not tick")
	}
	clock.Advance(100 * time.Millisecond)
	if _, ticked := d.Advance(s); !ticked {
		t.Error("expected a tick once time moves forward a step")
	}
}
