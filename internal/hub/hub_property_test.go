package hub

import (
	"testing"

	"github.com/kazakovdmitriy/go-weather-hub/internal/model"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

func drawMetric(rt *rapid.T, label string) model.Metric {
	return rapid.SampledFrom(model.AllMetrics()).Draw(rt, label)
}

// TestProperty_RegisterIdempotent verifies that repeated registration keeps one membership entry.
func TestProperty_RegisterIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := New(zap.NewNop())
		m := drawMetric(rt, "metric")
		o := &recorder{}

		n := rapid.IntRange(1, 10).Draw(rt, "registrations")
		added := 0
		for i := 0; i < n; i++ {
			ok, err := h.Register(m, o)
			if err != nil {
				rt.Fatalf("Register failed: %v", err)
			}
			if ok {
				added++
			}
		}

		if added != 1 {
			rt.Fatalf("Register reported %d additions, want 1", added)
		}
		if count, _ := h.Subscribers(m); count != 1 {
			rt.Fatalf("Subscribers = %d, want 1", count)
		}
	})
}

// TestProperty_UnregisterAbsentIsNoop verifies that removing a missing subscription never fails.
func TestProperty_UnregisterAbsentIsNoop(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := New(zap.NewNop())
		m := drawMetric(rt, "metric")
		other := &recorder{}

		if rapid.Bool().Draw(rt, "register_other") {
			_, _ = h.Register(m, other)
		}

		removed, err := h.Unregister(m, &recorder{})
		if err != nil {
			rt.Fatalf("Unregister failed: %v", err)
		}
		if removed {
			rt.Fatalf("Unregister reported removal of an absent observer")
		}
	})
}

// TestProperty_SubEpsilonUpdateIgnored verifies that changes below Epsilon neither store nor notify.
func TestProperty_SubEpsilonUpdateIgnored(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := New(zap.NewNop())
		m := drawMetric(rt, "metric")

		current := rapid.Float64Range(-1e6, 1e6).Draw(rt, "current")
		_, _ = h.Update(m, current)
		stored, _ := h.Reading(m)

		o := &recorder{}
		_, _ = h.Register(m, o)

		delta := rapid.Float64Range(-0.0009, 0.0009).Draw(rt, "delta")
		changed, err := h.Update(m, stored+delta)
		if err != nil {
			rt.Fatalf("Update failed: %v", err)
		}
		if changed {
			rt.Fatalf("Update(%v) on %v reported a change", stored+delta, stored)
		}
		if got, _ := h.Reading(m); got != stored {
			rt.Fatalf("Reading = %v, want %v", got, stored)
		}
		if calls := o.Calls(); len(calls) != 0 {
			rt.Fatalf("observer notified %d times, want 0", len(calls))
		}
	})
}

// TestProperty_ChangeNotifiesExactlySubscribers verifies that a real change reaches every subscriber once.
func TestProperty_ChangeNotifiesExactlySubscribers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := New(zap.NewNop())
		m := drawMetric(rt, "metric")

		n := rapid.IntRange(0, 8).Draw(rt, "observers")
		subscribed := make([]*recorder, 0, n)
		unsubscribed := make([]*recorder, 0, n)
		for i := 0; i < n; i++ {
			o := &recorder{}
			_, _ = h.Register(m, o)
			if rapid.Bool().Draw(rt, "unsubscribe") {
				_, _ = h.Unregister(m, o)
				unsubscribed = append(unsubscribed, o)
				continue
			}
			subscribed = append(subscribed, o)
		}

		otherMetric := &recorder{}
		for _, other := range model.AllMetrics() {
			if other != m {
				_, _ = h.Register(other, otherMetric)
			}
		}

		magnitude := rapid.Float64Range(0.0011, 1000).Draw(rt, "magnitude")
		if rapid.Bool().Draw(rt, "negative") {
			magnitude = -magnitude
		}
		value := magnitude

		changed, err := h.Update(m, value)
		if err != nil {
			rt.Fatalf("Update failed: %v", err)
		}
		if !changed {
			rt.Fatalf("Update(%v) reported no change", value)
		}
		if got, _ := h.Reading(m); got != value {
			rt.Fatalf("Reading = %v, want %v", got, value)
		}

		for i, o := range subscribed {
			calls := o.Calls()
			if len(calls) != 1 || calls[0] != (model.Reading{Metric: m, Value: value}) {
				rt.Fatalf("subscriber %d received %v", i, calls)
			}
		}
		for i, o := range unsubscribed {
			if calls := o.Calls(); len(calls) != 0 {
				rt.Fatalf("unsubscribed observer %d received %v", i, calls)
			}
		}
		if calls := otherMetric.Calls(); len(calls) != 0 {
			rt.Fatalf("observer of other metrics received %v", calls)
		}
	})
}
