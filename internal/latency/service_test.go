package latency

import (
	"context"
	"sync/atomic"
	"testing"
)

type stubGateway struct {
	latency int
	fail    bool
	panics  bool
	calls   int64
}

func (g *stubGateway) Name() string { return "stub" }

func (g *stubGateway) Fetch(ctx context.Context, from, to Site) (Data, error) {
	atomic.AddInt64(&g.calls, 1)
	if g.panics {
		panic("stub gateway blew up")
	}
	if g.fail {
		return Data{}, ErrUnavailable
	}
	return Data{
		From:      from.SiteID(),
		To:        to.SiteID(),
		Latency:   g.latency,
		Timestamp: 1,
		Source:    SourceRadar,
	}, nil
}

func newTestService(g Gateway) *Service {
	return NewService(g, NewEstimator(DefaultJitter), Exchanges(), CloudRegions())
}

func TestResolveAllFallsBackWhenGatewayUnavailable(t *testing.T) {
	svc := newTestService(&stubGateway{fail: true})

	snap := svc.ResolveAll(context.Background(), ResolveOptions{PreferExternal: true})
	if len(snap.Connections) == 0 {
		t.Fatal("expected a non-empty connection set")
	}

	for _, conn := range snap.Connections {
		if conn.Source != SourceCalculated {
			t.Fatalf("connection %s->%s source = %q, want %q",
				conn.From.SiteID(), conn.To.SiteID(), conn.Source, SourceCalculated)
		}
		if conn.Latency < MinLatencyMs {
			t.Fatalf("connection latency %d below floor", conn.Latency)
		}
	}
}

func TestResolveAllUsesGatewayValue(t *testing.T) {
	svc := newTestService(&stubGateway{latency: 42})

	snap := svc.ResolveAll(context.Background(), ResolveOptions{PreferExternal: true})
	if len(snap.Connections) == 0 {
		t.Fatal("expected a non-empty connection set")
	}

	for _, conn := range snap.Connections {
		if conn.Latency != 42 {
			t.Fatalf("connection latency = %d, want the gateway's 42", conn.Latency)
		}
		if conn.Source != SourceRadar {
			t.Fatalf("connection source = %q, want %q", conn.Source, SourceRadar)
		}
	}
}

func TestResolveAllSkipsGatewayWhenNotPreferred(t *testing.T) {
	gw := &stubGateway{latency: 42}
	svc := newTestService(gw)

	snap := svc.ResolveAll(context.Background(), ResolveOptions{PreferExternal: false})

	if n := atomic.LoadInt64(&gw.calls); n != 0 {
		t.Errorf("gateway called %d times with PreferExternal=false, want 0", n)
	}
	for _, conn := range snap.Connections {
		if conn.Source != SourceCalculated {
			t.Fatalf("connection source = %q, want %q", conn.Source, SourceCalculated)
		}
	}
}

func TestResolveAllCoversSelectedTopology(t *testing.T) {
	svc := newTestService(nil)

	want := len(SelectPairs(Exchanges(), CloudRegions()))
	snap := svc.ResolveAll(context.Background(), ResolveOptions{})

	if len(snap.Connections) != want {
		t.Errorf("resolved %d connections, want %d", len(snap.Connections), want)
	}
	if snap.ResolvedAt == 0 {
		t.Error("expected a non-zero ResolvedAt")
	}
}

func TestResolveAllSurvivesPanickingGateway(t *testing.T) {
	svc := newTestService(&stubGateway{panics: true})

	want := len(SelectPairs(Exchanges(), CloudRegions()))
	snap := svc.ResolveAll(context.Background(), ResolveOptions{PreferExternal: true})

	if len(snap.Connections) != want {
		t.Fatalf("resolved %d connections after gateway panic, want %d", len(snap.Connections), want)
	}
	for _, conn := range snap.Connections {
		if conn.Source != SourceCalculated {
			t.Fatalf("connection source = %q after panic, want %q", conn.Source, SourceCalculated)
		}
	}
}

func TestResolveAllProviderFilter(t *testing.T) {
	svc := newTestService(nil)

	snap := svc.ResolveAll(context.Background(), ResolveOptions{Provider: ProviderGCP})
	if len(snap.Connections) == 0 {
		t.Fatal("expected GCP-only topology to be non-empty")
	}

	for _, conn := range snap.Connections {
		for _, site := range []Site{conn.From, conn.To} {
			switch v := site.(type) {
			case Exchange:
				if v.CloudProvider != ProviderGCP {
					t.Fatalf("non-GCP exchange %s in filtered set", v.ID)
				}
			case CloudRegion:
				if v.Provider != ProviderGCP {
					t.Fatalf("non-GCP region %s in filtered set", v.ID)
				}
			}
		}
	}
}

func TestResolveIndependentPerPair(t *testing.T) {
	// One failing gateway call must not poison other pairs: the stub
	// fails every call, and every pair independently falls back.
	gw := &stubGateway{fail: true}
	svc := newTestService(gw)

	snap := svc.ResolveAll(context.Background(), ResolveOptions{PreferExternal: true})

	want := len(SelectPairs(Exchanges(), CloudRegions()))
	if int(atomic.LoadInt64(&gw.calls)) != want {
		t.Errorf("gateway attempted %d times, want one attempt per pair (%d)", gw.calls, want)
	}
	if len(snap.Connections) != want {
		t.Errorf("resolved %d connections, want %d", len(snap.Connections), want)
	}
}

func TestHistoryFromService(t *testing.T) {
	svc := newTestService(nil)

	points := svc.History(singaporeExchange, virginiaRegion, 24)
	if len(points) != HistoryPoints {
		t.Fatalf("got %d points, want %d", len(points), HistoryPoints)
	}
}
