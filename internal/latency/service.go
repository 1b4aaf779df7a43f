package latency

import (
	"context"
	"log"
	"sync"
	"time"
)

// ResolveOptions is the caller-supplied policy for a resolution pass.
// It is passed in explicitly rather than read from ambient state.
type ResolveOptions struct {
	// PreferExternal tries the gateway first and falls back to the
	// estimator; when false the gateway is skipped entirely.
	PreferExternal bool

	// Provider, when set, restricts the topology to sites of one cloud
	// provider.
	Provider CloudProvider
}

// Service orchestrates topology selection, the external gateway and the
// estimator into resolved connection sets.
type Service struct {
	gateway   Gateway
	estimator *Estimator
	exchanges []Exchange
	regions   []CloudRegion
}

// NewService creates a Service over the given catalogs. gateway may be
// nil, in which case every resolution is estimator-sourced.
func NewService(gateway Gateway, estimator *Estimator, exchanges []Exchange, regions []CloudRegion) *Service {
	return &Service{
		gateway:   gateway,
		estimator: estimator,
		exchanges: exchanges,
		regions:   regions,
	}
}

// Estimator exposes the service's estimator for history synthesis.
func (s *Service) Estimator() *Estimator {
	return s.estimator
}

// Resolve produces exactly one latency figure for a pair. With
// preferExternal set, the gateway is consulted first and any
// unavailability falls back to the estimator; the decision is made
// independently per pair. The returned Source reflects where the value
// actually came from.
func (s *Service) Resolve(ctx context.Context, from, to Site, preferExternal bool) Data {
	return s.ResolveWith(ctx, from, to, preferExternal, s.estimator)
}

// ResolveWith is Resolve with a caller-chosen fallback estimator, used
// by the live API path which applies a tighter jitter fraction.
func (s *Service) ResolveWith(ctx context.Context, from, to Site, preferExternal bool, estimator *Estimator) Data {
	if estimator == nil {
		estimator = s.estimator
	}
	if preferExternal && s.gateway != nil {
		data, err := s.gateway.Fetch(ctx, from, to)
		if err == nil {
			return data
		}
		// Upstream unavailability is absorbed, never surfaced.
		log.Printf("gateway %s unavailable for %s->%s: %v; using estimator",
			s.gateway.Name(), from.SiteID(), to.SiteID(), err)
	}
	return estimator.EstimateData(from, to)
}

// ResolveAll runs one full resolution pass: selects the topology, fans
// out one resolution per pair, and joins all completions. Completion
// order is arbitrary. Individual pair failures never discard other
// pairs' results; an unexpected fault in the pass degrades to a fully
// simulated connection set rather than returning nothing.
func (s *Service) ResolveAll(ctx context.Context, opts ResolveOptions) (snap Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resolution pass failed: %v; serving simulated connection set", r)
			snap = s.simulatedSnapshot(opts)
		}
	}()

	exchanges, regions := s.filterCatalogs(opts.Provider)
	pairs := SelectPairs(exchanges, regions)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		conns = make([]Connection, 0, len(pairs))
	)

	for _, p := range pairs {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()

			data, fault := s.resolvePair(ctx, p, opts.PreferExternal)
			if fault {
				// A fault in one pair must not lose the others;
				// this pair degrades to the estimator.
				data = s.estimator.EstimateData(p.From, p.To)
			}

			mu.Lock()
			conns = append(conns, Connection{
				From:      p.From,
				To:        p.To,
				Latency:   data.Latency,
				Timestamp: data.Timestamp,
				Source:    data.Source,
			})
			mu.Unlock()
		}()
	}

	wg.Wait()

	return Snapshot{
		Connections: conns,
		ResolvedAt:  time.Now().UnixMilli(),
	}
}

// resolvePair shields the fan-out from a panicking gateway; fault
// reports that the pair needs the estimator fallback.
func (s *Service) resolvePair(ctx context.Context, p Pair, preferExternal bool) (data Data, fault bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resolution for %s->%s panicked: %v", p.From.SiteID(), p.To.SiteID(), r)
			fault = true
		}
	}()

	return s.Resolve(ctx, p.From, p.To, preferExternal), false
}

// simulatedSnapshot is the last-resort catch-all: the full topology
// resolved purely by the estimator, synchronously.
func (s *Service) simulatedSnapshot(opts ResolveOptions) Snapshot {
	exchanges, regions := s.filterCatalogs(opts.Provider)
	pairs := SelectPairs(exchanges, regions)

	conns := make([]Connection, 0, len(pairs))
	for _, p := range pairs {
		data := s.estimator.EstimateData(p.From, p.To)
		conns = append(conns, Connection{
			From:      p.From,
			To:        p.To,
			Latency:   data.Latency,
			Timestamp: data.Timestamp,
			Source:    data.Source,
		})
	}

	return Snapshot{
		Connections: conns,
		ResolvedAt:  time.Now().UnixMilli(),
		Degraded:    true,
	}
}

func (s *Service) filterCatalogs(provider CloudProvider) ([]Exchange, []CloudRegion) {
	if provider == "" {
		return s.exchanges, s.regions
	}

	var exchanges []Exchange
	for _, e := range s.exchanges {
		if e.CloudProvider == provider {
			exchanges = append(exchanges, e)
		}
	}

	var regions []CloudRegion
	for _, r := range s.regions {
		if r.Provider == provider {
			regions = append(regions, r)
		}
	}

	return exchanges, regions
}

// History synthesizes a trend series for a pair from the estimator's
// base value. Nothing is stored; each call regenerates the series.
func (s *Service) History(from, to Site, hours float64) []HistoricalPoint {
	base := float64(s.estimator.Estimate(from, to))
	return SynthesizeHistory(base, hours, time.Now())
}
