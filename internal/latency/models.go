package latency

// CloudProvider identifies one of the supported public clouds.
type CloudProvider string

const (
	ProviderAWS   CloudProvider = "aws"
	ProviderGCP   CloudProvider = "gcp"
	ProviderAzure CloudProvider = "azure"
)

// Source tells where a latency figure actually came from.
type Source string

const (
	// SourceRadar marks values produced by the Cloudflare Radar gateway.
	SourceRadar Source = "cloudflare-radar"
	// SourceCalculated marks values produced by the distance-based estimator.
	SourceCalculated Source = "calculated"
)

// Site is the capability set shared by exchanges and cloud regions.
// The estimation core only ever needs identity, coordinates and country;
// provider-specific fields stay on the concrete types.
type Site interface {
	SiteID() string
	DisplayName() string
	Lat() float64
	Lon() float64
	CountryName() string
}

// Exchange is a cryptocurrency exchange data-center location.
type Exchange struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	CloudProvider CloudProvider `json:"cloudProvider"`
	Region        string        `json:"region"`
	Country       string        `json:"country"`
}

func (e Exchange) SiteID() string      { return e.ID }
func (e Exchange) DisplayName() string { return e.Name }
func (e Exchange) Lat() float64        { return e.Latitude }
func (e Exchange) Lon() float64        { return e.Longitude }
func (e Exchange) CountryName() string { return e.Country }

// CloudRegion is a public-cloud region location.
type CloudRegion struct {
	ID        string        `json:"id"`
	Provider  CloudProvider `json:"provider"`
	Name      string        `json:"name"`
	Code      string        `json:"code"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Country   string        `json:"country"`
}

func (r CloudRegion) SiteID() string      { return r.ID }
func (r CloudRegion) DisplayName() string { return r.Name }
func (r CloudRegion) Lat() float64        { return r.Latitude }
func (r CloudRegion) Lon() float64        { return r.Longitude }
func (r CloudRegion) CountryName() string { return r.Country }

// Data is a single latency measurement between two sites.
// Timestamps are epoch milliseconds.
type Data struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Latency   int    `json:"latency"`
	Timestamp int64  `json:"timestamp"`
	Source    Source `json:"source"`
}

// HistoricalPoint is one sample of a synthetic latency time series.
type HistoricalPoint struct {
	Timestamp int64 `json:"timestamp"`
	Latency   int   `json:"latency"`
}

// Connection is a resolved, visualizable pair of sites.
type Connection struct {
	From      Site   `json:"from"`
	To        Site   `json:"to"`
	Latency   int    `json:"latency"`
	Timestamp int64  `json:"timestamp"`
	Source    Source `json:"source"`
}

// Snapshot is one complete resolution pass over the selected topology.
// Snapshots are swapped wholesale; results from different passes are
// never merged.
type Snapshot struct {
	Connections []Connection `json:"connections"`
	ResolvedAt  int64        `json:"resolvedAt"`
	Degraded    bool         `json:"degraded,omitempty"`
}

// Pair is a selected (from, to) combination awaiting resolution.
type Pair struct {
	From Site
	To   Site
}
