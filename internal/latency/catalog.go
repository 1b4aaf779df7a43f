package latency

// Static reference catalogs of exchange and cloud-region sites.
// Hand-curated; coordinates are approximate data-center locations.
// Exchange names repeat across locations, IDs are unique.

var exchangeCatalog = []Exchange{
	{ID: "okx-us", Name: "OKX", Latitude: 40.7128, Longitude: -74.0060, CloudProvider: ProviderAWS, Region: "us-east-1", Country: "USA"},
	{ID: "okx-sg", Name: "OKX", Latitude: 1.3521, Longitude: 103.8198, CloudProvider: ProviderAWS, Region: "ap-southeast-1", Country: "Singapore"},

	{ID: "deribit-nl", Name: "Deribit", Latitude: 52.3676, Longitude: 4.9041, CloudProvider: ProviderGCP, Region: "europe-west4", Country: "Netherlands"},

	{ID: "bybit-sg", Name: "Bybit", Latitude: 1.3521, Longitude: 103.8198, CloudProvider: ProviderAzure, Region: "southeastasia", Country: "Singapore"},
	{ID: "bybit-us", Name: "Bybit", Latitude: 37.7749, Longitude: -122.4194, CloudProvider: ProviderAWS, Region: "us-west-2", Country: "USA"},

	{ID: "binance-sg", Name: "Binance", Latitude: 1.3521, Longitude: 103.8198, CloudProvider: ProviderAWS, Region: "ap-southeast-1", Country: "Singapore"},
	{ID: "binance-tokyo", Name: "Binance", Latitude: 35.6762, Longitude: 139.6503, CloudProvider: ProviderGCP, Region: "asia-northeast1", Country: "Japan"},
	{ID: "binance-london", Name: "Binance", Latitude: 51.5074, Longitude: -0.1278, CloudProvider: ProviderAWS, Region: "eu-west-2", Country: "UK"},

	{ID: "coinbase-us", Name: "Coinbase", Latitude: 37.7749, Longitude: -122.4194, CloudProvider: ProviderAWS, Region: "us-west-1", Country: "USA"},
	{ID: "coinbase-ireland", Name: "Coinbase", Latitude: 53.3498, Longitude: -6.2603, CloudProvider: ProviderAWS, Region: "eu-west-1", Country: "Ireland"},

	{ID: "kraken-us", Name: "Kraken", Latitude: 47.6062, Longitude: -122.3321, CloudProvider: ProviderAWS, Region: "us-west-2", Country: "USA"},
	{ID: "kraken-germany", Name: "Kraken", Latitude: 52.5200, Longitude: 13.4050, CloudProvider: ProviderAzure, Region: "germanywestcentral", Country: "Germany"},

	{ID: "bitmex-sg", Name: "BitMEX", Latitude: 1.3521, Longitude: 103.8198, CloudProvider: ProviderAWS, Region: "ap-southeast-1", Country: "Singapore"},
}

var regionCatalog = []CloudRegion{
	{ID: "aws-us-east-1", Provider: ProviderAWS, Name: "US East (N. Virginia)", Code: "us-east-1", Latitude: 38.9072, Longitude: -77.0369, Country: "USA"},
	{ID: "aws-us-west-2", Provider: ProviderAWS, Name: "US West (Oregon)", Code: "us-west-2", Latitude: 45.5152, Longitude: -122.6784, Country: "USA"},
	{ID: "aws-eu-west-1", Provider: ProviderAWS, Name: "Europe (Ireland)", Code: "eu-west-1", Latitude: 53.3498, Longitude: -6.2603, Country: "Ireland"},
	{ID: "aws-eu-west-2", Provider: ProviderAWS, Name: "Europe (London)", Code: "eu-west-2", Latitude: 51.5074, Longitude: -0.1278, Country: "UK"},
	{ID: "aws-ap-southeast-1", Provider: ProviderAWS, Name: "Asia Pacific (Singapore)", Code: "ap-southeast-1", Latitude: 1.3521, Longitude: 103.8198, Country: "Singapore"},
	{ID: "aws-ap-northeast-1", Provider: ProviderAWS, Name: "Asia Pacific (Tokyo)", Code: "ap-northeast-1", Latitude: 35.6762, Longitude: 139.6503, Country: "Japan"},

	{ID: "gcp-us-central1", Provider: ProviderGCP, Name: "Iowa", Code: "us-central1", Latitude: 41.8781, Longitude: -93.0977, Country: "USA"},
	{ID: "gcp-us-west1", Provider: ProviderGCP, Name: "Oregon", Code: "us-west1", Latitude: 45.5152, Longitude: -122.6784, Country: "USA"},
	{ID: "gcp-europe-west4", Provider: ProviderGCP, Name: "Netherlands", Code: "europe-west4", Latitude: 52.3676, Longitude: 4.9041, Country: "Netherlands"},
	{ID: "gcp-asia-northeast1", Provider: ProviderGCP, Name: "Tokyo", Code: "asia-northeast1", Latitude: 35.6762, Longitude: 139.6503, Country: "Japan"},
	{ID: "gcp-asia-southeast1", Provider: ProviderGCP, Name: "Singapore", Code: "asia-southeast1", Latitude: 1.3521, Longitude: 103.8198, Country: "Singapore"},

	{ID: "azure-eastus", Provider: ProviderAzure, Name: "East US", Code: "eastus", Latitude: 38.9072, Longitude: -77.0369, Country: "USA"},
	{ID: "azure-westus2", Provider: ProviderAzure, Name: "West US 2", Code: "westus2", Latitude: 47.6062, Longitude: -122.3321, Country: "USA"},
	{ID: "azure-westeurope", Provider: ProviderAzure, Name: "West Europe", Code: "westeurope", Latitude: 52.3676, Longitude: 4.9041, Country: "Netherlands"},
	{ID: "azure-southeastasia", Provider: ProviderAzure, Name: "Southeast Asia", Code: "southeastasia", Latitude: 1.3521, Longitude: 103.8198, Country: "Singapore"},
	{ID: "azure-germanywestcentral", Provider: ProviderAzure, Name: "Germany West Central", Code: "germanywestcentral", Latitude: 52.5200, Longitude: 13.4050, Country: "Germany"},
}

// Exchanges returns the static exchange catalog.
func Exchanges() []Exchange {
	return exchangeCatalog
}

// CloudRegions returns the static cloud-region catalog.
func CloudRegions() []CloudRegion {
	return regionCatalog
}

// SiteByID looks a site up in either catalog.
func SiteByID(id string) (Site, bool) {
	for _, e := range exchangeCatalog {
		if e.ID == id {
			return e, true
		}
	}
	for _, r := range regionCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}
