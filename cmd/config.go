package cmd

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	CarrierAPIURL            string
	CarrierAPIKey            string
	CarrierTimeoutSeconds    int
	ShipperAddress           string
	ServiceDescription       string
	TrackingRefreshCron      string
	EnableTrackingSimulation bool
}
