package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL
//	-d local database file path
//	-c/-config json file path with configs
//	-employer-id employer identifier for allowed-location lookups
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-probe-timeout connectivity probe timeout (e.g., "5s")
//	-sync-interval periodic auto-sync interval (e.g., "30s")
//	-disable-auto-sync disables the periodic auto-sync timer
//	-max-retries per-operation retry budget
//	-backoff-base base delay of the batch submission backoff
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var employerID int64
	var requestTimeout time.Duration
	var probeTimeout time.Duration
	var syncInterval time.Duration
	var disableAutoSync bool
	var maxRetries int
	var backoffBase time.Duration

	flag.StringVar(&serverAddress, "a", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.Int64Var(&employerID, "employer-id", 0, "Employer identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Connectivity probe timeout (e.g., 5s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync interval (e.g., 30s)")
	flag.BoolVar(&disableAutoSync, "disable-auto-sync", false, "Disable the periodic auto-sync timer")
	flag.IntVar(&maxRetries, "max-retries", 0, "Per-operation retry budget")
	flag.DurationVar(&backoffBase, "backoff-base", 0, "Batch submission backoff base delay")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EmployerID: employerID,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			ProbeTimeout:   probeTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Interval:    syncInterval,
			DisableAuto: disableAutoSync,
			MaxRetries:  maxRetries,
			BackoffBase: backoffBase,
		},
		jsonFilePath: jsonConfigPath,
	}
}
