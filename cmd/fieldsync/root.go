package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ecowaste/fieldsync/internal/client"
	"github.com/ecowaste/fieldsync/internal/config"
)

// rootFlags carries the persistent flag values. They become the top-priority
// override layer of the config builder.
type rootFlags struct {
	serverAddress   string
	databaseDSN     string
	configPath      string
	backupDir       string
	logFile         string
	requestTimeout  time.Duration
	refreshInterval time.Duration
}

func (f *rootFlags) overrides() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.LogFile = f.logFile
	cfg.Adapter.HTTPAddress = f.serverAddress
	cfg.Adapter.RequestTimeout = f.requestTimeout
	cfg.Storage.DB.DSN = f.databaseDSN
	cfg.Storage.BackupDir = f.backupDir
	cfg.Workers.RefreshInterval = f.refreshInterval
	cfg.JSONFilePath = f.configPath
	return cfg
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:     "fieldsync",
		Short:   "Offline-first sync client for waste-management field operations",
		Version: buildInfo(),
		Long: `fieldsync keeps field records (activities, transactions, tasks) in a
local queue while disconnected and reconciles them against the remote
server in dependency order once connectivity returns.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.serverAddress, "server", "a", "", "remote API address host:port")
	pf.StringVarP(&flags.databaseDSN, "db", "d", "", "local SQLite database path")
	pf.StringVarP(&flags.configPath, "config", "c", "", "JSON config file path")
	pf.StringVar(&flags.backupDir, "backup-dir", "", "directory for emergency backup files")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path (default stdout)")
	pf.DurationVar(&flags.requestTimeout, "request-timeout", 0, "per-request timeout (e.g. 30s)")
	pf.DurationVar(&flags.refreshInterval, "refresh-interval", 0, "background refresh interval (e.g. 5m)")

	root.AddCommand(
		newLoginCmd(flags),
		newSyncCmd(flags),
		newStatusCmd(flags),
		newCloseCmd(flags),
		newExportCmd(flags),
		newWatchCmd(flags),
	)

	return root
}

// openApp builds the wired application for one command invocation.
// No geolocation provider is available in the CLI shell; records upload
// without a position.
func openApp(flags *rootFlags) (*client.App, error) {
	return client.NewApp(flags.overrides(), nil)
}
