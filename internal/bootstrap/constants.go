package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting HexHarvest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgSyncingCatalog      = "Syncing resource catalog from JSON config..."
	LogMsgCatalogMissing      = "Resource catalog not found, sync skipped"
)

// Catalog sync error messages
const (
	ErrMsgFailedLoadCatalog = "failed to load resource catalog"
	ErrMsgInvalidCatalog    = "invalid resource catalog"
	ErrMsgFailedSyncCatalog = "failed to sync resource catalog to database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
