// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings like HTTP ports, TLS, logging level, and request
// timeouts; AppConfig is everything specific to the club backend.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Upload storage configuration.
	//
	// UploadRoot is the dedicated directory for uploaded files. Non-PDF
	// assets (banner images etc.) live under <UploadRoot>/assets and are
	// served statically at /uploads. PDF binaries live under
	// <UploadRoot>/pdfs and are served only through the catalog's
	// view/download endpoints so access can be gated later.
	UploadRoot string

	// PDFMaxBytes is the upload size ceiling for PDF resources.
	PDFMaxBytes int64

	// PDFCategories optionally overrides the built-in category set
	// (comma-separated). Empty means use the defaults.
	PDFCategories []string

	// CORSOrigins lists allowed origins for browser clients.
	CORSOrigins []string
}
