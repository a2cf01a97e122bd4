package config

const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./omnireader.db"
)
