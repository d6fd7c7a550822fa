// Package config provides configuration management for the host application.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded with godotenv.
//
// # Configuration Structure
//
//   - Server: control API host and port (SERVER_HOST, SERVER_PORT)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// Defaults come from the `default` struct tags of each section.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
