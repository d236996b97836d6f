package config

import (
	"os"

	"google.golang.org/api/option"
)

// FirebaseClientOptions returns the client options shared by every Google API
// client the service creates. Without a credentials file on disk the SDKs fall
// back to application default credentials.
func FirebaseClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if path := AppConfig.FirebaseCredentialsFile; path != "" {
		if _, err := os.Stat(path); err == nil {
			opts = append(opts, option.WithCredentialsFile(path))
		}
	}
	return opts
}
