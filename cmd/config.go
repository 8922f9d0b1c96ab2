package cmd

import "time"

// Config is the container for configuration sourced from DAYSTATS_*
// environment variables. Flags override these values.
type Config struct {
	// Token - GitHub access token used as the bearer credential
	Token string `default:""`

	// URL - GraphQL API endpoint
	URL string `default:"https://api.github.com/graphql"`

	// Timeout - bound on the single API request
	Timeout time.Duration `default:"10s"`
}
