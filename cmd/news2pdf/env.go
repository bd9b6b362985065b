package main

import "os"

// Environment variable names. Flags take precedence over the environment.
const (
	envEmail       = "NEWS2PDF_EMAIL"
	envPassword    = "NEWS2PDF_PASSWORD"
	envContentHost = "NEWS2PDF_HOST"
	envSecureHost  = "NEWS2PDF_SECURE_HOST"
)

// envLookup abstracts os.LookupEnv for testing.
type envLookup func(key string) (string, bool)

// applyEnv fills empty flag values from the environment.
func applyEnv(f *cliFlags, lookup envLookup) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if f.email == "" {
		if v, ok := lookup(envEmail); ok {
			f.email = v
		}
	}
	if f.password == "" {
		if v, ok := lookup(envPassword); ok {
			f.password = v
		}
	}
}

// applyHostEnv overrides config hosts from the environment.
func applyHostEnv(contentHost, secureHost *string, lookup envLookup) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envContentHost); ok && v != "" {
		*contentHost = v
	}
	if v, ok := lookup(envSecureHost); ok && v != "" {
		*secureHost = v
	}
}
