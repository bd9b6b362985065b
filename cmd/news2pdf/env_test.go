package main

import "testing"

func envFrom(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnv - Credential fallback
// ---------------------------------------------------------------------------

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	f := &cliFlags{}
	applyEnv(f, envFrom(map[string]string{
		envEmail:    "env@example.com",
		envPassword: "env-pw",
	}))
	if f.email != "env@example.com" || f.password != "env-pw" {
		t.Errorf("credentials = (%q, %q), want environment values", f.email, f.password)
	}
}

func TestApplyEnvFlagsWin(t *testing.T) {
	t.Parallel()

	f := &cliFlags{email: "flag@example.com", password: "flag-pw"}
	applyEnv(f, envFrom(map[string]string{
		envEmail:    "env@example.com",
		envPassword: "env-pw",
	}))
	if f.email != "flag@example.com" || f.password != "flag-pw" {
		t.Errorf("credentials = (%q, %q), want flag values to win", f.email, f.password)
	}
}

func TestApplyEnvUnset(t *testing.T) {
	t.Parallel()

	f := &cliFlags{}
	applyEnv(f, envFrom(nil))
	if f.email != "" || f.password != "" {
		t.Errorf("credentials = (%q, %q), want empty", f.email, f.password)
	}
}

// ---------------------------------------------------------------------------
// TestApplyHostEnv - Host overrides
// ---------------------------------------------------------------------------

func TestApplyHostEnv(t *testing.T) {
	t.Parallel()

	content, secure := "https://default-content", "https://default-secure"
	applyHostEnv(&content, &secure, envFrom(map[string]string{
		envContentHost: "https://override-content",
	}))
	if content != "https://override-content" {
		t.Errorf("content host = %q, want override", content)
	}
	if secure != "https://default-secure" {
		t.Errorf("secure host = %q, want default kept", secure)
	}
}

func TestApplyHostEnvEmptyValueIgnored(t *testing.T) {
	t.Parallel()

	content, secure := "https://c", "https://s"
	applyHostEnv(&content, &secure, envFrom(map[string]string{
		envContentHost: "",
		envSecureHost:  "",
	}))
	if content != "https://c" || secure != "https://s" {
		t.Errorf("hosts = (%q, %q), want defaults kept for empty env values", content, secure)
	}
}
