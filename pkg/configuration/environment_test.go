package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_LoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "EMPLOYEE_CONSOLE_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("EMPLOYEE_CONSOLE_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("EMPLOYEE_CONSOLE_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded, got %q", got)
	}
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no env files loaded, got %d", n)
	}
}

func TestBackendOptions_Validate(t *testing.T) {
	valid := BackendOptions{Origin: "http://localhost:9090", BasePath: "/api/v1/employees"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid backend options, got %v", err)
	}
	if got := valid.BaseURL(); got != "http://localhost:9090/api/v1/employees" {
		t.Fatalf("unexpected base url: %q", got)
	}

	invalid := BackendOptions{Origin: "ftp://example.com"}
	if err := invalid.Validate(); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}

func TestRateLimitOptions_Validate(t *testing.T) {
	if err := (&RateLimitOptions{GlobalRPS: 100}).Validate(); err != nil {
		t.Fatalf("expected valid rate limit options, got %v", err)
	}
	if err := (&RateLimitOptions{GlobalRPS: -1}).Validate(); err == nil {
		t.Fatal("expected error for negative RPS")
	}
	if err := (&RateLimitOptions{GlobalRPS: 2000000}).Validate(); err == nil {
		t.Fatal("expected error for excessive RPS")
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
