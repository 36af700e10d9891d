package server

import (
	"fmt"
	"testing"

	"github.com/playsql/playground/internal/query"
)

func TestGetBindHost_Default(t *testing.T) {
	t.Setenv("PLAYSQL_BIND_HOST", "")

	if host := GetBindHost(); host != DefaultHost {
		t.Errorf("Expected default host %s, got %s", DefaultHost, host)
	}
}

func TestGetBindHost_Override(t *testing.T) {
	t.Setenv("PLAYSQL_BIND_HOST", "0.0.0.0")

	if host := GetBindHost(); host != "0.0.0.0" {
		t.Errorf("Expected override host 0.0.0.0, got %s", host)
	}
}

func TestNewServer_NotReadyBeforeStart(t *testing.T) {
	s := NewServer(query.NewExecutor())

	if s.IsReady() {
		t.Error("Expected server to not be ready before Start()")
	}
}

func TestServer_AddrBeforeListen(t *testing.T) {
	t.Setenv("PLAYSQL_BIND_HOST", "")

	s := NewServer(query.NewExecutor())

	want := fmt.Sprintf("%s:%d", DefaultHost, DefaultPort)
	if s.Addr() != want {
		t.Errorf("Expected addr %s, got %s", want, s.Addr())
	}
}

func TestServer_StopWithoutStart(t *testing.T) {
	s := NewServer(query.NewExecutor())

	if err := s.Stop(); err != nil {
		t.Errorf("Expected Stop() on unstarted server to be a no-op, got %v", err)
	}
}
