package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/tutela/pkg/lifecycle"
)

func TestNotReadyBeforeStartup(t *testing.T) {
	c := lifecycle.New()
	if c.Ready() {
		t.Error("Ready() = true before WaitForStartup")
	}
}

func TestReadyAfterStartup(t *testing.T) {
	c := lifecycle.New()
	c.WaitForStartup()
	if !c.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestStartupHooksExecute(t *testing.T) {
	c := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		c.OnStartup(func() {
			count.Add(1)
		})
	}

	c.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks executed = %d, want 3", got)
	}
}

func TestShutdownHooksExecute(t *testing.T) {
	c := lifecycle.New()

	var count atomic.Int32
	for range 2 {
		c.OnShutdown(func() {
			<-c.Context().Done()
			count.Add(1)
		})
	}

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	if got := count.Load(); got != 2 {
		t.Errorf("shutdown hooks executed = %d, want 2", got)
	}
}

func TestShutdownTimeout(t *testing.T) {
	c := lifecycle.New()

	c.OnShutdown(func() {
		<-c.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	err := c.Shutdown(10 * time.Millisecond)
	if err == nil {
		t.Error("Shutdown() = nil, want timeout error")
	}
}

func TestContextCancelledOnShutdown(t *testing.T) {
	c := lifecycle.New()
	ctx := c.Context()

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled before Shutdown")
	default:
	}

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}
