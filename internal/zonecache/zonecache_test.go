package zonecache

import (
	"sync"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

func zone(name, host string) *yakupv1.IngressZone {
	return &yakupv1.IngressZone{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec:       yakupv1.IngressZoneSpec{Host: host},
	}
}

func TestCache_UpsertAndSnapshot(t *testing.T) {
	c := New()
	c.Upsert(zone("public", "{appname}.example.com"))

	snap := c.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(snap))
	}
	if snap["public"].Spec.Host != "{appname}.example.com" {
		t.Errorf("unexpected host: %v", snap["public"].Spec.Host)
	}
}

func TestCache_UpsertReplacesExisting(t *testing.T) {
	c := New()
	c.Upsert(zone("public", "old.example.com"))
	c.Upsert(zone("public", "new.example.com"))

	snap := c.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(snap))
	}
	if snap["public"].Spec.Host != "new.example.com" {
		t.Errorf("expected latest upsert to win, got %v", snap["public"].Spec.Host)
	}
}

func TestCache_Delete(t *testing.T) {
	c := New()
	c.Upsert(zone("public", "{appname}.example.com"))
	c.Delete("public")

	if _, ok := c.Snapshot()["public"]; ok {
		t.Error("expected zone to be removed from the cache")
	}
}

func TestCache_DeleteUnknownIsNoop(t *testing.T) {
	c := New()
	c.Delete("nonexistent")
	if len(c.Snapshot()) != 0 {
		t.Error("expected empty cache")
	}
}

func TestCache_SnapshotIsIndependentCopy(t *testing.T) {
	c := New()
	c.Upsert(zone("public", "{appname}.example.com"))

	snap := c.Snapshot()
	snap["public"].Spec.Host = "mutated"

	if c.Snapshot()["public"].Spec.Host != "{appname}.example.com" {
		t.Error("mutating a snapshot must not affect the cache's stored copy")
	}
}

func TestCache_ConcurrentReadersAndWriter(t *testing.T) {
	c := New()
	c.Upsert(zone("public", "{appname}.example.com"))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					c.Snapshot()
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		c.Upsert(zone("public", "{appname}.example.com"))
	}
	close(stop)
	wg.Wait()
}
