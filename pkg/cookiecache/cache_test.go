package cookiecache

import (
	"sync"
	"testing"
	"time"

	"github.com/hubgate/hubgate/pkg/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheGetSet(t *testing.T) {
	c := New()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	alice := &hub.User{Name: "alice"}
	c.Set("k1", alice)
	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Same(t, alice, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheStoresAbsent(t *testing.T) {
	c := New()
	c.Set("garbage", nil)

	got, ok := c.Get("garbage")
	assert.True(t, ok, "cached Absent must be distinguishable from a miss")
	assert.Nil(t, got)
}

func TestCacheClear(t *testing.T) {
	c := New()
	c.Set("a", &hub.User{Name: "alice"})
	c.Set("b", nil)
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheConcurrentClearAndAccess(t *testing.T) {
	c := New()
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					c.Set("k", &hub.User{Name: "alice"})
					c.Get("k")
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		c.Clear()
	}
	close(stop)
	wg.Wait()
}

func TestJanitorClearsOnInterval(t *testing.T) {
	c := New()
	c.Set("k", &hub.User{Name: "alice"})

	j := NewJanitor(c, 20*time.Millisecond, zap.NewNop())
	j.Start()
	defer j.Stop()

	require.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 5*time.Millisecond, "entry should be gone after the interval")
}

func TestJanitorDisabled(t *testing.T) {
	c := New()
	c.Set("k", nil)

	j := NewJanitor(c, 0, zap.NewNop())
	j.Start()
	j.Stop() // must not panic with no loop running

	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get("k")
	assert.True(t, ok)
}
