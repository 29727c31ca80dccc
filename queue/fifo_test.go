package queue_test

import (
	"bytes"
	"log"
	"math"
	"slices"
	"testing"

	eapache "github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/momentics/hioload-queue/queue"
)

func TestFifo_Order(t *testing.T) {
	for _, n := range []int{0, 1, 10, 1024, 10000} {
		q := queue.NewFifoWithCapacity[int](10)
		for i := 0; i < n; i++ {
			q.Enqueue(i - n/2)
		}
		require.Equal(t, n, q.Len())
		for i := 0; i < n; i++ {
			v, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, i-n/2, v)
		}
		_, ok := q.Dequeue()
		assert.False(t, ok)
		assert.True(t, q.IsEmpty())
	}
}

func TestFifo_CapacityTwoScenario(t *testing.T) {
	q := queue.NewFifoWithCapacity[int](2)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	require.Equal(t, 3, q.Len())
	for _, want := range []int{1, 2, 3} {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestFifo_PeekReturnsOldest(t *testing.T) {
	q := queue.NewFifo[string]()
	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue("a")
	q.Enqueue("b")
	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, q.Len(), "peek must not consume")
}

func TestFifo_DefaultsAndClear(t *testing.T) {
	q := queue.NewFifo[int]()
	assert.Equal(t, 64, q.Cap())
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 128, q.Cap())
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(q.All())[:3])

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 128, q.Cap())
	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestFifo_ZeroCapacity(t *testing.T) {
	q := queue.NewFifoWithCapacity[int](0)
	assert.Equal(t, 1, q.Cap())
	q.Enqueue(5)
	q.Enqueue(6)
	v, _ := q.Dequeue()
	assert.Equal(t, 5, v)
}

func TestFifo_LoggerAndGrowHook(t *testing.T) {
	var buf bytes.Buffer
	var events int
	q := queue.NewFifoWithCapacity(2,
		queue.WithLogger[int](log.New(&buf, "", 0)),
		queue.WithGrowHook[int](func(from, to int) { events++ }),
	)
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 2, events)
	assert.Contains(t, buf.String(), "[queue] fifo grew from 2 to 4 slots")
	assert.Contains(t, buf.String(), "[queue] fifo grew from 4 to 8 slots")

	st := q.Stats()
	assert.Equal(t, 5, st.Len)
	assert.Equal(t, 8, st.Cap)
	assert.Equal(t, 2, st.Grows)
	assert.Equal(t, 5, st.Peak)
}

func TestFifo_GrowthFactorOption(t *testing.T) {
	q := queue.NewFifoWithCapacity(2, queue.WithGrowthFactor[int](4))
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 8, q.Cap())

	clamped := queue.NewFifoWithCapacity(2, queue.WithGrowthFactor[int](1))
	for i := 0; i < 3; i++ {
		clamped.Enqueue(i)
	}
	assert.Equal(t, 4, clamped.Cap())
}

func TestFifo_OversizedGrowthFactor(t *testing.T) {
	q := queue.NewFifoWithCapacity(4, queue.WithGrowthFactor[int](math.MaxInt/4+1))
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 5, q.Len())
	assert.Greater(t, q.Cap(), 4)

	var drained []int
	for v, ok := q.Dequeue(); ok; v, ok = q.Dequeue() {
		drained = append(drained, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, drained)
}

func TestFifo_CloneOption(t *testing.T) {
	q := queue.NewFifo(queue.WithClone(func(m map[string]int) map[string]int {
		out := make(map[string]int, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}))
	m := map[string]int{"a": 1}
	q.Enqueue(m)
	m["a"] = 2

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, got["a"])
}

// Differential check against an independent ring-buffer queue implementation.
func TestFifo_MatchesEapacheQueue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := queue.NewFifoWithCapacity[int](rapid.IntRange(0, 8).Draw(t, "capacity"))
		ref := eapache.New()

		t.Repeat(map[string]func(*rapid.T){
			"enqueue": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "v")
				q.Enqueue(v)
				ref.Add(v)
			},
			"dequeue": func(t *rapid.T) {
				v, ok := q.Dequeue()
				if ref.Length() == 0 {
					if ok {
						t.Fatalf("dequeue on empty returned %d", v)
					}
					return
				}
				want := ref.Remove().(int)
				if !ok || v != want {
					t.Fatalf("dequeue = (%d, %v), want %d", v, ok, want)
				}
			},
			"": func(t *rapid.T) {
				if q.Len() != ref.Length() {
					t.Fatalf("len %d, reference %d", q.Len(), ref.Length())
				}
				v, ok := q.Peek()
				if ok != (ref.Length() > 0) {
					t.Fatalf("peek ok=%v with reference len %d", ok, ref.Length())
				}
				if ok && v != ref.Peek().(int) {
					t.Fatalf("peek %d, reference %d", v, ref.Peek())
				}
			},
		})
	})
}
