package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func price(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return d
}

func fill(t *testing.T, s *Store, n int) []Product {
	t.Helper()
	var added []Product
	for i := 0; i < n; i++ {
		p, ok := s.AddProduct(fmt.Sprintf("Product %d", i+1), price(t, "9.99"), fmt.Sprintf("/photos/%d.png", i+1))
		require.True(t, ok)
		added = append(added, p)
	}
	return added
}

func TestAddProduct_AppendsInOrder(t *testing.T) {
	s := newTestStore(t)

	added := fill(t, s, 3)

	products := s.Products()
	require.Len(t, products, 3)
	for i := range added {
		assert.Equal(t, added[i].ID, products[i].ID)
		assert.Equal(t, fmt.Sprintf("Product %d", i+1), products[i].Name)
	}
	assert.Empty(t, s.Error())
}

func TestAddProduct_CapacityScenario(t *testing.T) {
	s := newTestStore(t)

	fill(t, s, MaxProducts)
	assert.Equal(t, 5, s.ProductCount())
	assert.Empty(t, s.Error())
	assert.False(t, s.CanAddProduct())

	before := s.Products()
	_, ok := s.AddProduct("Sixth", price(t, "1"), "/photos/6.png")
	assert.False(t, ok)
	assert.Equal(t, 5, s.ProductCount())
	assert.Equal(t, "Maximum of 5 products allowed!", s.Error())
	assert.Equal(t, before, s.Products())

	// Further attempts keep failing the same way.
	_, ok = s.AddProduct("Seventh", price(t, "1"), "/photos/7.png")
	assert.False(t, ok)
	assert.Equal(t, 5, s.ProductCount())

	assert.True(t, s.RemoveProduct(before[2].ID))
	assert.Equal(t, 4, s.ProductCount())
	assert.Empty(t, s.Error())

	_, ok = s.AddProduct("Again", price(t, "2.50"), "/photos/again.png")
	assert.True(t, ok)
	assert.Equal(t, 5, s.ProductCount())
}

func TestAddProduct_IDsUniqueAndCreatedAtNotBeforeCall(t *testing.T) {
	s := newTestStore(t)
	seen := map[string]bool{}

	for round := 0; round < 4; round++ {
		for _, p := range s.Products() {
			s.RemoveProduct(p.ID)
		}
		for i := 0; i < MaxProducts; i++ {
			callTime := time.Now()
			p, ok := s.AddProduct("p", price(t, "1"), "x")
			require.True(t, ok)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
			assert.False(t, p.CreatedAt.Before(callTime))
		}
	}
}

func TestAddProduct_UsesClock(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return fixed }))

	p, ok := s.AddProduct("Lamp", price(t, "12.5"), "/photos/lamp.png")
	require.True(t, ok)
	assert.Equal(t, fixed, p.CreatedAt)
	assert.Equal(t, "12.50", p.FormattedPrice())
}

func TestAddProduct_ClearsPriorError(t *testing.T) {
	s := newTestStore(t)
	added := fill(t, s, MaxProducts)
	s.AddProduct("overflow", price(t, "1"), "x")
	require.NotEmpty(t, s.Error())

	s.RemoveProduct(added[0].ID)
	s.AddProduct("overflow", price(t, "1"), "x")
	s.AddProduct("overflow again", price(t, "1"), "x")
	require.NotEmpty(t, s.Error())

	s.RemoveProduct(added[1].ID)
	_, ok := s.AddProduct("fits", price(t, "1"), "x")
	assert.True(t, ok)
	assert.Empty(t, s.Error())
}

func TestRemoveProduct_Idempotent(t *testing.T) {
	s := newTestStore(t)
	added := fill(t, s, 2)

	assert.True(t, s.RemoveProduct(added[0].ID))
	assert.False(t, s.RemoveProduct(added[0].ID))
	assert.Equal(t, 1, s.ProductCount())
	assert.Empty(t, s.Error())

	assert.False(t, s.RemoveProduct("does-not-exist"))
	assert.Equal(t, 1, s.ProductCount())
}

func TestRemoveProduct_ClearsErrorEvenOnMiss(t *testing.T) {
	s := newTestStore(t)
	fill(t, s, MaxProducts)
	s.AddProduct("overflow", price(t, "1"), "x")
	require.NotEmpty(t, s.Error())

	assert.False(t, s.RemoveProduct("missing"))
	assert.Empty(t, s.Error())
	assert.Equal(t, MaxProducts, s.ProductCount())
}

func TestCanAddProduct_MatchesCount(t *testing.T) {
	s := newTestStore(t)
	var ids []string

	check := func() {
		assert.Equal(t, s.ProductCount() < MaxProducts, s.CanAddProduct())
	}

	check()
	for i := 0; i < MaxProducts+2; i++ {
		if p, ok := s.AddProduct("p", price(t, "1"), "x"); ok {
			ids = append(ids, p.ID)
		}
		check()
	}
	for _, id := range ids {
		s.RemoveProduct(id)
		check()
	}
}

func TestClearError(t *testing.T) {
	s := newTestStore(t)
	s.ClearError()
	assert.Empty(t, s.Error())

	fill(t, s, MaxProducts)
	s.AddProduct("overflow", price(t, "1"), "x")
	require.NotEmpty(t, s.Error())

	s.ClearError()
	assert.Empty(t, s.Error())
}

func TestWithCapacityMessage(t *testing.T) {
	s := newTestStore(t, WithCapacityMessage("¡Máximo de 5 productos!"))
	fill(t, s, MaxProducts)
	s.AddProduct("overflow", price(t, "1"), "x")
	assert.Equal(t, "¡Máximo de 5 productos!", s.Error())

	blank := newTestStore(t, WithCapacityMessage("   "))
	fill(t, blank, MaxProducts)
	blank.AddProduct("overflow", price(t, "1"), "x")
	assert.Equal(t, DefaultCapacityMessage, blank.Error())
}

func TestFind(t *testing.T) {
	s := newTestStore(t)
	added := fill(t, s, 2)

	p, ok := s.Find(added[1].ID)
	require.True(t, ok)
	assert.Equal(t, added[1], p)

	_, ok = s.Find("nope")
	assert.False(t, ok)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	fill(t, s, 1)

	products := s.Products()
	products[0].Name = "mutated"

	assert.Equal(t, "Product 1", s.Products()[0].Name)
}

func TestSubscribe_NotifiedSynchronously(t *testing.T) {
	s := newTestStore(t)

	var changes []Event
	var errs []string
	require.NoError(t, s.Subscribe(TopicChanged, func(e Event) { changes = append(changes, e) }))
	require.NoError(t, s.Subscribe(TopicError, func(e Event) { errs = append(errs, e.Err) }))

	added := fill(t, s, MaxProducts)
	require.Len(t, changes, MaxProducts)
	assert.Len(t, changes[MaxProducts-1].Products, MaxProducts)
	assert.Empty(t, errs)

	s.AddProduct("overflow", price(t, "1"), "x")
	require.Len(t, errs, 1)
	assert.Equal(t, DefaultCapacityMessage, errs[0])
	assert.Len(t, changes, MaxProducts, "rejected add must not publish a change")

	s.ClearError()
	require.Len(t, errs, 2)
	assert.Empty(t, errs[1])

	s.RemoveProduct(added[0].ID)
	require.Len(t, changes, MaxProducts+1)
	assert.Len(t, changes[MaxProducts].Products, MaxProducts-1)

	s.RemoveProduct(added[0].ID)
	assert.Len(t, changes, MaxProducts+1, "no-op remove must not publish a change")
}

func TestSubscribe_ErrorHandlerMayClearError(t *testing.T) {
	s := newTestStore(t)
	fill(t, s, MaxProducts)

	var seen []string
	require.NoError(t, s.Subscribe(TopicError, func(e Event) {
		seen = append(seen, e.Err)
		if e.Err != "" {
			s.ClearError()
		}
	}))

	done := make(chan bool)
	go func() {
		_, ok := s.AddProduct("Sixth", price(t, "1"), "/photos/6.png")
		done <- ok
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("AddProduct did not return while an error handler cleared the error")
	}

	assert.Empty(t, s.Error())
	assert.Equal(t, MaxProducts, s.ProductCount())
	assert.Equal(t, []string{DefaultCapacityMessage, ""}, seen)
}

func TestSubscribe_HandlerMayAddProduct(t *testing.T) {
	s := newTestStore(t)

	var counts []int
	require.NoError(t, s.Subscribe(TopicChanged, func(e Event) {
		counts = append(counts, len(e.Products))
		if len(e.Products) == 1 {
			s.AddProduct("Follow-up", price(t, "2"), "/photos/f.png")
		}
	}))

	_, ok := s.AddProduct("First", price(t, "1"), "/photos/1.png")
	require.True(t, ok)

	assert.Equal(t, 2, s.ProductCount())
	assert.Equal(t, []int{1, 2}, counts)
}

func TestProductHelpers(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	p := Product{ID: "1764123456789", CreatedAt: created}

	assert.Equal(t, "176412", p.ShortID())
	assert.Equal(t, "abc", Product{ID: "abc"}.ShortID())
	assert.Equal(t, 0, p.DaysOld(created.Add(23*time.Hour)))
	assert.Equal(t, 3, p.DaysOld(created.Add(72*time.Hour+time.Minute)))
	assert.Equal(t, 0, p.DaysOld(created.Add(-time.Hour)))
}
