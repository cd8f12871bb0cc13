package cartview

import (
	"bytes"
	"context"
	"testing"

	"pavanxo/storefront/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	for _, items := range [][]cart.Item{nil, {}} {
		v := Build(items)
		assert.True(t, v.Empty)
		assert.Nil(t, v.Summary)
		assert.Empty(t, v.Lines)
		assert.Zero(t, v.Count)
	}
}

func TestBuild_Pizza(t *testing.T) {
	v := Build([]cart.Item{{ID: 1, Name: "Pizza", Price: 180, OriginalPrice: 200, Quantity: 2}})

	require.False(t, v.Empty)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, Line{
		ID:            1,
		Name:          "Pizza",
		OriginalPrice: 200,
		Price:         180,
		Quantity:      2,
		Subtotal:      360,
		Savings:       40,
		CanDecrement:  true,
		CanIncrement:  true,
	}, v.Lines[0])
	assert.Equal(t, &Summary{Subtotal: 360, Savings: 40, DeliveryFee: 50, Total: 410}, v.Summary)
}

func TestBuild_GrandTotalIsSubtotalPlusDelivery(t *testing.T) {
	carts := [][]cart.Item{
		{{ID: 1, Price: 0, OriginalPrice: 0, Quantity: 1}},
		{{ID: 1, Price: 90, OriginalPrice: 100, Quantity: 10}, {ID: 2, Price: 36, OriginalPrice: 40, Quantity: 1}},
		{{ID: 3, Price: 225, OriginalPrice: 250, Quantity: 3}},
	}
	for _, items := range carts {
		v := Build(items)
		require.NotNil(t, v.Summary)
		assert.Equal(t, v.Summary.Subtotal+DeliveryFee, v.Summary.Total)
		assert.Equal(t, cart.TotalPrice(items), v.Summary.Subtotal)
	}
}

func TestBuild_QuantityControls(t *testing.T) {
	v := Build([]cart.Item{
		{ID: 1, Price: 1, OriginalPrice: 1, Quantity: 1},
		{ID: 2, Price: 1, OriginalPrice: 1, Quantity: 10},
	})

	assert.False(t, v.Lines[0].CanDecrement)
	assert.True(t, v.Lines[0].CanIncrement)
	assert.True(t, v.Lines[1].CanDecrement)
	assert.False(t, v.Lines[1].CanIncrement)
}

func TestRender_EmptyShowsPlaceholderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Build(nil)))

	assert.Contains(t, buf.String(), "Your cart is empty.")
	assert.NotContains(t, buf.String(), "Order Summary")
	assert.NotContains(t, buf.String(), "Delivery Fee")
}

func TestRender_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Build([]cart.Item{{ID: 1, Name: "Pizza", Price: 180, OriginalPrice: 200, Quantity: 2}})))

	out := buf.String()
	assert.Contains(t, out, "Pizza")
	assert.Contains(t, out, "Subtotal:     ₹360")
	assert.Contains(t, out, "You save:     ₹40")
	assert.Contains(t, out, "Delivery Fee: ₹50")
	assert.Contains(t, out, "Total:        ₹410")
	assert.NotContains(t, out, "Your cart is empty.")
}

func TestRenderer_FollowsEngine(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	renderer := Renderer{Out: &buf}

	engine := cart.NewEngine(cart.NewMemoryStore())
	engine.Subscribe(func(items []cart.Item) {
		buf.Reset()
		require.NoError(t, renderer.Refresh(items))
	})

	added, err := engine.Add(ctx, cart.Item{Name: "Pizza", Price: 180, OriginalPrice: 200, Quantity: 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Total:        ₹410")

	_, err = engine.Increment(ctx, added.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Total:        ₹590")

	_, err = engine.Remove(ctx, added.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Your cart is empty.")
}
