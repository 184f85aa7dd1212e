package entity

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem(id string) CartItem {
	return CartItem{ID: id, Name: "Widget " + id, Price: 9.99, Quantity: 1}
}

func TestValidateItems(t *testing.T) {
	require.NoError(t, ValidateItems(nil))
	require.NoError(t, ValidateItems([]CartItem{validItem("a")}))

	cases := map[string]CartItem{
		"empty id":          {ID: "", Name: "Widget", Price: 1, Quantity: 1},
		"empty name":        {ID: "a", Name: "", Price: 1, Quantity: 1},
		"negative price":    {ID: "a", Name: "Widget", Price: -1, Quantity: 1},
		"price over limit":  {ID: "a", Name: "Widget", Price: 1000000, Quantity: 1},
		"zero quantity":     {ID: "a", Name: "Widget", Price: 1, Quantity: 0},
		"quantity over cap": {ID: "a", Name: "Widget", Price: 1, Quantity: 1000},
	}
	for name, item := range cases {
		assert.Error(t, ValidateItems([]CartItem{item}), name)
	}
}

func TestValidateItems_BatchLengthCap(t *testing.T) {
	items := make([]CartItem, 0, MaxCartItems+1)
	for i := 0; i < MaxCartItems; i++ {
		items = append(items, validItem(fmt.Sprintf("item-%d", i)))
	}
	require.NoError(t, ValidateItems(items))

	// One over the cap fails even though every item is individually valid.
	items = append(items, validItem("overflow"))
	require.Error(t, ValidateItems(items))
}

func TestCartItem_JSONRoundTripPreservesUnknownFields(t *testing.T) {
	payload := []byte(`{"id":"sku-1","name":"Widget","price":9.99,"quantity":2,` +
		`"color":"teal","meta":{"campaign":"spring"}}`)

	var item CartItem
	require.NoError(t, json.Unmarshal(payload, &item))

	assert.Equal(t, "sku-1", item.ID)
	assert.Equal(t, "Widget", item.Name)
	assert.InDelta(t, 9.99, item.Price, 0.0001)
	assert.Equal(t, 2, item.Quantity)
	assert.Contains(t, item.Attrs, "color")
	assert.Contains(t, item.Attrs, "meta")

	out, err := json.Marshal(item)
	require.NoError(t, err)

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Equal(t, "teal", roundTrip["color"])
	assert.Equal(t, map[string]any{"campaign": "spring"}, roundTrip["meta"])
	assert.Equal(t, "sku-1", roundTrip["id"])
}

func TestCartItem_UnmarshalRejectsWrongTypes(t *testing.T) {
	var item CartItem
	require.Error(t, json.Unmarshal([]byte(`{"id":1,"name":"Widget","price":1,"quantity":1}`), &item))
	require.Error(t, json.Unmarshal([]byte(`{"id":"a","name":"Widget","price":"1","quantity":1}`), &item))
}
