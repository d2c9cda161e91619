package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/pkg/types"
)

// fakeInventory implements Inventory over a name-keyed map.
type fakeInventory struct {
	items     map[string]*types.FoodItem
	updateErr map[string]error
	addErr    error
	added     []*types.FoodItem
}

func newFakeInventory(items ...*types.FoodItem) *fakeInventory {
	inv := &fakeInventory{
		items:     map[string]*types.FoodItem{},
		updateErr: map[string]error{},
	}
	for _, item := range items {
		inv.items[item.Name] = item
	}
	return inv
}

func (f *fakeInventory) FindByName(name string) (*types.FoodItem, bool) {
	for _, item := range f.items {
		if item.NameEquals(name) {
			return item, true
		}
	}
	return nil, false
}

func (f *fakeInventory) Update(item *types.FoodItem) error {
	if err := f.updateErr[item.Name]; err != nil {
		return err
	}
	f.items[item.Name] = item
	return nil
}

func (f *fakeInventory) Add(item *types.FoodItem) (string, error) {
	if f.addErr != nil {
		return "", f.addErr
	}
	f.items[item.Name] = item
	f.added = append(f.added, item)
	return item.Name, nil
}

// fakeList counts ClearChecked calls.
type fakeList struct {
	cleared int
	err     error
}

func (f *fakeList) ClearChecked() error {
	if f.err != nil {
		return f.err
	}
	f.cleared++
	return nil
}

func checkedItem(name string, quantity float64) *types.ShoppingListItem {
	return &types.ShoppingListItem{Name: name, Quantity: quantity, Checked: true}
}

func TestReconciler_AllMatched(t *testing.T) {
	inv := newFakeInventory(
		&types.FoodItem{Name: "Frango", Category: "CARNES", Quantity: 3},
		&types.FoodItem{Name: "Batata", Category: "GAVETA", Quantity: 1},
	)
	list := &fakeList{}
	r := New(inv, list)

	err := r.Start([]*types.ShoppingListItem{
		checkedItem("frango", 2),
		checkedItem("Batata", 5),
	})
	require.NoError(t, err)

	assert.Equal(t, Idle, r.State())
	assert.Equal(t, 5, inv.items["Frango"].Quantity, "3 in stock + 2 purchased")
	assert.Equal(t, 6, inv.items["Batata"].Quantity)
	assert.Equal(t, 1, list.cleared)
	assert.Empty(t, r.Skipped())
	assert.Empty(t, r.Failures())
}

func TestReconciler_QuantityRules(t *testing.T) {
	tests := []struct {
		name      string
		purchased float64
		want      int
	}{
		{"missing quantity counts as one", 0, 4},
		{"fractional rounds", 1.5, 5},
		{"fractional rounds down", 1.4, 4},
		{"negative counts as one", -2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newFakeInventory(&types.FoodItem{Name: "Sopa", Quantity: 3})
			r := New(inv, &fakeList{})

			require.NoError(t, r.Start([]*types.ShoppingListItem{checkedItem("Sopa", tt.purchased)}))
			assert.Equal(t, tt.want, inv.items["Sopa"].Quantity)
		})
	}
}

func TestReconciler_UnmatchedPausesWithDraft(t *testing.T) {
	inv := newFakeInventory(&types.FoodItem{Name: "Frango", Quantity: 3})
	list := &fakeList{}
	r := New(inv, list)

	item := checkedItem("Peixe", 2)
	item.Notes = "promoção"
	require.NoError(t, r.Start([]*types.ShoppingListItem{item}))

	require.Equal(t, AwaitingDetail, r.State())
	draft := r.Current()
	require.NotNil(t, draft)
	assert.Equal(t, "Peixe", draft.Name)
	assert.Equal(t, 2, draft.Quantity)
	assert.Equal(t, "promoção", draft.Notes)
	assert.Empty(t, draft.Category, "category is left for the caller")
	assert.Zero(t, list.cleared, "run is not terminal while paused")
}

func TestReconciler_ResolveSave(t *testing.T) {
	inv := newFakeInventory(&types.FoodItem{Name: "Frango", Quantity: 3})
	list := &fakeList{}
	r := New(inv, list)

	require.NoError(t, r.Start([]*types.ShoppingListItem{
		checkedItem("Frango", 2),
		checkedItem("Peixe", 1),
	}))
	require.Equal(t, AwaitingDetail, r.State())

	draft := r.Current()
	draft.Category = "CARNES"
	require.NoError(t, r.ResolveCurrent(DecisionSave, draft))

	assert.Equal(t, Idle, r.State())
	assert.Equal(t, 5, inv.items["Frango"].Quantity)
	require.Len(t, inv.added, 1)
	assert.Equal(t, "CARNES", inv.added[0].Category)
	assert.Equal(t, 1, list.cleared)
}

func TestReconciler_ResolveCancelRecordsSkip(t *testing.T) {
	inv := newFakeInventory(&types.FoodItem{Name: "Frango", Quantity: 3})
	list := &fakeList{}
	r := New(inv, list)

	require.NoError(t, r.Start([]*types.ShoppingListItem{
		checkedItem("Peixe", 1),
		checkedItem("Frango", 2),
	}))
	require.Equal(t, AwaitingDetail, r.State())

	require.NoError(t, r.ResolveCurrent(DecisionCancel, nil))

	assert.Equal(t, Idle, r.State())
	assert.Equal(t, []string{"Peixe"}, r.Skipped())
	assert.Equal(t, 5, inv.items["Frango"].Quantity, "queue advanced past the cancelled item")
	assert.Empty(t, inv.added)
	assert.Equal(t, 1, list.cleared)
}

func TestReconciler_SaveFailureIsRetryable(t *testing.T) {
	inv := newFakeInventory()
	inv.addErr = errors.New("disk full")
	list := &fakeList{}
	r := New(inv, list)

	require.NoError(t, r.Start([]*types.ShoppingListItem{checkedItem("Peixe", 1)}))
	require.Equal(t, AwaitingDetail, r.State())

	err := r.ResolveCurrent(DecisionSave, nil)
	require.Error(t, err)
	assert.Equal(t, AwaitingDetail, r.State(), "failed save keeps the item pending")

	// Retry after the failure clears.
	inv.addErr = nil
	require.NoError(t, r.ResolveCurrent(DecisionSave, nil))
	assert.Equal(t, Idle, r.State())
	assert.Len(t, inv.added, 1)
}

func TestReconciler_UpdateFailureAdvances(t *testing.T) {
	inv := newFakeInventory(
		&types.FoodItem{Name: "Frango", Quantity: 3},
		&types.FoodItem{Name: "Batata", Quantity: 1},
	)
	inv.updateErr["Frango"] = errors.New("write failed")
	list := &fakeList{}
	r := New(inv, list)

	require.NoError(t, r.Start([]*types.ShoppingListItem{
		checkedItem("Frango", 2),
		checkedItem("Batata", 1),
	}))

	assert.Equal(t, Idle, r.State())
	require.Len(t, r.Failures(), 1)
	assert.Equal(t, "Frango", r.Failures()[0].Name)
	assert.Equal(t, 3, inv.items["Frango"].Quantity, "failed update leaves stock untouched")
	assert.Equal(t, 2, inv.items["Batata"].Quantity, "queue advanced past the failure")
}

func TestReconciler_StartWhileBusy(t *testing.T) {
	inv := newFakeInventory()
	r := New(inv, &fakeList{})

	require.NoError(t, r.Start([]*types.ShoppingListItem{checkedItem("Peixe", 1)}))
	require.Equal(t, AwaitingDetail, r.State())

	assert.ErrorIs(t, r.Start([]*types.ShoppingListItem{checkedItem("Arroz", 1)}), ErrBusy)
	assert.ErrorIs(t, r.Reject(), ErrBusy)
}

func TestReconciler_ResolveOutsidePause(t *testing.T) {
	r := New(newFakeInventory(), &fakeList{})
	assert.ErrorIs(t, r.ResolveCurrent(DecisionSave, nil), ErrNoPending)
}

func TestReconciler_Reject(t *testing.T) {
	inv := newFakeInventory(&types.FoodItem{Name: "Frango", Quantity: 3})
	list := &fakeList{}
	r := New(inv, list)

	require.NoError(t, r.Reject())
	assert.Equal(t, 1, list.cleared)
	assert.Equal(t, 3, inv.items["Frango"].Quantity, "reject never touches the inventory")
}

func TestReconciler_EmptyBatchCompletesImmediately(t *testing.T) {
	list := &fakeList{}
	r := New(newFakeInventory(), list)

	require.NoError(t, r.Start(nil))
	assert.Equal(t, Idle, r.State())
	assert.Equal(t, 1, list.cleared)
}
