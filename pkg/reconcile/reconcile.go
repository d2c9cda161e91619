// Package reconcile moves purchased shopping list items into the freezer
// inventory. A strictly sequential state machine walks the checked items:
// known names have their stock incremented, unknown names pause the run
// for the caller to fill in the remaining item details.
package reconcile

import (
	"errors"
	"math"
	"sync"

	"github.com/frostkeep/icebox/pkg/types"
)

// State is the reconciler's lifecycle phase.
type State int

const (
	// Idle means no run is in progress.
	Idle State = iota
	// Processing means a run is walking the queue.
	Processing
	// AwaitingDetail means the run is paused on an item with no
	// inventory match, waiting for a ResolveCurrent call.
	AwaitingDetail
)

// Decision resolves an item that had no inventory match.
type Decision int

const (
	// DecisionSave adds the pending draft to the inventory.
	DecisionSave Decision = iota
	// DecisionCancel drops the pending item and moves on.
	DecisionCancel
)

var (
	// ErrBusy means a run is already in progress.
	ErrBusy = errors.New("reconciliation already in progress")
	// ErrNoPending means there is no item awaiting a decision.
	ErrNoPending = errors.New("no item awaiting detail")
)

// Inventory is the slice of the food item store the reconciler needs.
type Inventory interface {
	FindByName(name string) (*types.FoodItem, bool)
	Update(item *types.FoodItem) error
	Add(item *types.FoodItem) (string, error)
}

// ShoppingList is the slice of the shopping list store the reconciler
// needs.
type ShoppingList interface {
	ClearChecked() error
}

// Failure records an inventory update that failed mid-run. The queue
// advances past failures so one broken item cannot wedge the rest.
type Failure struct {
	Name string
	Err  error
}

// Reconciler walks a batch of checked shopping list items into the
// inventory, one at a time.
type Reconciler struct {
	mu        sync.Mutex
	inventory Inventory
	list      ShoppingList

	state    State
	queue    []*types.ShoppingListItem
	index    int
	draft    *types.FoodItem
	skipped  []string
	failures []Failure
}

// New creates a reconciler over the given stores.
func New(inventory Inventory, list ShoppingList) *Reconciler {
	return &Reconciler{inventory: inventory, list: list}
}

// State returns the current lifecycle phase.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start begins a run over the given batch, the checked items captured at
// confirmation time. It returns ErrBusy when a run is already in
// progress. On return the reconciler is either Idle (run complete) or
// AwaitingDetail (an item needs a decision).
func (r *Reconciler) Start(batch []*types.ShoppingListItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Idle {
		return ErrBusy
	}
	r.queue = batch
	r.index = 0
	r.draft = nil
	r.skipped = nil
	r.failures = nil
	r.state = Processing
	return r.stepLocked()
}

// Current returns the prefilled draft for the item awaiting detail, nil
// outside AwaitingDetail. The draft has the shopping list name, the
// purchased quantity, and copied notes; the category is left for the
// caller to choose.
func (r *Reconciler) Current() *types.FoodItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != AwaitingDetail {
		return nil
	}
	draft := *r.draft
	return &draft
}

// ResolveCurrent settles the item awaiting detail. With DecisionSave the
// draft (the caller's, or the prefilled one when nil) is added to the
// inventory; a failed add keeps the run in AwaitingDetail so the caller
// can retry or cancel. With DecisionCancel the item is dropped, recorded
// in Skipped, and the run advances.
func (r *Reconciler) ResolveCurrent(decision Decision, draft *types.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != AwaitingDetail {
		return ErrNoPending
	}

	switch decision {
	case DecisionSave:
		if draft == nil {
			draft = r.draft
		}
		if _, err := r.inventory.Add(draft); err != nil {
			return err
		}
	case DecisionCancel:
		r.skipped = append(r.skipped, r.queue[r.index].Name)
	default:
		return ErrNoPending
	}

	r.draft = nil
	r.index++
	r.state = Processing
	return r.stepLocked()
}

// Reject declines the whole run before it starts: the checked items are
// removed from the shopping list and the inventory is untouched.
func (r *Reconciler) Reject() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Idle {
		return ErrBusy
	}
	return r.list.ClearChecked()
}

// Skipped returns the names dropped via DecisionCancel during the last
// run.
func (r *Reconciler) Skipped() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.skipped))
	copy(out, r.skipped)
	return out
}

// Failures returns the inventory updates that failed during the last run.
func (r *Reconciler) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// stepLocked advances through the queue until it pauses on an unmatched
// item or finishes the run.
func (r *Reconciler) stepLocked() error {
	for r.index < len(r.queue) {
		item := r.queue[r.index]

		existing, found := r.inventory.FindByName(item.Name)
		if !found {
			r.draft = &types.FoodItem{
				Name:     item.Name,
				Quantity: purchasedQuantity(item),
				Notes:    item.Notes,
			}
			r.state = AwaitingDetail
			return nil
		}

		updated := *existing
		updated.Quantity += purchasedQuantity(item)
		if err := r.inventory.Update(&updated); err != nil {
			r.failures = append(r.failures, Failure{Name: item.Name, Err: err})
		}
		r.index++
	}
	return r.finishLocked()
}

// finishLocked clears the checked items and resets to Idle.
func (r *Reconciler) finishLocked() error {
	err := r.list.ClearChecked()
	r.queue = nil
	r.index = 0
	r.draft = nil
	r.state = Idle
	return err
}

// purchasedQuantity converts a shopping list quantity to inventory
// units: fractional amounts round, missing or non-positive amounts count
// as a single unit.
func purchasedQuantity(item *types.ShoppingListItem) int {
	q := int(math.Round(item.Quantity))
	if q < 1 {
		return 1
	}
	return q
}
