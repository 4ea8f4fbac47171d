// Package equipment provides the per-type equipment inventory: how many
// units exist, how many are free, and which unit numbers are held by
// in-progress cargo operations.
package equipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrInventoryIsNotConstructed = errors.New("Inventory must be created via NewInventory constructor")
	ErrTypeIsRequired            = errs.NewValueIsRequiredError("equipment type")
	ErrNoUnitAvailable           = errs.NewResourceOccupiedError("equipment unit")
	ErrUnitNotReserved           = errs.NewInvalidStatusError("equipment unit")
)

// Inventory tracks one equipment type.
//
// Invariants:
//   - 0 <= available <= total
//   - every reserved unit is counted as unavailable: len(reserved) <= total - available
//   - reserved unit numbers are unique and lie in [1, total]
type Inventory struct {
	equipmentType string
	total         int
	available     int
	maintenance   int
	reserved      []int
	guard         guard.ConstructorGuard
}

// NewInventory creates an inventory with no reserved units.
func NewInventory(equipmentType string, total, available, maintenance int) (*Inventory, error) {
	return RestoreInventory(equipmentType, total, available, maintenance, nil)
}

// RestoreInventory rebuilds an inventory from storage.
func RestoreInventory(equipmentType string, total, available, maintenance int, reserved []int) (*Inventory, error) {
	inv := &Inventory{guard: guard.NewConstructorGuard()}

	if err := inv.setType(equipmentType); err != nil {
		return nil, err
	}
	if err := inv.check(total, available, maintenance, reserved); err != nil {
		return nil, err
	}

	inv.total = total
	inv.available = available
	inv.maintenance = maintenance
	inv.reserved = slices.Clone(reserved)
	slices.Sort(inv.reserved)
	return inv, nil
}

// NormalizeType canonicalises an equipment type tag.
func NormalizeType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (i *Inventory) Validate() error {
	if i == nil {
		return ErrInventoryIsNotConstructed
	}
	return i.guard.Validate(ErrInventoryIsNotConstructed)
}

func (i *Inventory) Type() string { return i.equipmentType }

func (i *Inventory) Total() int { return i.total }

func (i *Inventory) Available() int { return i.available }

func (i *Inventory) Maintenance() int { return i.maintenance }

func (i *Inventory) Reserved() []int { return slices.Clone(i.reserved) }

// Utilization is the share of units not available, in percent.
func (i *Inventory) Utilization() float64 {
	if i.total == 0 {
		return 0
	}
	return 100 * float64(i.total-i.available) / float64(i.total)
}

// Update replaces the counts reported by an operator. Units held by
// in-progress operations must stay unavailable.
func (i *Inventory) Update(total, available, maintenance int) error {
	if err := i.check(total, available, maintenance, i.reserved); err != nil {
		return err
	}
	i.total = total
	i.available = available
	i.maintenance = maintenance
	return nil
}

// Reserve takes one available unit and returns its number, the lowest free one.
func (i *Inventory) Reserve() (int, error) {
	if i.available <= 0 {
		return 0, fmt.Errorf("%w: no %s available", ErrNoUnitAvailable, i.equipmentType)
	}

	unit := 1
	for _, held := range i.reserved {
		if held != unit {
			break
		}
		unit++
	}

	i.reserved = append(i.reserved, unit)
	slices.Sort(i.reserved)
	i.available--
	return unit, nil
}

// Release returns a reserved unit to the available pool.
func (i *Inventory) Release(unit int) error {
	idx := slices.Index(i.reserved, unit)
	if idx < 0 {
		return fmt.Errorf("%w: %s unit %d is not reserved", ErrUnitNotReserved, i.equipmentType, unit)
	}
	if i.available >= i.total {
		return errs.NewValueIsOutOfRangeError("available", i.available+1, 0, i.total)
	}

	i.reserved = slices.Delete(i.reserved, idx, idx+1)
	i.available++
	return nil
}

func (i *Inventory) setType(raw string) error {
	t := NormalizeType(raw)
	if t == "" {
		return ErrTypeIsRequired
	}
	i.equipmentType = t
	return nil
}

func (i *Inventory) check(total, available, maintenance int, reserved []int) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d is not greater than 0", total))
	}
	if available < 0 || available > total {
		return errs.NewValueIsOutOfRangeError("available", available, 0, total)
	}
	if maintenance < 0 || maintenance > total {
		return errs.NewValueIsOutOfRangeError("maintenance", maintenance, 0, total)
	}
	if len(reserved) > total-available {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"available", available, 0, total-len(reserved),
			fmt.Errorf("%d units are held by in-progress operations", len(reserved)),
		)
	}
	seen := make(map[int]struct{}, len(reserved))
	for _, unit := range reserved {
		if unit < 1 || unit > total {
			return errs.NewValueIsOutOfRangeError("reserved unit", unit, 1, total)
		}
		if _, dup := seen[unit]; dup {
			return errs.NewValueIsInvalidErrorWithCause("reserved unit", fmt.Errorf("unit %d reserved twice", unit))
		}
		seen[unit] = struct{}{}
	}
	return nil
}
