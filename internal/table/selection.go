package table

import "github.com/handiism/artic-table/internal/model"

// ReconcilePage folds the checked state of the visible rows into the
// selection: every visible identifier is removed, then exactly ids are
// added. Identifiers of rows on other pages are left alone.
func (c *Controller) ReconcilePage(ids []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconcileLocked(ids)
}

func (c *Controller) reconcileLocked(ids []int) {
	for _, r := range c.rows {
		c.selected.Remove(r.ID)
	}
	for _, id := range ids {
		c.selected.Add(id)
	}
}

// ToggleRow flips the checked state of the visible row id. It reports
// false when id is not on the current page.
func (c *Controller) ToggleRow(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := false
	var checked []int
	for _, r := range c.rows {
		if r.ID == id {
			visible = true
			if !c.selected.Has(id) {
				checked = append(checked, id)
			}
			continue
		}
		if c.selected.Has(r.ID) {
			checked = append(checked, r.ID)
		}
	}
	if !visible {
		return false
	}

	c.reconcileLocked(checked)
	return true
}

// TogglePage checks every visible row, or unchecks them all when they are
// already all checked.
func (c *Controller) TogglePage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.rows) == 0 {
		return
	}

	all := true
	ids := make([]int, len(c.rows))
	for i, r := range c.rows {
		ids[i] = r.ID
		if !c.selected.Has(r.ID) {
			all = false
		}
	}

	if all {
		c.reconcileLocked(nil)
		return
	}
	c.reconcileLocked(ids)
}

// VisibleSelection returns the visible rows that are selected, in row order.
func (c *Controller) VisibleSelection() []model.Artwork {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []model.Artwork
	for _, r := range c.rows {
		if c.selected.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// IsSelected reports whether id is selected.
func (c *Controller) IsSelected(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected.Has(id)
}

// SelectedIDs returns all selected identifiers in ascending order.
func (c *Controller) SelectedIDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected.IDs()
}
