package domain

// ChangeTracker records which columns of an aggregate were modified so
// repositories can emit partial updates.
type ChangeTracker struct {
	dirty map[string]bool
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]bool)}
}

// MarkDirty flags a field as modified.
func (ct *ChangeTracker) MarkDirty(fields ...string) {
	for _, f := range fields {
		ct.dirty[f] = true
	}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirty[field]
}

// HasChanges returns true if any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// Clear forgets all modifications.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]bool)
}

// Clone returns an independent copy.
func (ct *ChangeTracker) Clone() *ChangeTracker {
	c := NewChangeTracker()
	for f := range ct.dirty {
		c.dirty[f] = true
	}
	return c
}
