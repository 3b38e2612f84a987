// Package field drives one masked text field.
//
// A Field sits between a host widget and a selector.Selector. The host reports
// edits as Change events; the field picks a mask, applies the edit, writes the
// formatted text and caret back through Host.Display and notifies listeners.
// Change events that arrive while the field is writing back are dropped, so a
// host that re-emits change events on every write cannot loop.
package field
