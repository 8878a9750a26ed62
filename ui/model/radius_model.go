package model

// RadiusModel holds the user-chosen corner radius. The slider bounds it at
// 300 but the numeric field may push it higher; only the lower bound is
// enforced here, geometry clamps the rest at render time. Updates occur on
// the UI thread.
type RadiusModel struct {
	value int
}

// NewRadiusModel returns a model starting at the given radius, floored at 0.
func NewRadiusModel(initial int) *RadiusModel {
	m := &RadiusModel{}
	m.Set(initial)
	return m
}

// Value returns the current radius.
func (m *RadiusModel) Value() int {
	if m == nil {
		return 0
	}
	return m.value
}

// Set stores a radius, flooring negatives at 0.
func (m *RadiusModel) Set(v int) {
	if m == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	m.value = v
}
