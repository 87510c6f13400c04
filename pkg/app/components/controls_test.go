package components

import (
	"testing"

	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestTabsListsEveryMode(t *testing.T) {
	view := Tabs(data.ColumnMode)

	assert.Contains(t, view, "Grid View")
	assert.Contains(t, view, "Column View")
	assert.Contains(t, view, "Infinite View")
}

func TestPager(t *testing.T) {
	view := Pager(3, true, false)

	assert.Contains(t, view, "Previous")
	assert.Contains(t, view, "Page 3")
	assert.Contains(t, view, "Next")
}
