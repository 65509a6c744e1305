package rtdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportsPath(t *testing.T) {
	assert.Equal(t, "/workers/lte_integ_test/reports", ReportsPath("lte_integ_test"))
	assert.Equal(t, "/workers/feg/reports", ReportsPath("/feg/"))
}
