package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExpenseType(t *testing.T) {
	for _, valid := range []string{"Mine", "Food", "Family"} {
		parsed, err := ParseExpenseType(valid)
		assert.NoError(t, err)
		assert.Equal(t, ExpenseType(valid), parsed)
	}

	for _, invalid := range []string{"", "mine", "Travel", "FOOD"} {
		_, err := ParseExpenseType(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}
