package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatorIsValid(t *testing.T) {
	v := New()

	assert.True(t, v.Valid())
	assert.Empty(t, v.Joined())
}

func TestAddErrorRecordsFirstMessagePerKey(t *testing.T) {
	v := New()

	v.AddError("name", "first message")
	v.AddError("name", "second message")

	assert.False(t, v.Valid())
	assert.Equal(t, "first message", v.Errors["name"])
	assert.Equal(t, "first message", v.Joined())
}

func TestCheckOnlyRecordsFailures(t *testing.T) {
	v := New()

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestJoinedPreservesInsertionOrder(t *testing.T) {
	v := New()

	v.AddError("zulu", "Last field failed.")
	v.AddError("alpha", "First field failed.")
	v.AddError("mike", "Middle field failed.")

	// Order follows recording order, not key order, so the combined
	// message reads in the order the checks ran.
	assert.Equal(t, "Last field failed. First field failed. Middle field failed.", v.Joined())
}
