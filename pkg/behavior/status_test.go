package behavior_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Bool(t *testing.T) {
	assert.True(t, behavior.Success.Bool())
	assert.False(t, behavior.Failure.Bool())
	assert.False(t, behavior.Running.Bool(), "Running must not convert to true")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "SUCCESS", behavior.Success.String())
	assert.Equal(t, "FAILURE", behavior.Failure.String())
	assert.Equal(t, "RUNNING", behavior.Running.String())
	assert.Equal(t, "UNKNOWN", behavior.Status(42).String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, behavior.Success, behavior.StatusOf(true))
	assert.Equal(t, behavior.Failure, behavior.StatusOf(false))
}

func TestStatus_ZeroValueIsFailure(t *testing.T) {
	var s behavior.Status
	assert.Equal(t, behavior.Failure, s)
}

func TestParseStatus(t *testing.T) {
	s, err := behavior.ParseStatus(" running ")
	require.NoError(t, err)
	assert.Equal(t, behavior.Running, s)

	s, err = behavior.ParseStatus("Success")
	require.NoError(t, err)
	assert.Equal(t, behavior.Success, s)

	_, err = behavior.ParseStatus("done")
	assert.ErrorIs(t, err, behavior.ErrInvalidStatus)
}

func TestStatus_Ordering(t *testing.T) {
	assert.Equal(t, 1, behavior.Compare(behavior.Running, behavior.Failure))
	assert.Equal(t, 1, behavior.Compare(behavior.Failure, behavior.Success))
	assert.Equal(t, -1, behavior.Compare(behavior.Success, behavior.Running))
	assert.Equal(t, 0, behavior.Compare(behavior.Failure, behavior.Failure))

	assert.Equal(t, behavior.Success, behavior.Combine())
	assert.Equal(t, behavior.Success, behavior.Combine(behavior.Success, behavior.Success))
	assert.Equal(t, behavior.Failure, behavior.Combine(behavior.Success, behavior.Failure))
	assert.Equal(t, behavior.Running, behavior.Combine(behavior.Failure, behavior.Running, behavior.Success))
}
