package behavior_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/arbor/pkg/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sinkMock struct {
	mock.Mock
}

func (m *sinkMock) Report(n behavior.Node, err error) {
	m.Called(n, err)
}

func TestAction_Success(t *testing.T) {
	executed := false
	node := behavior.NewDo(func() { executed = true }, "returns Success")

	assert.Equal(t, behavior.Success, node.Tick())
	assert.True(t, executed)
	assert.Equal(t, behavior.TypeAction, node.Type())
	assert.Equal(t, "returns Success", node.Description())
	assert.Empty(t, node.Children())
}

func TestAction_ErrorIsSwallowed(t *testing.T) {
	boom := errors.New("intentional failure")
	node := behavior.NewAction(func() error { return boom }, "fails")

	sink := new(sinkMock)
	sink.On("Report", node, boom).Once()
	node.SetErrorSink(sink.Report)

	assert.Equal(t, behavior.Failure, node.Tick())
	sink.AssertExpectations(t)
}

func TestAction_PanicIsRecovered(t *testing.T) {
	node := behavior.NewDo(func() { panic("gripper jammed") }, "panics")

	var got error
	node.SetErrorSink(func(_ behavior.Node, err error) { got = err })

	require.NotPanics(t, func() {
		assert.Equal(t, behavior.Failure, node.Tick())
	})
	var panicErr *behavior.LeafPanicError
	require.ErrorAs(t, got, &panicErr)
	assert.Equal(t, "gripper jammed", panicErr.Value)
}

func TestAction_PanicWithErrorUnwraps(t *testing.T) {
	cause := errors.New("bus offline")
	node := behavior.NewDo(func() { panic(cause) }, "panics with error")

	var got error
	node.SetErrorSink(func(_ behavior.Node, err error) { got = err })

	assert.Equal(t, behavior.Failure, node.Tick())
	assert.ErrorIs(t, got, cause)
}

func TestAction_DefaultSinkLogs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	node := behavior.NewAction(func() error { return errors.New("no power") }, "Open Gripper")
	assert.Nil(t, node.ErrorSink())
	assert.Equal(t, behavior.Failure, node.Tick())

	out := buf.String()
	assert.Contains(t, out, "leaf failed")
	assert.Contains(t, out, "Open Gripper")
	assert.Contains(t, out, "no power")
}

func TestCondition_ForwardsStatus(t *testing.T) {
	for _, status := range []behavior.Status{behavior.Success, behavior.Failure, behavior.Running} {
		node := behavior.NewCheck(func() behavior.Status { return status }, "fixed")
		assert.Equal(t, status, node.Tick())
	}

	node := behavior.NewCheck(func() behavior.Status { return behavior.Success }, "returns Success")
	assert.Equal(t, behavior.TypeCondition, node.Type())
	assert.Equal(t, "returns Success", node.Description())
	assert.Empty(t, node.Children())
}

func TestCondition_ErrorMapsToFailure(t *testing.T) {
	boom := errors.New("sensor offline")
	node := behavior.NewCondition(func() (behavior.Status, error) {
		return behavior.Running, boom
	}, "errors")

	sink := new(sinkMock)
	sink.On("Report", node, boom).Once()
	node.SetErrorSink(sink.Report)

	assert.Equal(t, behavior.Failure, node.Tick())
	sink.AssertExpectations(t)
}

func TestCondition_PanicMapsToFailure(t *testing.T) {
	node := behavior.NewCheck(func() behavior.Status { panic("condition exception") }, "panics")
	node.SetErrorSink(func(behavior.Node, error) {})

	assert.Equal(t, behavior.Failure, node.Tick())
}

func TestCondition_InvalidStatus(t *testing.T) {
	node := behavior.NewCheck(func() behavior.Status { return behavior.Status(7) }, "bogus")

	var got error
	node.SetErrorSink(func(_ behavior.Node, err error) { got = err })

	assert.Equal(t, behavior.Failure, node.Tick())
	assert.ErrorIs(t, got, behavior.ErrInvalidStatus)
}

func TestPredicate(t *testing.T) {
	ok := false
	node := behavior.NewPredicate(func() bool { return ok }, "flag")

	assert.Equal(t, behavior.Failure, node.Tick())
	ok = true
	assert.Equal(t, behavior.Success, node.Tick())
}

func TestLeaf_NilFuncPanics(t *testing.T) {
	assertPanicsWith(t, behavior.ErrNilFunc, func() { behavior.NewAction(nil, "a") })
	assertPanicsWith(t, behavior.ErrNilFunc, func() { behavior.NewDo(nil, "a") })
	assertPanicsWith(t, behavior.ErrNilFunc, func() { behavior.NewCondition(nil, "c") })
	assertPanicsWith(t, behavior.ErrNilFunc, func() { behavior.NewCheck(nil, "c") })
	assertPanicsWith(t, behavior.ErrNilFunc, func() { behavior.NewPredicate(nil, "c") })
}

// assertPanicsWith checks that fn panics with an error matching target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}
