package demo

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sghaida/oop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRunner(s string) Runner {
	return func(w io.Writer, _ config.Inputs) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

//
// -----------------------------------------------------------------------------
// NewRegistry / Provide
// -----------------------------------------------------------------------------

// TestNewRegistry_Empty verifies NewRegistry initializes a non-nil registry with an empty map.
func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.items)
	assert.Len(t, r.items, 0)
	assert.Empty(t, r.Names())
}

// TestProvide_ChainsAndKeepsOrder verifies Provide returns the same registry and records order.
func TestProvide_ChainsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ret := r.Provide("b", writeRunner("B")).Provide("a", writeRunner("A"))

	require.Same(t, r, ret)
	assert.Equal(t, []string{"b", "a"}, r.Names())
}

// TestProvide_ReplaceKeepsPosition verifies re-providing a name swaps the runner without reordering.
func TestProvide_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Provide("a", writeRunner("old")).
		Provide("b", writeRunner("B")).
		Provide("a", writeRunner("new"))

	assert.Equal(t, []string{"a", "b"}, r.Names())

	var buf bytes.Buffer
	require.NoError(t, r.Run(&buf, config.Default(), "a"))
	assert.Equal(t, "new", buf.String())
}

// TestNames_ReturnsCopy verifies callers cannot reorder the registry through Names.
func TestNames_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("a", writeRunner("A")).Provide("b", writeRunner("B"))
	names := r.Names()
	names[0] = "zzz"

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

//
// -----------------------------------------------------------------------------
// Get
// -----------------------------------------------------------------------------

func TestGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("k", writeRunner("v"))

	got, ok := r.Get("k")
	require.True(t, ok)
	require.NotNil(t, got)

	got, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

//
// -----------------------------------------------------------------------------
// Run / RunAll
// -----------------------------------------------------------------------------

func TestRun_UnknownDemo(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run(io.Discard, config.Default(), "warp-drive")
	require.Error(t, err)

	var unknown UnknownDemoError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "warp-drive", unknown.Name)
	assert.Equal(t, `demo: unknown demo "warp-drive"`, err.Error())
}

func TestRun_NilRunner(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("nil", nil)
	err := r.Run(io.Discard, config.Default(), "nil")
	assert.ErrorIs(t, err, ErrNilRunner)
}

// TestRun_PanicBecomesError verifies runner panics are converted into ErrDemoPanic.
func TestRun_PanicBecomesError(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("boom", func(io.Writer, config.Inputs) error { panic("kaboom") })

	err := r.Run(io.Discard, config.Default(), "boom")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDemoPanic)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestRunAll_DefaultsToRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Provide("one", writeRunner("1")).
		Provide("two", writeRunner("2")).
		Provide("three", writeRunner("3"))

	var buf bytes.Buffer
	require.NoError(t, r.RunAll(&buf, config.Default()))
	assert.Equal(t, "123", buf.String())
}

func TestRunAll_SelectedNamesInGivenOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Provide("one", writeRunner("1")).
		Provide("two", writeRunner("2"))

	var buf bytes.Buffer
	require.NoError(t, r.RunAll(&buf, config.Default(), "two", "one", "two"))
	assert.Equal(t, "212", buf.String())
}

// TestRunAll_UnknownNameRunsNothing verifies names are validated before any output.
func TestRunAll_UnknownNameRunsNothing(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("one", writeRunner("1"))

	var buf bytes.Buffer
	err := r.RunAll(&buf, config.Default(), "one", "missing")

	var unknown UnknownDemoError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
	assert.Empty(t, buf.String())
}

func TestRunAll_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	failure := errors.New("fail")
	r := NewRegistry().
		Provide("one", writeRunner("1")).
		Provide("bad", func(io.Writer, config.Inputs) error { return failure }).
		Provide("three", writeRunner("3"))

	var buf bytes.Buffer
	err := r.RunAll(&buf, config.Default())

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, "1", buf.String())
}
