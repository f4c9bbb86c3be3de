package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunString(t *testing.T) {
	r := New(logr.Discard())
	require.NoError(t, r.RunString(`result = rpn("1 2 + 8 * 5 1 - / 4 3 % - 2 /")`))

	value, ok := r.Global("result")
	require.True(t, ok)
	assert.Equal(t, 2.5, value)
}

func TestRunStringError(t *testing.T) {
	r := New(logr.Discard())
	require.NoError(t, r.RunString(`
		local value, err = rpn("1 +")
		failed = value == nil and err == "insufficient operands before operator"
		if failed then ok = 1 else ok = 0 end
	`))

	value, found := r.Global("ok")
	require.True(t, found)
	assert.Equal(t, 1.0, value)
}

func TestRunStringComposes(t *testing.T) {
	r := New(logr.Discard())
	require.NoError(t, r.RunString(`
		local total = 0
		for i = 1, 4 do
			total = rpn(total .. " " .. i .. " +")
		end
		sum = total
	`))

	value, ok := r.Global("sum")
	require.True(t, ok)
	assert.Equal(t, 10.0, value)
}

func TestRunStringSyntaxError(t *testing.T) {
	assert.Error(t, New(logr.Discard()).RunString(`result = rpn(`))
}

func TestRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "calc.lua")
	require.NoError(t, os.WriteFile(file, []byte(`answer = rpn("6 7 *")`), 0o600))

	r := New(logr.Discard())
	require.NoError(t, r.Run(file))
	value, ok := r.Global("answer")
	require.True(t, ok)
	assert.Equal(t, 42.0, value)

	assert.Error(t, r.Run(filepath.Join(t.TempDir(), "missing.lua")))
}
