package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/provinv"
	"github.com/fwojciec/provinv/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := completer.Complete(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, provinv.EINVALID, provinv.ErrorCode(err))
	assert.Contains(t, provinv.ErrorMessage(err), "prompt required")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.1, float64(*config.Temperature), 1e-6)
}
