package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveModeration(t *testing.T) {
	ok := ModerationActions.WithLabelValues(ActionRestore, ResultSuccess)
	failed := ModerationActions.WithLabelValues(ActionRestore, ResultError)
	beforeOK := testutil.ToFloat64(ok)
	beforeFailed := testutil.ToFloat64(failed)

	ObserveModeration(ActionRestore, nil)
	ObserveModeration(ActionRestore, nil)
	ObserveModeration(ActionRestore, errors.New("boom"))

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(ok))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
}
