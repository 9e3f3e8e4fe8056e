package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/marmotedu/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
)

func TestResultOf(t *testing.T) {
	assert.Equal(t, ResultOK, resultOf(true, nil))
	assert.Equal(t, ResultNotFound, resultOf(false, nil))
	assert.Equal(t, ResultUnavailable, resultOf(false, errors.WithCode(code.ErrStoreUnavailable, "down")))
	assert.Equal(t, ResultError, resultOf(false, errors.WithCode(code.ErrDatabase, "bad sql")))
	assert.Equal(t, ResultError, resultOf(false, fmt.Errorf("plain")))
}

func TestRecordStoreOperation(t *testing.T) {
	before := testutil.ToFloat64(StoreOperations.WithLabelValues("metrics_test", ResultNotFound))

	RecordStoreOperation("metrics_test", time.Now(), false, nil)

	after := testutil.ToFloat64(StoreOperations.WithLabelValues("metrics_test", ResultNotFound))
	assert.Equal(t, before+1, after)
}
