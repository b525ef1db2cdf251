package db

import (
	"context"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/retailmall/pkg/metrics"
	"gorm.io/gorm"
)

func TestTxFromContext(t *testing.T) {
	fallback := &gorm.DB{}
	tx := &gorm.DB{}

	// 不在事务内时回退到根连接
	assert.Same(t, fallback, TxFromContext(context.Background(), fallback))

	ctx := ContextWithTx(context.Background(), tx)
	assert.Same(t, tx, TxFromContext(ctx, fallback))

	// 边界外的派生 context 不携带句柄
	assert.Same(t, fallback, TxFromContext(context.Background(), fallback))
}

func TestGormLoggerTrace_RecordsQueryDuration(t *testing.T) {
	m := metrics.New("dbtest")
	l := NewGormLogger(false, time.Second, m)

	l.Trace(context.Background(), time.Now().Add(-10*time.Millisecond), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	pb := &dto.Metric{}
	require.NoError(t, m.DBQueryDuration.Write(pb))
	assert.Equal(t, uint64(1), pb.GetHistogram().GetSampleCount())
	assert.Greater(t, pb.GetHistogram().GetSampleSum(), 0.0)
}

func TestGormLoggerTrace_NilMetrics(t *testing.T) {
	l := NewGormLogger(false, time.Second, nil)

	// 未启用指标时调用不应 panic
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, nil)
}
