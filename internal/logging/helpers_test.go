package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogContextHelpersMutateSameStruct(t *testing.T) {
	ctx := context.Background()
	ctx = WithLogRequestID(ctx, "req")
	ctx = WithLogRequestPath(ctx, "/bag/status")
	ctx = WithLogRequestMethod(ctx, "GET")
	ctx = WithLogRequestStatus(ctx, 200)
	ctx = WithLogRequestDuration(ctx, "5ms")
	ctx = WithLogMode(ctx, "spawner")
	ctx = WithLogSource(ctx, "pcg")
	ctx = WithLogPass(ctx, 2)
	ctx = WithLogDraw(ctx, 7)
	ctx = WithLogBagSize(ctx, 3)
	ctx = WithLogItem(ctx, "Mia")

	value, ok := ctx.Value(key).(logCtx)
	require.True(t, ok)
	require.Equal(t, logCtx{
		RequestID:       "req",
		Status:          200,
		RequestDuration: "5ms",
		Method:          "GET",
		Path:            "/bag/status",
		Mode:            "spawner",
		Source:          "pcg",
		Pass:            2,
		Draw:            7,
		BagSize:         3,
		Item:            "Mia",
	}, value)
}

func TestWithLogHelpersDoNotLeakIntoParent(t *testing.T) {
	parent := WithLogPass(context.Background(), 1)
	child := WithLogPass(parent, 2)

	require.Equal(t, 1, parent.Value(key).(logCtx).Pass)
	require.Equal(t, 2, child.Value(key).(logCtx).Pass)
}
