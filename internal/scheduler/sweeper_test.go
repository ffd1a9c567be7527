package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/pushgate/push-dispatcher/internal/mocks/scheduler"
)

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMocknotificationService(ctrl)
	service.EXPECT().
		SweepDue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil).
		MinTimes(1)

	sweeper := NewSweeper(service, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sweeper.Run(ctx, retry.Strategy{})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
