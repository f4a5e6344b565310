package worker_test

import (
	"context"
	"customers/internal/customers"
	"customers/internal/worker"
	"customers/pkg/domain"
	mockemailgateway "customers/pkg/emailgateway/mock"
	"customers/pkg/logger"
	"customers/pkg/result"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args customers.PromotionNotificationArgs) *river.Job[customers.PromotionNotificationArgs] {
	return &river.Job[customers.PromotionNotificationArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func TestPromotionNotificationWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mockemailgateway.NewMockGateway(ctrl)
	w := worker.NewPromotionNotificationWorker(gateway, time.Second)

	gateway.EXPECT().
		SendPromotionNotification(gomock.Any(), domain.MustEmail("jane@example.com"), domain.CustomerStatusGold).
		Return(result.Ok())

	err := w.Work(context.Background(), makeJob(1, customers.PromotionNotificationArgs{
		CustomerID: 4,
		Email:      "jane@example.com",
		Status:     domain.CustomerStatusGold,
	}))
	require.NoError(t, err)
}

func TestPromotionNotificationWorker_Work_FailedSendCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mockemailgateway.NewMockGateway(ctrl)
	w := worker.NewPromotionNotificationWorker(gateway, time.Second)

	gateway.EXPECT().
		SendPromotionNotification(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(result.Fail("relay down"))

	err := w.Work(context.Background(), makeJob(2, customers.PromotionNotificationArgs{
		CustomerID: 4,
		Email:      "jane@example.com",
		Status:     domain.CustomerStatusPreferred,
	}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.ErrorContains(t, err, "relay down")
}

func TestPromotionNotificationWorker_Work_MalformedJobCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mockemailgateway.NewMockGateway(ctrl)
	gateway.EXPECT().SendPromotionNotification(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	w := worker.NewPromotionNotificationWorker(gateway, time.Second)

	for _, args := range []customers.PromotionNotificationArgs{
		{CustomerID: 4, Email: "not-an-email", Status: domain.CustomerStatusGold},
		{CustomerID: 4, Email: "jane@example.com", Status: "PLATINUM"},
	} {
		err := w.Work(context.Background(), makeJob(3, args))
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	}
}

func TestPromotionNotificationWorker_Timeout(t *testing.T) {
	w := worker.NewPromotionNotificationWorker(nil, 5*time.Second)
	require.Equal(t, 5*time.Second, w.Timeout(makeJob(1, customers.PromotionNotificationArgs{})))
}
