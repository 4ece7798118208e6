package log_test

import (
	"testing"

	logmock "dirsync/generated/mocks"
	"dirsync/internal/log"

	"github.com/golang/mock/gomock"
)

func TestSinkRoutesByPrefix(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	loggerMock := logmock.NewMockLogger(mockCtrl)
	gomock.InOrder(
		loggerMock.EXPECT().Info("Copying: /src/a.txt -> /dst/a.txt"),
		loggerMock.EXPECT().Error("source directory /src not found"),
	)

	sink := log.NewSink(loggerMock)
	sink.Emit("Copying: /src/a.txt -> /dst/a.txt")
	sink.Emit("Error: source directory /src not found")
}
