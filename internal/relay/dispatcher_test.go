package relay_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tgrelay/bot/internal/models"
	"tgrelay/bot/internal/relay"
)

// MockCourier is a mock implementation of the relay.Courier interface.
type MockCourier struct {
	mock.Mock
}

func (m *MockCourier) SendText(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockCourier) Copy(dstChatID, srcChatID int64, messageID int) error {
	args := m.Called(dstChatID, srcChatID, messageID)
	return args.Error(0)
}

func (m *MockCourier) SendDocument(chatID int64, path, caption string) error {
	args := m.Called(chatID, path, caption)
	return args.Error(0)
}

// TestDispatchTextReport verifies that text messages are delivered as a
// report only, with no copy of the original.
func TestDispatchTextReport(t *testing.T) {
	courier := new(MockCourier)
	courier.On("SendText", int64(100), "report body").Return(nil)
	courier.On("SendText", int64(200), "report body").Return(nil)

	d := relay.NewDispatcher(courier, []int64{100, 200})
	rep := models.Report{Text: "report body", Category: models.CategoryText}

	outcomes := d.Dispatch(rep, models.MessageEvent{ChatID: -5, MessageID: 9})

	assert.Len(t, outcomes, 2)
	for _, out := range outcomes {
		assert.True(t, out.OK())
	}
	courier.AssertExpectations(t)
	courier.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything)
}

// TestDispatchMediaRelaysOriginal verifies the report-then-copy ordering for
// non-text messages.
func TestDispatchMediaRelaysOriginal(t *testing.T) {
	courier := new(MockCourier)
	courier.On("SendText", int64(100), mock.Anything).Return(nil)
	courier.On("Copy", int64(100), int64(-5), 9).Return(nil)

	d := relay.NewDispatcher(courier, []int64{100})
	rep := models.Report{Text: "report body", Category: models.CategoryPhoto}

	outcomes := d.Dispatch(rep, models.MessageEvent{ChatID: -5, MessageID: 9})

	assert.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK())
	courier.AssertExpectations(t)
}

// TestDispatchIsolatesTargetFailures verifies that a failing target never
// prevents delivery to the remaining ones.
func TestDispatchIsolatesTargetFailures(t *testing.T) {
	courier := new(MockCourier)
	courier.On("SendText", int64(1), mock.Anything).Return(nil)
	courier.On("SendText", int64(2), mock.Anything).Return(errors.New("chat not found"))
	courier.On("SendText", int64(3), mock.Anything).Return(nil)

	d := relay.NewDispatcher(courier, []int64{1, 2, 3})
	rep := models.Report{Text: "report body", Category: models.CategoryText}

	outcomes := d.Dispatch(rep, models.MessageEvent{})

	assert.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[1].OK())
	assert.EqualError(t, outcomes[1].ReportErr, "chat not found")
	assert.True(t, outcomes[2].OK())
	courier.AssertExpectations(t)
}

// TestDispatchCopyFailureIsRecorded verifies a failed copy is surfaced in the
// outcome while the report send still counts.
func TestDispatchCopyFailureIsRecorded(t *testing.T) {
	courier := new(MockCourier)
	courier.On("SendText", int64(1), mock.Anything).Return(nil)
	courier.On("Copy", int64(1), mock.Anything, mock.Anything).Return(errors.New("file too big"))

	d := relay.NewDispatcher(courier, []int64{1})
	rep := models.Report{Text: "report body", Category: models.CategoryVideo}

	outcomes := d.Dispatch(rep, models.MessageEvent{ChatID: -5, MessageID: 9})

	assert.NoError(t, outcomes[0].ReportErr)
	assert.EqualError(t, outcomes[0].RelayErr, "file too big")
	assert.False(t, outcomes[0].OK())
}
