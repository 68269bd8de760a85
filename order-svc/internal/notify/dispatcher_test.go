package notify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/mocks"
	"feastly/order-svc/internal/notify"
)

func TestDispatcher_PayloadURL(t *testing.T) {
	d := notify.NewDispatcher("https://feastly.app/", t.TempDir(), nil, nil, logger.Discard())

	tests := []struct {
		name    string
		kind    notify.Kind
		id      string
		want    string
		wantErr bool
	}{
		{name: "order", kind: notify.KindOrder, id: "o-1", want: "https://feastly.app/orders/o-1"},
		{name: "reservation", kind: notify.KindReservation, id: "r-1", want: "https://feastly.app/reservations/r-1"},
		{name: "empty id", kind: notify.KindOrder, id: "", wantErr: true},
		{name: "unknown kind", kind: notify.Kind("invoice"), id: "x", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := d.PayloadURL(testCase.kind, testCase.id)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestDispatcher_NotifyDeliversAndCleansUp(t *testing.T) {
	tempDir := t.TempDir()
	qr := mocks.NewQREncoder(t)
	mailer := mocks.NewMailer(t)
	d := notify.NewDispatcher("https://feastly.app", tempDir, qr, mailer, logger.Discard())

	qr.On("Encode", "https://feastly.app/orders/o-42").Return([]byte("png-bytes"), nil).Once()

	var stagedPath string
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(m notify.Mail) bool {
		return m.To == "ada@example.com" && m.Subject == "Order Confirmation"
	})).Run(func(args mock.Arguments) {
		m := args.Get(1).(notify.Mail)
		stagedPath = m.InlineImagePath
		data, err := os.ReadFile(m.InlineImagePath)
		assert.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
		assert.Contains(t, filepath.Base(m.InlineImagePath), "qr_o-42_")
	}).Return(nil).Once()

	err := d.Notify(context.Background(), notify.Notification{
		To:         "ada@example.com",
		Subject:    "Order Confirmation",
		HTML:       "<p>hi</p>",
		ArtifactID: "o-42",
		Kind:       notify.KindOrder,
	})
	require.NoError(t, err)
	d.Wait()

	require.NotEmpty(t, stagedPath)
	_, statErr := os.Stat(stagedPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDispatcher_MailFailureIsSwallowed(t *testing.T) {
	tempDir := t.TempDir()
	qr := mocks.NewQREncoder(t)
	mailer := mocks.NewMailer(t)
	d := notify.NewDispatcher("https://feastly.app", tempDir, qr, mailer, logger.Discard())

	qr.On("Encode", mock.Anything).Return([]byte("png"), nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp unavailable")).Once()

	err := d.Notify(context.Background(), notify.Notification{
		To: "ada@example.com", Subject: "s", HTML: "h", ArtifactID: "r-1", Kind: notify.KindReservation,
	})
	require.NoError(t, err)
	d.Wait()

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDispatcher_QRFailureSkipsMail(t *testing.T) {
	qr := mocks.NewQREncoder(t)
	mailer := mocks.NewMailer(t)
	d := notify.NewDispatcher("https://feastly.app", t.TempDir(), qr, mailer, logger.Discard())

	qr.On("Encode", mock.Anything).Return(nil, errors.New("too long")).Once()

	err := d.Notify(context.Background(), notify.Notification{
		To: "ada@example.com", ArtifactID: "o-1", Kind: notify.KindOrder,
	})
	require.NoError(t, err)
	d.Wait()

	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyValidation(t *testing.T) {
	d := notify.NewDispatcher("https://feastly.app", t.TempDir(), nil, nil, logger.Discard())

	tests := []struct {
		name string
		n    notify.Notification
	}{
		{name: "missing artifact id", n: notify.Notification{To: "a@b.c", Kind: notify.KindOrder}},
		{name: "unknown kind", n: notify.Notification{To: "a@b.c", ArtifactID: "x", Kind: "menu"}},
		{name: "missing recipient", n: notify.Notification{ArtifactID: "x", Kind: notify.KindOrder}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := d.Notify(context.Background(), testCase.n)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDispatcher_ConcurrentSameID(t *testing.T) {
	tempDir := t.TempDir()
	qr := mocks.NewQREncoder(t)
	mailer := mocks.NewMailer(t)
	d := notify.NewDispatcher("https://feastly.app", tempDir, qr, mailer, logger.Discard())

	var mu sync.Mutex
	paths := map[string]bool{}
	qr.On("Encode", mock.Anything).Return([]byte("png"), nil)
	mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		defer mu.Unlock()
		paths[args.Get(1).(notify.Mail).InlineImagePath] = true
	}).Return(nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Notify(context.Background(), notify.Notification{
			To: "ada@example.com", ArtifactID: "o-1", Kind: notify.KindOrder,
		}))
	}
	d.Wait()

	assert.Len(t, paths, 5)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := notify.DefaultQRGenerator{}
	png, err := gen.Encode("https://feastly.app/orders/123")

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
