package registration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"registration-manager/core/content"
	"registration-manager/core/locale"
	"registration-manager/core/mailer"
	mailermocks "registration-manager/core/mailer/mocks"
	"registration-manager/core/metrics"
	"registration-manager/feature/registration"
	"registration-manager/feature/registration/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTemplate(t *testing.T, root, tag, subject, body string) {
	t.Helper()

	dir := filepath.Join(root, tag)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subject.txt"), []byte(subject), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "body.html"), []byte(body), 0o644))
}

func templateStore(t *testing.T, write func(root string)) *content.Store {
	t.Helper()

	root := t.TempDir()
	write(root)
	store, err := content.NewStore(content.Config{Dir: root, DefaultLocale: "fra"})
	require.NoError(t, err)
	return store
}

func familyRegistration(t *testing.T, parents ...models.Parent) *models.Registration {
	t.Helper()

	child, err := models.NewChild("doe", "jane", "09/01/2012", "CE1", locale.French)
	require.NoError(t, err)

	reg, err := models.New(time.Date(2020, 7, 1, 10, 0, 0, 0, time.UTC), []models.Child{child}, parents, true, locale.French)
	require.NoError(t, err)
	return reg
}

func TestNotify(t *testing.T) {
	john := models.Parent{
		Name:    models.NewName("doe", "john", locale.French),
		Email:   "john@x.com",
		Phone:   "+84.0123456789",
		Address: "7 rue des Lilas, Hanoi",
	}
	hieu := models.Parent{
		Name:      models.NewName("trần", "văn hiếu", locale.Vietnamese),
		Email:     "hieu@x.com",
		Phone:     "+84.0987654321",
		Secondary: true,
	}

	t.Run("SingleLocaleFamily", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra",
				"Inscription ::registration_id::",
				"<p>Bonjour ::parent_name::, montant ::payment_amount:: VND, dossier ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return(nil).Once()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john))
		require.NoError(t, err)

		m.AssertExpectations(t)
		msg := m.Calls[0].Arguments.Get(1).(mailer.Message)
		assert.Equal(t, []string{"john@x.com"}, msg.To)
		assert.Equal(t, "Inscription 594-427-901", msg.Subject)
		assert.Equal(t, "<p>Bonjour John DOE, montant 100,000 VND, dossier 594-427-901</p>", msg.HTMLBody)
		assert.Empty(t, msg.Attachments)
	})

	t.Run("MixedLocaleFamilyGetsOneEmailPerLocale", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Inscription", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
			writeTemplate(t, root, "vie", "Đăng ký", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		var sent []mailer.Message
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).
			Run(func(args mock.Arguments) { sent = append(sent, args.Get(1).(mailer.Message)) }).
			Return(nil).Twice()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john, hieu))
		require.NoError(t, err)

		require.Len(t, sent, 2)
		assert.Equal(t, []string{"john@x.com"}, sent[0].To)
		assert.Equal(t, "Inscription", sent[0].Subject)
		assert.Equal(t, []string{"hieu@x.com"}, sent[1].To)
		assert.Equal(t, "Đăng ký", sent[1].Subject)

		// Both messages address the whole family.
		for _, msg := range sent {
			assert.Contains(t, msg.HTMLBody, "John DOE / TRẦN Văn Hiếu")
		}
	})

	t.Run("SameLocaleParentsShareOneEmail", func(t *testing.T) {
		marie := models.Parent{
			Name:      models.NewName("doe", "marie", locale.French),
			Email:     "marie@x.com",
			Secondary: true,
		}
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Inscription", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return(nil).Once()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john, marie))
		require.NoError(t, err)

		m.AssertExpectations(t)
		msg := m.Calls[0].Arguments.Get(1).(mailer.Message)
		assert.Equal(t, []string{"john@x.com", "marie@x.com"}, msg.To)
	})

	t.Run("MissingLocaleFallsBackToDefaultTemplate", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Inscription", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return(nil).Once()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, hieu))
		require.NoError(t, err)

		msg := m.Calls[0].Arguments.Get(1).(mailer.Message)
		assert.Equal(t, "Inscription", msg.Subject)
	})

	t.Run("BodyMustConsumeEveryValue", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Inscription", "<p>::parent_name::</p>")
		})

		m := &mailermocks.Mailer{}
		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john))

		var contract *content.ContractError
		require.ErrorAs(t, err, &contract)
		m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("SubjectMayUseASubsetOfValues", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Bienvenue", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return(nil).Once()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john))
		require.NoError(t, err)
	})

	t.Run("SendFailure", func(t *testing.T) {
		store := templateStore(t, func(root string) {
			writeTemplate(t, root, "fra", "Inscription", "<p>::parent_name:: ::payment_amount:: ::registration_id::</p>")
		})

		m := &mailermocks.Mailer{}
		m.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return(errors.New("smtp: connection refused")).Once()

		notifier := registration.NewNotifier(m, store, metrics.NewRegistry(), zap.NewNop())
		err := notifier.Notify(context.Background(), familyRegistration(t, john))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "send fra confirmation")
	})
}
