package registration

import (
	"context"
	"fmt"
	"strings"

	"registration-manager/core/content"
	"registration-manager/core/locale"
	"registration-manager/core/mailer"
	"registration-manager/core/metrics"
	"registration-manager/feature/registration/models"

	"go.uber.org/zap"
)

// Notifier emails families their registration confirmation. Parents are
// grouped by their individual locale and each group receives one email
// rendered from that locale's template, so a mixed family gets one
// message per language rather than one compromise message.
type Notifier struct {
	mailer  mailer.Mailer
	store   *content.Store
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewNotifier(m mailer.Mailer, store *content.Store, reg *metrics.Registry, logger *zap.Logger) *Notifier {
	return &Notifier{mailer: m, store: store, metrics: reg, logger: logger}
}

// Notify sends the confirmation emails of one registration. The body
// template must consume every placeholder value; subject lines may use a
// subset.
func (n *Notifier) Notify(ctx context.Context, reg *models.Registration) error {
	values := map[string]string{
		"parent_name":     parentNames(reg),
		"payment_amount":  models.PaymentAmount(reg.AssociationMember),
		"registration_id": reg.ID.Pretty(),
	}

	for _, group := range groupParentsByLocale(reg.Parents) {
		tmpl, err := n.store.Resolve(group.locale)
		if err != nil {
			return fmt.Errorf("resolve %s template: %w", group.locale, err)
		}

		subject, err := content.Expand(tmpl.Subject, values, true)
		if err != nil {
			return fmt.Errorf("render %s subject: %w", group.locale, err)
		}
		body, err := content.Expand(tmpl.Body, values, false)
		if err != nil {
			return fmt.Errorf("render %s body: %w", group.locale, err)
		}

		msg := mailer.Message{
			To:          group.emails(),
			Subject:     subject,
			HTMLBody:    body,
			Attachments: tmpl.Attachments,
		}
		if err := n.mailer.Send(ctx, msg); err != nil {
			n.metrics.MailFailures.Inc()
			return fmt.Errorf("send %s confirmation: %w", group.locale, err)
		}
		n.metrics.MailSent.WithLabelValues(group.locale.String()).Inc()

		n.logger.Info("Sent confirmation email",
			zap.String("registration", reg.ID.Pretty()),
			zap.String("locale", group.locale.String()),
			zap.Strings("to", msg.To),
		)
	}

	return nil
}

// parentNames joins the full names of every parent, in form order. The
// confirmation addresses the whole family whichever parent reads it.
func parentNames(reg *models.Registration) string {
	names := make([]string, len(reg.Parents))
	for i, parent := range reg.Parents {
		names[i] = parent.FullName()
	}
	return strings.Join(names, " / ")
}

type localeGroup struct {
	locale  locale.Locale
	parents []models.Parent
}

func (g localeGroup) emails() []string {
	addrs := make([]string, len(g.parents))
	for i, parent := range g.parents {
		addrs[i] = parent.Email
	}
	return addrs
}

// groupParentsByLocale groups parents by their individual locale in
// first-appearance order.
func groupParentsByLocale(parents []models.Parent) []localeGroup {
	var groups []localeGroup
	index := make(map[locale.Locale]int, len(parents))

	for _, parent := range parents {
		if i, ok := index[parent.Locale]; ok {
			groups[i].parents = append(groups[i].parents, parent)
			continue
		}
		index[parent.Locale] = len(groups)
		groups = append(groups, localeGroup{locale: parent.Locale, parents: []models.Parent{parent}})
	}

	return groups
}
