package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lostfound-backend/internal/mail"
	"lostfound-backend/internal/repository"
	"lostfound-backend/models"
)

// Notifier emails the owners of active lost items whose category matches a
// newly reported found item. It holds no state across requests.
type Notifier struct {
	store    repository.ItemStore
	accounts repository.AccountDirectory
	sender   mail.Sender
	from     string
	log      zerolog.Logger
}

// MatchRequest references the found item either inline or by id. An inline
// item wins when both are set.
type MatchRequest struct {
	Item   *models.FoundItem
	ItemID string
}

// NewNotifier creates a match notifier. A nil sender means email delivery is
// not configured; a nil store means the item store is not configured.
func NewNotifier(store repository.ItemStore, accounts repository.AccountDirectory, sender mail.Sender, from string, log zerolog.Logger) *Notifier {
	return &Notifier{
		store:    store,
		accounts: accounts,
		sender:   sender,
		from:     from,
		log:      log.With().Str("component", "notifier").Logger(),
	}
}

// Notify runs the full match-notification pipeline and returns a summary.
// Per-recipient delivery failures are recorded in the summary, never returned
// as an error.
func (n *Notifier) Notify(ctx context.Context, req MatchRequest) (*models.MatchSummary, error) {
	if n.store == nil {
		return nil, &models.ConfigurationError{Msg: "item store is not configured"}
	}

	item, err := n.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if item.Category == "" {
		return nil, &models.ValidationError{Msg: "category is required"}
	}
	if item.ReporterID == "" {
		return nil, &models.ValidationError{Msg: "user_id is required"}
	}

	candidates, err := n.store.ActiveLostByCategory(ctx, item.Category, item.ReporterID)
	if err != nil {
		return nil, &models.UpstreamError{Op: "querying lost items", Err: err}
	}

	log := n.log.With().
		Str("run_id", uuid.New().String()).
		Str("category", item.Category).
		Logger()

	recipients := n.resolveRecipients(ctx, candidates, log)
	summary := &models.MatchSummary{
		Category:   item.Category,
		Recipients: recipients,
		Sent:       []string{},
		Failures:   []models.DeliveryFailure{},
		Total:      len(recipients),
	}

	if len(recipients) == 0 {
		log.Info().Int("candidates", len(candidates)).Msg("no recipients resolved, nothing to send")
		return summary, nil
	}

	if n.sender == nil {
		summary.Message = "email delivery is not configured; no emails were sent"
		log.Warn().Int("recipients", len(recipients)).Msg("email provider not configured, skipping dispatch")
		return summary, nil
	}

	content := RenderNotification(item)
	n.dispatch(ctx, recipients, content, summary, log)

	log.Info().
		Int("recipients", len(recipients)).
		Int("sent", len(summary.Sent)).
		Int("failed", len(summary.Failures)).
		Msg("match notification finished")

	return summary, nil
}

// resolveItem normalizes the two request shapes into one found item.
func (n *Notifier) resolveItem(ctx context.Context, req MatchRequest) (*models.FoundItem, error) {
	if req.Item != nil {
		return req.Item, nil
	}
	if req.ItemID == "" {
		return nil, &models.ValidationError{Msg: "item or item_id is required"}
	}

	item, err := n.store.FoundItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return nil, err
		}
		return nil, &models.UpstreamError{Op: "getting found item", Err: err}
	}
	return item, nil
}

// resolveRecipients turns candidates into a deduplicated recipient list. A
// contact string shaped like an email is used directly; otherwise the owner's
// account email is looked up. Lookup failures skip the candidate only.
func (n *Notifier) resolveRecipients(ctx context.Context, candidates []models.LostItem, log zerolog.Logger) []string {
	seen := make(map[string]struct{}, len(candidates))
	recipients := make([]string, 0, len(candidates))
	add := func(email string) {
		if _, ok := seen[email]; ok {
			return
		}
		seen[email] = struct{}{}
		recipients = append(recipients, email)
	}

	for _, c := range candidates {
		if IsEmailAddress(c.ContactInfo) {
			add(c.ContactInfo)
			continue
		}

		email, err := n.accounts.EmailByUserID(ctx, c.OwnerID)
		if err != nil {
			log.Warn().Err(err).Str("owner_id", c.OwnerID).Msg("account email lookup failed, skipping candidate")
			continue
		}
		if email != "" {
			add(email)
		}
	}

	return recipients
}

// dispatch sends one email per recipient. Sends run concurrently and
// independently; one failure never blocks another recipient.
func (n *Notifier) dispatch(ctx context.Context, recipients []string, content NotificationContent, summary *models.MatchSummary, log zerolog.Logger) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, to := range recipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()

			err := n.sender.Send(ctx, mail.Message{
				From:    n.from,
				To:      to,
				Subject: content.Subject,
				HTML:    content.HTML,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failures = append(summary.Failures, models.DeliveryFailure{
					Recipient: to,
					Error:     err.Error(),
				})
				log.Error().Err(err).Str("recipient", to).Msg("email dispatch failed")
				return
			}
			summary.Sent = append(summary.Sent, to)
		}(to)
	}

	wg.Wait()
}
