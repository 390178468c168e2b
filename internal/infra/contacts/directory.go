package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"talent-notify/internal/pkg/config"
	"talent-notify/internal/pkg/errs"
	"talent-notify/internal/usecase/commands"

	"github.com/google/uuid"
)

// HTTPDirectory resolves recipients against the platform's internal contact
// endpoint. Contact data is looked up per dispatch and never cached here;
// a stale address is worse than an extra round trip.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDirectory(cfg config.MailConfig) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: cfg.DirectoryURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type contactResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	UserID *string `json:"user_id,omitempty"`
}

func (d *HTTPDirectory) Resolve(ctx context.Context, kind commands.ContactKind, id string) (*commands.Contact, error) {
	url := fmt.Sprintf("%s/internal/contacts/%s/%s", d.baseURL, kind, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build contact lookup request")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "contact lookup request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("no %s contact with id %s", kind, id)),
			commands.ErrContactNotFound,
		)
	case resp.StatusCode != http.StatusOK:
		return nil, errs.New(fmt.Sprintf("contact directory returned status %d", resp.StatusCode))
	}

	var body contactResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode contact response")
	}
	if body.Email == "" {
		// A contact without an address cannot be delivered to; treat it the
		// same as a missing contact.
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("%s contact %s has no email", kind, id)),
			commands.ErrContactNotFound,
		)
	}

	contact := &commands.Contact{
		ID:    body.ID,
		Name:  body.Name,
		Email: body.Email,
	}
	if body.UserID != nil {
		if userID, perr := uuid.Parse(*body.UserID); perr == nil {
			contact.UserID = &userID
		}
	}

	return contact, nil
}
