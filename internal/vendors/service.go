package vendors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/entity"
	"github.com/invoicerd/invoicerd/internal/repository"
)

// Service resolves the vendor behind an inbound message's sender address.
type Service struct {
	repo   repository.VendorRepository
	logger *slog.Logger
}

func NewService(repo repository.VendorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Get returns a vendor by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve finds the vendor registered for the sender address. Unknown
// senders get a vendor derived from the address's domain, so the first
// invoice from a new vendor lands under a usable name instead of failing.
func (s *Service) Resolve(ctx context.Context, senderEmail string) (*entity.Vendor, error) {
	email := normalizeEmail(senderEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: sender email %q", common.ErrInvalidInput, senderEmail)
	}

	v, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	name := NameFromEmail(email)
	v, err = s.repo.GetByName(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		v, err = s.repo.Create(ctx, name, nil)
	}
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddEmail(ctx, v.ID, email, false); err != nil {
		return nil, err
	}
	s.logger.Info("vendors.resolved_new", "email", email, "vendor", name)
	return v, nil
}

// NameFromEmail derives a vendor name from the address's domain:
// "billing@acme-corp.com.au" becomes "acme-corp".
func NameFromEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return email
	}
	domain := email[at+1:]
	if dot := strings.IndexByte(domain, '.'); dot > 0 {
		domain = domain[:dot]
	}
	return domain
}

// normalizeEmail strips an RFC 5322 display name ("Acme <billing@acme.com>")
// and lowercases the address.
func normalizeEmail(raw string) string {
	raw = strings.TrimSpace(raw)
	if open := strings.LastIndexByte(raw, '<'); open >= 0 {
		if close := strings.IndexByte(raw[open:], '>'); close > 0 {
			raw = raw[open+1 : open+close]
		}
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(raw, "@") {
		return ""
	}
	return raw
}
