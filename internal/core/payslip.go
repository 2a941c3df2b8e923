package core

import (
	"context"
	"errors"
	"flowledger/internal/repository"
	"flowledger/internal/search"
	tokenIssuer "flowledger/pkg/jwt"
	"fmt"
)

// IssuePayslip signs a share token for the reference. Anyone holding the token can read
// the payslip until it expires.
func (l *Ledger) IssuePayslip(ctx context.Context, ref Reference) (string, error) {
	ref, err := NewReference(string(ref.Kind), ref.ID)
	if err != nil {
		return "", err
	}

	if ref.Kind == ReferenceTxHash {
		if _, err := l.repo.GetTransferByHash(ctx, ref.ID); err != nil {
			return "", notFound(err)
		}
	}

	signed, err := l.payslips.Issue(tokenIssuer.Grant{
		Kind:    string(ref.Kind),
		Subject: ref.ID,
		TTL:     l.config.PayslipTTL,
	})
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	l.logs.Infow("payslip issued", "kind", ref.Kind, "id", ref.ID)
	return signed, nil
}

// ResolvePayslip validates a share token and returns what it points at.
func (l *Ledger) ResolvePayslip(ctx context.Context, token string) (Payslip, error) {
	claims, err := l.payslips.Parse(token)
	if err != nil {
		return Payslip{}, fmt.Errorf("validate payslip token: %w", err)
	}

	ref, err := NewReference(claims.Kind, claims.Subject)
	if err != nil {
		return Payslip{}, fmt.Errorf("payslip token: %w", err)
	}

	payslip := Payslip{Reference: ref, ExpiresAt: claims.ExpiresAt}

	if ref.Kind == ReferenceTxHash {
		transfer, err := l.repo.GetTransferByHash(ctx, ref.ID)
		if err != nil {
			return Payslip{}, notFound(err)
		}
		payslip.Transfer = &transfer
		if payslip.Amount, err = search.FormatUnits(transfer.Value, transfer.TokenDecimals); err != nil {
			return Payslip{}, err
		}
	}

	annotation, err := l.repo.GetAnnotation(ctx, string(ref.Kind), ref.ID)
	switch {
	case err == nil:
		payslip.Annotation = &annotation
	case !errors.Is(err, repository.ErrAnnotationNotFound):
		return Payslip{}, fmt.Errorf("get annotation: %w", err)
	}

	return payslip, nil
}
