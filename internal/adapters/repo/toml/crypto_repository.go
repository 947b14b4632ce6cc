package toml

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	cryptoPathKey  = "state.crypto_path"
	cryptoFileName = "crypto.toml"
)

// CryptoSessionRepository keeps at most one session per invoice.
type CryptoSessionRepository struct {
	file stateFile
}

var _ ports.CryptoSessionRepository = (*CryptoSessionRepository)(nil)

func NewCryptoSessionRepository(cfg *viper.Viper) (*CryptoSessionRepository, error) {
	file, err := openStateFile(cfg, cryptoPathKey, cryptoFileName, "crypto")
	if err != nil {
		return nil, err
	}

	return &CryptoSessionRepository{file: file}, nil
}

func (r *CryptoSessionRepository) GetByInvoice(ctx context.Context, invoiceUUID string) (domain.CryptoSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.CryptoSession{}, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	doc, err := r.readSchema()
	if err != nil {
		return domain.CryptoSession{}, err
	}

	for _, entry := range doc.Sessions {
		if entry.InvoiceUUID == invoiceUUID {
			session, err := fromCryptoSessionSchema(entry)
			if err != nil {
				return domain.CryptoSession{}, fmt.Errorf("decode crypto session %q: %w", invoiceUUID, err)
			}
			return session, nil
		}
	}

	return domain.CryptoSession{}, domain.ErrCryptoSessionNotFound
}

// Save replaces the session stored for the same invoice and drops other
// sessions whose payment window closed before session.UpdatedAt.
func (r *CryptoSessionRepository) Save(ctx context.Context, session domain.CryptoSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	doc, err := r.readSchema()
	if err != nil {
		return err
	}

	now := session.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}

	kept := make([]cryptoSessionSchema, 0, len(doc.Sessions)+1)
	for _, entry := range doc.Sessions {
		if entry.InvoiceUUID == session.InvoiceUUID || staleSession(entry, now) {
			continue
		}
		kept = append(kept, entry)
	}
	doc.Sessions = append(kept, toCryptoSessionSchema(session))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.file.write(doc)
}

func (r *CryptoSessionRepository) Delete(ctx context.Context, invoiceUUID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	doc, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := doc.Sessions[:0]
	for _, entry := range doc.Sessions {
		if entry.InvoiceUUID != invoiceUUID {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(doc.Sessions) {
		return nil
	}
	doc.Sessions = kept

	return r.file.write(doc)
}

// staleSession keeps entries that fail to decode so a bad file is reported
// by GetByInvoice instead of being rewritten away.
func staleSession(entry cryptoSessionSchema, now time.Time) bool {
	session, err := fromCryptoSessionSchema(entry)
	if err != nil {
		return false
	}
	return session.Expired(now)
}

func (r *CryptoSessionRepository) readSchema() (cryptoFileSchema, error) {
	var doc cryptoFileSchema
	if err := r.file.read(&doc); err != nil {
		return cryptoFileSchema{}, err
	}
	if err := validateVersion("crypto", doc.Version, cryptoSchemaVersion); err != nil {
		return cryptoFileSchema{}, err
	}
	if doc.Version == 0 {
		doc.Version = cryptoSchemaVersion
	}
	return doc, nil
}

func toCryptoSessionSchema(session domain.CryptoSession) cryptoSessionSchema {
	entry := cryptoSessionSchema{
		InvoiceUUID: session.InvoiceUUID,
		Selected:    string(session.Selected),
		ExpiresAt:   formatTime(session.Payment.ExpiresAt),
		FetchedAt:   formatTime(session.FetchedAt),
		UpdatedAt:   formatTime(session.UpdatedAt),
		Methods:     make([]cryptoMethodSchema, 0, len(session.Payment.Methods)),
	}
	for _, method := range session.Payment.Methods {
		entry.Methods = append(entry.Methods, cryptoMethodSchema{
			Currency:  string(method.Currency),
			Address:   method.Address,
			Amount:    method.Amount.String(),
			ExpiresAt: formatTime(method.ExpiresAt),
		})
	}
	return entry
}

func fromCryptoSessionSchema(entry cryptoSessionSchema) (domain.CryptoSession, error) {
	expiresAt, err := parseTime(entry.ExpiresAt, "expires_at")
	if err != nil {
		return domain.CryptoSession{}, err
	}
	fetchedAt, err := parseTime(entry.FetchedAt, "fetched_at")
	if err != nil {
		return domain.CryptoSession{}, err
	}
	updatedAt, err := parseTime(entry.UpdatedAt, "updated_at")
	if err != nil {
		return domain.CryptoSession{}, err
	}

	session := domain.CryptoSession{
		InvoiceUUID: entry.InvoiceUUID,
		Selected:    domain.Currency(entry.Selected),
		FetchedAt:   fetchedAt,
		UpdatedAt:   updatedAt,
		Payment: domain.CryptoPayment{
			InvoiceUUID: entry.InvoiceUUID,
			ExpiresAt:   expiresAt,
		},
	}

	for _, methodEntry := range entry.Methods {
		amount, err := parseDecimal(methodEntry.Amount, "amount")
		if err != nil {
			return domain.CryptoSession{}, err
		}
		methodExpiresAt, err := parseTime(methodEntry.ExpiresAt, "method expires_at")
		if err != nil {
			return domain.CryptoSession{}, err
		}
		session.Payment.Methods = append(session.Payment.Methods, domain.CryptoPaymentMethod{
			Currency:  domain.Currency(methodEntry.Currency),
			Address:   methodEntry.Address,
			Amount:    amount,
			ExpiresAt: methodExpiresAt,
		})
	}

	return session, nil
}
