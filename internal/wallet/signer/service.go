package signer

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/wallet/account"
)

var ErrSigningDisabled = errors.New("signing is disabled")

type service struct {
	account       *account.Account
	enableSigning bool
}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(acc *account.Account, enableSigning bool) (Service, error) {
	if acc == nil {
		return nil, errors.New("account is required")
	}

	return &service{
		account:       acc,
		enableSigning: enableSigning,
	}, nil
}

// SignEVMTransaction signs an EVM transaction (EIP-1559)
func (s *service) SignEVMTransaction(ctx context.Context, req *SignEVMRequest) (*SignEVMResponse, error) {
	if !s.enableSigning {
		return nil, ErrSigningDisabled
	}

	privateKey, err := s.account.PrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get private key")
	}

	// Sign transaction
	return s.signEIP1559Transaction(ctx, req, privateKey)
}
