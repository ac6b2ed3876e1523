// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"

	"github.com/ava-labs/registryvm/parser"
)

// Error kinds. Every execution error wraps exactly one of these.
var (
	ErrInvalidFormat       = parser.ErrInvalidFormat
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrImmutable           = errors.New("immutable")
	ErrInvalidState        = errors.New("invalid state")
)

var (
	// Tx Correctness
	ErrInvalidMagic     = fmt.Errorf("%w: invalid magic", ErrInvalidFormat)
	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrInvalidState)
	ErrInvalidType      = fmt.Errorf("%w: invalid transaction type", ErrInvalidFormat)
	ErrDuplicateTx      = fmt.Errorf("%w: duplicate transaction", ErrAlreadyExists)
	ErrInvalidOwner     = fmt.Errorf("%w: owner cannot be the zero address", ErrInvalidFormat)
	ErrTooManyOutputs   = fmt.Errorf("%w: too many outputs", ErrInvalidFormat)

	ErrNonCanonicalSignature = fmt.Errorf("%w: non-canonical encoding", ErrInvalidSignature)

	// Execution Correctness
	ErrScopeExists        = fmt.Errorf("%w: scope already registered", ErrAlreadyExists)
	ErrScopeMissing       = fmt.Errorf("%w: scope missing", ErrNotFound)
	ErrPackageExists      = fmt.Errorf("%w: package already registered", ErrAlreadyExists)
	ErrPackageMissing     = fmt.Errorf("%w: package missing", ErrNotFound)
	ErrVersionExists      = fmt.Errorf("%w: version already published", ErrAlreadyExists)
	ErrVersionMissing     = fmt.Errorf("%w: version missing", ErrNotFound)
	ErrDomainExists       = fmt.Errorf("%w: domain already registered", ErrAlreadyExists)
	ErrDomainMissing      = fmt.Errorf("%w: domain missing", ErrNotFound)
	ErrSubdomainExists    = fmt.Errorf("%w: subdomain already exists", ErrAlreadyExists)
	ErrSubdomainMissing   = fmt.Errorf("%w: subdomain missing", ErrNotFound)
	ErrNoPendingTransfer  = fmt.Errorf("%w: no pending transfer", ErrInvalidState)
	ErrReservedName       = fmt.Errorf("%w: name is reserved", ErrUnauthorized)
	ErrNotOwner           = fmt.Errorf("%w: sender is not the owner", ErrUnauthorized)
	ErrNotPendingOwner    = fmt.Errorf("%w: sender is not the pending owner", ErrUnauthorized)
	ErrNotDeployer        = fmt.Errorf("%w: sender is not the deployer", ErrUnauthorized)
	ErrNotScopeOwner      = fmt.Errorf("%w: sender does not own the parent scope", ErrUnauthorized)
	ErrNotParentOwner     = fmt.Errorf("%w: sender does not own the parent domain", ErrUnauthorized)
	ErrIntermediaryCaller = fmt.Errorf("%w: sender must be the transaction origin", ErrUnauthorized)
	ErrNonActionable      = fmt.Errorf("%w: transfer target is the current owner", ErrInvalidState)
	ErrAlreadyDeprecated  = fmt.Errorf("%w: version already deprecated", ErrInvalidState)
	ErrNotDeprecated      = fmt.Errorf("%w: version not deprecated", ErrInvalidState)
	ErrDeadlineExpired    = fmt.Errorf("%w: authorization deadline expired", ErrInvalidState)
	ErrSignerMismatch     = fmt.Errorf("%w: signer is not the owner", ErrInvalidState)
	ErrAuthorizationUsed  = fmt.Errorf("%w: authorization already used", ErrInvalidState)
	ErrWindowClosed       = fmt.Errorf("%w: mutability window has closed", ErrImmutable)
	ErrUnderpaid          = fmt.Errorf("%w: treasury outputs below price", ErrInsufficientPayment)
	ErrContenthashMissing = fmt.Errorf("%w: contenthash missing", ErrNotFound)
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidFormat, "InvalidFormat"},
	{ErrNotFound, "NotFound"},
	{ErrAlreadyExists, "AlreadyExists"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrInsufficientPayment, "InsufficientPayment"},
	{ErrImmutable, "Immutable"},
	{ErrInvalidState, "InvalidState"},
}

// Kind returns the taxonomy name of err, or "Internal" for errors raised by
// the storage layer.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
