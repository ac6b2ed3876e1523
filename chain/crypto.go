// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	rOffset      = 0
	sOffset      = 32
	vOffset      = 64
	legacySigAdj = 27
)

func Sign(dh []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	sig[vOffset] += legacySigAdj
	return sig, nil
}

// DeriveSender recovers the address that produced [sig] over [dh]. Only the
// canonical encoding is accepted: v in {27, 28} and a low s value.
func DeriveSender(dh []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	v := sig[vOffset]
	if v != legacySigAdj && v != legacySigAdj+1 {
		return common.Address{}, ErrNonCanonicalSignature
	}
	r := new(big.Int).SetBytes(sig[rOffset:sOffset])
	s := new(big.Int).SetBytes(sig[sOffset:vOffset])
	if !crypto.ValidateSignatureValues(v-legacySigAdj, r, s, true) {
		return common.Address{}, ErrNonCanonicalSignature
	}

	// Never modify the caller's signature
	sigcpy := make([]byte, crypto.SignatureLength)
	copy(sigcpy, sig)
	sigcpy[vOffset] -= legacySigAdj
	pk, err := crypto.SigToPub(dh, sigcpy)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pk), nil
}
