// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Magic is the network this transaction is bound to.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce distinguishes otherwise identical transactions from the same
	// sender so they do not collide on ID.
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) GetMagic() uint64 { return b.Magic }

func (b *BaseTx) SetMagic(m uint64) { b.Magic = m }

func (b *BaseTx) GetNonce() uint64 { return b.Nonce }

func (b *BaseTx) SetNonce(n uint64) { b.Nonce = n }

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Magic: b.Magic,
		Nonce: b.Nonce,
	}
}
