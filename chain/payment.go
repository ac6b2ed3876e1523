// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"math"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

const MaxOutputs = 16

// Output is a value transfer carried by the enclosing transaction.
type Output struct {
	Address string `serialize:"true" json:"address"`
	Value   uint64 `serialize:"true" json:"value"`
}

// paid sums every output destined for [treasury], saturating at the largest
// representable amount.
func paid(outputs []*Output, treasury string) uint64 {
	total := uint64(0)
	for _, o := range outputs {
		if o == nil || o.Address != treasury {
			continue
		}
		sum, err := smath.Add64(total, o.Value)
		if err != nil {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

// verifyPayment checks that the invocation paid at least [required] to the
// configured treasury.
func verifyPayment(t *TransactionContext, required uint64) error {
	s, err := GetSettings(t.Database)
	if err != nil {
		return err
	}
	if total := paid(t.Outputs, s.TreasuryAddress); total < required {
		return fmt.Errorf("%w: paid %d, required %d", ErrUnderpaid, total, required)
	}
	return nil
}

// verifyDirectPayment additionally rejects payments made on the caller's
// behalf by an intermediary.
func verifyDirectPayment(t *TransactionContext, required uint64) error {
	if t.Sender != t.Origin {
		return ErrIntermediaryCaller
	}
	return verifyPayment(t, required)
}
