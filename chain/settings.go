// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// updateSettings applies [f] to the stored settings on behalf of the
// deployer. Nobody else may change them.
func updateSettings(t *TransactionContext, f func(*Settings)) error {
	if t.Sender != t.Genesis.Deployer {
		return ErrNotDeployer
	}
	s, err := GetSettings(t.Database)
	if err != nil {
		return err
	}
	f(s)
	return PutSettings(t.Database, s)
}
