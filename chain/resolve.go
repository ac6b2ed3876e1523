// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/registryvm/parser"
)

// Resolution is what a name currently resolves to.
type Resolution struct {
	Name            string         `json:"name"`
	Owner           common.Address `json:"owner"`
	ContenthashType uint8          `json:"contenthashType"`
	Contenthash     string         `json:"contenthash,omitempty"`
	TTL             uint64         `json:"ttl"`
}

// record is either a domain or a subdomain.
type record struct {
	label  string
	domain string

	d *DomainInfo
	s *SubdomainInfo
}

func lookupName(db database.KeyValueReader, name string) (*record, error) {
	label, domain, err := parser.ResolveName(name)
	if err != nil {
		return nil, err
	}
	r := &record{label: label, domain: domain}
	if len(label) == 0 {
		i, has, err := GetDomainInfo(db, domain)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, ErrDomainMissing
		}
		r.d = i
		return r, nil
	}
	i, has, err := GetSubdomainInfo(db, label, domain)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrSubdomainMissing
	}
	r.s = i
	return r, nil
}

func (r *record) name() string {
	if len(r.label) == 0 {
		return r.domain
	}
	return r.label + parser.DomainDelimiter + r.domain
}

func (r *record) owner() common.Address {
	if r.d != nil {
		return r.d.Owner
	}
	return r.s.Owner
}

func (r *record) contenthash() (uint8, string) {
	if r.d != nil {
		return r.d.ContenthashType, r.d.Contenthash
	}
	return r.s.ContenthashType, r.s.Contenthash
}

func (r *record) setContenthash(typ uint8, value string) {
	if r.d != nil {
		r.d.ContenthashType, r.d.Contenthash = typ, value
		return
	}
	r.s.ContenthashType, r.s.Contenthash = typ, value
}

func (r *record) ttl() uint64 {
	if r.d != nil {
		return r.d.TTL
	}
	return r.s.TTL
}

func (r *record) setTTL(ttl uint64) {
	if r.d != nil {
		r.d.TTL = ttl
		return
	}
	r.s.TTL = ttl
}

func (r *record) put(db database.Database) error {
	if r.d != nil {
		return PutDomainInfo(db, r.domain, r.d)
	}
	return PutSubdomainInfo(db, r.label, r.domain, r.s)
}

// Resolve looks up a domain ("name") or subdomain ("label.name").
func Resolve(db database.KeyValueReader, name string) (*Resolution, error) {
	r, err := lookupName(db, name)
	if err != nil {
		return nil, err
	}
	typ, value := r.contenthash()
	return &Resolution{
		Name:            r.name(),
		Owner:           r.owner(),
		ContenthashType: typ,
		Contenthash:     value,
		TTL:             r.ttl(),
	}, nil
}
