// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tdata implements the subset of EIP-712 typed structured data
// hashing used for off-chain authorizations: flat messages over primitive
// fields under a {name, magic} domain.
package tdata

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	DomainName = "Registry"

	domainType = "EIP712Domain"
	wordSize   = 32
)

var (
	ErrUnknownType    = errors.New("unknown primary type")
	ErrExtraData      = errors.New("extra data provided in message")
	ErrDataMismatch   = errors.New("provided data does not match type")
	ErrUnsupportedTyp = errors.New("unsupported field type")
)

// Type is one field of a typed data struct.
type Type struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Types map[string][]Type

type TypedDataMessage = map[string]interface{}

type TypedDataDomain struct {
	Name  string `json:"name"`
	Magic uint64 `json:"magic"`
}

// Map renders the domain as a message. Integers are carried as decimal
// strings so they survive a JSON round trip unchanged.
func (d *TypedDataDomain) Map() TypedDataMessage {
	return TypedDataMessage{
		"name":  d.Name,
		"magic": strconv.FormatUint(d.Magic, 10),
	}
}

type TypedData struct {
	Types       Types            `json:"types"`
	PrimaryType string           `json:"primaryType"`
	Domain      TypedDataDomain  `json:"domain"`
	Message     TypedDataMessage `json:"message"`
}

var EIP712Domain = []Type{
	{Name: "name", Type: "string"},
	{Name: "magic", Type: "uint64"},
}

func CreateTypedData(magic uint64, primaryType string, fields []Type, msg TypedDataMessage) *TypedData {
	return &TypedData{
		Types: Types{
			primaryType: fields,
			domainType:  EIP712Domain,
		},
		PrimaryType: primaryType,
		Domain:      TypedDataDomain{Name: DomainName, Magic: magic},
		Message:     msg,
	}
}

// DigestHash returns keccak256("\x19\x01" || domainSeparator || hashStruct(message)).
func DigestHash(td *TypedData) ([]byte, error) {
	typedDataHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return nil, err
	}
	domainSeparator, err := td.HashStruct(domainType, td.Domain.Map())
	if err != nil {
		return nil, err
	}
	raw := make([]byte, 0, 2+2*wordSize)
	raw = append(raw, 0x19, 0x01)
	raw = append(raw, domainSeparator...)
	raw = append(raw, typedDataHash...)
	return crypto.Keccak256(raw), nil
}

func (td *TypedData) HashStruct(primaryType string, data TypedDataMessage) (hexutil.Bytes, error) {
	encoded, err := td.EncodeData(primaryType, data)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(encoded), nil
}

// EncodeType renders `name(type1 field1,type2 field2,...)`.
func (td *TypedData) EncodeType(primaryType string) []byte {
	var b bytes.Buffer
	b.WriteString(primaryType)
	b.WriteByte('(')
	for i, f := range td.Types[primaryType] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Type)
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteByte(')')
	return b.Bytes()
}

func (td *TypedData) TypeHash(primaryType string) []byte {
	return crypto.Keccak256(td.EncodeType(primaryType))
}

// EncodeData renders typeHash || enc(field1) || ... || enc(fieldN), each
// member one 32-byte word.
func (td *TypedData) EncodeData(primaryType string, data TypedDataMessage) ([]byte, error) {
	fields, ok := td.Types[primaryType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, primaryType)
	}
	if len(data) > len(fields) {
		return nil, fmt.Errorf("%w (%d < %d)", ErrExtraData, len(fields), len(data))
	}
	b := bytes.NewBuffer(make([]byte, 0, wordSize*(len(fields)+1)))
	b.Write(td.TypeHash(primaryType))
	for _, f := range fields {
		w, err := EncodePrimitiveValue(f.Type, data[f.Name])
		if err != nil {
			return nil, err
		}
		b.Write(w)
	}
	return b.Bytes(), nil
}

func EncodePrimitiveValue(encType string, encValue interface{}) ([]byte, error) {
	switch encType {
	case "address":
		switch v := encValue.(type) {
		case common.Address:
			return common.LeftPadBytes(v.Bytes(), wordSize), nil
		case string:
			if !common.IsHexAddress(v) {
				return nil, mismatch(encType, encValue)
			}
			return common.LeftPadBytes(common.HexToAddress(v).Bytes(), wordSize), nil
		}
		return nil, mismatch(encType, encValue)
	case "bool":
		v, ok := encValue.(bool)
		if !ok {
			return nil, mismatch(encType, encValue)
		}
		if v {
			return math.PaddedBigBytes(common.Big1, wordSize), nil
		}
		return math.PaddedBigBytes(common.Big0, wordSize), nil
	case "string":
		v, ok := encValue.(string)
		if !ok {
			return nil, mismatch(encType, encValue)
		}
		return crypto.Keccak256([]byte(v)), nil
	case "bytes":
		v, ok := parseBytes(encValue)
		if !ok {
			return nil, mismatch(encType, encValue)
		}
		return crypto.Keccak256(v), nil
	}
	if strings.HasPrefix(encType, "uint") {
		n, err := parseUint(encType, encValue)
		if err != nil {
			return nil, err
		}
		return math.U256Bytes(n), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedTyp, encType)
}

func parseBytes(v interface{}) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case hexutil.Bytes:
		return b, true
	case string:
		d, err := hexutil.Decode(b)
		if err != nil {
			return nil, false
		}
		return d, true
	default:
		return nil, false
	}
}

func parseUint(encType string, v interface{}) (*big.Int, error) {
	bits := 256
	if s := strings.TrimPrefix(encType, "uint"); len(s) > 0 {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 256 || n%8 != 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedTyp, encType)
		}
		bits = n
	}
	var b *big.Int
	switch n := v.(type) {
	case uint64:
		b = new(big.Int).SetUint64(n)
	case string:
		var h math.HexOrDecimal256
		if err := h.UnmarshalText([]byte(n)); err != nil {
			return nil, mismatch(encType, v)
		}
		b = (*big.Int)(&h)
	case float64:
		// JSON decodes bare numbers as float64
		if n < 0 || float64(uint64(n)) != n {
			return nil, mismatch(encType, v)
		}
		b = new(big.Int).SetUint64(uint64(n))
	default:
		return nil, mismatch(encType, v)
	}
	if b.Sign() < 0 || b.BitLen() > bits {
		return nil, mismatch(encType, v)
	}
	return b, nil
}

func mismatch(encType string, encValue interface{}) error {
	return fmt.Errorf("%w: '%v' is not %s", ErrDataMismatch, encValue, encType)
}
