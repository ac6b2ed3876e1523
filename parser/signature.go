// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

// Signature sizes in bytes for each security level (ML-DSA-44, ML-DSA-65
// and ML-DSA-87 respectively).
const (
	SecurityLevel1 uint8 = 1
	SecurityLevel2 uint8 = 2
	SecurityLevel3 uint8 = 3

	Level1SignatureSize = 2420
	Level2SignatureSize = 3309
	Level3SignatureSize = 4627
)

// Plugin kinds.
const (
	PluginStandalone uint8 = 1
	PluginLibrary    uint8 = 2

	MinPluginType = PluginStandalone
	MaxPluginType = PluginLibrary
)

// SignatureSize returns the exact signature length expected for level.
func SignatureSize(level uint8) (int, error) {
	switch level {
	case SecurityLevel1:
		return Level1SignatureSize, nil
	case SecurityLevel2:
		return Level2SignatureSize, nil
	case SecurityLevel3:
		return Level3SignatureSize, nil
	default:
		return 0, ErrInvalidSecurityLevel
	}
}

// CheckSignature returns an error if sig does not have the size defined for
// level.
func CheckSignature(level uint8, sig []byte) error {
	size, err := SignatureSize(level)
	if err != nil {
		return err
	}
	if len(sig) != size {
		return ErrInvalidSignatureLength
	}
	return nil
}

// CheckChecksum rejects the all-zero digest.
func CheckChecksum(checksum [32]byte) error {
	if checksum == [32]byte{} {
		return ErrMissingChecksum
	}
	return nil
}

func CheckPluginType(typ uint8) error {
	if typ < MinPluginType || typ > MaxPluginType {
		return ErrInvalidPluginType
	}
	return nil
}
