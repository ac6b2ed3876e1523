// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import "strings"

const (
	MinVersionSize            = 5
	MaxVersionSize            = 32
	MaxCompatibilityRangeSize = 64
	MaxReasonSize             = 256

	minVersionDots     = 2
	prereleaseDelim    = '-'
	compatibilityChars = "0123456789. <>=^~|&x*-"
)

// CheckVersion returns an error if v is not a semantic version string of the
// form MAJOR.MINOR.PATCH[-PRERELEASE].
func CheckVersion(v string) error {
	if len(v) < MinVersionSize || len(v) > MaxVersionSize || !isDigit(v[0]) {
		return ErrInvalidVersion
	}

	core := v
	if idx := strings.IndexByte(v, prereleaseDelim); idx != -1 {
		core = v[:idx]
		if err := checkPrerelease(v[idx+1:]); err != nil {
			return err
		}
	}

	dots := 0
	for i := 0; i < len(core); i++ {
		c := core[i]
		switch {
		case isDigit(c):
		case c == '.':
			if i > 0 && core[i-1] == '.' {
				return ErrInvalidVersion
			}
			dots++
		default:
			return ErrInvalidVersion
		}
	}
	if dots < minVersionDots {
		return ErrInvalidVersion
	}
	return nil
}

func checkPrerelease(s string) error {
	if len(s) == 0 {
		return ErrInvalidVersion
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; !isAlnum(c) && c != '.' && c != '-' {
			return ErrInvalidVersion
		}
	}
	return nil
}

// CheckCompatibilityRange returns an error if r is not a version range
// expression such as ">=1.0.0 <2.0.0" or "^1.2".
func CheckCompatibilityRange(r string) error {
	if len(r) == 0 || len(r) > MaxCompatibilityRangeSize {
		return ErrInvalidCompatibilityRange
	}
	hasDigit := false
	for i := 0; i < len(r); i++ {
		c := r[i]
		if strings.IndexByte(compatibilityChars, c) == -1 {
			return ErrInvalidCompatibilityRange
		}
		if isDigit(c) {
			hasDigit = true
		}
	}
	if !hasDigit {
		return ErrInvalidCompatibilityRange
	}
	return nil
}

// CheckReason returns an error if a deprecation reason is too long.
func CheckReason(reason string) error {
	if len(reason) > MaxReasonSize {
		return ErrReasonTooLong
	}
	return nil
}
