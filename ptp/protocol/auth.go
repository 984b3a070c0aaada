/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package protocol

// Support for the AUTHENTICATION TLV (Annex P of IEEE 1588-2019): a trailing TLV carrying
// an integrity-check value computed by a security association over the rest of the frame.

import (
	"encoding/binary"
	"fmt"
)

const authHeadSize = 6 // spp + flags + keyID

// AuthKeyStore looks up the algorithm and key bytes for a given security parameter pointer
// and key identifier, and computes an ICV over a buffer. An implementation is expected to
// wrap a local SA (security association) configuration file; none is provided here, matching
// the rest of this package's stance that key material and transport stay the caller's concern.
type AuthKeyStore interface {
	Lookup(spp uint8, keyID uint32) (icvLen int, ok bool)
	ICV(spp uint8, keyID uint32, buf []byte) ([]byte, error)
}

// AuthenticationTLV Annex P.2 AUTHENTICATION TLV format
type AuthenticationTLV struct {
	TLVHead
	SPP   uint8
	Flags uint8
	KeyID uint32
	ICV   []byte
}

// MarshalBinaryTo marshals bytes to AuthenticationTLV
func (t *AuthenticationTLV) MarshalBinaryTo(b []byte) (int, error) {
	tlvHeadMarshalBinaryTo(&t.TLVHead, b)
	pos := tlvHeadSize
	b[pos] = t.SPP
	b[pos+1] = t.Flags
	binary.BigEndian.PutUint32(b[pos+2:], t.KeyID)
	pos += authHeadSize
	copy(b[pos:], t.ICV)
	return pos + len(t.ICV), nil
}

// MarshalBinary converts the TLV to []bytes
func (t *AuthenticationTLV) MarshalBinary() ([]byte, error) {
	b := make([]byte, tlvHeadSize+authHeadSize+len(t.ICV))
	n, err := t.MarshalBinaryTo(b)
	return b[:n], err
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *AuthenticationTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalTLVHeader(&t.TLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), authHeadSize, false); err != nil {
		return err
	}
	pos := tlvHeadSize
	t.SPP = b[pos]
	t.Flags = b[pos+1]
	t.KeyID = binary.BigEndian.Uint32(b[pos+2:])
	pos += authHeadSize
	icvLen := int(t.TLVHead.LengthField) - authHeadSize
	t.ICV = append([]byte{}, b[pos:pos+icvLen]...)
	return nil
}

// AuthKind categorizes the outcome of authenticating (or failing to authenticate) a frame.
type AuthKind uint8

// authentication outcomes, matching the four cases the parse path can report
const (
	AuthOK AuthKind = iota
	AuthNone
	AuthWrong
	AuthNoKey
)

var authKindToString = map[AuthKind]string{
	AuthOK:    "AUTH_OK",
	AuthNone:  "AUTH_NONE",
	AuthWrong: "AUTH_WRONG",
	AuthNoKey: "AUTH_NO_KEY",
}

func (k AuthKind) String() string {
	if s, ok := authKindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_AUTH_KIND=%d", uint8(k))
}

// AuthError wraps an AuthKind so it can be returned/compared as an error
type AuthError struct {
	Kind AuthKind
}

func (e *AuthError) Error() string {
	return e.Kind.String()
}

// AppendAuthentication appends a trailing AUTHENTICATION TLV to an already-marshaled frame
// in b[:n], computing the ICV over b[:n] via keys. It returns the new total length.
func AppendAuthentication(b []byte, n int, spp uint8, keyID uint32, keys AuthKeyStore) (int, error) {
	icvLen, ok := keys.Lookup(spp, keyID)
	if !ok {
		return 0, &AuthError{Kind: AuthNoKey}
	}
	icv, err := keys.ICV(spp, keyID, b[:n])
	if err != nil {
		return 0, err
	}
	if len(icv) != icvLen {
		return 0, fmt.Errorf("SA returned ICV of length %d, expected %d", len(icv), icvLen)
	}
	tlv := &AuthenticationTLV{
		TLVHead: TLVHead{TLVType: TLVAuthentication, LengthField: uint16(authHeadSize + icvLen)},
		SPP:     spp,
		KeyID:   keyID,
		ICV:     icv,
	}
	nn, err := tlv.MarshalBinaryTo(b[n:])
	if err != nil {
		return 0, err
	}
	return n + nn, nil
}

// VerifyAuthentication checks a trailing AUTHENTICATION TLV against the frame prefix that
// precedes it. frame is the full received buffer; authTLV is the already-decoded trailing TLV
// and authOffset is the byte offset within frame where that TLV starts.
func VerifyAuthentication(frame []byte, authOffset int, authTLV *AuthenticationTLV, keys AuthKeyStore) error {
	if authTLV == nil {
		return &AuthError{Kind: AuthNone}
	}
	icvLen, ok := keys.Lookup(authTLV.SPP, authTLV.KeyID)
	if !ok {
		return &AuthError{Kind: AuthNoKey}
	}
	want, err := keys.ICV(authTLV.SPP, authTLV.KeyID, frame[:authOffset])
	if err != nil {
		return err
	}
	if icvLen != len(authTLV.ICV) || !bytesEqual(want, authTLV.ICV) {
		return &AuthError{Kind: AuthWrong}
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
