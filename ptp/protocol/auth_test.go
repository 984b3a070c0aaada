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

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSA is a minimal AuthKeyStore standing in for a real SaFile-backed implementation: one
// key, keyed by spp+keyID, HMAC-SHA256 truncated to 16 bytes.
type fakeSA struct {
	spp   uint8
	keyID uint32
	key   []byte
}

const fakeSAICVLen = 16

func (s *fakeSA) Lookup(spp uint8, keyID uint32) (int, bool) {
	if spp != s.spp || keyID != s.keyID {
		return 0, false
	}
	return fakeSAICVLen, true
}

func (s *fakeSA) ICV(spp uint8, keyID uint32, buf []byte) ([]byte, error) {
	if spp != s.spp || keyID != s.keyID {
		return nil, &AuthError{Kind: AuthNoKey}
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(buf)
	return mac.Sum(nil)[:fakeSAICVLen], nil
}

func TestAuthenticationTLVRoundTrip(t *testing.T) {
	want := &AuthenticationTLV{
		TLVHead: TLVHead{TLVType: TLVAuthentication, LengthField: uint16(authHeadSize + 16)},
		SPP:     1,
		KeyID:   42,
		ICV:     make([]byte, 16),
	}
	for i := range want.ICV {
		want.ICV[i] = byte(i)
	}
	raw, err := want.MarshalBinary()
	require.Nil(t, err)

	got := new(AuthenticationTLV)
	require.Nil(t, got.UnmarshalBinary(raw))
	require.Equal(t, want, got)
}

func TestAppendAndVerifyAuthentication(t *testing.T) {
	sa := &fakeSA{spp: 1, keyID: 42, key: []byte("test-key")}
	frame := make([]byte, 64, 128)
	for i := range frame {
		frame[i] = byte(i)
	}
	n := len(frame)

	total, err := AppendAuthentication(frame[:cap(frame)], n, 1, 42, sa)
	require.Nil(t, err)
	require.Greater(t, total, n)

	full := frame[:cap(frame)][:total]
	authTLV := new(AuthenticationTLV)
	require.Nil(t, authTLV.UnmarshalBinary(full[n:total]))
	require.Equal(t, uint8(1), authTLV.SPP)
	require.Equal(t, uint32(42), authTLV.KeyID)

	require.Nil(t, VerifyAuthentication(full, n, authTLV, sa))
}

func TestVerifyAuthenticationWrongICV(t *testing.T) {
	sa := &fakeSA{spp: 1, keyID: 42, key: []byte("test-key")}
	frame := make([]byte, 64, 128)
	n := len(frame)

	total, err := AppendAuthentication(frame[:cap(frame)], n, 1, 42, sa)
	require.Nil(t, err)
	full := frame[:cap(frame)][:total]

	authTLV := new(AuthenticationTLV)
	require.Nil(t, authTLV.UnmarshalBinary(full[n:total]))
	authTLV.ICV[0] ^= 0xff

	err = VerifyAuthentication(full, n, authTLV, sa)
	require.NotNil(t, err)
	authErr, ok := err.(*AuthError)
	require.True(t, ok)
	require.Equal(t, AuthWrong, authErr.Kind)
}

func TestVerifyAuthenticationNoKey(t *testing.T) {
	sa := &fakeSA{spp: 1, keyID: 42, key: []byte("test-key")}
	authTLV := &AuthenticationTLV{SPP: 9, KeyID: 1, ICV: make([]byte, fakeSAICVLen)}

	err := VerifyAuthentication(make([]byte, 8), 8, authTLV, sa)
	require.NotNil(t, err)
	authErr, ok := err.(*AuthError)
	require.True(t, ok)
	require.Equal(t, AuthNoKey, authErr.Kind)
}

func TestVerifyAuthenticationMissingTLV(t *testing.T) {
	sa := &fakeSA{spp: 1, keyID: 42, key: []byte("test-key")}
	err := VerifyAuthentication(make([]byte, 8), 8, nil, sa)
	require.NotNil(t, err)
	authErr, ok := err.(*AuthError)
	require.True(t, ok)
	require.Equal(t, AuthNone, authErr.Kind)
}
