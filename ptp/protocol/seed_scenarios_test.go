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
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSeedSetPriority1 exercises the SET PRIORITY1 frame (priority1=0x7f, sequence 137, on a
// unicast, transportSpecific=0 message) with its actionField set to RESPONSE (2), as a reply.
func TestSeedSetPriority1(t *testing.T) {
	raw := []byte{
		0x0d, 0x02, 0x00, 0x38, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x89,
		0x04, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01, 0x01, 0x02, 0x00,
		0x00, 0x01, 0x00, 0x04, 0x20, 0x05, 0x7f, 0x00,
	}
	require.Len(t, raw, 56)

	packet := new(Management)
	require.Nil(t, FromBytes(raw, packet))
	require.Equal(t, RESPONSE, packet.Action())
	require.Equal(t, uint16(137), packet.Header.SequenceID)

	tlv, ok := packet.TLV.(*Uint8TLV)
	require.True(t, ok)
	require.Equal(t, IDPriority1, tlv.MgmtID())
	require.Equal(t, uint8(0x7f), tlv.Value)

	b, err := Bytes(packet)
	require.Nil(t, err)
	require.Equal(t, append(raw, 0x00, 0x00), b) // Bytes appends TrailingBytes zero bytes
}

// TestSeedSubscribeEventsNPBuild exercises building a SUBSCRIBE_EVENTS_NP request with a
// four-event bitmap and a 0x1234 duration.
func TestSeedSubscribeEventsNPBuild(t *testing.T) {
	tlv := &SubscribeEventsNPTLV{
		ManagementTLVHead: ManagementTLVHead{
			TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: 2 + 66},
			ManagementID: IDSubscribeEventsNP,
		},
		Duration: 0x1234,
	}
	tlv.SetEvent(0) // NOTIFY_PORT_STATE
	tlv.SetEvent(1) // NOTIFY_TIME_SYNC
	tlv.SetEvent(2) // NOTIFY_PARENT_DATA_SET
	tlv.SetEvent(3) // NOTIFY_CMLDS

	raw := make([]byte, managementTLVHeadSize+66)
	n, err := tlv.MarshalBinaryTo(raw)
	require.Nil(t, err)
	require.Equal(t, len(raw), n)

	require.Equal(t, uint8(0x0f), tlv.Bitmask[0])
	durationOff := managementTLVHeadSize
	require.Equal(t, []byte{0x12, 0x34}, raw[durationOff:durationOff+2])
}

// TestSeedPathTraceListCountless exercises the countless-list parse with a clean 16-byte
// payload (two full ClockIdentity entries) and a 17-byte payload with a trailing half entry
// that must be discarded rather than cause a decode failure.
func TestSeedPathTraceListCountless(t *testing.T) {
	clean := make([]byte, managementTLVHeadSize+16)
	head := ManagementTLVHead{
		TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: 2 + 16},
		ManagementID: IDPathTraceList,
	}
	managementTLVHeadMarshalBinaryTo(&head, clean)
	for i := 0; i < 16; i++ {
		clean[managementTLVHeadSize+i] = byte(i + 1)
	}

	got := new(PathTraceListTLV)
	require.Nil(t, got.UnmarshalBinary(clean))
	require.Len(t, got.PathSequence, 2)

	// 17 bytes of payload: length field still covers all 17, so the computed entry count floors
	// to 2 and the trailing odd byte is never read.
	odd := make([]byte, managementTLVHeadSize+17)
	oddHead := ManagementTLVHead{
		TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: 2 + 17},
		ManagementID: IDPathTraceList,
	}
	managementTLVHeadMarshalBinaryTo(&oddHead, odd)
	for i := 0; i < 17; i++ {
		odd[managementTLVHeadSize+i] = byte(i + 1)
	}

	gotOdd := new(PathTraceListTLV)
	require.Nil(t, gotOdd.UnmarshalBinary(odd))
	require.Len(t, gotOdd.PathSequence, 2)
}

// TestSeedAuthenticatedSetPriority1 exercises the authentication append/verify path around an
// ordinary management build: append computes an ICV over the unauthenticated frame, and verify
// recomputes the same ICV and accepts it; flipping any body byte must flip the outcome.
func TestSeedAuthenticatedSetPriority1(t *testing.T) {
	sa := &fakeSA{spp: 2, keyID: 10, key: []byte("seed-test-key")}

	req, err := BuildManagementRequest(IDPriority1, SET, &Uint8TLV{
		ManagementTLVHead: ManagementTLVHead{
			TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: 4},
			ManagementID: IDPriority1,
		},
		Value: 0x7f,
	})
	require.Nil(t, err)
	frame := make([]byte, 256)
	nn, err := req.MarshalBinaryTo(frame)
	require.Nil(t, err)

	total, err := AppendAuthentication(frame, nn, 2, 10, sa)
	require.Nil(t, err)
	require.Greater(t, total, nn)

	authTLV := new(AuthenticationTLV)
	require.Nil(t, authTLV.UnmarshalBinary(frame[nn:total]))
	require.Nil(t, VerifyAuthentication(frame[:total], nn, authTLV, sa))

	frame[0] ^= 0xff
	require.NotNil(t, VerifyAuthentication(frame[:total], nn, authTLV, sa))
}
