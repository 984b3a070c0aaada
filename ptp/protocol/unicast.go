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
	"encoding/binary"
	"fmt"
)

// UnicastMsgTypeAndFlags is a uint8 where first 4 bites contain MessageType and last 4 bits contain some flags
type UnicastMsgTypeAndFlags uint8

// MsgType extracts MessageType from UnicastMsgTypeAndFlags
func (m UnicastMsgTypeAndFlags) MsgType() MessageType {
	return MessageType(m >> 4)
}

// NewUnicastMsgTypeAndFlags builds new UnicastMsgTypeAndFlags from MessageType and flags
func NewUnicastMsgTypeAndFlags(msgType MessageType, flags uint8) UnicastMsgTypeAndFlags {
	return UnicastMsgTypeAndFlags(uint8(msgType)<<4 | (flags & 0x0f))
}

// signalingAllowedTLVs lists every TLVType a Signaling message may legally carry. Allowed
// TLV types with no dedicated codec are kept as UnparsedTLV entries rather than rejected,
// mirroring the tolerant parsing linuxptp itself does for forward compatibility.
var signalingAllowedTLVs = map[TLVType]bool{
	TLVManagement:                            true,
	TLVManagementErrorStatus:                 true,
	TLVOrganizationExtension:                 true,
	TLVRequestUnicastTransmission:            true,
	TLVGrantUnicastTransmission:              true,
	TLVCancelUnicastTransmission:              true,
	TLVAcknowledgeCancelUnicastTransmission:  true,
	TLVPathTrace:                             true,
	TLVAlternateTimeOffsetIndicator:          true,
	TLVEnhancedAccuracyMetrics:               true,
	TLVL1Sync:                                true,
	TLVPortCommunicationAvailability:         true,
	TLVProtocolAddress:                       true,
	TLVSlaveRxSyncTimingData:                 true,
	TLVSlaveRxSyncComputedData:               true,
	TLVSlaveTxEventTimestamps:                true,
	TLVCumulativeRateRatio:                   true,
	TLVSlaveDelayTimingDataNP:                true,
	TLVAuthentication:                        true,
}

// Signaling packet. As it's of variable size, we cannot just binary.Read/Write it.
type Signaling struct {
	Header
	TargetPortIdentity PortIdentity
	TLVs               []TLV
}

// MarshalBinaryTo marshals bytes to Signaling
func (p *Signaling) MarshalBinaryTo(b []byte) (int, error) {
	if len(p.TLVs) == 0 {
		return 0, fmt.Errorf("no TLVs in Signaling message, at least one required")
	}
	n := headerMarshalBinaryTo(&p.Header, b)
	binary.BigEndian.PutUint64(b[n:], uint64(p.TargetPortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[n+8:], p.TargetPortIdentity.PortNumber)
	pos := n + 10
	nn, err := writeTLVs(p.TLVs, b[pos:])
	if err != nil {
		return 0, err
	}
	return pos + nn, nil
}

// MarshalBinary converts packet to []bytes
func (p *Signaling) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	return buf[:n], err
}

// UnmarshalBinary parses []byte and populates struct fields
func (p *Signaling) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize+10+tlvHeadSize {
		return fmt.Errorf("not enough data to decode Signaling")
	}
	unmarshalHeader(&p.Header, b)
	if p.SdoIDAndMsgType.MsgType() != MessageSignaling {
		return fmt.Errorf("not a signaling message %v", b)
	}
	p.TargetPortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[headerSize:]))
	p.TargetPortIdentity.PortNumber = binary.BigEndian.Uint16(b[headerSize+8:])

	pos := headerSize + 10
	tlvs, err := readSignalingTLVs(nil, int(p.MessageLength)-pos, b[pos:])
	if err != nil {
		return err
	}
	p.TLVs = tlvs
	if len(p.TLVs) == 0 {
		return fmt.Errorf("no TLVs read for Signaling message, at least one required")
	}
	return nil
}

// readSignalingTLVs walks the TLV stream the same way readTLVs does, but tolerates any
// recognized TLVType that isn't allowed on a Signaling message by skipping it outright, and
// records any allowed type with no dedicated codec as an UnparsedTLV instead of failing the
// whole parse.
func readSignalingTLVs(tlvs []TLV, maxLength int, b []byte) ([]TLV, error) {
	pos := 0
	for {
		if pos+tlvHeadSize > maxLength || pos+tlvHeadSize > len(b) {
			break
		}
		tlvType := TLVType(binary.BigEndian.Uint16(b[pos:]))
		length := int(binary.BigEndian.Uint16(b[pos+2:]))

		if !signalingAllowedTLVs[tlvType] {
			pos += tlvHeadSize + length
			continue
		}

		switch tlvType {
		case TLVAcknowledgeCancelUnicastTransmission, TLVGrantUnicastTransmission,
			TLVRequestUnicastTransmission, TLVCancelUnicastTransmission,
			TLVPathTrace, TLVAlternateTimeOffsetIndicator:
			next, err := readTLVs(nil, tlvHeadSize+length, b[pos:])
			if err != nil {
				return tlvs, err
			}
			tlvs = append(tlvs, next...)
		case TLVManagement:
			// an embedded MANAGEMENT TLV exposes its nested management id and payload
			// through the same decodeManagementTLV dispatch a Management message uses.
			mtlv, err := decodeManagementTLV(b[pos:])
			if err != nil {
				return tlvs, err
			}
			tlvs = append(tlvs, mtlv)
		case TLVManagementErrorStatus:
			met := &ManagementErrorStatusTLV{}
			if err := met.UnmarshalBinary(b[pos:]); err != nil {
				return tlvs, err
			}
			tlvs = append(tlvs, met)
		case TLVAuthentication:
			// never consumed as part of signaling TLV iteration: detected and stripped by
			// its trailing position in the frame, via VerifyAuthentication, not here.
		default:
			if pos+tlvHeadSize+length > len(b) {
				return tlvs, fmt.Errorf("cannot decode TLV of length %d from %d bytes", tlvHeadSize+length, len(b)-pos)
			}
			value := make([]byte, length)
			copy(value, b[pos+tlvHeadSize:pos+tlvHeadSize+length])
			tlvs = append(tlvs, &UnparsedTLV{
				TLVHead: TLVHead{TLVType: tlvType, LengthField: uint16(length)},
				Value:   value,
			})
		}
		pos += tlvHeadSize + length
	}
	return tlvs, nil
}
