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
	"io"
)

// Action Table 58 actionField values
type Action uint8

// valid actionField values
const (
	GET Action = iota
	SET
	RESPONSE
	COMMAND
	ACKNOWLEDGE
)

// ActionToString is a map from Action to string
var ActionToString = map[Action]string{
	GET:         "GET",
	SET:         "SET",
	RESPONSE:    "RESPONSE",
	COMMAND:     "COMMAND",
	ACKNOWLEDGE: "ACKNOWLEDGE",
}

func (a Action) String() string {
	if s, ok := ActionToString[a]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_ACTION=%d", uint8(a))
}

// ManagementErrorID Table 71 managementErrorId values
type ManagementErrorID uint16

// valid managementErrorId values
const (
	ErrorResponseTooBig ManagementErrorID = 0x0001
	ErrorNoSuchID       ManagementErrorID = 0x0002
	ErrorWrongLength    ManagementErrorID = 0x0003
	ErrorWrongValue     ManagementErrorID = 0x0004
	ErrorNotSetable     ManagementErrorID = 0x0005
	ErrorNotSupported   ManagementErrorID = 0x0006
	ErrorUnpopulated    ManagementErrorID = 0x0007
	ErrorGeneralError   ManagementErrorID = 0xfffe
)

// ManagementErrorIDToString is a map from ManagementErrorID to string
var ManagementErrorIDToString = map[ManagementErrorID]string{
	ErrorResponseTooBig: "RESPONSE_TOO_BIG",
	ErrorNoSuchID:       "NO_SUCH_ID",
	ErrorWrongLength:    "WRONG_LENGTH",
	ErrorWrongValue:     "WRONG_VALUE",
	ErrorNotSetable:     "NOT_SETABLE",
	ErrorNotSupported:   "NOT_SUPPORTED",
	ErrorUnpopulated:    "UNPOPULATED",
	ErrorGeneralError:   "GENERAL_ERROR",
}

func (e ManagementErrorID) String() string {
	if s, ok := ManagementErrorIDToString[e]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_ERROR_ID=%d", uint16(e))
}

// Error implements the error interface, so a ManagementErrorID can be returned/wrapped directly
func (e ManagementErrorID) Error() string {
	return e.String()
}

// ManagementMsgHead Table 56 Management message fields
type ManagementMsgHead struct {
	Header
	TargetPortIdentity   PortIdentity
	StartingBoundaryHops uint8
	BoundaryHops         uint8
	ActionField          Action // first 4 bits are reserved
}

const managementMsgHeadSize = headerSize + 10 + 4

func managementMsgHeadMarshalBinaryTo(p *ManagementMsgHead, b []byte) int {
	n := headerMarshalBinaryTo(&p.Header, b)
	binary.BigEndian.PutUint64(b[n:], uint64(p.TargetPortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[n+8:], p.TargetPortIdentity.PortNumber)
	b[n+10] = p.StartingBoundaryHops
	b[n+11] = p.BoundaryHops
	b[n+12] = byte(p.ActionField) & 0x0f
	b[n+13] = 0 // reserved
	return n + 14
}

func unmarshalManagementMsgHead(p *ManagementMsgHead, b []byte) {
	unmarshalHeader(&p.Header, b)
	p.TargetPortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[headerSize:]))
	p.TargetPortIdentity.PortNumber = binary.BigEndian.Uint16(b[headerSize+8:])
	p.StartingBoundaryHops = b[headerSize+10]
	p.BoundaryHops = b[headerSize+11]
	p.ActionField = Action(b[headerSize+12] & 0x0f)
}

// Action returns the actionField of the message
func (p *ManagementMsgHead) Action() Action {
	return p.ActionField
}

// ManagementTLVHead is a common head of every TLV carried in a Management message
type ManagementTLVHead struct {
	TLVHead
	ManagementID ManagementID
}

const managementTLVHeadSize = tlvHeadSize + 2

func managementTLVHeadMarshalBinaryTo(p *ManagementTLVHead, b []byte) {
	tlvHeadMarshalBinaryTo(&p.TLVHead, b)
	binary.BigEndian.PutUint16(b[tlvHeadSize:], uint16(p.ManagementID))
}

func unmarshalManagementTLVHead(p *ManagementTLVHead, b []byte) error {
	if err := unmarshalTLVHeader(&p.TLVHead, b); err != nil {
		return err
	}
	if len(b) < managementTLVHeadSize {
		return fmt.Errorf("not enough data to decode ManagementTLVHead")
	}
	p.ManagementID = ManagementID(binary.BigEndian.Uint16(b[tlvHeadSize:]))
	return nil
}

// MgmtID returns the managementId of the TLV
func (p *ManagementTLVHead) MgmtID() ManagementID {
	return p.ManagementID
}

// ManagementTLV is any TLV that can be carried as the payload of a Management message.
type ManagementTLV interface {
	TLV
	MgmtID() ManagementID
}

// bareManagementTLV is used for requests that carry no payload, just the managementId being asked about
type bareManagementTLV struct {
	ManagementTLVHead
}

// MarshalBinaryTo marshals bytes to bareManagementTLV
func (t *bareManagementTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	return managementTLVHeadSize, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *bareManagementTLV) UnmarshalBinary(b []byte) error {
	return unmarshalManagementTLVHead(&t.ManagementTLVHead, b)
}

// managementRequest builds a bare GET/COMMAND request envelope for the given managementId
func managementRequest(id ManagementID, action Action) *Management {
	return &Management{
		ManagementMsgHead: ManagementMsgHead{
			Header: Header{
				SdoIDAndMsgType:    NewSdoIDAndMsgType(MessageManagement, 0),
				Version:            Version,
				MessageLength:      uint16(managementMsgHeadSize + managementTLVHeadSize),
				LogMessageInterval: MgmtLogMessageInterval,
			},
			TargetPortIdentity: DefaultTargetPortIdentity,
			ActionField:         action,
		},
		TLV: &bareManagementTLV{
			ManagementTLVHead: ManagementTLVHead{
				TLVHead:      TLVHead{TLVType: TLVManagement, LengthField: 2},
				ManagementID: id,
			},
		},
	}
}

// Management is a full Management message: a common head plus exactly one TLV, whose
// concrete type depends on both the managementId and whether this is a request (bare) or
// a response (payload-bearing).
type Management struct {
	ManagementMsgHead
	TLV ManagementTLV
}

// MarshalBinaryTo marshals bytes to Management
func (p *Management) MarshalBinaryTo(b []byte) (int, error) {
	if p.TLV == nil {
		return 0, fmt.Errorf("no TLV in Management message")
	}
	if len(b) < managementMsgHeadSize+managementTLVHeadSize {
		return 0, fmt.Errorf("not enough buffer to write Management message")
	}
	n := managementMsgHeadMarshalBinaryTo(&p.ManagementMsgHead, b)
	if mm, ok := p.TLV.(BinaryMarshalerTo); ok {
		nn, err := mm.MarshalBinaryTo(b[n:])
		if err != nil {
			return 0, err
		}
		return n + nn, nil
	}
	return 0, fmt.Errorf("TLV %T doesn't support MarshalBinaryTo", p.TLV)
}

// MarshalBinary converts packet to []bytes
func (p *Management) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	return buf[:n], err
}

// MarshalBinaryToBuf marshals the packet and writes it to w, surfacing any short-write error
func (p *Management) MarshalBinaryToBuf(w io.Writer) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UnmarshalBinary parses []byte and populates struct fields
func (p *Management) UnmarshalBinary(b []byte) error {
	if len(b) < managementMsgHeadSize+tlvHeadSize {
		return fmt.Errorf("not enough data to decode Management")
	}
	unmarshalManagementMsgHead(&p.ManagementMsgHead, b)
	if err := checkPacketLength(&p.Header, len(b)); err != nil {
		return err
	}
	pos := managementMsgHeadSize
	head := TLVHead{}
	if err := unmarshalTLVHeader(&head, b[pos:]); err != nil {
		return err
	}
	if head.TLVType != TLVManagement {
		return fmt.Errorf("got TLV type %q (%#04x) instead of %q (%#04x)",
			head.TLVType.String(), uint16(head.TLVType), TLVManagement.String(), uint16(TLVManagement))
	}
	tlv, err := decodeManagementTLV(b[pos:])
	if err != nil {
		return err
	}
	p.TLV = tlv
	return nil
}

// ManagementErrorStatusTLV Table 72 MANAGEMENT_ERROR_STATUS TLV format
type ManagementErrorStatusTLV struct {
	TLVHead
	ManagementErrorID ManagementErrorID
	ManagementID      ManagementID
	Reserved          int32
	DisplayData       PTPText
}

const managementErrorStatusTLVSize = tlvHeadSize + 8

// MarshalBinaryTo marshals bytes to ManagementErrorStatusTLV
func (t *ManagementErrorStatusTLV) MarshalBinaryTo(b []byte) (int, error) {
	tlvHeadMarshalBinaryTo(&t.TLVHead, b)
	binary.BigEndian.PutUint16(b[tlvHeadSize:], uint16(t.ManagementErrorID))
	binary.BigEndian.PutUint16(b[tlvHeadSize+2:], uint16(t.ManagementID))
	binary.BigEndian.PutUint32(b[tlvHeadSize+4:], uint32(t.Reserved))
	size := managementErrorStatusTLVSize
	if t.DisplayData != "" {
		dd, err := t.DisplayData.MarshalBinary()
		if err != nil {
			return 0, fmt.Errorf("writing ManagementErrorStatusTLV DisplayData: %w", err)
		}
		copy(b[size:], dd)
		size += len(dd)
	}
	return size, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *ManagementErrorStatusTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalTLVHeader(&t.TLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 8, false); err != nil {
		return err
	}
	t.ManagementErrorID = ManagementErrorID(binary.BigEndian.Uint16(b[tlvHeadSize:]))
	t.ManagementID = ManagementID(binary.BigEndian.Uint16(b[tlvHeadSize+2:]))
	t.Reserved = int32(binary.BigEndian.Uint32(b[tlvHeadSize+4:]))
	if len(b) > managementErrorStatusTLVSize {
		if err := t.DisplayData.UnmarshalBinary(b[managementErrorStatusTLVSize:]); err != nil {
			return fmt.Errorf("reading ManagementErrorStatusTLV DisplayData: %w", err)
		}
	}
	return nil
}

// ManagementMsgErrorStatus is the message sent in reply to a Management request that could not be satisfied
type ManagementMsgErrorStatus struct {
	ManagementMsgHead
	ManagementErrorStatusTLV
}

// MarshalBinaryTo marshals bytes to ManagementMsgErrorStatus
func (p *ManagementMsgErrorStatus) MarshalBinaryTo(b []byte) (int, error) {
	n := managementMsgHeadMarshalBinaryTo(&p.ManagementMsgHead, b)
	nn, err := p.ManagementErrorStatusTLV.MarshalBinaryTo(b[n:])
	if err != nil {
		return 0, err
	}
	return n + nn, nil
}

// MarshalBinary converts packet to []bytes
func (p *ManagementMsgErrorStatus) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1500)
	n, err := p.MarshalBinaryTo(buf)
	return buf[:n], err
}

// MarshalBinaryToBuf marshals the packet and writes it to w, surfacing any short-write error
func (p *ManagementMsgErrorStatus) MarshalBinaryToBuf(w io.Writer) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UnmarshalBinary parses []byte and populates struct fields
func (p *ManagementMsgErrorStatus) UnmarshalBinary(b []byte) error {
	if len(b) < managementMsgHeadSize+managementErrorStatusTLVSize {
		return fmt.Errorf("not enough data to decode ManagementMsgErrorStatus")
	}
	unmarshalManagementMsgHead(&p.ManagementMsgHead, b)
	if err := checkPacketLength(&p.Header, len(b)); err != nil {
		return err
	}
	return p.ManagementErrorStatusTLV.UnmarshalBinary(b[managementMsgHeadSize:])
}

// decodeMgmtPacket is the Management-family counterpart of DecodePacket: it looks at the
// TLV envelope right after the common message head to tell a MANAGEMENT_ERROR_STATUS
// reply from a regular Management request/response, then dispatches by ManagementID.
func decodeMgmtPacket(b []byte) (Packet, error) {
	if len(b) < managementMsgHeadSize+tlvHeadSize {
		return nil, fmt.Errorf("not enough data to decode Management")
	}
	head := TLVHead{}
	if err := unmarshalTLVHeader(&head, b[managementMsgHeadSize:]); err != nil {
		return nil, err
	}
	switch head.TLVType {
	case TLVManagementErrorStatus:
		p := &ManagementMsgErrorStatus{}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return p, nil
	case TLVManagement:
		p := &Management{}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("got TLV type %q (%#04x) instead of %q (%#04x) or %q (%#04x)",
			head.TLVType.String(), uint16(head.TLVType),
			TLVManagement.String(), uint16(TLVManagement),
			TLVManagementErrorStatus.String(), uint16(TLVManagementErrorStatus))
	}
}
