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

// DefaultDataSetTLV Table 61 DEFAULT_DATA_SET management TLV format
type DefaultDataSetTLV struct {
	ManagementTLVHead
	SoTSC        uint8 // bit 0 twoStepFlag, bit 1 slaveOnly
	Reserved0    uint8
	NumberPorts  uint16
	Priority1    uint8
	ClockQuality ClockQuality
	Priority2    uint8
	ClockIdentity ClockIdentity
	DomainNumber uint8
	Reserved1    uint8
}

// MarshalBinaryTo marshals bytes to DefaultDataSetTLV
func (t *DefaultDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = t.SoTSC
	b[pos+1] = t.Reserved0
	binary.BigEndian.PutUint16(b[pos+2:], t.NumberPorts)
	b[pos+4] = t.Priority1
	b[pos+5] = byte(t.ClockQuality.ClockClass)
	b[pos+6] = byte(t.ClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+7:], t.ClockQuality.OffsetScaledLogVariance)
	b[pos+9] = t.Priority2
	binary.BigEndian.PutUint64(b[pos+10:], uint64(t.ClockIdentity))
	b[pos+18] = t.DomainNumber
	b[pos+19] = t.Reserved1
	return pos + 20, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *DefaultDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 22, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.SoTSC = b[pos]
	t.Reserved0 = b[pos+1]
	t.NumberPorts = binary.BigEndian.Uint16(b[pos+2:])
	t.Priority1 = b[pos+4]
	t.ClockQuality.ClockClass = ClockClass(b[pos+5])
	t.ClockQuality.ClockAccuracy = ClockAccuracy(b[pos+6])
	t.ClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+7:])
	t.Priority2 = b[pos+9]
	t.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos+10:]))
	t.DomainNumber = b[pos+18]
	t.Reserved1 = b[pos+19]
	return nil
}

// CurrentDataSetTLV Table 62 CURRENT_DATA_SET management TLV format
type CurrentDataSetTLV struct {
	ManagementTLVHead
	StepsRemoved     uint16
	OffsetFromMaster TimeInterval
	MeanPathDelay    TimeInterval
}

// MarshalBinaryTo marshals bytes to CurrentDataSetTLV
func (t *CurrentDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.StepsRemoved)
	binary.BigEndian.PutUint64(b[pos+2:], uint64(t.OffsetFromMaster))
	binary.BigEndian.PutUint64(b[pos+10:], uint64(t.MeanPathDelay))
	return pos + 18, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *CurrentDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 20, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.StepsRemoved = binary.BigEndian.Uint16(b[pos:])
	t.OffsetFromMaster = TimeInterval(binary.BigEndian.Uint64(b[pos+2:]))
	t.MeanPathDelay = TimeInterval(binary.BigEndian.Uint64(b[pos+10:]))
	return nil
}

// ParentDataSetTLV Table 63 PARENT_DATA_SET management TLV format
type ParentDataSetTLV struct {
	ManagementTLVHead
	ParentPortIdentity                     PortIdentity
	PS                                      uint8 // bit 0 parentStats
	Reserved                                uint8
	ObservedParentOffsetScaledLogVariance   uint16
	ObservedParentClockPhaseChangeRate      uint32
	GrandmasterPriority1                    uint8
	GrandmasterClockQuality                 ClockQuality
	GrandmasterPriority2                    uint8
	GrandmasterIdentity                     ClockIdentity
}

// MarshalBinaryTo marshals bytes to ParentDataSetTLV
func (t *ParentDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.ParentPortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.ParentPortIdentity.PortNumber)
	b[pos+10] = t.PS
	b[pos+11] = t.Reserved
	binary.BigEndian.PutUint16(b[pos+12:], t.ObservedParentOffsetScaledLogVariance)
	binary.BigEndian.PutUint32(b[pos+14:], t.ObservedParentClockPhaseChangeRate)
	b[pos+18] = t.GrandmasterPriority1
	b[pos+19] = byte(t.GrandmasterClockQuality.ClockClass)
	b[pos+20] = byte(t.GrandmasterClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+21:], t.GrandmasterClockQuality.OffsetScaledLogVariance)
	b[pos+23] = t.GrandmasterPriority2
	binary.BigEndian.PutUint64(b[pos+24:], uint64(t.GrandmasterIdentity))
	return pos + 32, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *ParentDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 34, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.ParentPortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.ParentPortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	t.PS = b[pos+10]
	t.Reserved = b[pos+11]
	t.ObservedParentOffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+12:])
	t.ObservedParentClockPhaseChangeRate = binary.BigEndian.Uint32(b[pos+14:])
	t.GrandmasterPriority1 = b[pos+18]
	t.GrandmasterClockQuality.ClockClass = ClockClass(b[pos+19])
	t.GrandmasterClockQuality.ClockAccuracy = ClockAccuracy(b[pos+20])
	t.GrandmasterClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+21:])
	t.GrandmasterPriority2 = b[pos+23]
	t.GrandmasterIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos+24:]))
	return nil
}

// ClockAccuracyTLV Table 65 CLOCK_ACCURACY management TLV format
type ClockAccuracyTLV struct {
	ManagementTLVHead
	ClockAccuracy ClockAccuracy
	Reserved      uint8
}

// MarshalBinaryTo marshals bytes to ClockAccuracyTLV
func (t *ClockAccuracyTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = byte(t.ClockAccuracy)
	b[pos+1] = t.Reserved
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *ClockAccuracyTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.ClockAccuracy = ClockAccuracy(b[pos])
	t.Reserved = b[pos+1]
	return nil
}

// TimePropertiesDataSetTLV Table 67 TIME_PROPERTIES_DATA_SET management TLV format
type TimePropertiesDataSetTLV struct {
	ManagementTLVHead
	CurrentUTCOffset int16
	Flags            uint8 // bits: leap61, leap59, currentUtcOffsetValid, ptpTimescale, timeTraceable, frequencyTraceable
	TimeSource       TimeSource
}

// MarshalBinaryTo marshals bytes to TimePropertiesDataSetTLV
func (t *TimePropertiesDataSetTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], uint16(t.CurrentUTCOffset))
	b[pos+2] = t.Flags
	b[pos+3] = byte(t.TimeSource)
	return pos + 4, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *TimePropertiesDataSetTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 6, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.CurrentUTCOffset = int16(binary.BigEndian.Uint16(b[pos:]))
	t.Flags = b[pos+2]
	t.TimeSource = TimeSource(b[pos+3])
	return nil
}

// ClockDescriptionTLV Table 60 CLOCK_DESCRIPTION management TLV format
type ClockDescriptionTLV struct {
	ManagementTLVHead
	ClockType           uint16
	PhysicalLayerProtocol PTPText
	PhysicalAddress     []byte
	ProtocolAddress     PortAddress
	ManufacturerID      [3]uint8
	ProductDescription  PTPText
	RevisionData        PTPText
	UserDescription     PTPText
	ProfileID           [6]uint8
}

// MarshalBinaryTo marshals bytes to ClockDescriptionTLV
func (t *ClockDescriptionTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.ClockType)
	pos += 2
	pp, err := t.PhysicalLayerProtocol.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[pos:], pp)
	pos += len(pp)
	binary.BigEndian.PutUint16(b[pos:], uint16(len(t.PhysicalAddress)))
	copy(b[pos+2:], t.PhysicalAddress)
	pos += 2 + len(t.PhysicalAddress)
	pa, err := t.ProtocolAddress.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[pos:], pa)
	pos += len(pa)
	copy(b[pos:], t.ManufacturerID[:])
	pos += 3
	pd, err := t.ProductDescription.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[pos:], pd)
	pos += len(pd)
	rd, err := t.RevisionData.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[pos:], rd)
	pos += len(rd)
	ud, err := t.UserDescription.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[pos:], ud)
	pos += len(ud)
	copy(b[pos:], t.ProfileID[:])
	pos += 6
	return pos, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *ClockDescriptionTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2, false); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.ClockType = binary.BigEndian.Uint16(b[pos:])
	pos += 2
	if err := t.PhysicalLayerProtocol.UnmarshalBinary(b[pos:]); err != nil {
		return err
	}
	pos += 1 + len(t.PhysicalLayerProtocol)
	if len(t.PhysicalLayerProtocol)%2 != 0 {
		pos++
	}
	if pos+2 > len(b) {
		return fmt.Errorf("not enough data to decode ClockDescription physicalAddressLength")
	}
	physLen := int(binary.BigEndian.Uint16(b[pos:]))
	pos += 2
	if pos+physLen > len(b) {
		return fmt.Errorf("not enough data to decode ClockDescription physicalAddress")
	}
	t.PhysicalAddress = append([]byte{}, b[pos:pos+physLen]...)
	pos += physLen
	if err := t.ProtocolAddress.UnmarshalBinary(b[pos:]); err != nil {
		return err
	}
	pos += 4 + int(t.ProtocolAddress.AddressLength)
	if pos+3 > len(b) {
		return fmt.Errorf("not enough data to decode ClockDescription manufacturerIdentity")
	}
	copy(t.ManufacturerID[:], b[pos:pos+3])
	pos += 3
	for _, field := range []*PTPText{&t.ProductDescription, &t.RevisionData, &t.UserDescription} {
		if pos >= len(b) {
			return fmt.Errorf("not enough data to decode ClockDescription text field")
		}
		if err := field.UnmarshalBinary(b[pos:]); err != nil {
			return err
		}
		pos += 1 + len(*field)
		if len(*field)%2 != 0 {
			pos++
		}
	}
	if pos+6 <= len(b) {
		copy(t.ProfileID[:], b[pos:pos+6])
	}
	return nil
}

// Severity Table 70 FAULT_RECORD severityCode values
type Severity uint8

// valid severityCode values
const (
	SeverityCritical Severity = iota
	SeverityError
	SeverityWarning
)

// SeverityToString is a map from Severity to string
var SeverityToString = map[Severity]string{
	SeverityCritical: "CRITICAL",
	SeverityError:    "ERROR",
	SeverityWarning:  "WARNING",
}

func (s Severity) String() string {
	if v, ok := SeverityToString[s]; ok {
		return v
	}
	return fmt.Sprintf("UNKNOWN_SEVERITY=%d", uint8(s))
}

// FaultRecord Table 69 FAULT_LOG fault record format
type FaultRecord struct {
	FaultTime   Timestamp
	Severity    Severity
	Name        PTPText
	Value       PTPText
	Description PTPText
}

// FaultLogTLV Table 68 FAULT_LOG management TLV format
type FaultLogTLV struct {
	ManagementTLVHead
	NumberOfFaultRecords uint16
	FaultRecords         []FaultRecord
}

// MarshalBinaryTo marshals bytes to FaultLogTLV
func (t *FaultLogTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], uint16(len(t.FaultRecords)))
	pos += 2
	for _, fr := range t.FaultRecords {
		binary.BigEndian.PutUint16(b[pos:], 0) // faultRecordLength, filled below
		lenPos := pos
		pos += 2
		copy(b[pos:], fr.FaultTime.Seconds[:])
		binary.BigEndian.PutUint32(b[pos+6:], fr.FaultTime.Nanoseconds)
		pos += 10
		b[pos] = byte(fr.Severity)
		pos++
		for _, text := range []PTPText{fr.Name, fr.Value, fr.Description} {
			tb, err := text.MarshalBinary()
			if err != nil {
				return 0, err
			}
			copy(b[pos:], tb)
			pos += len(tb)
		}
		binary.BigEndian.PutUint16(b[lenPos:], uint16(pos-lenPos-2))
	}
	return pos, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *FaultLogTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2, false); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.NumberOfFaultRecords = binary.BigEndian.Uint16(b[pos:])
	pos += 2
	t.FaultRecords = make([]FaultRecord, 0, t.NumberOfFaultRecords)
	for i := 0; i < int(t.NumberOfFaultRecords); i++ {
		if pos+2 > len(b) {
			return fmt.Errorf("not enough data to decode FaultLog record length")
		}
		recLen := int(binary.BigEndian.Uint16(b[pos:]))
		recStart := pos + 2
		if recStart+recLen > len(b) {
			return fmt.Errorf("not enough data to decode FaultLog record body")
		}
		var fr FaultRecord
		rp := recStart
		copy(fr.FaultTime.Seconds[:], b[rp:])
		fr.FaultTime.Nanoseconds = binary.BigEndian.Uint32(b[rp+6:])
		rp += 10
		fr.Severity = Severity(b[rp])
		rp++
		for _, field := range []*PTPText{&fr.Name, &fr.Value, &fr.Description} {
			if rp >= len(b) {
				break
			}
			if err := field.UnmarshalBinary(b[rp:]); err != nil {
				return err
			}
			rp += 1 + len(*field)
			if len(*field)%2 != 0 {
				rp++
			}
		}
		t.FaultRecords = append(t.FaultRecords, fr)
		pos = recStart + recLen
	}
	return nil
}

// Generic scalar TLVs: many managementIds in Table 59 carry nothing more than a single
// numeric value after the ManagementID. Rather than a dedicated struct per value, these
// thin wrappers are reused and keyed off the managementId at decode time.

// Uint8TLV covers managementIds whose payload is a single byte (plus a reserved byte to
// keep the overall TLV length even), e.g. PRIORITY1, PRIORITY2, DOMAIN.
type Uint8TLV struct {
	ManagementTLVHead
	Value    uint8
	Reserved uint8
}

// MarshalBinaryTo marshals bytes to Uint8TLV
func (t *Uint8TLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = t.Value
	b[pos+1] = t.Reserved
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *Uint8TLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.Value = b[pos]
	t.Reserved = b[pos+1]
	return nil
}

// Uint16TLV covers managementIds whose payload is a single uint16, e.g.
// UNICAST_MASTER_MAX_TABLE_SIZE, ALTERNATE_TIME_OFFSET_MAX_KEY.
type Uint16TLV struct {
	ManagementTLVHead
	Value uint16
}

// MarshalBinaryTo marshals bytes to Uint16TLV
func (t *Uint16TLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.Value)
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *Uint16TLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	t.Value = binary.BigEndian.Uint16(b[managementTLVHeadSize:])
	return nil
}

// LogIntervalTLV covers managementIds whose payload is a single logarithmic interval,
// e.g. LOG_ANNOUNCE_INTERVAL, LOG_SYNC_INTERVAL, LOG_MIN_PDELAY_REQ_INTERVAL.
type LogIntervalTLV struct {
	ManagementTLVHead
	Value    LogInterval
	Reserved uint8
}

// MarshalBinaryTo marshals bytes to LogIntervalTLV
func (t *LogIntervalTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = byte(t.Value)
	b[pos+1] = t.Reserved
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *LogIntervalTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.Value = LogInterval(b[pos])
	t.Reserved = b[pos+1]
	return nil
}

// BoolTLV covers managementIds whose payload is a single boolean flag packed in a byte,
// e.g. UNICAST_NEGOTIATION_ENABLE, PATH_TRACE_ENABLE, MASTER_ONLY.
type BoolTLV struct {
	ManagementTLVHead
	Value    bool
	Reserved uint8
}

// MarshalBinaryTo marshals bytes to BoolTLV
func (t *BoolTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	if t.Value {
		b[pos] = 1
	} else {
		b[pos] = 0
	}
	b[pos+1] = t.Reserved
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *BoolTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.Value = b[pos] != 0
	t.Reserved = b[pos+1]
	return nil
}

const subscribeEventsNPBitmaskSize = 64

// SubscribeEventsNPTLV is ptp4l's SUBSCRIBE_EVENTS_NP TLV: a client-requested subscription
// duration plus a bitmask of which notification events the client wants pushed over the
// same management socket. idx = 8*byte + bit, matching ptp4l's notification.c layout.
type SubscribeEventsNPTLV struct {
	ManagementTLVHead
	Duration uint16
	Bitmask  [subscribeEventsNPBitmaskSize]uint8
}

// SetEvent sets bit idx in the subscription bitmask
func (t *SubscribeEventsNPTLV) SetEvent(idx int) {
	t.Bitmask[idx/8] |= 1 << (idx % 8)
}

// ClearEvent clears bit idx in the subscription bitmask
func (t *SubscribeEventsNPTLV) ClearEvent(idx int) {
	t.Bitmask[idx/8] &^= 1 << (idx % 8)
}

// GetEvent reports whether bit idx is set in the subscription bitmask
func (t *SubscribeEventsNPTLV) GetEvent(idx int) bool {
	return t.Bitmask[idx/8]&(1<<(idx%8)) != 0
}

// MarshalBinaryTo marshals bytes to SubscribeEventsNPTLV
func (t *SubscribeEventsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.Duration)
	copy(b[pos+2:], t.Bitmask[:])
	return pos + 2 + subscribeEventsNPBitmaskSize, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *SubscribeEventsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2+2+subscribeEventsNPBitmaskSize, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.Duration = binary.BigEndian.Uint16(b[pos:])
	copy(t.Bitmask[:], b[pos+2:])
	return nil
}

// PathTraceListTLV Table 64-equivalent PATH_TRACE_LIST management TLV format: a countless
// list of ClockIdentity values, one appended by every boundary clock the Announce traversed.
type PathTraceListTLV struct {
	ManagementTLVHead
	PathSequence []ClockIdentity
}

// MarshalBinaryTo marshals bytes to PathTraceListTLV
func (t *PathTraceListTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	for _, id := range t.PathSequence {
		binary.BigEndian.PutUint64(b[pos:], uint64(id))
		pos += 8
	}
	return pos, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *PathTraceListTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 0, false); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	n := int(t.TLVHead.LengthField-2) / 8
	t.PathSequence = make([]ClockIdentity, 0, n)
	for i := 0; i < n; i++ {
		if pos+8 > len(b) {
			break
		}
		t.PathSequence = append(t.PathSequence, ClockIdentity(binary.BigEndian.Uint64(b[pos:])))
		pos += 8
	}
	return nil
}

// managementTLVFactories maps a managementId to a constructor for the concrete TLV type
// used to decode a response carrying it. managementIds with no entry here (e.g. pure
// COMMAND actions like ENABLE_PORT that carry a bare TLV on both request and response)
// fall back to bareManagementTLV.
var managementTLVFactories = map[ManagementID]func() ManagementTLV{
	IDDefaultDataSet:        func() ManagementTLV { return &DefaultDataSetTLV{} },
	IDCurrentDataSet:        func() ManagementTLV { return &CurrentDataSetTLV{} },
	IDParentDataSet:         func() ManagementTLV { return &ParentDataSetTLV{} },
	IDTimePropertiesDataSet: func() ManagementTLV { return &TimePropertiesDataSetTLV{} },
	IDClockDescription:      func() ManagementTLV { return &ClockDescriptionTLV{} },
	IDFaultLog:              func() ManagementTLV { return &FaultLogTLV{} },
	IDClockAccuracy:         func() ManagementTLV { return &ClockAccuracyTLV{} },
	IDPriority1:             func() ManagementTLV { return &Uint8TLV{} },
	IDPriority2:             func() ManagementTLV { return &Uint8TLV{} },
	IDDomain:                func() ManagementTLV { return &Uint8TLV{} },
	IDSlaveOnly:             func() ManagementTLV { return &BoolTLV{} },
	IDVersionNumber:         func() ManagementTLV { return &Uint8TLV{} },
	IDTraceabilityProperties: func() ManagementTLV { return &Uint8TLV{} },
	IDTimescaleProperties:   func() ManagementTLV { return &Uint8TLV{} },
	IDLogAnnounceInterval:   func() ManagementTLV { return &LogIntervalTLV{} },
	IDLogSyncInterval:       func() ManagementTLV { return &LogIntervalTLV{} },
	IDLogMinPdelayReqInterval: func() ManagementTLV { return &LogIntervalTLV{} },
	IDAnnounceReceiptTimeout: func() ManagementTLV { return &Uint8TLV{} },
	IDDelayMechanism:        func() ManagementTLV { return &Uint8TLV{} },
	IDUnicastNegotiationEnable: func() ManagementTLV { return &BoolTLV{} },
	IDPathTraceEnable:       func() ManagementTLV { return &BoolTLV{} },
	IDMasterOnly:            func() ManagementTLV { return &BoolTLV{} },
	IDUnicastMasterMaxTableSize: func() ManagementTLV { return &Uint16TLV{} },
	IDAcceptableMasterMaxTableSize: func() ManagementTLV { return &Uint16TLV{} },
	IDAlternateTimeOffsetMaxKey:   func() ManagementTLV { return &Uint16TLV{} },

	IDTimeStatusNP:         func() ManagementTLV { return &TimeStatusNPTLV{} },
	IDPortPropertiesNP:     func() ManagementTLV { return &PortPropertiesNPTLV{} },
	IDPortStatsNP:          func() ManagementTLV { return &PortStatsNPTLV{} },
	IDPortServiceStatsNP:   func() ManagementTLV { return &PortServiceStatsNPTLV{} },
	IDUnicastMasterTableNP: func() ManagementTLV { return &UnicastMasterTableNPTLV{} },
	IDGrandmasterSettingsNP: func() ManagementTLV { return &GrandmasterSettingsNPTLV{} },
	IDPortDataSetNP:        func() ManagementTLV { return &PortDataSetNPTLV{} },
	IDSynchronizationUncertainNP: func() ManagementTLV { return &SynchronizationUncertainNPTLV{} },
	IDSubscribeEventsNP:     func() ManagementTLV { return &SubscribeEventsNPTLV{} },
	IDPathTraceList:         func() ManagementTLV { return &PathTraceListTLV{} },
}

// decodeManagementTLV parses the Management TLV starting at b (whose first bytes are the
// tlvHead) by first peeking the managementId and then dispatching to the concrete type
// the registry says that managementId carries.
func decodeManagementTLV(b []byte) (ManagementTLV, error) {
	if len(b) < managementTLVHeadSize {
		return nil, fmt.Errorf("not enough data to decode ManagementTLVHead")
	}
	id := ManagementID(binary.BigEndian.Uint16(b[tlvHeadSize:]))
	factory, ok := managementTLVFactories[id]
	if !ok {
		factory = func() ManagementTLV { return &bareManagementTLV{} }
	}
	tlv := factory()
	u, ok := tlv.(interface{ UnmarshalBinary([]byte) error })
	if !ok {
		return nil, fmt.Errorf("TLV for managementId %s doesn't support UnmarshalBinary", id)
	}
	if err := u.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return tlv, nil
}

// managementBuildValidators maps a managementId to a check that a caller-supplied payload for
// a SET/COMMAND request is the concrete type that managementId carries. managementIds with no
// entry here only accept a bareManagementTLV (pure COMMANDs with no settable payload).
var managementBuildValidators = map[ManagementID]func(payload ManagementTLV) bool{
	IDPriority1:                 func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDPriority2:                 func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDDomain:                    func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDSlaveOnly:                 func(payload ManagementTLV) bool { _, ok := payload.(*BoolTLV); return ok },
	IDVersionNumber:             func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDTraceabilityProperties:    func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDTimescaleProperties:       func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDLogAnnounceInterval:       func(payload ManagementTLV) bool { _, ok := payload.(*LogIntervalTLV); return ok },
	IDLogSyncInterval:           func(payload ManagementTLV) bool { _, ok := payload.(*LogIntervalTLV); return ok },
	IDLogMinPdelayReqInterval:   func(payload ManagementTLV) bool { _, ok := payload.(*LogIntervalTLV); return ok },
	IDAnnounceReceiptTimeout:    func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDDelayMechanism:            func(payload ManagementTLV) bool { _, ok := payload.(*Uint8TLV); return ok },
	IDUnicastNegotiationEnable:  func(payload ManagementTLV) bool { _, ok := payload.(*BoolTLV); return ok },
	IDPathTraceEnable:           func(payload ManagementTLV) bool { _, ok := payload.(*BoolTLV); return ok },
	IDMasterOnly:                func(payload ManagementTLV) bool { _, ok := payload.(*BoolTLV); return ok },
	IDUnicastMasterMaxTableSize: func(payload ManagementTLV) bool { _, ok := payload.(*Uint16TLV); return ok },
	IDAcceptableMasterMaxTableSize: func(payload ManagementTLV) bool {
		_, ok := payload.(*Uint16TLV)
		return ok
	},
	IDAlternateTimeOffsetMaxKey: func(payload ManagementTLV) bool { _, ok := payload.(*Uint16TLV); return ok },
	IDSubscribeEventsNP:         func(payload ManagementTLV) bool { _, ok := payload.(*SubscribeEventsNPTLV); return ok },
	IDGrandmasterSettingsNP:     func(payload ManagementTLV) bool { _, ok := payload.(*GrandmasterSettingsNPTLV); return ok },
}

// BuildManagementRequest is the build-time counterpart of decodeManagementTLV: given a
// managementId, the action to request, and the payload the caller wants to send, it looks up
// the validator registered for id. A match commits payload into the outgoing message; anything
// else (wrong action for the registry's allowed mask, or a payload of the wrong concrete type)
// is discarded and reported as an error rather than producing a malformed request.
func BuildManagementRequest(id ManagementID, action Action, payload ManagementTLV) (*Management, error) {
	if action != SET && action != COMMAND {
		return nil, fmt.Errorf("BuildManagementRequest: action must be SET or COMMAND, got %s", action)
	}
	if !isAllowed(id, action) {
		return nil, fmt.Errorf("managementId %s does not allow action %s", id, action)
	}
	validate, ok := managementBuildValidators[id]
	if !ok {
		validate = func(payload ManagementTLV) bool { _, ok := payload.(*bareManagementTLV); return ok }
	}
	if !validate(payload) {
		return nil, fmt.Errorf("payload %T is not valid for managementId %s", payload, id)
	}
	return &Management{
		ManagementMsgHead: ManagementMsgHead{
			Header: Header{
				SdoIDAndMsgType: NewSdoIDAndMsgType(MessageManagement, 0),
				Version:         Version,
			},
			TargetPortIdentity: DefaultTargetPortIdentity,
			ActionField:        action,
		},
		TLV: payload,
	}, nil
}

// CurrentDataSetRequest builds a GET request for CURRENT_DATA_SET
func CurrentDataSetRequest() *Management {
	return managementRequest(IDCurrentDataSet, GET)
}

// DefaultDataSetRequest builds a GET request for DEFAULT_DATA_SET
func DefaultDataSetRequest() *Management {
	return managementRequest(IDDefaultDataSet, GET)
}

// ParentDataSetRequest builds a GET request for PARENT_DATA_SET
func ParentDataSetRequest() *Management {
	return managementRequest(IDParentDataSet, GET)
}

// ClockAccuracyRequest builds a GET request for CLOCK_ACCURACY
func ClockAccuracyRequest() *Management {
	return managementRequest(IDClockAccuracy, GET)
}

// TimePropertiesDataSetRequest builds a GET request for TIME_PROPERTIES_DATA_SET
func TimePropertiesDataSetRequest() *Management {
	return managementRequest(IDTimePropertiesDataSet, GET)
}

// ClockDescriptionRequest builds a GET request for CLOCK_DESCRIPTION
func ClockDescriptionRequest() *Management {
	return managementRequest(IDClockDescription, GET)
}

// SubscribeEventsNPRequest builds a GET request for SUBSCRIBE_EVENTS_NP
func SubscribeEventsNPRequest() *Management {
	return managementRequest(IDSubscribeEventsNP, GET)
}

// PathTraceListRequest builds a GET request for PATH_TRACE_LIST
func PathTraceListRequest() *Management {
	return managementRequest(IDPathTraceList, GET)
}
