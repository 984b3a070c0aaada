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

// Support has been included for the non-standard extensions provided by the ptp4l implementation,
// the *_NP management TLVs. Implemented as present in linuxptp master.

import (
	"encoding/binary"
	"fmt"
	"net"
)

// PTP4lSock is the default path to PTP4L socket
const PTP4lSock = "/var/run/ptp4l"

// UnicastMasterState is a enum describing the unicast master state in ptp4l unicast master table
type UnicastMasterState uint8

// possible states of unicast master in ptp4l unicast master table
const (
	UnicastMasterStateWait UnicastMasterState = iota
	UnicastMasterStateHaveAnnounce
	UnicastMasterStateNeedSYDY
	UnicastMasterStateHaveSYDY
)

// UnicastMasterStateToString is a map from UnicastMasterState to string
var UnicastMasterStateToString = map[UnicastMasterState]string{
	UnicastMasterStateWait:         "WAIT",
	UnicastMasterStateHaveAnnounce: "HAVE_ANN",
	UnicastMasterStateNeedSYDY:     "NEED_SYDY",
	UnicastMasterStateHaveSYDY:     "HAVE_SYDY",
}

func (t UnicastMasterState) String() string {
	return UnicastMasterStateToString[t]
}

// Timestamping is a ptp4l-specific enum describing timestamping type
type Timestamping uint8

const (
	// TimestampingSoftware is a software timestamp const
	TimestampingSoftware Timestamping = iota
	// TimestampingHardware is a hardware timestamp const
	TimestampingHardware
	// TimestampingLegacyHW is a legacy hardware timestamp const
	TimestampingLegacyHW
	// TimestampingOneStep is a one step timestamp const
	TimestampingOneStep
	// TimestampingP2P1Step is a P2P one step timestamp const
	TimestampingP2P1Step
)

// PortStats is a ptp4l struct containing port statistics
type PortStats struct {
	RXMsgType [16]uint64
	TXMsgType [16]uint64
}

const portStatsSize = 16 * 8 * 2

// PortStatsNPTLV is a ptp4l struct containing port identity and statistics
type PortStatsNPTLV struct {
	ManagementTLVHead
	PortIdentity PortIdentity
	PortStats    PortStats
}

// MarshalBinaryTo marshals bytes to PortStatsNPTLV
func (t *PortStatsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.PortIdentity.PortNumber)
	pos += 10
	// PortStats itself is always little-endian on the wire, regardless of host byte order.
	// linuxptp historically got this wrong by using host order; that bug is not reintroduced here.
	for i, v := range t.PortStats.RXMsgType {
		binary.LittleEndian.PutUint64(b[pos+i*8:], v)
	}
	pos += 16 * 8
	for i, v := range t.PortStats.TXMsgType {
		binary.LittleEndian.PutUint64(b[pos+i*8:], v)
	}
	pos += 16 * 8
	return pos, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *PortStatsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2+10+portStatsSize, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	pos += 10
	for i := range t.PortStats.RXMsgType {
		t.PortStats.RXMsgType[i] = binary.LittleEndian.Uint64(b[pos+i*8:])
	}
	pos += 16 * 8
	for i := range t.PortStats.TXMsgType {
		t.PortStats.TXMsgType[i] = binary.LittleEndian.Uint64(b[pos+i*8:])
	}
	return nil
}

// ScaledNS is some struct used by ptp4l to report phase change
type ScaledNS struct {
	NanosecondsMSB        uint16
	NanosecondsLSB        uint64
	FractionalNanoseconds uint16
}

// TimeStatusNPTLV is a ptp4l struct containing actually useful instance metrics
type TimeStatusNPTLV struct {
	ManagementTLVHead
	MasterOffsetNS             int64
	IngressTimeNS              int64 // this is PHC time
	CumulativeScaledRateOffset int32
	ScaledLastGmPhaseChange    int32
	GMTimeBaseIndicator        uint16
	LastGmPhaseChange          ScaledNS
	GMPresent                  int32
	GMIdentity                 ClockIdentity
}

// MarshalBinaryTo marshals bytes to TimeStatusNPTLV
func (t *TimeStatusNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.MasterOffsetNS))
	binary.BigEndian.PutUint64(b[pos+8:], uint64(t.IngressTimeNS))
	binary.BigEndian.PutUint32(b[pos+16:], uint32(t.CumulativeScaledRateOffset))
	binary.BigEndian.PutUint32(b[pos+20:], uint32(t.ScaledLastGmPhaseChange))
	binary.BigEndian.PutUint16(b[pos+24:], t.GMTimeBaseIndicator)
	binary.BigEndian.PutUint16(b[pos+26:], t.LastGmPhaseChange.NanosecondsMSB)
	binary.BigEndian.PutUint64(b[pos+28:], t.LastGmPhaseChange.NanosecondsLSB)
	binary.BigEndian.PutUint16(b[pos+36:], t.LastGmPhaseChange.FractionalNanoseconds)
	binary.BigEndian.PutUint32(b[pos+38:], uint32(t.GMPresent))
	binary.BigEndian.PutUint64(b[pos+42:], uint64(t.GMIdentity))
	return pos + 50, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *TimeStatusNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 52, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.MasterOffsetNS = int64(binary.BigEndian.Uint64(b[pos:]))
	t.IngressTimeNS = int64(binary.BigEndian.Uint64(b[pos+8:]))
	t.CumulativeScaledRateOffset = int32(binary.BigEndian.Uint32(b[pos+16:]))
	t.ScaledLastGmPhaseChange = int32(binary.BigEndian.Uint32(b[pos+20:]))
	t.GMTimeBaseIndicator = binary.BigEndian.Uint16(b[pos+24:])
	t.LastGmPhaseChange.NanosecondsMSB = binary.BigEndian.Uint16(b[pos+26:])
	t.LastGmPhaseChange.NanosecondsLSB = binary.BigEndian.Uint64(b[pos+28:])
	t.LastGmPhaseChange.FractionalNanoseconds = binary.BigEndian.Uint16(b[pos+36:])
	t.GMPresent = int32(binary.BigEndian.Uint32(b[pos+38:]))
	t.GMIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos+42:]))
	return nil
}

// PortPropertiesNPTLV is a ptp4l struct containing port properties
type PortPropertiesNPTLV struct {
	ManagementTLVHead
	PortIdentity PortIdentity
	PortState    PortState
	Timestamping Timestamping
	Interface    PTPText
}

// MarshalBinaryTo marshals bytes to PortPropertiesNPTLV
func (t *PortPropertiesNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.PortIdentity.PortNumber)
	b[pos+10] = byte(t.PortState)
	b[pos+11] = byte(t.Timestamping)
	pos += 12
	id, err := t.Interface.MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("writing PortPropertiesNP Interface: %w", err)
	}
	copy(b[pos:], id)
	return pos + len(id), nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *PortPropertiesNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 13, false); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	t.PortState = PortState(b[pos+10])
	t.Timestamping = Timestamping(b[pos+11])
	pos += 12
	if err := t.Interface.UnmarshalBinary(b[pos:]); err != nil {
		return fmt.Errorf("reading PortPropertiesNP Interface: %w", err)
	}
	return nil
}

// PortServiceStats is a ptp4l struct containing counters for different port events
type PortServiceStats struct {
	AnnounceTimeout       uint64 `json:"ptp.servicestats.announce_timeout"`
	SyncTimeout           uint64 `json:"ptp.servicestats.sync_timeout"`
	DelayTimeout          uint64 `json:"ptp.servicestats.delay_timeout"`
	UnicastServiceTimeout uint64 `json:"ptp.servicestats.unicast_service_timeout"`
	UnicastRequestTimeout uint64 `json:"ptp.servicestats.unicast_request_timeout"`
	MasterAnnounceTimeout uint64 `json:"ptp.servicestats.master_announce_timeout"`
	MasterSyncTimeout     uint64 `json:"ptp.servicestats.master_sync_timeout"`
	QualificationTimeout  uint64 `json:"ptp.servicestats.qualification_timeout"`
	SyncMismatch          uint64 `json:"ptp.servicestats.sync_mismatch"`
	FollowupMismatch      uint64 `json:"ptp.servicestats.followup_mismatch"`
}

const portServiceStatsSize = 10 * 8

// PortServiceStatsNPTLV is a management TLV added in linuxptp for per-port service counters
type PortServiceStatsNPTLV struct {
	ManagementTLVHead
	PortIdentity     PortIdentity
	PortServiceStats PortServiceStats
}

// MarshalBinaryTo marshals bytes to PortServiceStatsNPTLV
func (t *PortServiceStatsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint64(b[pos:], uint64(t.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[pos+8:], t.PortIdentity.PortNumber)
	pos += 10
	values := []uint64{
		t.PortServiceStats.AnnounceTimeout,
		t.PortServiceStats.SyncTimeout,
		t.PortServiceStats.DelayTimeout,
		t.PortServiceStats.UnicastServiceTimeout,
		t.PortServiceStats.UnicastRequestTimeout,
		t.PortServiceStats.MasterAnnounceTimeout,
		t.PortServiceStats.MasterSyncTimeout,
		t.PortServiceStats.QualificationTimeout,
		t.PortServiceStats.SyncMismatch,
		t.PortServiceStats.FollowupMismatch,
	}
	for i, v := range values {
		binary.BigEndian.PutUint64(b[pos+i*8:], v)
	}
	return pos + portServiceStatsSize, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *PortServiceStatsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2+10+portServiceStatsSize, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[pos:]))
	t.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[pos+8:])
	pos += 10
	values := []*uint64{
		&t.PortServiceStats.AnnounceTimeout,
		&t.PortServiceStats.SyncTimeout,
		&t.PortServiceStats.DelayTimeout,
		&t.PortServiceStats.UnicastServiceTimeout,
		&t.PortServiceStats.UnicastRequestTimeout,
		&t.PortServiceStats.MasterAnnounceTimeout,
		&t.PortServiceStats.MasterSyncTimeout,
		&t.PortServiceStats.QualificationTimeout,
		&t.PortServiceStats.SyncMismatch,
		&t.PortServiceStats.FollowupMismatch,
	}
	for i, v := range values {
		*v = binary.BigEndian.Uint64(b[pos+i*8:])
	}
	return nil
}

// UnicastMasterEntry is an entry in UnicastMasterTable that ptp4l exports via management TLV
type UnicastMasterEntry struct {
	PortIdentity PortIdentity
	ClockQuality ClockQuality
	Selected     bool
	PortState    UnicastMasterState
	Priority1    uint8
	Priority2    uint8
	Address      net.IP
}

const unicastMasterEntryHeadSize = 18

// MarshalBinaryTo marshals bytes to UnicastMasterEntry
func (e *UnicastMasterEntry) MarshalBinaryTo(b []byte) (int, error) {
	binary.BigEndian.PutUint64(b, uint64(e.PortIdentity.ClockIdentity))
	binary.BigEndian.PutUint16(b[8:], e.PortIdentity.PortNumber)
	b[10] = byte(e.ClockQuality.ClockClass)
	b[11] = byte(e.ClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[12:], e.ClockQuality.OffsetScaledLogVariance)
	if e.Selected {
		b[14] = 1
	} else {
		b[14] = 0
	}
	b[15] = byte(e.PortState)
	b[16] = e.Priority1
	b[17] = e.Priority2

	var pa PortAddress
	if v4 := e.Address.To4(); v4 != nil {
		pa = PortAddress{NetworkProtocol: TransportTypeUDPIPV4, AddressLength: 4, AddressField: v4}
	} else {
		pa = PortAddress{NetworkProtocol: TransportTypeUDPIPV6, AddressLength: 16, AddressField: e.Address}
	}
	pb, err := pa.MarshalBinary()
	if err != nil {
		return 0, err
	}
	copy(b[unicastMasterEntryHeadSize:], pb)
	return unicastMasterEntryHeadSize + len(pb), nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (e *UnicastMasterEntry) UnmarshalBinary(b []byte) (int, error) {
	if len(b) < unicastMasterEntryHeadSize+4 {
		return 0, fmt.Errorf("not enough data to decode UnicastMasterEntry")
	}
	e.PortIdentity.ClockIdentity = ClockIdentity(binary.BigEndian.Uint64(b[0:]))
	e.PortIdentity.PortNumber = binary.BigEndian.Uint16(b[8:])
	e.ClockQuality.ClockClass = ClockClass(b[10])
	e.ClockQuality.ClockAccuracy = ClockAccuracy(b[11])
	e.ClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[12:])
	switch b[14] {
	case 0:
		e.Selected = false
	case 1:
		e.Selected = true
	default:
		return 0, fmt.Errorf("unexpected 'selected' value %d", b[14])
	}
	e.PortState = UnicastMasterState(b[15])
	e.Priority1 = b[16]
	e.Priority2 = b[17]

	pa := &PortAddress{}
	if err := pa.UnmarshalBinary(b[unicastMasterEntryHeadSize:]); err != nil {
		return 0, err
	}
	ip, err := pa.IP()
	if err != nil {
		return 0, err
	}
	e.Address = ip
	return unicastMasterEntryHeadSize + 4 + int(pa.AddressLength), nil
}

// UnicastMasterTable is a table of UnicastMasterEntries
type UnicastMasterTable struct {
	ActualTableSize uint16
	UnicastMasters  []UnicastMasterEntry
}

// UnicastMasterTableNPTLV is a custom management packet that exports unicast master table state
type UnicastMasterTableNPTLV struct {
	ManagementTLVHead
	UnicastMasterTable UnicastMasterTable
}

// MarshalBinaryTo marshals bytes to UnicastMasterTableNPTLV
func (t *UnicastMasterTableNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint16(b[pos:], t.UnicastMasterTable.ActualTableSize)
	pos += 2
	for i := range t.UnicastMasterTable.UnicastMasters {
		n, err := t.UnicastMasterTable.UnicastMasters[i].MarshalBinaryTo(b[pos:])
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *UnicastMasterTableNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 2, false); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.UnicastMasterTable.ActualTableSize = binary.BigEndian.Uint16(b[pos:])
	pos += 2
	t.UnicastMasterTable.UnicastMasters = make([]UnicastMasterEntry, 0, t.UnicastMasterTable.ActualTableSize)
	for i := 0; i < int(t.UnicastMasterTable.ActualTableSize); i++ {
		var e UnicastMasterEntry
		n, err := e.UnmarshalBinary(b[pos:])
		if err != nil {
			return err
		}
		t.UnicastMasterTable.UnicastMasters = append(t.UnicastMasterTable.UnicastMasters, e)
		pos += n
	}
	return nil
}

// GrandmasterSettingsNPTLV reports/sets the values ordinarily carried by the standard
// DEFAULT_DATA_SET/TIME_PROPERTIES_DATA_SET TLVs, bundled the way ptp4l's GRANDMASTER_SETTINGS_NP does
type GrandmasterSettingsNPTLV struct {
	ManagementTLVHead
	ClockQuality     ClockQuality
	CurrentUTCOffset int16
	TimeFlags        uint8
	TimeSource       TimeSource
}

// MarshalBinaryTo marshals bytes to GrandmasterSettingsNPTLV
func (t *GrandmasterSettingsNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = byte(t.ClockQuality.ClockClass)
	b[pos+1] = byte(t.ClockQuality.ClockAccuracy)
	binary.BigEndian.PutUint16(b[pos+2:], t.ClockQuality.OffsetScaledLogVariance)
	binary.BigEndian.PutUint16(b[pos+4:], uint16(t.CurrentUTCOffset))
	b[pos+6] = t.TimeFlags
	b[pos+7] = byte(t.TimeSource)
	return pos + 8, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *GrandmasterSettingsNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 10, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.ClockQuality.ClockClass = ClockClass(b[pos])
	t.ClockQuality.ClockAccuracy = ClockAccuracy(b[pos+1])
	t.ClockQuality.OffsetScaledLogVariance = binary.BigEndian.Uint16(b[pos+2:])
	t.CurrentUTCOffset = int16(binary.BigEndian.Uint16(b[pos+4:]))
	t.TimeFlags = b[pos+6]
	t.TimeSource = TimeSource(b[pos+7])
	return nil
}

// PortDataSetNPTLV carries ptp4l's per-port tunables not present in the standard PORT_DATA_SET TLV
type PortDataSetNPTLV struct {
	ManagementTLVHead
	NeighborPropDelayThresh uint32
	AsCapable               int32
}

// MarshalBinaryTo marshals bytes to PortDataSetNPTLV
func (t *PortDataSetNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	binary.BigEndian.PutUint32(b[pos:], t.NeighborPropDelayThresh)
	binary.BigEndian.PutUint32(b[pos+4:], uint32(t.AsCapable))
	return pos + 8, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *PortDataSetNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 10, true); err != nil {
		return err
	}
	pos := managementTLVHeadSize
	t.NeighborPropDelayThresh = binary.BigEndian.Uint32(b[pos:])
	t.AsCapable = int32(binary.BigEndian.Uint32(b[pos+4:]))
	return nil
}

// SynchronizationUncertainNPTLV reports/overrides the synchronizationUncertain flag ptp4l
// otherwise derives automatically (see Table 37 flagField bit 6)
type SynchronizationUncertainNPTLV struct {
	ManagementTLVHead
	Val uint8 // 0 = false, 1 = true, 0xff = automatic (ptp4l default)
}

// MarshalBinaryTo marshals bytes to SynchronizationUncertainNPTLV
func (t *SynchronizationUncertainNPTLV) MarshalBinaryTo(b []byte) (int, error) {
	managementTLVHeadMarshalBinaryTo(&t.ManagementTLVHead, b)
	pos := managementTLVHeadSize
	b[pos] = t.Val
	b[pos+1] = 0
	return pos + 2, nil
}

// UnmarshalBinary parses []byte and populates struct fields
func (t *SynchronizationUncertainNPTLV) UnmarshalBinary(b []byte) error {
	if err := unmarshalManagementTLVHead(&t.ManagementTLVHead, b); err != nil {
		return err
	}
	if err := checkTLVLength(&t.TLVHead, len(b), 4, true); err != nil {
		return err
	}
	t.Val = b[managementTLVHeadSize]
	return nil
}

// PortStatsNPRequest prepares request packet for PORT_STATS_NP request
func PortStatsNPRequest() *Management {
	return managementRequest(IDPortStatsNP, GET)
}

// PortStatsNP sends PORT_STATS_NP request and returns response
func (c *MgmtClient) PortStatsNP() (*PortStatsNPTLV, error) {
	p, err := c.Communicate(PortStatsNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*PortStatsNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// TimeStatusNPRequest prepares request packet for TIME_STATUS_NP request
func TimeStatusNPRequest() *Management {
	return managementRequest(IDTimeStatusNP, GET)
}

// TimeStatusNP sends TIME_STATUS_NP request and returns response
func (c *MgmtClient) TimeStatusNP() (*TimeStatusNPTLV, error) {
	p, err := c.Communicate(TimeStatusNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*TimeStatusNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// PortServiceStatsNPRequest prepares request packet for PORT_SERVICE_STATS_NP request
func PortServiceStatsNPRequest() *Management {
	return managementRequest(IDPortServiceStatsNP, GET)
}

// PortServiceStatsNP sends PORT_SERVICE_STATS_NP request and returns response
func (c *MgmtClient) PortServiceStatsNP() (*PortServiceStatsNPTLV, error) {
	p, err := c.Communicate(PortServiceStatsNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*PortServiceStatsNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// PortPropertiesNPRequest prepares request packet for PORT_PROPERTIES_NP request
func PortPropertiesNPRequest() *Management {
	return managementRequest(IDPortPropertiesNP, GET)
}

// PortPropertiesNP sends PORT_PROPERTIES_NP request and returns response
func (c *MgmtClient) PortPropertiesNP() (*PortPropertiesNPTLV, error) {
	p, err := c.Communicate(PortPropertiesNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*PortPropertiesNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// UnicastMasterTableNPRequest creates new packet with UNICAST_MASTER_TABLE_NP request
func UnicastMasterTableNPRequest() *Management {
	return managementRequest(IDUnicastMasterTableNP, GET)
}

// UnicastMasterTableNP request UNICAST_MASTER_TABLE_NP from ptp4l, and returns the result
func (c *MgmtClient) UnicastMasterTableNP() (*UnicastMasterTableNPTLV, error) {
	p, err := c.Communicate(UnicastMasterTableNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*UnicastMasterTableNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// GrandmasterSettingsNPRequest prepares request packet for GRANDMASTER_SETTINGS_NP request
func GrandmasterSettingsNPRequest() *Management {
	return managementRequest(IDGrandmasterSettingsNP, GET)
}

// GrandmasterSettingsNP sends GRANDMASTER_SETTINGS_NP request and returns response
func (c *MgmtClient) GrandmasterSettingsNP() (*GrandmasterSettingsNPTLV, error) {
	p, err := c.Communicate(GrandmasterSettingsNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*GrandmasterSettingsNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// PortDataSetNPRequest prepares request packet for PORT_DATA_SET_NP request
func PortDataSetNPRequest() *Management {
	return managementRequest(IDPortDataSetNP, GET)
}

// PortDataSetNP sends PORT_DATA_SET_NP request and returns response
func (c *MgmtClient) PortDataSetNP() (*PortDataSetNPTLV, error) {
	p, err := c.Communicate(PortDataSetNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*PortDataSetNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}

// SynchronizationUncertainNPRequest prepares request packet for SYNCHRONIZATION_UNCERTAIN_NP request
func SynchronizationUncertainNPRequest() *Management {
	return managementRequest(IDSynchronizationUncertainNP, GET)
}

// SynchronizationUncertainNP sends SYNCHRONIZATION_UNCERTAIN_NP request and returns response
func (c *MgmtClient) SynchronizationUncertainNP() (*SynchronizationUncertainNPTLV, error) {
	p, err := c.Communicate(SynchronizationUncertainNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := p.TLV.(*SynchronizationUncertainNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", p.TLV, tlv)
	}
	return tlv, nil
}
