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

// MgmtClient is used to talk to a (presumably local) PTP server using Management packets,
// the way linuxptp's pmc exchanges datasets with ptp4l over its unix control socket.

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// MgmtClient talks to a ptp server over a unix socket
type MgmtClient struct {
	Connection io.ReadWriter
	Sequence   uint16
}

// SendPacket sends packet, incrementing sequence counter
func (c *MgmtClient) SendPacket(req *Management) error {
	c.Sequence++
	req.SetSequence(c.Sequence)
	return req.MarshalBinaryToBuf(c.Connection)
}

// Communicate sends the management request, parses the response into a Management packet.
// A MANAGEMENT_ERROR_STATUS reply is turned into a Go error rather than returned as a packet.
func (c *MgmtClient) Communicate(req *Management) (*Management, error) {
	if err := c.SendPacket(req); err != nil {
		return nil, err
	}
	response := make([]uint8, 1024)
	n, err := c.Connection.Read(response)
	if err != nil {
		return nil, err
	}
	p, err := decodeMgmtPacket(response[:n])
	if err != nil {
		return nil, err
	}
	if errorPacket, ok := p.(*ManagementMsgErrorStatus); ok {
		return nil, fmt.Errorf("got Management Error in response: %v", errorPacket.ManagementErrorStatusTLV.ManagementErrorID)
	}
	res, ok := p.(*Management)
	if !ok {
		return nil, fmt.Errorf("got unexpected management packet %T, expected %T", p, res)
	}
	log.Debugf("received management response for %s", res.TLV.MgmtID())
	return res, nil
}

// ParentDataSet sends PARENT_DATA_SET request and returns response
func (c *MgmtClient) ParentDataSet() (*ParentDataSetTLV, error) {
	res, err := c.Communicate(ParentDataSetRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*ParentDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// DefaultDataSet sends DEFAULT_DATA_SET request and returns response
func (c *MgmtClient) DefaultDataSet() (*DefaultDataSetTLV, error) {
	res, err := c.Communicate(DefaultDataSetRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*DefaultDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// CurrentDataSet sends CURRENT_DATA_SET request and returns response
func (c *MgmtClient) CurrentDataSet() (*CurrentDataSetTLV, error) {
	res, err := c.Communicate(CurrentDataSetRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*CurrentDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// ClockAccuracy sends CLOCK_ACCURACY request and returns response
func (c *MgmtClient) ClockAccuracy() (*ClockAccuracyTLV, error) {
	res, err := c.Communicate(ClockAccuracyRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*ClockAccuracyTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// TimePropertiesDataSet sends TIME_PROPERTIES_DATA_SET request and returns response
func (c *MgmtClient) TimePropertiesDataSet() (*TimePropertiesDataSetTLV, error) {
	res, err := c.Communicate(TimePropertiesDataSetRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*TimePropertiesDataSetTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// ClockDescription sends CLOCK_DESCRIPTION request and returns response
func (c *MgmtClient) ClockDescription() (*ClockDescriptionTLV, error) {
	res, err := c.Communicate(ClockDescriptionRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*ClockDescriptionTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// SubscribeEventsNP sends SUBSCRIBE_EVENTS_NP request and returns response
func (c *MgmtClient) SubscribeEventsNP() (*SubscribeEventsNPTLV, error) {
	res, err := c.Communicate(SubscribeEventsNPRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*SubscribeEventsNPTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}

// PathTraceList sends PATH_TRACE_LIST request and returns response
func (c *MgmtClient) PathTraceList() (*PathTraceListTLV, error) {
	res, err := c.Communicate(PathTraceListRequest())
	if err != nil {
		return nil, err
	}
	tlv, ok := res.TLV.(*PathTraceListTLV)
	if !ok {
		return nil, fmt.Errorf("got unexpected management TLV %T, wanted %T", res.TLV, tlv)
	}
	return tlv, nil
}
