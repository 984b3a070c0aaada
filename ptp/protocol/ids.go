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

import "fmt"

// ManagementID is type for Management IDs, Table 59 managementId values
type ManagementID uint16

// Management IDs, Table 59 managementId values plus the linuxptp vendor extensions
const (
	IDNullPTPManagement        ManagementID = 0x0000
	IDClockDescription         ManagementID = 0x0001
	IDUserDescription          ManagementID = 0x0002
	IDSaveInNonVolatileStorage ManagementID = 0x0003
	IDResetNonVolatileStorage  ManagementID = 0x0004
	IDInitialize               ManagementID = 0x0005
	IDFaultLog                 ManagementID = 0x0006
	IDFaultLogReset            ManagementID = 0x0007

	IDDefaultDataSet        ManagementID = 0x2000
	IDCurrentDataSet        ManagementID = 0x2001
	IDParentDataSet         ManagementID = 0x2002
	IDTimePropertiesDataSet ManagementID = 0x2003
	IDPortDataSet           ManagementID = 0x2004
	IDPriority1             ManagementID = 0x2005
	IDPriority2             ManagementID = 0x2006
	IDDomain                ManagementID = 0x2007
	IDSlaveOnly             ManagementID = 0x2008

	IDLogAnnounceInterval        ManagementID = 0x2009
	IDAnnounceReceiptTimeout     ManagementID = 0x200a
	IDLogSyncInterval            ManagementID = 0x200b
	IDVersionNumber              ManagementID = 0x200c
	IDEnablePort                 ManagementID = 0x200d
	IDDisablePort                ManagementID = 0x200e
	IDTime                       ManagementID = 0x200f
	IDClockAccuracy              ManagementID = 0x2010
	IDUtcProperties              ManagementID = 0x2011
	IDTraceabilityProperties     ManagementID = 0x2012
	IDTimescaleProperties        ManagementID = 0x2013
	IDUnicastNegotiationEnable   ManagementID = 0x2014
	IDPathTraceList              ManagementID = 0x2015
	IDPathTraceEnable            ManagementID = 0x2016
	IDGrandmasterClusterTable    ManagementID = 0x2017
	IDUnicastMasterTable         ManagementID = 0x2018
	IDUnicastMasterMaxTableSize  ManagementID = 0x2019
	IDAcceptableMasterTable      ManagementID = 0x201a
	IDAcceptableMasterTableEnabled ManagementID = 0x201b
	IDAcceptableMasterMaxTableSize ManagementID = 0x201c
	IDAlternateMaster              ManagementID = 0x201d
	IDAlternateTimeOffsetEnable    ManagementID = 0x201e
	IDAlternateTimeOffsetName      ManagementID = 0x201f
	IDAlternateTimeOffsetMaxKey    ManagementID = 0x2020
	IDAlternateTimeOffsetProperties ManagementID = 0x2021

	IDTransparentClockDefaultDataSet ManagementID = 0x4000 // deprecated 2019
	IDTransparentClockPortDataSet    ManagementID = 0x4001
	IDPrimaryDomain                  ManagementID = 0x4002 // deprecated 2019

	IDExternalPortConfigurationEnabled ManagementID = 0x3000
	IDMasterOnly                       ManagementID = 0x3001
	IDHoldoverUpgradeEnable            ManagementID = 0x3002
	IDExtPortConfigPortDataSet         ManagementID = 0x3003

	IDDelayMechanism            ManagementID = 0x6000
	IDLogMinPdelayReqInterval   ManagementID = 0x6001

	IDTimeStatusNP             ManagementID = 0xc000
	IDGrandmasterSettingsNP    ManagementID = 0xc001
	IDPortDataSetNP            ManagementID = 0xc002
	IDSubscribeEventsNP        ManagementID = 0xc003
	IDPortPropertiesNP         ManagementID = 0xc004
	IDPortStatsNP              ManagementID = 0xc005
	IDSynchronizationUncertainNP ManagementID = 0xc006
	IDPortServiceStatsNP       ManagementID = 0xc007
	IDUnicastMasterTableNP     ManagementID = 0xc008
)

// Scope tells whether a managementId applies to the whole PTP Instance (clock) or to a single port
type Scope uint8

// valid scopes, per original_source/ids.h
const (
	ScopeClock Scope = iota
	ScopePort
)

func (s Scope) String() string {
	if s == ScopePort {
		return "port"
	}
	return "clock"
}

// allowed is a bitmask of actions a managementId may carry, matching original_source/ids.h
type allowed uint8

const (
	allowedGet     allowed = 1 << 0
	allowedSet     allowed = 1 << 1
	allowedCommand allowed = 1 << 2
	allowedVendor  allowed = 1 << 5 // gated behind linuxptp vendor extension (USE_LINUXPTP)
)

// RegistryEntry describes one managementId: its scope, which actions it permits and the
// size of its TLV data in bytes (0 means empty, -1 means unsupported by this managementId
// altogether, -2 means variable length).
type RegistryEntry struct {
	Scope   Scope
	Allowed allowed
	Size    int
	Vendor  bool
}

const (
	sizeUnsupported = -1
	sizeVariable    = -2
)

// registry is the full managementId table as defined by IEEE 1588 Table 59 plus the
// linuxptp vendor extensions.
var registry = map[ManagementID]RegistryEntry{
	IDNullPTPManagement:        {ScopePort, allowedGet | allowedSet | allowedCommand, 0, false},
	IDClockDescription:         {ScopePort, allowedGet, sizeVariable, false},
	IDUserDescription:          {ScopeClock, allowedGet | allowedSet, sizeVariable, false},
	IDSaveInNonVolatileStorage: {ScopeClock, allowedCommand, 0, false},
	IDResetNonVolatileStorage:  {ScopeClock, allowedCommand, 0, false},
	IDInitialize:               {ScopeClock, allowedCommand, 2, false},
	IDFaultLog:                 {ScopeClock, allowedGet, sizeVariable, false},
	IDFaultLogReset:            {ScopeClock, allowedCommand, 0, false},

	IDDefaultDataSet:        {ScopeClock, allowedGet, 20, false},
	IDCurrentDataSet:        {ScopeClock, allowedGet, 18, false},
	IDParentDataSet:         {ScopeClock, allowedGet, 32, false},
	IDTimePropertiesDataSet: {ScopeClock, allowedGet, 4, false},
	IDPortDataSet:           {ScopePort, allowedGet, 26, false},
	IDPriority1:             {ScopeClock, allowedGet | allowedSet, 2, false},
	IDPriority2:             {ScopeClock, allowedGet | allowedSet, 2, false},
	IDDomain:                {ScopeClock, allowedGet | allowedSet, 2, false},
	IDSlaveOnly:             {ScopeClock, allowedGet | allowedSet, 2, false},

	IDLogAnnounceInterval:    {ScopePort, allowedGet | allowedSet, 2, false},
	IDAnnounceReceiptTimeout: {ScopePort, allowedGet | allowedSet, 2, false},
	IDLogSyncInterval:        {ScopePort, allowedGet | allowedSet, 2, false},
	IDVersionNumber:          {ScopePort, allowedGet | allowedSet, 2, false},
	IDEnablePort:             {ScopePort, allowedCommand, 0, false},
	IDDisablePort:            {ScopePort, allowedCommand, 0, false},
	IDTime:                   {ScopeClock, allowedGet | allowedSet, 10, false},
	IDClockAccuracy:          {ScopeClock, allowedGet | allowedSet, 2, false},
	IDUtcProperties:          {ScopeClock, allowedGet | allowedSet, 4, false},
	IDTraceabilityProperties: {ScopeClock, allowedGet | allowedSet, 2, false},
	IDTimescaleProperties:    {ScopeClock, allowedGet | allowedSet, 2, false},

	IDUnicastNegotiationEnable:     {ScopePort, allowedGet | allowedSet, 2, false},
	IDPathTraceList:                {ScopeClock, allowedGet, sizeVariable, false},
	IDPathTraceEnable:              {ScopeClock, allowedGet | allowedSet, 2, false},
	IDGrandmasterClusterTable:      {ScopeClock, allowedGet | allowedSet, sizeVariable, false},
	IDUnicastMasterTable:           {ScopePort, allowedGet | allowedSet, sizeVariable, false},
	IDUnicastMasterMaxTableSize:    {ScopePort, allowedGet, 2, false},
	IDAcceptableMasterTable:        {ScopeClock, allowedGet | allowedSet, sizeVariable, false},
	IDAcceptableMasterTableEnabled: {ScopePort, allowedGet | allowedSet, 2, false},
	IDAcceptableMasterMaxTableSize: {ScopeClock, allowedGet, 2, false},
	IDAlternateMaster:              {ScopePort, allowedGet | allowedSet, 4, false},
	IDAlternateTimeOffsetEnable:    {ScopeClock, allowedGet | allowedSet, 2, false},
	IDAlternateTimeOffsetName:      {ScopeClock, allowedGet | allowedSet, sizeVariable, false},
	IDAlternateTimeOffsetMaxKey:    {ScopeClock, allowedGet, 2, false},
	IDAlternateTimeOffsetProperties: {ScopeClock, allowedGet | allowedSet, 16, false},

	IDTransparentClockDefaultDataSet: {ScopeClock, allowedGet, 12, false},
	IDTransparentClockPortDataSet:    {ScopePort, allowedGet, 20, false},
	IDPrimaryDomain:                  {ScopeClock, allowedGet | allowedSet, 2, false},

	IDExternalPortConfigurationEnabled: {ScopeClock, allowedGet | allowedSet, 2, false},
	IDMasterOnly:                       {ScopePort, allowedGet | allowedSet, 2, false},
	IDHoldoverUpgradeEnable:            {ScopeClock, allowedGet | allowedSet, 2, false},
	IDExtPortConfigPortDataSet:         {ScopePort, allowedGet | allowedSet, 2, false},

	IDDelayMechanism:          {ScopePort, allowedGet | allowedSet, 2, false},
	IDLogMinPdelayReqInterval: {ScopePort, allowedGet | allowedSet, 2, false},

	IDTimeStatusNP:                {ScopeClock, allowedGet | allowedVendor, 50, true},
	IDGrandmasterSettingsNP:       {ScopeClock, allowedGet | allowedSet | allowedVendor, 8, true},
	IDPortDataSetNP:               {ScopePort, allowedGet | allowedSet | allowedVendor, 8, true},
	IDSubscribeEventsNP:           {ScopeClock, allowedGet | allowedSet | allowedVendor, 66, true},
	IDPortPropertiesNP:            {ScopePort, allowedGet | allowedVendor, sizeVariable, true},
	IDPortStatsNP:                 {ScopePort, allowedGet | allowedVendor, 266, true},
	IDSynchronizationUncertainNP:  {ScopeClock, allowedGet | allowedSet | allowedVendor, 2, true},
	IDPortServiceStatsNP:          {ScopePort, allowedGet | allowedVendor, sizeVariable, true},
	IDUnicastMasterTableNP:        {ScopePort, allowedGet | allowedVendor, sizeVariable, true},
}

// entry looks up the registry row for a managementId.
func entry(id ManagementID) (RegistryEntry, bool) {
	e, ok := registry[id]
	return e, ok
}

// isValid reports whether id is a recognized managementId and, if the id is vendor-gated,
// whether useVendorExtensions allows vendor (linuxptp) extensions.
func isValid(id ManagementID, useVendorExtensions bool) bool {
	e, ok := entry(id)
	if !ok {
		return false
	}
	if e.Vendor && !useVendorExtensions {
		return false
	}
	return true
}

// isAllowed reports whether action is a legal actionField for managementId id.
func isAllowed(id ManagementID, action Action) bool {
	e, ok := entry(id)
	if !ok {
		return false
	}
	switch action {
	case GET:
		return e.Allowed&allowedGet != 0
	case SET:
		return e.Allowed&allowedSet != 0
	case COMMAND:
		return e.Allowed&allowedCommand != 0
	default:
		return false
	}
}

// checkReply reports whether reply is a legitimate response action (RESPONSE or ACKNOWLEDGE,
// the latter only for COMMAND managementIds).
func checkReply(id ManagementID, reply Action) bool {
	e, ok := entry(id)
	if !ok {
		return false
	}
	switch reply {
	case RESPONSE:
		return e.Allowed&(allowedGet|allowedSet) != 0
	case ACKNOWLEDGE:
		return e.Allowed&allowedCommand != 0
	default:
		return false
	}
}

// ManagementIDToString is a map from ManagementID to string, matching linuxptp pmc naming
var ManagementIDToString = map[ManagementID]string{
	IDNullPTPManagement:        "NULL_PTP_MANAGEMENT",
	IDClockDescription:         "CLOCK_DESCRIPTION",
	IDUserDescription:          "USER_DESCRIPTION",
	IDSaveInNonVolatileStorage: "SAVE_IN_NON_VOLATILE_STORAGE",
	IDResetNonVolatileStorage:  "RESET_NON_VOLATILE_STORAGE",
	IDInitialize:               "INITIALIZE",
	IDFaultLog:                 "FAULT_LOG",
	IDFaultLogReset:            "FAULT_LOG_RESET",

	IDDefaultDataSet:        "DEFAULT_DATA_SET",
	IDCurrentDataSet:        "CURRENT_DATA_SET",
	IDParentDataSet:         "PARENT_DATA_SET",
	IDTimePropertiesDataSet: "TIME_PROPERTIES_DATA_SET",
	IDPortDataSet:           "PORT_DATA_SET",
	IDPriority1:             "PRIORITY1",
	IDPriority2:             "PRIORITY2",
	IDDomain:                "DOMAIN",
	IDSlaveOnly:             "SLAVE_ONLY",

	IDLogAnnounceInterval:    "LOG_ANNOUNCE_INTERVAL",
	IDAnnounceReceiptTimeout: "ANNOUNCE_RECEIPT_TIMEOUT",
	IDLogSyncInterval:        "LOG_SYNC_INTERVAL",
	IDVersionNumber:          "VERSION_NUMBER",
	IDEnablePort:             "ENABLE_PORT",
	IDDisablePort:            "DISABLE_PORT",
	IDTime:                   "TIME",
	IDClockAccuracy:          "CLOCK_ACCURACY",
	IDUtcProperties:          "UTC_PROPERTIES",
	IDTraceabilityProperties: "TRACEABILITY_PROPERTIES",
	IDTimescaleProperties:    "TIMESCALE_PROPERTIES",

	IDUnicastNegotiationEnable:      "UNICAST_NEGOTIATION_ENABLE",
	IDPathTraceList:                 "PATH_TRACE_LIST",
	IDPathTraceEnable:               "PATH_TRACE_ENABLE",
	IDGrandmasterClusterTable:       "GRANDMASTER_CLUSTER_TABLE",
	IDUnicastMasterTable:            "UNICAST_MASTER_TABLE",
	IDUnicastMasterMaxTableSize:     "UNICAST_MASTER_MAX_TABLE_SIZE",
	IDAcceptableMasterTable:         "ACCEPTABLE_MASTER_TABLE",
	IDAcceptableMasterTableEnabled:  "ACCEPTABLE_MASTER_TABLE_ENABLED",
	IDAcceptableMasterMaxTableSize:  "ACCEPTABLE_MASTER_MAX_TABLE_SIZE",
	IDAlternateMaster:               "ALTERNATE_MASTER",
	IDAlternateTimeOffsetEnable:     "ALTERNATE_TIME_OFFSET_ENABLE",
	IDAlternateTimeOffsetName:       "ALTERNATE_TIME_OFFSET_NAME",
	IDAlternateTimeOffsetMaxKey:     "ALTERNATE_TIME_OFFSET_MAX_KEY",
	IDAlternateTimeOffsetProperties: "ALTERNATE_TIME_OFFSET_PROPERTIES",

	IDTransparentClockDefaultDataSet: "TRANSPARENT_CLOCK_DEFAULT_DATA_SET",
	IDTransparentClockPortDataSet:    "TRANSPARENT_CLOCK_PORT_DATA_SET",
	IDPrimaryDomain:                  "PRIMARY_DOMAIN",

	IDExternalPortConfigurationEnabled: "EXTERNAL_PORT_CONFIGURATION_ENABLED",
	IDMasterOnly:                       "MASTER_ONLY",
	IDHoldoverUpgradeEnable:            "HOLDOVER_UPGRADE_ENABLE",
	IDExtPortConfigPortDataSet:         "EXT_PORT_CONFIG_PORT_DATA_SET",

	IDDelayMechanism:          "DELAY_MECHANISM",
	IDLogMinPdelayReqInterval: "LOG_MIN_PDELAY_REQ_INTERVAL",

	IDTimeStatusNP:               "TIME_STATUS_NP",
	IDGrandmasterSettingsNP:      "GRANDMASTER_SETTINGS_NP",
	IDPortDataSetNP:              "PORT_DATA_SET_NP",
	IDSubscribeEventsNP:          "SUBSCRIBE_EVENTS_NP",
	IDPortPropertiesNP:           "PORT_PROPERTIES_NP",
	IDPortStatsNP:                "PORT_STATS_NP",
	IDSynchronizationUncertainNP: "SYNCHRONIZATION_UNCERTAIN_NP",
	IDPortServiceStatsNP:         "PORT_SERVICE_STATS_NP",
	IDUnicastMasterTableNP:       "UNICAST_MASTER_TABLE_NP",
}

func (id ManagementID) String() string {
	if s, ok := ManagementIDToString[id]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_MANAGEMENT_ID=0x%04x", uint16(id))
}
