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

// SessionConfig and its go-ini-backed adapter: the interface components building or parsing a
// Management message consult for per-section transport/domain/authentication parameters, the
// way calnex/config.Config drives Calnex probe configuration from a loaded ini.File.

import (
	"fmt"

	"github.com/go-ini/ini"
)

// SessionConfig supplies the per-section parameters a Management build/parse needs:
// transportSpecific and domainNumber for the common header, and the security parameter
// pointer/active key for sections with authentication enabled.
type SessionConfig interface {
	TransportSpecific(section string) (uint8, error)
	DomainNumber(section string) (uint8, error)
	SPP(section string) (uint8, bool)
	ActiveKeyID(section string) (uint32, bool)
}

// IniSessionConfig is a SessionConfig backed by a loaded go-ini file, following the same
// ini.Section/ini.Key access pattern calnex/config.Config uses elsewhere in this tree.
type IniSessionConfig struct {
	file *ini.File
}

// LoadIniSessionConfig loads path as an ini file and wraps it as a SessionConfig
func LoadIniSessionConfig(path string) (*IniSessionConfig, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading session config %q: %w", path, err)
	}
	return &IniSessionConfig{file: f}, nil
}

func (c *IniSessionConfig) section(name string) *ini.Section {
	if name == "" {
		return c.file.Section(ini.DefaultSection)
	}
	return c.file.Section(name)
}

// TransportSpecific reads transportSpecific from section, defaulting to 0
func (c *IniSessionConfig) TransportSpecific(section string) (uint8, error) {
	v, err := c.section(section).Key("transportSpecific").Uint()
	if err != nil {
		if c.section(section).Key("transportSpecific").String() == "" {
			return 0, nil
		}
		return 0, fmt.Errorf("parsing transportSpecific in section %q: %w", section, err)
	}
	if v > 0x0f {
		return 0, fmt.Errorf("transportSpecific %d in section %q exceeds 0x0f", v, section)
	}
	return uint8(v), nil
}

// DomainNumber reads domainNumber from section, defaulting to 0
func (c *IniSessionConfig) DomainNumber(section string) (uint8, error) {
	v, err := c.section(section).Key("domainNumber").Uint()
	if err != nil {
		if c.section(section).Key("domainNumber").String() == "" {
			return 0, nil
		}
		return 0, fmt.Errorf("parsing domainNumber in section %q: %w", section, err)
	}
	return uint8(v), nil
}

// SPP reads the security parameter pointer for section, if authentication is configured there
func (c *IniSessionConfig) SPP(section string) (uint8, bool) {
	k := c.section(section).Key("spp")
	if k.String() == "" {
		return 0, false
	}
	v, err := k.Uint()
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// ActiveKeyID reads the active authentication key id for section, if configured there
func (c *IniSessionConfig) ActiveKeyID(section string) (uint32, bool) {
	k := c.section(section).Key("activeKeyID")
	if k.String() == "" {
		return 0, false
	}
	v, err := k.Uint()
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
